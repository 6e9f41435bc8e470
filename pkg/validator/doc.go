// Package validator provides composable, declarative validation rules with
// translation-friendly error metadata.
//
// A Rule couples a boolean Check with the ValidationError to record when the
// check fails. Rules are evaluated with Apply, which aggregates every failure
// into a ValidationErrors slice satisfying the error interface - callers get
// all field-level problems in a single error return instead of the first one:
//
//	err := validator.Apply(
//	    validator.RequiredString("name", name),
//	    validator.MaxLenString("name", name, 100),
//	)
//	if verrs := validator.ExtractValidationErrors(err); !verrs.IsEmpty() {
//	    for _, field := range verrs.Fields() {
//	        // surface verrs.Get(field) to the user
//	    }
//	}
//
// Every rule constructor is a pure function; the package keeps no global
// state and is safe for concurrent use.
package validator
