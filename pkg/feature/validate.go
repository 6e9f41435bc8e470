package feature

import (
	"fmt"

	"github.com/dmitrymomot/flagdeck/pkg/validator"
)

const (
	// MaxNameLen is the longest accepted flag name.
	MaxNameLen = 100
	// MaxDescriptionLen is the longest accepted flag description.
	MaxDescriptionLen = 500
)

// Validate checks a candidate flag against the record constraints and
// reports every violated rule. All rules are evaluated independently;
// no rule short-circuits another. Validation is advisory: it never
// mutates the candidate and the caller decides whether to block a save.
func Validate(f Flag) validator.ValidationErrors {
	err := validator.Apply(
		validator.RequiredString("name", f.Name),
		validator.MaxLenString("name", f.Name, MaxNameLen),
		validator.RequiredString("description", f.Description),
		validator.MaxLenString("description", f.Description, MaxDescriptionLen),
		validator.RequiredString("category", f.Category),
	)
	return validator.ExtractValidationErrors(err)
}

// ValidationMessages returns the human-readable messages produced by
// Validate, one per violated rule. A valid candidate yields nil.
func ValidationMessages(f Flag) []string {
	errs := Validate(f)
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return msgs
}
