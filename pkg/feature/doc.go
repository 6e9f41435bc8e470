// Package feature provides the record type and the pure filtering and
// aggregation primitives behind a feature flag dashboard.
//
// The package holds no state. Every function receives a full flag
// collection as explicit input and returns a new derived value, which
// makes every operation referentially transparent and trivially
// testable. State ownership lives in the dashboard package, which
// composes these primitives into a session controller.
//
// # Filtering
//
// A Selection combines three independent constraints with logical AND:
// a case-insensitive substring search over names and descriptions, a
// status constraint over the enabled bit, and an exact category match.
//
//	visible := feature.Filter(flags, feature.Selection{
//		Search: "dark",
//		Status: feature.StatusEnabled,
//	})
//
// Search text is matched literally. A whitespace-only search does not
// match anything; trimming input is a presentation-layer concern.
//
// # Aggregation
//
// CountByStatus, Categories and GroupByCategory derive dashboard
// summaries from a collection:
//
//	counts := feature.CountByStatus(flags) // counts.Enabled + counts.Disabled == counts.Total
//	labels := feature.Categories(flags)    // sorted, distinct
//
// # Validation
//
// Validate checks a candidate flag and reports every violated rule at
// once. It never panics and never mutates the candidate; invalidity is
// communicated only through the returned list:
//
//	if errs := feature.Validate(candidate); !errs.IsEmpty() {
//		// surface errs to the user, decide whether to block the save
//	}
package feature
