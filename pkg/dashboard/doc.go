// Package dashboard provides the state controller behind a feature flag
// dashboard session.
//
// A Controller owns the canonical flag collection and the current filter
// selection, composes the pure primitives from the feature package into
// memoized derived views, and exposes the mutation entry points the
// presentation layer forwards user intents to: Toggle, SetSearch,
// SetStatus, SetCategory and Retry.
//
// # Construction
//
// The controller's initial state is fully determined by its arguments -
// there is no hidden global seed. Config carries the simulated
// loading/error flags (loadable from the environment via the config
// package); options inject the seed collection and a logger:
//
//	ctrl, err := dashboard.New(cfg,
//		dashboard.WithFlags(flags...),
//		dashboard.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//	defer ctrl.Close()
//
// # Derived state and memoization
//
// Filtered, Counts and Categories recompute lazily and memoize their
// results on the collection version and, for Filtered, the selection
// value. As long as the inputs are unchanged the accessors return the
// identical reference, so consumers can compare identities to skip
// re-render work. Counts and Categories always describe the entire
// collection, never the filtered subset.
//
// # Change notifications
//
// Every effective mutation publishes an Event through an in-process
// broadcaster. Subscribe hands the presentation layer a channel to react
// to; silent no-ops (unknown toggle ids, setters that change nothing)
// publish nothing.
//
// # Failure model
//
// Nothing in this package throws or returns errors after construction.
// Toggling an unknown id is a defined no-op, validation is advisory and
// lives in the feature package, and the simulated fetch error is a plain
// message cleared by Retry.
package dashboard
