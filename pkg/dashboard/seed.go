package dashboard

import (
	"errors"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/flagdeck/pkg/feature"
)

// DefaultFlags returns the built-in demo flag set used when no seed is
// injected. It is a plain constructor rather than package-level state, so
// every controller starts from its own copy and nothing hides behind a
// global.
func DefaultFlags() []*feature.Flag {
	return []*feature.Flag{
		{
			ID:          "new-dashboard",
			Name:        "New Dashboard",
			Description: "Redesigned overview page with live aggregates",
			Enabled:     true,
			Category:    "ui",
		},
		{
			ID:          "dark-mode",
			Name:        "Dark Mode",
			Description: "Dark color scheme across the whole dashboard",
			Enabled:     true,
			Category:    "ui",
		},
		{
			ID:          "beta-api",
			Name:        "Beta API",
			Description: "Expose the experimental v2 API surface",
			Enabled:     false,
			Category:    "api",
		},
		{
			ID:          "advanced-analytics",
			Name:        "Advanced Analytics",
			Description: "Per-category usage breakdowns and trends",
			Enabled:     false,
			Category:    "analytics",
		},
		{
			ID:          "email-digest",
			Name:        "Email Digest",
			Description: "Weekly summary email of flag changes",
			Enabled:     true,
			Category:    "notifications",
		},
	}
}

// ParseSeed decodes a YAML seed document into a flag collection, letting
// callers inject seeds from any configuration source. ParseSeed performs no
// I/O and does not enforce ID uniqueness; New does that when the seed is
// applied.
//
// Expected document shape:
//
//   - id: dark-mode
//     name: Dark Mode
//     description: Dark color scheme
//     enabled: true
//     category: ui
func ParseSeed(data []byte) ([]*feature.Flag, error) {
	var flags []*feature.Flag
	if err := yaml.Unmarshal(data, &flags); err != nil {
		return nil, errors.Join(ErrInvalidSeed, err)
	}
	return flags, nil
}
