// Package config loads typed application configuration from environment
// variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11 behind a
// small generic API: annotate a struct with `env` tags and pass a pointer to
// Load. The default .env file, when present, is loaded once per process
// before the first parse. Each configuration type is parsed at most once and
// cached for the process lifetime; Reset clears the cache for tests.
//
//	type DashboardConfig struct {
//		SimulateLoading bool   `env:"DASHBOARD_SIMULATE_LOADING" envDefault:"false"`
//		SimulateError   string `env:"DASHBOARD_SIMULATE_ERROR"`
//	}
//
//	var cfg DashboardConfig
//	config.MustLoad(&cfg)
package config
