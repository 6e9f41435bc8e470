package dashboard

// defaultEventBuffer is the subscriber channel capacity used when the
// configuration does not specify one.
const defaultEventBuffer = 16

// Config carries the construction-time knobs of a dashboard session.
// The simulated flags stand in for an external fetch that does not exist:
// they are set once at construction and cleared only by Retry.
//
// Load it from the environment with the config package:
//
//	var cfg dashboard.Config
//	config.MustLoad(&cfg)
type Config struct {
	// SimulateLoading starts the session with the loading flag raised.
	SimulateLoading bool `env:"DASHBOARD_SIMULATE_LOADING" envDefault:"false"`

	// SimulateError starts the session with the given error message
	// displayed. Empty means no error.
	SimulateError string `env:"DASHBOARD_SIMULATE_ERROR" envDefault:""`

	// EventBuffer is the per-subscriber change event buffer size.
	EventBuffer int `env:"DASHBOARD_EVENT_BUFFER" envDefault:"16"`
}
