package mixer

// Default threshold values, used unless overridden by an Option.
const (
	DefaultDegreeThreshold    = 10
	DefaultDiversityThreshold = 3
	DefaultWindowSecs         = 3600
)

// Option customizes a Config before detection runs.
type Option func(cfg *Config)

// Config holds the tunable thresholds for MixerDetector scoring.
type Config struct {
	DegreeThreshold    int
	DiversityThreshold int
	WindowSecs         uint64
}

// NewConfig returns a Config seeded with the package defaults, then applies
// each Option in order. Later options override earlier ones.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		DegreeThreshold:    DefaultDegreeThreshold,
		DiversityThreshold: DefaultDiversityThreshold,
		WindowSecs:         DefaultWindowSecs,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithDegreeThreshold sets the minimum in- or out-degree that earns a
// degree point.
func WithDegreeThreshold(n int) Option {
	return func(cfg *Config) { cfg.DegreeThreshold = n }
}

// WithDiversityThreshold sets the minimum distinct neighbor-label count
// that earns a diversity point.
func WithDiversityThreshold(n int) Option {
	return func(cfg *Config) { cfg.DiversityThreshold = n }
}

// WithWindowSecs sets the maximum |t_in - t_out| that counts as in/out
// timing overlap.
func WithWindowSecs(secs uint64) Option {
	return func(cfg *Config) { cfg.WindowSecs = secs }
}
