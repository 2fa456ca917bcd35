package config

// ThrottleConfig limits how often one manager may issue commands.
// RequestsPerSecond of 0 disables throttling.
type ThrottleConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"min=0"`
	Burst             int     `mapstructure:"burst" validate:"min=0"`
}

// Enabled reports whether throttling is configured
func (t ThrottleConfig) Enabled() bool {
	return t.RequestsPerSecond > 0
}
