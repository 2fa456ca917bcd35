package config

// TransfersConfig holds transfer queue settings
type TransfersConfig struct {
	// Count is the maximum number of pending transfer requests per manager
	Count int `mapstructure:"count" validate:"min=1,max=50"`
}
