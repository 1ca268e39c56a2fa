package config

// Config represents the complete configuration structure
type Config struct {
	Paystack PaystackConfig `mapstructure:"paystack"`
	Filters  FilterConfig   `mapstructure:"filters"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// PaystackConfig holds Paystack API connection details
type PaystackConfig struct {
	// SecretKey may also be supplied via the PAYSTACK_SECRET_KEY
	// environment variable.
	SecretKey      string `mapstructure:"secret_key"`
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// FilterConfig contains named filter expression presets
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
