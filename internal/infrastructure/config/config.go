package config

type Config struct {
	// Global configuration
	App       AppConfig       `mapstructure:"app"`
	Http      HttpConfig      `mapstructure:"http"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`

	// Domain configuration
	Downstream DownstreamConfig `mapstructure:"downstream"`
	Log        LogConfig        `mapstructure:"log"`
}
