package config

import "github.com/spf13/viper"

// Default configuration constants
const (
	// Fetch defaults
	defaultTimeoutSeconds = 10
	defaultMaxConcurrent  = 10 // simultaneous candidate fetches
	defaultMaxPageBytes   = 2 << 20
	defaultMaxIconBytes   = 5 << 20
	defaultUserAgent      = "Mozilla/5.0 (compatible; icofetch/1.0; +https://github.com/bnema/icofetch)"

	// Output defaults
	defaultSize   = "default"
	defaultFormat = "png"

	// Logging defaults
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("fetch.timeout_seconds", defaultTimeoutSeconds)
	v.SetDefault("fetch.max_concurrent", defaultMaxConcurrent)
	v.SetDefault("fetch.user_agent", defaultUserAgent)
	v.SetDefault("fetch.max_page_bytes", defaultMaxPageBytes)
	v.SetDefault("fetch.max_icon_bytes", defaultMaxIconBytes)
	v.SetDefault("output.size", defaultSize)
	v.SetDefault("output.format", defaultFormat)
	v.SetDefault("logging.level", defaultLogLevel)
	v.SetDefault("logging.format", defaultLogFormat)
}
