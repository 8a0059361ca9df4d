package config

import "github.com/spf13/viper"

// Default values. Battery moves slowly; the chat-mix dial is a physical
// control the user expects to see react immediately.
const (
	DefaultToolPath       = "headsetcontrol"
	DefaultTimeoutSeconds = 5
	DefaultBatterySeconds = 60
	DefaultChatmixSeconds = 1
)

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("tool.path", DefaultToolPath)
	v.SetDefault("tool.timeout_seconds", DefaultTimeoutSeconds)

	v.SetDefault("poll.battery_seconds", DefaultBatterySeconds)
	v.SetDefault("poll.chatmix_seconds", DefaultChatmixSeconds)

	v.SetDefault("log.path", "")
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Tool: ToolConfig{
			Path:           DefaultToolPath,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Poll: PollConfig{
			BatterySeconds: DefaultBatterySeconds,
			ChatmixSeconds: DefaultChatmixSeconds,
		},
	}
}
