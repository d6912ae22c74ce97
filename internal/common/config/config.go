// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Complaint ComplaintConfig `mapstructure:"complaint"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ServerConfig holds the HTTP surface settings. Timeouts are milliseconds.
type ServerConfig struct {
	Address         string `mapstructure:"address"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
	SessionTTL      int    `mapstructure:"session_ttl"`
	SessionCookie   string `mapstructure:"session_cookie"`
}

// ComplaintConfig holds pipeline settings.
type ComplaintConfig struct {
	IDPrefix            string `mapstructure:"id_prefix"`
	Timezone            string `mapstructure:"timezone"`
	IDMaxAttempts       int    `mapstructure:"id_max_attempts"`
	StrictDocumentCheck bool   `mapstructure:"strict_document_check"`
	ConfirmationMinutes int    `mapstructure:"confirmation_minutes"`
}

// RedisConfig configures the optional complaint ID registry backend.
type RedisConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Address   string `mapstructure:"address"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// MetricsConfig toggles the /metrics endpoint.
type MetricsConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
}

// Summary is a loggable view of the config without secrets.
func (c *Config) Summary() map[string]interface{} {
	return map[string]interface{}{
		"app":           fmt.Sprintf("%s@%s", c.App.Name, c.App.Version),
		"environment":   c.App.Environment,
		"address":       c.Server.Address,
		"timezone":      c.Complaint.Timezone,
		"strictDocs":    c.Complaint.StrictDocumentCheck,
		"redisRegistry": c.Redis.Enabled,
		"metrics":       c.Metrics.Enabled,
	}
}
