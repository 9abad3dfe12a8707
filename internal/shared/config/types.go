package config

import (
	"fmt"
	"strings"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
	// BaseURL is the canonical site URL, e.g. "https://timedpost.com".
	// It is added to the origin allow-list when set.
	BaseURL string `mapstructure:"base_url"`
	// AllowedOrigins is a comma-separated list of additional allowed origins.
	AllowedOrigins string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IsRelease reports whether the server runs in production mode. Origin
// checking and logger verbosity are stricter in release mode.
func (s *ServerConfig) IsRelease() bool {
	return s.Mode == "release"
}

// AdditionalOrigins splits the comma-separated allowed_origins value,
// dropping empty entries.
func (s *ServerConfig) AdditionalOrigins() []string {
	if s.AllowedOrigins == "" {
		return nil
	}
	var origins []string
	for _, o := range strings.Split(s.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	// ToAddress receives contact form notifications.
	ToAddress string `mapstructure:"to_address"`
}

// Enabled reports whether SMTP delivery is configured. Without it, contact
// submissions are accepted but only logged.
func (e *EmailConfig) Enabled() bool {
	return e.SMTPHost != ""
}

type OpenAIConfig struct {
	APIKey         string `mapstructure:"api_key"`
	BaseURL        string `mapstructure:"base_url"`
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
