package configs

import "strings"

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Analysis AnalysisConfig `mapstructure:"analysis" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// AnalysisConfig holds the query-log analysis configuration.
//
// Sources is a comma-separated list of query-log database paths.
// StartDate and EndDate are optional date-only bounds ("2006-01-02"); when
// both are empty the window is the last Days days ending now.
// Timezone is an IANA name; an invalid name degrades to UTC at runtime
// rather than failing validation, so it is not validated here.
type AnalysisConfig struct {
	Days          int    `mapstructure:"days" validate:"required,min=1"`
	StartDate     string `mapstructure:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate       string `mapstructure:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Timezone      string `mapstructure:"timezone" validate:"required"`
	Sources       string `mapstructure:"sources" validate:"required"`
	TopClients    int    `mapstructure:"top_clients" validate:"required,min=1"`
	TopDomains    int    `mapstructure:"top_domains" validate:"required,min=1"`
	IgnoreDomains string `mapstructure:"ignore_domains"`
}

// SourcePaths splits the comma-separated Sources value into trimmed paths.
func (c AnalysisConfig) SourcePaths() []string {
	parts := strings.Split(c.Sources, ",")
	paths := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
