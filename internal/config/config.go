// Package config provides configuration structures and loading for loopscan.
package config

// Config represents the complete application configuration.
// Every field has a built-in default; a config file is only needed for
// the `db` command (database coordinates) or to change diagnostics.
type Config struct {
	Source  DatabaseConfig `yaml:"source" mapstructure:"source"`
	Query   QueryConfig    `yaml:"query" mapstructure:"query"`
	Scan    ScanConfig     `yaml:"scan" mapstructure:"scan"`
	Logging LoggingConfig  `yaml:"logging" mapstructure:"logging"`
}

// DatabaseConfig represents the MySQL connection used by the `db` command.
type DatabaseConfig struct {
	Host               string `yaml:"host" mapstructure:"host"`
	Port               int    `yaml:"port" mapstructure:"port"`
	User               string `yaml:"user" mapstructure:"user"`
	Password           string `yaml:"password" mapstructure:"password"`
	Database           string `yaml:"database" mapstructure:"database"`
	TLS                string `yaml:"tls" mapstructure:"tls"` // disable, preferred, required
	MaxConnections     int    `yaml:"max_connections" mapstructure:"max_connections"`
	MaxIdleConnections int    `yaml:"max_idle_connections" mapstructure:"max_idle_connections"`
}

// QueryConfig names the table and columns edge records are read from
// in `db` mode. Column values are read in record order:
// source, destination, claim id, status code.
type QueryConfig struct {
	Table        string `yaml:"table" mapstructure:"table"`
	SourceColumn string `yaml:"source_column" mapstructure:"source_column"`
	DestColumn   string `yaml:"dest_column" mapstructure:"dest_column"`
	ClaimColumn  string `yaml:"claim_column" mapstructure:"claim_column"`
	StatusColumn string `yaml:"status_column" mapstructure:"status_column"`
	Where        string `yaml:"where" mapstructure:"where"` // optional row filter
}

// ScanConfig represents scan tuning settings.
type ScanConfig struct {
	// ProgressInterval is the number of groups between progress
	// notices on the diagnostic stream.
	ProgressInterval int `yaml:"progress_interval" mapstructure:"progress_interval"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stderr, stdout, or file path
}

// DefaultConfig returns a Config with sensible default values.
// Standard output carries only the result line, so logging defaults
// to stderr.
func DefaultConfig() *Config {
	return &Config{
		Source: DatabaseConfig{
			Port:               3306,
			TLS:                "preferred",
			MaxConnections:     10,
			MaxIdleConnections: 5,
		},
		Query: QueryConfig{
			Table:        "claim_routes",
			SourceColumn: "source_system",
			DestColumn:   "dest_system",
			ClaimColumn:  "claim_id",
			StatusColumn: "status_code",
		},
		Scan: ScanConfig{
			ProgressInterval: 100000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied.
func (c *Config) ApplyOverrides(logLevel, logFormat string, progressInterval int) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if progressInterval > 0 {
		c.Scan.ProgressInterval = progressInterval
	}
}
