package config

import (
	"fmt"
	"strings"

	"github.com/claimsight/loopscan/internal/sqlutil"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for valid values. It covers the
// fields every command uses; database coordinates are only checked by
// ValidateSource when the `db` command actually needs them.
func (c *Config) Validate() error {
	var errs ValidationErrors

	switch c.Logging.Level {
	case "debug", "info", "warn", "error", "":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid level %q (must be debug, info, warn, or error)", c.Logging.Level),
		})
	}

	switch c.Logging.Format {
	case "text", "json", "":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid format %q (must be text or json)", c.Logging.Format),
		})
	}

	if c.Scan.ProgressInterval <= 0 {
		errs = append(errs, ValidationError{
			Field:   "scan.progress_interval",
			Message: "must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateSource checks the database connection and query settings
// required by the `db` command.
func (c *Config) ValidateSource() error {
	var errs ValidationErrors

	if c.Source.Host == "" {
		errs = append(errs, ValidationError{Field: "source.host", Message: "host is required"})
	}
	if c.Source.Port <= 0 || c.Source.Port > 65535 {
		errs = append(errs, ValidationError{
			Field:   "source.port",
			Message: fmt.Sprintf("invalid port %d", c.Source.Port),
		})
	}
	if c.Source.User == "" {
		errs = append(errs, ValidationError{Field: "source.user", Message: "user is required"})
	}
	if c.Source.Database == "" {
		errs = append(errs, ValidationError{Field: "source.database", Message: "database is required"})
	}

	switch c.Source.TLS {
	case "disable", "preferred", "required", "":
	default:
		errs = append(errs, ValidationError{
			Field:   "source.tls",
			Message: fmt.Sprintf("invalid tls mode %q (must be disable, preferred, or required)", c.Source.TLS),
		})
	}

	// Identifiers end up inside a SQL statement, so they are validated
	// rather than merely quoted.
	identifiers := map[string]string{
		"query.table":         c.Query.Table,
		"query.source_column": c.Query.SourceColumn,
		"query.dest_column":   c.Query.DestColumn,
		"query.claim_column":  c.Query.ClaimColumn,
		"query.status_column": c.Query.StatusColumn,
	}
	for field, name := range identifiers {
		if name == "" {
			errs = append(errs, ValidationError{Field: field, Message: "identifier is required"})
			continue
		}
		if !sqlutil.IsValidIdentifier(name) {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("invalid identifier %q", name),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
