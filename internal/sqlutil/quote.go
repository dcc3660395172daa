// Package sqlutil provides SQL utility functions for loopscan.
package sqlutil

import (
	"regexp"
	"strings"
)

// QuoteIdentifier quotes a MySQL identifier (table name, column name) with backticks.
// It escapes any existing backticks by doubling them.
// Example: "claim_routes" -> "`claim_routes`"
func QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// validIdentifierRegex matches valid MySQL identifier characters.
// MySQL allows more, but configured table and column names are
// restricted to alphanumeric and underscore as a safety measure.
var validIdentifierRegex = regexp.MustCompile("^[a-zA-Z0-9_]+$")

// IsValidIdentifier checks if a name is a valid MySQL identifier.
// Configured identifiers are validated up front so query building can
// quote them without further checks.
func IsValidIdentifier(name string) bool {
	return validIdentifierRegex.MatchString(name)
}
