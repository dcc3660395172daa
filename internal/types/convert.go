// Package types contains shared conversion helpers used across packages.
package types

import (
	"fmt"
	"strconv"
)

// ToString converts a value scanned from database/sql into its string
// form. MySQL text columns arrive as []byte, numeric key columns as
// int64; both must normalize to the same opaque strings a file source
// would produce.
func ToString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case int:
		return strconv.Itoa(s)
	case uint64:
		return strconv.FormatUint(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", s)
	}
}
