// Package record defines the edge record format and its line parser.
package record

import "strings"

// Delimiter separates the four record fields. There is no escaping
// mechanism; a field containing the delimiter is not representable.
const Delimiter = "|"

// fieldCount is the exact number of fields a valid record carries.
const fieldCount = 4

// Key identifies the group an edge record belongs to. It is opaque to
// the cycle search and only used for grouping and tie-breaking.
type Key struct {
	ClaimID    string
	StatusCode string
}

// Less reports whether k orders before other lexicographically,
// comparing ClaimID first and StatusCode second.
func (k Key) Less(other Key) bool {
	if k.ClaimID != other.ClaimID {
		return k.ClaimID < other.ClaimID
	}
	return k.StatusCode < other.StatusCode
}

// Record is one observed routing hop: a directed edge from Source to
// Dest, tagged with the group key it belongs to.
type Record struct {
	Source string
	Dest   string
	Key    Key
}

// Parse splits one input line into a Record.
// It returns false for empty lines and for lines whose field count is
// not exactly four; such lines are dropped by callers, never fatal.
func Parse(line string) (Record, bool) {
	if line == "" {
		return Record{}, false
	}
	parts := strings.Split(line, Delimiter)
	if len(parts) != fieldCount {
		return Record{}, false
	}
	return Record{
		Source: parts[0],
		Dest:   parts[1],
		Key: Key{
			ClaimID:    parts[2],
			StatusCode: parts[3],
		},
	}, true
}
