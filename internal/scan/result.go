// Package scan implements the two aggregation strategies that drive
// the longest-cycle search: a batch aggregator that buffers every
// group, and a streaming aggregator for key-sorted input that holds a
// single group at a time. Both converge on the same Result contract.
package scan

import (
	"fmt"
	"time"

	"github.com/claimsight/loopscan/internal/record"
)

// Result is the outcome of a scan: the group owning the longest simple
// cycle, its length, and run statistics for diagnostics.
type Result struct {
	Key    record.Key
	Length int
	Found  bool
	Stats  Stats
}

// Stats carries non-contractual run statistics.
type Stats struct {
	Mode     string
	Records  int64
	Groups   int
	Duration time.Duration
}

// Format renders the contractual output line:
// claim_id,status_code,cycle_length, or the literal "0,0,0" when no
// group contained a cycle.
func (r Result) Format() string {
	if !r.Found {
		return "0,0,0"
	}
	return fmt.Sprintf("%s,%s,%d", r.Key.ClaimID, r.Key.StatusCode, r.Length)
}

// best tracks the running answer. Length is non-decreasing over a
// scan; the key is only replaced when the candidate strictly improves
// the (length desc, key asc) ordering.
type best struct {
	key    record.Key
	length int
	found  bool
}

// fold merges a group's search result into the running best. Zero
// lengths (no cycle) never displace anything, and ties go to the
// lexicographically smaller key.
func (b *best) fold(key record.Key, length int) {
	if length <= 0 {
		return
	}
	if length > b.length || (length == b.length && (!b.found || key.Less(b.key))) {
		b.key = key
		b.length = length
		b.found = true
	}
}
