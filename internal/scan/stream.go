package scan

import (
	"context"
	"time"

	"github.com/claimsight/loopscan/internal/graph"
	"github.com/claimsight/loopscan/internal/record"
)

// stringEdge is a raw edge held while its group is still open, before
// node names are remapped to integers for the search.
type stringEdge struct {
	src string
	dst string
}

// Stream processes records that the caller guarantees are sorted by
// group key. Only the currently open group is held in memory; a group
// is closed and searched the moment a different key arrives, with a
// mandatory final close when input ends.
//
// Sort order is not verified. Unsorted input silently splits groups
// and produces wrong results; that is the documented caller contract.
type Stream struct {
	opts Options
}

// NewStream creates a streaming aggregator.
func NewStream(opts Options) *Stream {
	return &Stream{opts: opts.withDefaults()}
}

// Run consumes records from src one group at a time and returns the
// best result.
func (s *Stream) Run(ctx context.Context, src Source) (Result, error) {
	started := time.Now()

	var (
		bst        best
		currentKey record.Key
		open       bool
		records    int64
		groups     int
	)
	edges := make(map[stringEdge]struct{})
	// Cleared at every group close; without this the table would grow
	// with every distinct node name in the whole input.
	nodeIDs := make(map[string]int)

	closeGroup := func() {
		if !open || len(edges) == 0 {
			return
		}
		// Same lower-bound prune as batch mode: hop count never
		// exceeds edge count.
		if len(edges) < bst.length {
			return
		}

		clear(nodeIDs)
		g := graph.New()
		for e := range edges {
			g.AddEdge(internLocal(nodeIDs, e.src), internLocal(nodeIDs, e.dst))
		}
		bst.fold(currentKey, g.LongestCycle())
	}

	err := src.Each(ctx, func(rec record.Record) error {
		records++

		if !open || rec.Key != currentKey {
			closeGroup()
			currentKey = rec.Key
			open = true
			clear(edges)

			groups++
			if groups%s.opts.ProgressInterval == 0 {
				s.opts.Notify(groups, -1)
			}
		}

		edges[stringEdge{src: rec.Source, dst: rec.Dest}] = struct{}{}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	// The still-open group closes here; skipping this drops the last
	// group of the input entirely.
	closeGroup()

	result := Result{
		Key:    bst.key,
		Length: bst.length,
		Found:  bst.found,
		Stats: Stats{
			Mode:     "streaming",
			Records:  records,
			Groups:   groups,
			Duration: time.Since(started),
		},
	}
	s.opts.Log.Debugw("streaming scan complete",
		"groups", groups,
		"records", records,
		"cycle_length", result.Length,
	)
	return result, nil
}

func internLocal(table map[string]int, name string) int {
	if id, exists := table[name]; exists {
		return id
	}
	id := len(table)
	table[name] = id
	return id
}
