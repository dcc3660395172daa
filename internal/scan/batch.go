package scan

import (
	"context"
	"time"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/claimsight/loopscan/internal/graph"
	"github.com/claimsight/loopscan/internal/record"
)

// Source streams parsed edge records to fn in input order. Iteration
// stops early when fn returns an error, and that error is propagated.
type Source interface {
	Each(ctx context.Context, fn func(record.Record) error) error
}

// Batch buffers every group's edge set before searching any of them.
// Memory grows with the whole input; use Stream for key-sorted input
// when that matters.
type Batch struct {
	opts Options

	// nodeIDs interns node names across all groups. The ids are only
	// ever compared within a single group's search; sharing the table
	// just avoids re-hashing the same system names per group.
	nodeIDs map[string]int
	groups  *orderedmap.OrderedMap[record.Key, *graph.Graph]
	records int64
}

// NewBatch creates a batch aggregator.
func NewBatch(opts Options) *Batch {
	return &Batch{
		opts:    opts.withDefaults(),
		nodeIDs: make(map[string]int),
		groups:  orderedmap.NewOrderedMap[record.Key, *graph.Graph](),
	}
}

// Run consumes all records from src, then searches every group and
// returns the best result.
func (b *Batch) Run(ctx context.Context, src Source) (Result, error) {
	started := time.Now()

	if err := src.Each(ctx, b.consume); err != nil {
		return Result{}, err
	}

	var bst best
	total := b.groups.Len()
	processed := 0

	for el := b.groups.Front(); el != nil; el = el.Next() {
		processed++
		if processed%b.opts.ProgressInterval == 0 {
			b.opts.Notify(processed, total)
		}

		// A cycle's hop count cannot exceed the group's edge count, so
		// smaller groups can never beat the current best.
		g := el.Value
		if g.EdgeCount() < bst.length {
			continue
		}

		bst.fold(el.Key, g.LongestCycle())
	}

	result := Result{
		Key:    bst.key,
		Length: bst.length,
		Found:  bst.found,
		Stats: Stats{
			Mode:     "batch",
			Records:  b.records,
			Groups:   total,
			Duration: time.Since(started),
		},
	}
	b.opts.Log.Debugw("batch scan complete",
		"groups", total,
		"records", b.records,
		"cycle_length", result.Length,
	)
	return result, nil
}

func (b *Batch) consume(rec record.Record) error {
	b.records++

	g, exists := b.groups.Get(rec.Key)
	if !exists {
		g = graph.New()
		b.groups.Set(rec.Key, g)
	}
	g.AddEdge(b.intern(rec.Source), b.intern(rec.Dest))
	return nil
}

func (b *Batch) intern(name string) int {
	if id, exists := b.nodeIDs[name]; exists {
		return id
	}
	id := len(b.nodeIDs)
	b.nodeIDs[name] = id
	return id
}
