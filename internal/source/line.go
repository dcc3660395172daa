// Package source provides the record sources a scan can consume:
// delimited text from a file or standard input, and rows from a MySQL
// table.
package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/claimsight/loopscan/internal/record"
)

// StdinPath selects standard input instead of a file.
const StdinPath = "-"

// LineSource reads pipe-delimited edge records from a file, or from
// standard input when Path is "-". Empty and malformed lines are
// dropped without aborting the scan; malformed lines are counted for
// diagnostics.
type LineSource struct {
	Path string

	// Malformed is the number of non-empty lines dropped for a wrong
	// field count. Populated during Each.
	Malformed int64
}

// Each streams records to fn in file order. The input file is closed
// on every exit path, including read errors and early termination by
// fn. Standard input is never closed.
func (s *LineSource) Each(ctx context.Context, fn func(record.Record) error) error {
	var reader io.Reader
	if s.Path == StdinPath {
		reader = os.Stdin
	} else {
		file, err := os.Open(s.Path)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer file.Close()
		reader = file
	}

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Text()
		rec, ok := record.Parse(line)
		if !ok {
			if line != "" {
				s.Malformed++
			}
			continue
		}
		if err := fn(rec); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
