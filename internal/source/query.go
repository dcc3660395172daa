package source

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/claimsight/loopscan/internal/config"
	"github.com/claimsight/loopscan/internal/record"
	"github.com/claimsight/loopscan/internal/sqlutil"
	"github.com/claimsight/loopscan/internal/types"
)

// QuerySource reads edge records from a MySQL table. Column and table
// names come from configuration and must be validated before use (see
// config.ValidateSource); they are backtick-quoted when the query is
// built.
type QuerySource struct {
	DB    *sql.DB
	Query config.QueryConfig

	// Sorted adds ORDER BY on the key columns, which satisfies the
	// streaming aggregator's sortedness precondition by construction.
	Sorted bool
}

// BuildQuery returns the SELECT statement the source will run.
func (s *QuerySource) BuildQuery() string {
	columns := []string{
		sqlutil.QuoteIdentifier(s.Query.SourceColumn),
		sqlutil.QuoteIdentifier(s.Query.DestColumn),
		sqlutil.QuoteIdentifier(s.Query.ClaimColumn),
		sqlutil.QuoteIdentifier(s.Query.StatusColumn),
	}

	query := fmt.Sprintf("SELECT %s FROM %s",
		strings.Join(columns, ", "),
		sqlutil.QuoteIdentifier(s.Query.Table),
	)

	if s.Query.Where != "" {
		query += " WHERE (" + s.Query.Where + ")"
	}

	if s.Sorted {
		query += fmt.Sprintf(" ORDER BY %s ASC, %s ASC",
			sqlutil.QuoteIdentifier(s.Query.ClaimColumn),
			sqlutil.QuoteIdentifier(s.Query.StatusColumn),
		)
	}

	return query
}

// Each streams records to fn in row order.
func (s *QuerySource) Each(ctx context.Context, fn func(record.Record) error) error {
	rows, err := s.DB.QueryContext(ctx, s.BuildQuery())
	if err != nil {
		return fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var src, dst, claim, status interface{}
		if err := rows.Scan(&src, &dst, &claim, &status); err != nil {
			return fmt.Errorf("failed to scan record row: %w", err)
		}

		rec := record.Record{
			Source: types.ToString(src),
			Dest:   types.ToString(dst),
			Key: record.Key{
				ClaimID:    types.ToString(claim),
				StatusCode: types.ToString(status),
			},
		}
		if err := fn(rec); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read record rows: %w", err)
	}
	return nil
}
