package importer

import (
	"context"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5"
	"github.com/wkalungi/sponsorbase/internal/app/models"
	"github.com/wkalungi/sponsorbase/internal/db"
	"github.com/wkalungi/sponsorbase/internal/pkg/logger"
	"github.com/wkalungi/sponsorbase/internal/pkg/spreadsheet"
)

// childStore is the slice of ChildRepository the importer needs.
type childStore interface {
	CreateChildTx(ctx context.Context, tx pgx.Tx, child *models.Child) (int64, error)
}

// txRunner runs a unit of work inside one database transaction.
type txRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// RowFault describes a row the mapper refused.
type RowFault struct {
	Row    int // 0-indexed data row, header excluded
	Reason string
}

// Result summarizes a completed import.
type Result struct {
	Imported int
	Skipped  int
	Invalid  []RowFault
}

// Importer runs the bulk child import: parse the workbook, map each row,
// persist every draft inside a single transaction. A persistence failure
// on any row aborts and rolls back the whole file; invalid rows are only
// reported, they do not abort.
type Importer struct {
	db       txRunner
	children childStore
}

// New creates an Importer backed by the given transaction runner and store.
func New(db txRunner, children childStore) *Importer {
	return &Importer{
		db:       db,
		children: children,
	}
}

// ImportChildren imports every mappable row of the workbook read from r.
//
// Re-importing the same file inserts every row again; the importer does
// not de-duplicate against existing children.
func (i *Importer) ImportChildren(ctx context.Context, r io.Reader) (*Result, error) {
	rows, err := spreadsheet.ReadRows(r)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	err = i.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for n, cells := range rows {
			mapped := MapRow(cells)
			switch mapped.Outcome {
			case OutcomeSkipped:
				result.Skipped++
			case OutcomeInvalid:
				result.Invalid = append(result.Invalid, RowFault{Row: n, Reason: mapped.Reason})
			case OutcomeMapped:
				if _, err := i.children.CreateChildTx(ctx, tx, mapped.Draft); err != nil {
					// Returning the error rolls back every row of
					// this file, including the ones already written.
					return fmt.Errorf("row %d: %w", n, err)
				}
				result.Imported++
			}
		}
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("Child import aborted, file rolled back")
		return nil, fmt.Errorf("import failed: %w", err)
	}

	logger.Info().
		Int("imported", result.Imported).
		Int("skipped", result.Skipped).
		Int("invalid", len(result.Invalid)).
		Msg("Child import completed")
	return result, nil
}
