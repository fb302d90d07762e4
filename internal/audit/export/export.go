// Package export writes pseudonymized audit reports to portable formats.
package export

import (
	"context"
	"errors"
	"fmt"

	"github.com/studyhive/community-core/internal/audit"
	"github.com/studyhive/community-core/internal/database"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format represents a supported export format.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatSQLite Format = "sqlite"
)

// Record is one pseudonymized row of an audit export.
type Record struct {
	Pseudonym  string
	Score      int64
	LedgerSum  int64
	EventCount int
	Consistent bool
}

// Config holds export parameters.
type Config struct {
	Salt       string
	Iterations uint32
	MemoryMB   uint32
}

// Exporter gathers per-actor ledger summaries and writes them out.
type Exporter struct {
	db      database.Client
	outDir  string
	config  *Config
	formats []Format
}

// New creates an exporter writing all supported formats to outDir.
func New(db database.Client, outDir string, config *Config) *Exporter {
	if config.Iterations == 0 {
		config.Iterations = audit.DefaultIterations
	}
	if config.MemoryMB == 0 {
		config.MemoryMB = audit.DefaultMemoryMB
	}

	return &Exporter{
		db:      db,
		outDir:  outDir,
		config:  config,
		formats: []Format{FormatCSV, FormatSQLite},
	}
}

// ExportAll replays every ledger and writes the report in every format.
func (e *Exporter) ExportAll(ctx context.Context) error {
	records, err := e.collect(ctx)
	if err != nil {
		return err
	}

	for _, format := range e.formats {
		if err := e.export(format, records); err != nil {
			return fmt.Errorf("failed to export %s format: %w", format, err)
		}
	}

	return nil
}

// collect builds one record per actor with a pseudonymized identifier.
func (e *Exporter) collect(ctx context.Context) ([]*Record, error) {
	ids, err := e.db.Model().Actor().IDs(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]*Record, 0, len(ids))
	for _, id := range ids {
		events, err := e.db.Model().Reputation().EventsAsc(ctx, id)
		if err != nil {
			return nil, err
		}

		score, err := e.db.Model().Actor().Score(ctx, id)
		if err != nil {
			return nil, err
		}

		sum, negativeAt := audit.Replay(events)

		records = append(records, &Record{
			Pseudonym:  audit.PseudonymizeID(id, e.config.Salt, e.config.Iterations, e.config.MemoryMB),
			Score:      score,
			LedgerSum:  sum,
			EventCount: len(events),
			Consistent: sum == score && negativeAt == -1,
		})
	}

	return records, nil
}

func (e *Exporter) export(format Format, records []*Record) error {
	switch format {
	case FormatCSV:
		return WriteCSV(e.outDir, records)
	case FormatSQLite:
		return WriteSQLite(e.outDir, records)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
