package export

import (
	"fmt"
	"os"
	"path/filepath"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// insertBatchSize is the number of rows written per transaction.
const insertBatchSize = 1000

// WriteSQLite writes the audit report to ledger_audit.db in outDir.
func WriteSQLite(outDir string, records []*Record) error {
	path := filepath.Join(outDir, "ledger_audit.db")
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing file: %w", err)
	}

	conn, err := sqlite.OpenConn(path, sqlite.OpenCreate|sqlite.OpenReadWrite)
	if err != nil {
		return fmt.Errorf("failed to open SQLite database: %w", err)
	}
	defer conn.Close()

	err = sqlitex.Execute(conn, `
		CREATE TABLE ledger_audit (
			pseudonym TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			ledger_sum INTEGER NOT NULL,
			event_count INTEGER NOT NULL,
			consistent INTEGER NOT NULL
		)
	`, nil)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	for i := 0; i < len(records); i += insertBatchSize {
		end := min(i+insertBatchSize, len(records))

		if err := sqlitex.Execute(conn, "BEGIN TRANSACTION", nil); err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}

		for _, record := range records[i:end] {
			consistent := 0
			if record.Consistent {
				consistent = 1
			}

			err = sqlitex.Execute(conn,
				"INSERT INTO ledger_audit (pseudonym, score, ledger_sum, event_count, consistent) VALUES (?, ?, ?, ?, ?)",
				&sqlitex.ExecOptions{
					Args: []any{record.Pseudonym, record.Score, record.LedgerSum, record.EventCount, consistent},
				})
			if err != nil {
				return fmt.Errorf("failed to insert record: %w", err)
			}
		}

		if err := sqlitex.Execute(conn, "COMMIT", nil); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
	}

	return nil
}
