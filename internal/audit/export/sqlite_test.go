package export_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	auditexport "github.com/studyhive/community-core/internal/audit/export"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

func TestWriteSQLite(t *testing.T) {
	t.Parallel()

	outDir := t.TempDir()
	records := []*auditexport.Record{
		{Pseudonym: "aaaa", Score: 120, LedgerSum: 120, EventCount: 14, Consistent: true},
		{Pseudonym: "bbbb", Score: 50, LedgerSum: 48, EventCount: 6, Consistent: false},
	}

	require.NoError(t, auditexport.WriteSQLite(outDir, records))

	conn, err := sqlite.OpenConn(filepath.Join(outDir, "ledger_audit.db"), sqlite.OpenReadOnly)
	require.NoError(t, err)
	defer conn.Close()

	type row struct {
		pseudonym  string
		score      int64
		ledgerSum  int64
		eventCount int64
		consistent int64
	}

	var rows []row
	err = sqlitex.Execute(conn,
		"SELECT pseudonym, score, ledger_sum, event_count, consistent FROM ledger_audit ORDER BY pseudonym",
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				rows = append(rows, row{
					pseudonym:  stmt.ColumnText(0),
					score:      stmt.ColumnInt64(1),
					ledgerSum:  stmt.ColumnInt64(2),
					eventCount: stmt.ColumnInt64(3),
					consistent: stmt.ColumnInt64(4),
				})
				return nil
			},
		})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, row{pseudonym: "aaaa", score: 120, ledgerSum: 120, eventCount: 14, consistent: 1}, rows[0])
	assert.Equal(t, row{pseudonym: "bbbb", score: 50, ledgerSum: 48, eventCount: 6, consistent: 0}, rows[1])
}
