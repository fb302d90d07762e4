package export_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	auditexport "github.com/studyhive/community-core/internal/audit/export"
)

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	outDir := t.TempDir()
	records := []*auditexport.Record{
		{Pseudonym: "aaaa", Score: 120, LedgerSum: 120, EventCount: 14, Consistent: true},
		{Pseudonym: "bbbb", Score: 50, LedgerSum: 48, EventCount: 6, Consistent: false},
	}

	require.NoError(t, auditexport.WriteCSV(outDir, records))

	file, err := os.Open(filepath.Join(outDir, "ledger_audit.csv"))
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"pseudonym", "score", "ledger_sum", "event_count", "consistent"}, rows[0])
	assert.Equal(t, []string{"aaaa", "120", "120", "14", "true"}, rows[1])
	assert.Equal(t, []string{"bbbb", "50", "48", "6", "false"}, rows[2])
}

func TestWriteCSV_OverwritesExisting(t *testing.T) {
	t.Parallel()

	outDir := t.TempDir()
	path := filepath.Join(outDir, "ledger_audit.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o600))

	require.NoError(t, auditexport.WriteCSV(outDir, nil))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1, "only the header remains")
}
