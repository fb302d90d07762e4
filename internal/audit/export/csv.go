package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// WriteCSV writes the audit report to ledger_audit.csv in outDir.
func WriteCSV(outDir string, records []*Record) error {
	path := filepath.Join(outDir, "ledger_audit.csv")
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing file: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"pseudonym", "score", "ledger_sum", "event_count", "consistent"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, record := range records {
		if err := writer.Write([]string{
			record.Pseudonym,
			strconv.FormatInt(record.Score, 10),
			strconv.FormatInt(record.LedgerSum, 10),
			strconv.Itoa(record.EventCount),
			strconv.FormatBool(record.Consistent),
		}); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	return nil
}
