// Package tsv reads and writes the quoted tab-separated format used for ledger
// import and export: one row per line, every field wrapped in double quotes,
// embedded quotes doubled.
package tsv

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Read parses all rows. Unquoted fields are accepted too.
func Read(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read tab-separated data: %w", err)
	}
	return rows, nil
}

// Write writes rows with every field quoted.
func Write(w io.Writer, rows [][]string) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		for i, field := range row {
			if i > 0 {
				bw.WriteByte('\t')
			}
			bw.WriteByte('"')
			bw.WriteString(strings.ReplaceAll(field, `"`, `""`))
			bw.WriteByte('"')
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write tab-separated data: %w", err)
	}
	return nil
}
