package importer

import (
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"
)

// importXLSX feeds the first sheet of an Excel export through the same row
// pipeline as CSV. The first row is the header row; there is no delimiter to
// detect.
func (imp *Importer) importXLSX(path string) (int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return 0, fmt.Errorf("file not found: %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("closing %s: %v", path, err)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return 0, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return 0, fmt.Errorf("reading sheet %q of %s: %w", sheets[0], path, err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	header := rows[0]
	count := 0
	for _, record := range rows[1:] {
		if err := imp.processRow(keyedRow(header, record), count); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}
