package importer

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// delimiterSampleSize is how much of the file head is inspected to pick the
// delimiter.
const delimiterSampleSize = 4096

// Importer drives one batch run over a delimited export file: detect the
// format, resolve each row's headers, upsert the master entities in
// dependency order and append one order item per row. Single-writer,
// synchronous, no transactions - re-running is the recovery path.
type Importer struct {
	repos *Repositories
}

func New(repos *Repositories) *Importer {
	return &Importer{repos: repos}
}

// ImportFile imports one file and returns the number of rows processed.
// A file that cannot be opened is the only fatal condition; malformed rows
// degrade to zeroed or empty fields and still count.
func (imp *Importer) ImportFile(path string) (int, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return imp.importXLSX(path)
	}
	return imp.importCSV(path)
}

func (imp *Importer) importCSV(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("file not found: %s: %w", path, err)
	}
	defer f.Close()

	delimiter, err := detectDelimiter(f)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}

	br := bufio.NewReader(f)
	stripBOM(br)

	reader := csv.NewReader(br)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1 // hand-edited exports have ragged rows
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, fmt.Errorf("reading header of %s: %w", path, err)
	}

	count := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// a broken line is row-local, skip and keep going
			log.Printf("skipping malformed line in %s: %v", path, err)
			continue
		}
		if err := imp.processRow(keyedRow(header, record), count); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}

// detectDelimiter counts tab vs comma occurrences in the leading sample and
// picks the majority, then rewinds the file. Comma wins ties - it is the
// more common export format.
func detectDelimiter(f *os.File) (rune, error) {
	sample := make([]byte, delimiterSampleSize)
	n, err := f.Read(sample)
	if err != nil && err != io.EOF {
		return 0, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}

	head := string(sample[:n])
	if strings.Count(head, "\t") > strings.Count(head, ",") {
		return '\t', nil
	}
	return ',', nil
}

// stripBOM discards a UTF-8 byte-order mark if the file starts with one.
func stripBOM(br *bufio.Reader) {
	if lead, err := br.Peek(3); err == nil && lead[0] == 0xEF && lead[1] == 0xBB && lead[2] == 0xBF {
		br.Discard(3)
	}
}

// keyedRow zips the header row with a data record. Missing trailing cells
// resolve to ""; extra cells beyond the header are ignored.
func keyedRow(header, record []string) map[string]string {
	row := make(map[string]string, len(header))
	for i, h := range header {
		if i < len(record) {
			row[h] = record[i]
		} else {
			row[h] = ""
		}
	}
	return row
}

// processRow runs one row through the full pipeline. Upserts follow the
// dependency order segment → customer → category → product, then the order
// is resolved and the line item appended. Field-level problems have already
// degraded to empty strings or zeroes by the time we get here.
func (imp *Importer) processRow(row map[string]string, ordinal int) error {
	lookup := NewRowLookup(row)

	createdAt := ParseFlexibleDateTime(lookup.Field(FieldOrderCreatedAt))

	segment, err := imp.upsertSegment(lookup.Field(FieldSegmentCode), lookup.Field(FieldSegmentDesc))
	if err != nil {
		return err
	}

	customer, err := imp.upsertCustomer(lookup.Field(FieldCustomerCode), lookup.Field(FieldCustomerName), segment)
	if err != nil {
		return err
	}

	category, err := imp.upsertCategory(lookup.Field(FieldCategoryCode), lookup.Field(FieldCategoryName))
	if err != nil {
		return err
	}

	importPrice := ParseLenientInteger(lookup.Field(FieldImportPrice))
	product, err := imp.upsertProduct(lookup.Field(FieldProductCode), lookup.Field(FieldProductName), category, importPrice)
	if err != nil {
		return err
	}

	order, err := imp.resolveOrder(lookup.Field(FieldOrderCode), createdAt, customer, ordinal)
	if err != nil {
		return err
	}

	quantity := int(ParseLenientInteger(lookup.Field(FieldQuantity)))
	unitPrice := ParseLenientInteger(lookup.Field(FieldUnitPrice))
	totalPrice := ParseLenientInteger(lookup.Field(FieldTotalPrice))

	return imp.appendItem(order, product, quantity, unitPrice, totalPrice)
}
