package quotes

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/mrlokans/memegen/internal/entities"
)

const (
	csvHeaderAuthor = "author"
	csvHeaderBody   = "body"
)

// CSVIngestor reads quotes from a CSV file whose header names "author" and
// "body" columns. Cells are only trimmed, not normalized.
type CSVIngestor struct {
	Extension
}

func NewCSVIngestor() *CSVIngestor {
	return &CSVIngestor{Extension: ExtensionCSV}
}

func (i *CSVIngestor) Parse(_ context.Context, path string) ([]entities.Quote, error) {
	f, err := openSource(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	result, err := ParseCSV(f)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
		}
		return nil, err
	}
	return result, nil
}

// ParseCSV reads quotes from CSV data. Rows with an empty author or body and
// rows the CSV reader rejects are skipped.
func ParseCSV(r io.Reader) ([]entities.Quote, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, &ParseError{Reason: "failed to read header", Err: err}
	}

	// Build header index map
	headerIndex := make(map[string]int)
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		headerIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}

	for _, h := range []string{csvHeaderAuthor, csvHeaderBody} {
		if _, ok := headerIndex[h]; !ok {
			return nil, &ParseError{Reason: "missing required header: " + h}
		}
	}

	var result []entities.Quote
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				continue
			}
			return nil, &ParseError{Reason: "failed to read row", Err: err}
		}

		body := getCSVValue(record, headerIndex, csvHeaderBody)
		author := getCSVValue(record, headerIndex, csvHeaderAuthor)
		if body == "" || author == "" {
			continue
		}

		result = append(result, entities.Quote{Body: body, Author: author})
	}

	return result, nil
}

func getCSVValue(record []string, headerIndex map[string]int, header string) string {
	if idx, ok := headerIndex[header]; ok && idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}

// Compile-time interface check
var _ Ingestor = (*CSVIngestor)(nil)
