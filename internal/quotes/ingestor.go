package quotes

import (
	"context"
	"os"
	"strings"

	"github.com/mrlokans/memegen/internal/entities"
)

// Ingestor extracts quotes from one document format.
//
// Implementations:
//   - CSVIngestor (csv.go) - header row with author/body columns
//   - TxtIngestor (txt.go) - one "body - author" line per quote
//   - PDFIngestor (pdf.go) - text extracted by a TextExtractor
//   - DocxIngestor (docx.go) - one quote per paragraph
type Ingestor interface {
	// CanIngest reports whether the path carries this ingestor's extension.
	CanIngest(path string) bool

	// Parse reads every quote from the file at path.
	Parse(ctx context.Context, path string) ([]entities.Quote, error)
}

// Extension is a file suffix such as ".txt". Ingestors embed it to get
// suffix matching for free.
type Extension string

// CanIngest matches the suffix exactly, so "QUOTES.TXT" is not a text source.
func (e Extension) CanIngest(path string) bool {
	return strings.HasSuffix(path, string(e))
}

// String returns the suffix.
func (e Extension) String() string {
	return string(e)
}

const (
	ExtensionCSV  Extension = ".csv"
	ExtensionTxt  Extension = ".txt"
	ExtensionPDF  Extension = ".pdf"
	ExtensionDocx Extension = ".docx"
)

// openSource opens a source file, reporting any failure as SourceNotFound.
func openSource(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceNotFoundError{Path: path, Err: err}
	}
	return f, nil
}

// checkSource verifies that path names a regular, readable file.
func checkSource(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &SourceNotFoundError{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return &SourceNotFoundError{Path: path}
	}
	return nil
}
