package quotes

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/mrlokans/memegen/internal/entities"
)

const (
	// DefaultPDFToTextBinary is the converter invoked when none is configured.
	DefaultPDFToTextBinary = "pdftotext"

	formFeed = "\f"
)

// TextExtractor turns a PDF into plain text. The reader handed to read is
// only valid for the duration of the call.
type TextExtractor interface {
	Extract(ctx context.Context, path string, read func(r io.Reader) error) error
}

// PDFIngestor reads one "body - author" quote per extracted text line.
// Form-feed page separator lines are dropped; a form feed glued to the first
// line of a page is removed by Normalize along with other control characters.
type PDFIngestor struct {
	Extension
	extractor TextExtractor
}

// NewPDFIngestor creates a PDF ingestor. A nil extractor uses pdftotext.
func NewPDFIngestor(extractor TextExtractor) *PDFIngestor {
	if extractor == nil {
		extractor = NewPDFToTextExtractor("", "")
	}
	return &PDFIngestor{Extension: ExtensionPDF, extractor: extractor}
}

func (i *PDFIngestor) Parse(ctx context.Context, path string) ([]entities.Quote, error) {
	if err := checkSource(path); err != nil {
		return nil, err
	}

	var result []entities.Quote
	err := i.extractor.Extract(ctx, path, func(r io.Reader) error {
		var err error
		result, err = NormalizeLines(r, isFormFeedLine)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// isFormFeedLine matches the page separator lines emitted by pdftotext.
func isFormFeedLine(line string) bool {
	return strings.TrimSpace(line) == "" && strings.Contains(line, formFeed)
}

// PDFToTextExtractor runs the external pdftotext converter in layout mode,
// writing into a uniquely named temporary file that is removed on every path.
type PDFToTextExtractor struct {
	binary  string
	tempDir string
}

// NewPDFToTextExtractor creates an extractor. Empty binary means "pdftotext"
// from PATH; empty tempDir means the system temp directory.
func NewPDFToTextExtractor(binary, tempDir string) *PDFToTextExtractor {
	if binary == "" {
		binary = DefaultPDFToTextBinary
	}
	return &PDFToTextExtractor{binary: binary, tempDir: tempDir}
}

func (e *PDFToTextExtractor) Extract(ctx context.Context, path string, read func(r io.Reader) error) error {
	tmpFile, err := os.CreateTemp(e.tempDir, "memegen-pdf-*.txt")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()
	defer os.Remove(tmpPath)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.binary, "-layout", path, tmpPath)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return &ExternalToolError{
			Tool:   e.binary,
			Path:   path,
			Output: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}

	text, err := os.Open(tmpPath)
	if err != nil {
		return fmt.Errorf("open converted text: %w", err)
	}
	defer text.Close()

	return read(text)
}

// Compile-time interface checks
var (
	_ Ingestor      = (*PDFIngestor)(nil)
	_ TextExtractor = (*PDFToTextExtractor)(nil)
)
