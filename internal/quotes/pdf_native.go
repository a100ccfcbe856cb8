package quotes

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// NativePDFExtractor reads the embedded text layer without an external
// converter. Scanned, image-only PDFs produce no text.
type NativePDFExtractor struct{}

func NewNativePDFExtractor() *NativePDFExtractor {
	return &NativePDFExtractor{}
}

func (e *NativePDFExtractor) Extract(ctx context.Context, path string, read func(r io.Reader) error) error {
	f, r, err := pdf.Open(path)
	if err != nil {
		return &ParseError{Path: path, Reason: "failed to open pdf", Err: err}
	}
	defer func() { _ = f.Close() }()

	fonts := make(map[string]*pdf.Font)
	var sb strings.Builder

	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := p.Font(name)
				fonts[name] = &font
			}
		}

		text, err := p.GetPlainText(fonts)
		if err != nil {
			return &ParseError{Path: path, Reason: fmt.Sprintf("failed to read page %d", i), Err: err}
		}

		// Mirror pdftotext's page separator
		if sb.Len() > 0 {
			sb.WriteString(formFeed + "\n")
		}
		sb.WriteString(text)
		sb.WriteByte('\n')
	}

	return read(strings.NewReader(sb.String()))
}

// Compile-time interface check
var _ TextExtractor = (*NativePDFExtractor)(nil)
