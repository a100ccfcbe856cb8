package quotes

import (
	"context"
	"fmt"
	"slices"

	"github.com/mrlokans/memegen/internal/entities"
)

// Dispatcher selects an ingestor by file extension and delegates to it.
// The ingestor list is fixed at construction and scanned in order; the first
// match wins. Only the path is consulted, never the file contents.
type Dispatcher struct {
	ingestors []Ingestor
}

// NewDispatcher creates a dispatcher over the given ingestors, in priority order.
func NewDispatcher(ingestors ...Ingestor) *Dispatcher {
	return &Dispatcher{ingestors: slices.Clone(ingestors)}
}

// DefaultIngestors returns the standard ingestors in dispatch order: CSV, text, PDF, DOCX.
// A nil extractor falls back to the pdftotext converter.
func DefaultIngestors(extractor TextExtractor) []Ingestor {
	return []Ingestor{
		NewCSVIngestor(),
		NewTxtIngestor(),
		NewPDFIngestor(extractor),
		NewDocxIngestor(),
	}
}

// NewDefaultDispatcher creates a dispatcher with the default ingestors.
func NewDefaultDispatcher() *Dispatcher {
	return NewDispatcher(DefaultIngestors(nil)...)
}

// CanIngest reports whether any ingestor handles the path.
func (d *Dispatcher) CanIngest(path string) bool {
	return d.find(path) != nil
}

// Parse ingests quotes from path with the first matching ingestor.
// Returns a *NoIngestorError if no ingestor matches.
func (d *Dispatcher) Parse(ctx context.Context, path string) ([]entities.Quote, error) {
	ingestor := d.find(path)
	if ingestor == nil {
		return nil, &NoIngestorError{Path: path}
	}
	return ingestor.Parse(ctx, path)
}

// ParseAll ingests every path in order and concatenates the results.
// The first failing file aborts the whole call.
func (d *Dispatcher) ParseAll(ctx context.Context, paths ...string) ([]entities.Quote, error) {
	var all []entities.Quote
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		items, err := d.Parse(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("ingest %s: %w", path, err)
		}
		all = append(all, items...)
	}
	return all, nil
}

// Extensions lists the extensions of ingestors that expose one, in dispatch order.
func (d *Dispatcher) Extensions() []string {
	var exts []string
	for _, ingestor := range d.ingestors {
		if e, ok := ingestor.(interface{ String() string }); ok {
			exts = append(exts, e.String())
		}
	}
	return exts
}

func (d *Dispatcher) find(path string) Ingestor {
	for _, ingestor := range d.ingestors {
		if ingestor.CanIngest(path) {
			return ingestor
		}
	}
	return nil
}
