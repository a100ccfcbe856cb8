package services

import (
	"context"
	"io"

	"github.com/mrlokans/memegen/internal/entities"
)

// MemeMaker renders a captioned image and returns the saved path.
// Use this interface when you only need to produce memes.
type MemeMaker interface {
	MakeMeme(ctx context.Context, src io.Reader, body, author string, maxWidth int) (string, error)
	MakeMemeFromFile(ctx context.Context, imagePath, body, author string, maxWidth int) (string, error)
}

// QuoteLibrary supplies random quotes and images when the caller gives none.
type QuoteLibrary interface {
	RandomQuote() (entities.Quote, error)
	RandomImage() (string, error)
}

// MemeResult is the outcome of a generation request.
type MemeResult struct {
	Path  string
	Quote entities.Quote
}
