package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mrlokans/memegen/internal/entities"
)

// ErrAuthorRequired is returned when a quote body is supplied without an author.
var ErrAuthorRequired = errors.New("author required if body is used")

// GenerateInput describes a meme request. Empty fields are filled from the library.
type GenerateInput struct {
	ImagePath string
	Body      string
	Author    string
}

// MemeService picks quotes and images and hands them to a MemeMaker.
type MemeService struct {
	maker    MemeMaker
	library  QuoteLibrary
	maxWidth int
}

// NewMemeService creates a MemeService. maxWidth is passed through to the maker.
func NewMemeService(maker MemeMaker, library QuoteLibrary, maxWidth int) *MemeService {
	return &MemeService{
		maker:    maker,
		library:  library,
		maxWidth: maxWidth,
	}
}

// Random captions a random library image with a random library quote.
func (s *MemeService) Random(ctx context.Context) (MemeResult, error) {
	return s.Generate(ctx, GenerateInput{})
}

// Generate creates a meme from input, falling back to the library for
// whatever is missing.
func (s *MemeService) Generate(ctx context.Context, input GenerateInput) (MemeResult, error) {
	quote, err := s.resolveQuote(input.Body, input.Author)
	if err != nil {
		return MemeResult{}, err
	}

	imagePath := input.ImagePath
	if imagePath == "" {
		imagePath, err = s.library.RandomImage()
		if err != nil {
			return MemeResult{}, fmt.Errorf("pick image: %w", err)
		}
	}

	path, err := s.maker.MakeMemeFromFile(ctx, imagePath, quote.Body, quote.Author, s.maxWidth)
	if err != nil {
		return MemeResult{}, err
	}
	return MemeResult{Path: path, Quote: quote}, nil
}

// GenerateFromReader captions an image read from src. Body and author are both required.
func (s *MemeService) GenerateFromReader(ctx context.Context, src io.Reader, body, author string) (MemeResult, error) {
	quote, err := entities.NewQuote(body, author)
	if err != nil {
		return MemeResult{}, err
	}

	path, err := s.maker.MakeMeme(ctx, src, quote.Body, quote.Author, s.maxWidth)
	if err != nil {
		return MemeResult{}, err
	}
	return MemeResult{Path: path, Quote: quote}, nil
}

func (s *MemeService) resolveQuote(body, author string) (entities.Quote, error) {
	if strings.TrimSpace(body) == "" {
		quote, err := s.library.RandomQuote()
		if err != nil {
			return entities.Quote{}, fmt.Errorf("pick quote: %w", err)
		}
		return quote, nil
	}
	if strings.TrimSpace(author) == "" {
		return entities.Quote{}, ErrAuthorRequired
	}
	return entities.NewQuote(body, author)
}
