// Package library holds the quotes and images that memes are picked from
// when the caller does not supply their own.
package library

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mrlokans/memegen/internal/entities"
)

var (
	ErrNoQuotes = errors.New("library has no quotes")
	ErrNoImages = errors.New("library has no images")
)

// ImageExtensions lists the file suffixes FindImages treats as images.
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// QuoteParser ingests quotes from a list of files.
type QuoteParser interface {
	ParseAll(ctx context.Context, paths ...string) ([]entities.Quote, error)
}

// Library is a fixed set of quotes and image paths with random selection.
// It is safe for concurrent use.
type Library struct {
	quotes []entities.Quote
	images []string

	mu  sync.Mutex
	rnd *rand.Rand
}

// New creates a library. A nil rnd gets a time-seeded source.
func New(quotes []entities.Quote, images []string, rnd *rand.Rand) *Library {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Library{quotes: quotes, images: images, rnd: rnd}
}

// Load ingests every quote file and lists the images under imageDir.
// An empty imageDir or an empty quoteFiles list leaves that half empty.
func Load(ctx context.Context, parser QuoteParser, quoteFiles []string, imageDir string, rnd *rand.Rand) (*Library, error) {
	var quotes []entities.Quote
	if len(quoteFiles) > 0 {
		parsed, err := parser.ParseAll(ctx, quoteFiles...)
		if err != nil {
			return nil, fmt.Errorf("load quotes: %w", err)
		}
		quotes = parsed
	}

	var images []string
	if imageDir != "" {
		found, err := FindImages(imageDir)
		if err != nil {
			return nil, fmt.Errorf("load images: %w", err)
		}
		images = found
	}

	return New(quotes, images, rnd), nil
}

// FindImages walks dir recursively and returns the image files in it, sorted.
func FindImages(dir string) ([]string, error) {
	var images []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isImage(path) {
			images = append(images, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(images)
	return images, nil
}

func isImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range ImageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Quotes returns a copy of the loaded quotes.
func (l *Library) Quotes() []entities.Quote {
	return append([]entities.Quote(nil), l.quotes...)
}

// Images returns a copy of the loaded image paths.
func (l *Library) Images() []string {
	return append([]string(nil), l.images...)
}

func (l *Library) RandomQuote() (entities.Quote, error) {
	if len(l.quotes) == 0 {
		return entities.Quote{}, ErrNoQuotes
	}
	return l.quotes[l.intn(len(l.quotes))], nil
}

func (l *Library) RandomImage() (string, error) {
	if len(l.images) == 0 {
		return "", ErrNoImages
	}
	return l.images[l.intn(len(l.images))], nil
}

func (l *Library) intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Intn(n)
}
