// Package meme renders captioned images: it scales a source image down to a
// maximum width, wraps a quote into lines, places them at a random position
// that keeps the text inside the image and draws them with an outline.
package meme

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Engine creates memes and writes them to an output directory.
// It is safe for concurrent use.
type Engine struct {
	outputDir       string
	typeface        *Typeface
	format          Format
	maxCharsPerLine int
	fill            color.Color
	border          color.Color
	borderThickness int

	mu  sync.Mutex
	rnd *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine) error

// WithFontFile loads the caption font from a TrueType/OpenType file.
func WithFontFile(path string, size float64) Option {
	return func(e *Engine) error {
		tf, err := LoadTypeface(path, size)
		if err != nil {
			return err
		}
		e.typeface = tf
		return nil
	}
}

// WithTypeface uses an already parsed font.
func WithTypeface(tf *Typeface) Option {
	return func(e *Engine) error {
		e.typeface = tf
		return nil
	}
}

// WithFormat sets the output encoding.
func WithFormat(f Format) Option {
	return func(e *Engine) error {
		if _, err := ParseFormat(string(f)); err != nil {
			return err
		}
		e.format = f
		return nil
	}
}

// WithMaxCharsPerLine sets the caption wrap width.
func WithMaxCharsPerLine(n int) Option {
	return func(e *Engine) error {
		if n < 1 {
			return fmt.Errorf("max chars per line must be positive, got %d", n)
		}
		e.maxCharsPerLine = n
		return nil
	}
}

// WithColors sets the text fill and outline colours.
func WithColors(fill, border color.Color) Option {
	return func(e *Engine) error {
		e.fill = fill
		e.border = border
		return nil
	}
}

// WithBorderThickness sets the outline offset in pixels. Zero disables the outline.
func WithBorderThickness(px int) Option {
	return func(e *Engine) error {
		if px < 0 {
			return fmt.Errorf("border thickness must not be negative, got %d", px)
		}
		e.borderThickness = px
		return nil
	}
}

// WithRand sets the random source used for caption placement.
func WithRand(rnd *rand.Rand) Option {
	return func(e *Engine) error {
		e.rnd = rnd
		return nil
	}
}

// NewEngine creates an engine writing into outputDir, creating it if needed.
// Defaults: Go Regular at 30pt, PNG output, 40 characters per line, white
// text with a 1px black outline.
func NewEngine(outputDir string, opts ...Option) (*Engine, error) {
	if outputDir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	e := &Engine{
		outputDir:       outputDir,
		format:          FormatPNG,
		maxCharsPerLine: DefaultMaxCharsPerLine,
		fill:            color.White,
		border:          color.Black,
		borderThickness: 1,
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	if e.typeface == nil {
		tf, err := DefaultTypeface(DefaultFontSize)
		if err != nil {
			return nil, err
		}
		e.typeface = tf
	}
	if e.rnd == nil {
		e.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return e, nil
}

// OutputDir returns the directory memes are written to.
func (e *Engine) OutputDir() string {
	return e.outputDir
}

// Format returns the output encoding.
func (e *Engine) Format() Format {
	return e.format
}

// MakeMemeFromFile is MakeMeme for an image stored on disk.
func (e *Engine) MakeMemeFromFile(ctx context.Context, imagePath, body, author string, maxWidth int) (string, error) {
	f, err := os.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	return e.MakeMeme(ctx, f, body, author, maxWidth)
}

// MakeMeme decodes the image from src, captions it with the quote and saves
// it under a unique name in the output directory. Returns the saved path.
// A maxWidth of zero or less means DefaultMaxWidth.
func (e *Engine) MakeMeme(ctx context.Context, src io.Reader, body, author string, maxWidth int) (string, error) {
	img, err := Load(src)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	out, err := e.Render(img, body, author, maxWidth)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return e.save(out)
}

// Render returns a captioned copy of img, scaled to at most maxWidth pixels wide.
func (e *Engine) Render(img image.Image, body, author string, maxWidth int) (*image.RGBA, error) {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}

	canvas := toRGBA(ResizeToMaxWidth(img, maxWidth))

	face, err := e.typeface.NewFace()
	if err != nil {
		return nil, err
	}
	defer face.Close()

	e.mu.Lock()
	block, at, err := Layout(face, body, author, e.maxCharsPerLine, canvas.Bounds().Size(), e.rnd)
	e.mu.Unlock()
	if err != nil {
		return nil, err
	}

	DrawCaption(canvas, block, at, face, e.fill, e.border, e.borderThickness)
	return canvas, nil
}

// save encodes img into a temporary file and renames it to a fresh
// UUID-based name so readers never observe a partial file.
func (e *Engine) save(img image.Image) (string, error) {
	tmpFile, err := os.CreateTemp(e.outputDir, ".meme-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		tmpFile.Close()
		os.Remove(tmpPath) // Clean up if we didn't rename
	}()

	if err := e.format.Encode(tmpFile, img); err != nil {
		return "", fmt.Errorf("encode %s: %w", e.format, err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	path := filepath.Join(e.outputDir, uuid.NewString()+e.format.Extension())
	if err := os.Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("save meme: %w", err)
	}
	return path, nil
}
