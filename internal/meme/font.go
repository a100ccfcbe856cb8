package meme

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultFontSize is the caption size in points.
const DefaultFontSize = 30

// Typeface is a parsed font plus the size captions are set in. Faces are
// created per render because opentype faces are not safe for concurrent use.
type Typeface struct {
	font *opentype.Font
	size float64
}

// LoadTypeface parses the TrueType/OpenType font file at path.
func LoadTypeface(path string, size float64) (*Typeface, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	return ParseTypeface(data, size)
}

// ParseTypeface parses TrueType/OpenType font data.
func ParseTypeface(data []byte, size float64) (*Typeface, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("font data is empty")
	}
	if size <= 0 {
		size = DefaultFontSize
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Typeface{font: f, size: size}, nil
}

// DefaultTypeface returns the bundled Go Regular font.
func DefaultTypeface(size float64) (*Typeface, error) {
	return ParseTypeface(goregular.TTF, size)
}

// Size returns the point size.
func (t *Typeface) Size() float64 {
	return t.size
}

// NewFace creates a face at 72 DPI, so one point maps to one pixel.
func (t *Typeface) NewFace() (font.Face, error) {
	face, err := opentype.NewFace(t.font, &opentype.FaceOptions{
		Size:    t.size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}
