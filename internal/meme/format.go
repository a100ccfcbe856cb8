package meme

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
)

// Format is an output image encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatGIF  Format = "gif"
)

// ParseFormat accepts a case-insensitive format name. "jpg" is an alias for JPEG.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	case "gif":
		return FormatGIF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Extension returns the file extension, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatJPEG:
		return ".jpg"
	case FormatGIF:
		return ".gif"
	default:
		return ".png"
	}
}

// Encode writes img to w in this format.
func (f Format) Encode(w io.Writer, img image.Image) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	case FormatGIF:
		return gif.Encode(w, img, &gif.Options{NumColors: 256})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
}
