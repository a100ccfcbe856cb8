package meme

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrQuoteTooLong indicates the wrapped caption cannot fit the image without clipping.
	ErrQuoteTooLong = errors.New("quote too long")

	// ErrUnsupportedFormat indicates an unknown output image format.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrInvalidImage indicates the source could not be decoded as a raster image.
	ErrInvalidImage = errors.New("invalid image")
)

// QuoteTooLongError carries the measured caption and target image sizes.
type QuoteTooLongError struct {
	Text  image.Point
	Image image.Point
}

func (e *QuoteTooLongError) Error() string {
	return fmt.Sprintf("quote too long: caption %dx%d does not fit image %dx%d",
		e.Text.X, e.Text.Y, e.Image.X, e.Image.Y)
}

func (e *QuoteTooLongError) Unwrap() error {
	return ErrQuoteTooLong
}
