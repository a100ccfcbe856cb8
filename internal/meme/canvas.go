package meme

import (
	"fmt"
	"image"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"

	// Registered decoders for Load
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultMaxWidth is the width images are scaled down to when no limit is given.
const DefaultMaxWidth = 500

// Load decodes a raster image from r.
func Load(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return img, nil
}

// LoadFile decodes the raster image stored at path.
func LoadFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// ResizeToMaxWidth scales img down so its width equals maxWidth, keeping the
// aspect ratio. Images no wider than maxWidth are returned unchanged.
func ResizeToMaxWidth(img image.Image, maxWidth int) image.Image {
	bounds := img.Bounds()
	if maxWidth <= 0 || bounds.Dx() <= maxWidth {
		return img
	}

	ratio := float64(maxWidth) / float64(bounds.Dx())
	height := int(math.Round(float64(bounds.Dy()) * ratio))
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}

// toRGBA copies img into a new RGBA image anchored at the origin. The
// result never aliases img, so drawing on it leaves the source untouched.
func toRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}
