package demo

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	photoWidth  = 640
	photoHeight = 480
)

var palette = []color.RGBA{
	{R: 0xc8, G: 0x8b, B: 0x4a, A: 0xff},
	{R: 0x5a, G: 0x7d, B: 0x9a, A: 0xff},
	{R: 0x7a, G: 0x9a, B: 0x5a, A: 0xff},
	{R: 0x9a, G: 0x5a, B: 0x7d, A: 0xff},
}

// WriteImages writes n placeholder JPEG photos into dir and returns their paths.
func WriteImages(dir string, n int) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create images dir: %w", err)
	}

	paths := make([]string, 0, n)
	for i := 0; i < n; i++ {
		path := filepath.Join(dir, fmt.Sprintf("dog_%d.jpg", i+1))
		img := placeholder(palette[i%len(palette)], fmt.Sprintf("dog #%d", i+1))

		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 85}); err != nil {
			f.Close()
			return nil, fmt.Errorf("encode %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// placeholder paints a vertical gradient from base to black with a label
// in the top left corner.
func placeholder(base color.RGBA, label string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, photoWidth, photoHeight))
	for y := 0; y < photoHeight; y++ {
		shade := 1 - float64(y)/float64(photoHeight)*0.7
		c := color.RGBA{
			R: uint8(float64(base.R) * shade),
			G: uint8(float64(base.G) * shade),
			B: uint8(float64(base.B) * shade),
			A: 0xff,
		}
		for x := 0; x < photoWidth; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(16, 28),
	}
	d.DrawString(label)
	return img
}
