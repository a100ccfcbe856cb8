package meme

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResizeToMaxWidth(t *testing.T) {
	tests := []struct {
		name           string
		width, height  int
		maxWidth       int
		expectedWidth  int
		expectedHeight int
	}{
		{name: "halves wide image", width: 1000, height: 500, maxWidth: 500, expectedWidth: 500, expectedHeight: 250},
		{name: "rounds height", width: 1000, height: 333, maxWidth: 500, expectedWidth: 500, expectedHeight: 167},
		{name: "portrait", width: 600, height: 900, maxWidth: 500, expectedWidth: 500, expectedHeight: 750},
		{name: "keeps at least one row", width: 5000, height: 2, maxWidth: 500, expectedWidth: 500, expectedHeight: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := solidImage(tt.width, tt.height, color.White)

			resized := ResizeToMaxWidth(img, tt.maxWidth)

			assert.Equal(t, tt.expectedWidth, resized.Bounds().Dx())
			assert.Equal(t, tt.expectedHeight, resized.Bounds().Dy())
		})
	}
}

func TestResizeToMaxWidth_NoUpscale(t *testing.T) {
	for _, width := range []int{499, 500} {
		img := solidImage(width, 100, color.White)

		resized := ResizeToMaxWidth(img, 500)

		assert.True(t, resized == image.Image(img), "width %d should be returned unchanged", width)
	}
}

func TestLoad(t *testing.T) {
	t.Run("decodes png", func(t *testing.T) {
		data := encodePNG(t, solidImage(40, 20, color.Black))

		img, err := Load(bytes.NewReader(data))

		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 40, 20), img.Bounds())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := Load(strings.NewReader("definitely not an image"))

		assert.ErrorIs(t, err, ErrInvalidImage)
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dog.png")
		require.NoError(t, os.WriteFile(path, encodePNG(t, solidImage(8, 8, color.White)), 0644))

		img, err := LoadFile(path)

		require.NoError(t, err)
		assert.Equal(t, 8, img.Bounds().Dx())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.png"))

		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestToRGBA_NormalizesOrigin(t *testing.T) {
	src := image.NewGray(image.Rect(10, 10, 30, 20))

	rgba := toRGBA(src)

	assert.Equal(t, image.Rect(0, 0, 20, 10), rgba.Bounds())
}

func TestToRGBA_AlwaysCopies(t *testing.T) {
	src := solidImage(4, 3, color.RGBA{B: 0xff, A: 0xff})

	rgba := toRGBA(src)
	rgba.SetRGBA(0, 0, color.RGBA{R: 0xff, A: 0xff})

	assert.NotSame(t, src, rgba)
	assert.Equal(t, color.RGBA{B: 0xff, A: 0xff}, src.RGBAAt(0, 0))
}
