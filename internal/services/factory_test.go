package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/memegen/internal/config"
	"github.com/mrlokans/memegen/internal/meme"
)

func TestNewDispatcher(t *testing.T) {
	for _, name := range []string{"", config.PDFExtractorPdftotext, config.PDFExtractorNative} {
		d, err := NewDispatcher(config.Library{PDFExtractor: name})
		require.NoError(t, err, "extractor %q", name)
		assert.Equal(t, []string{".csv", ".txt", ".pdf", ".docx"}, d.Extensions())
	}

	_, err := NewDispatcher(config.Library{PDFExtractor: "ocr"})
	assert.Error(t, err)
}

func TestNewDispatcher_ParsesText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.txt")
	require.NoError(t, os.WriteFile(path, []byte("Bark loudly - Rex\n"), 0644))

	d, err := NewDispatcher(config.Library{})
	require.NoError(t, err)

	got, err := d.Parse(context.Background(), path)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Rex", got[0].Author)
}

func TestNewEngine(t *testing.T) {
	t.Run("from defaults", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "memes")

		engine, err := NewEngine(config.Meme{OutputDir: dir, Format: "jpg", FontSize: 24, MaxCharsPerLine: 30})

		require.NoError(t, err)
		assert.Equal(t, meme.FormatJPEG, engine.Format())
		assert.DirExists(t, dir)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := NewEngine(config.Meme{OutputDir: t.TempDir(), Format: "bmp"})

		assert.ErrorIs(t, err, meme.ErrUnsupportedFormat)
	})

	t.Run("missing font", func(t *testing.T) {
		_, err := NewEngine(config.Meme{OutputDir: t.TempDir(), FontPath: "/nope/impact.ttf"})

		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
