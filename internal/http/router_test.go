package http

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/memegen/internal/download"
	"github.com/mrlokans/memegen/internal/entities"
	"github.com/mrlokans/memegen/internal/library"
	"github.com/mrlokans/memegen/internal/meme"
	"github.com/mrlokans/memegen/internal/services"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 40, G: 120, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRouter_EndToEnd(t *testing.T) {
	outputDir := t.TempDir()
	engine, err := meme.NewEngine(outputDir)
	require.NoError(t, err)

	imagePath := filepath.Join(t.TempDir(), "dog.png")
	require.NoError(t, os.WriteFile(imagePath, pngBytes(t, 1000, 500), 0644))
	lib := library.New([]entities.Quote{{Body: "Chew the toy", Author: "Rex"}}, []string{imagePath}, nil)

	imageHost := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dog.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngBytes(t, 640, 480))
	}))
	defer imageHost.Close()

	router := NewRouter(RouterConfig{
		Generator:     services.NewMemeService(engine, lib, 500),
		Fetcher:       download.NewFetcher(5*time.Second, 1<<20),
		OutputDir:     outputDir,
		TemplatesPath: templatesPath,
	})

	fetchMeme := func(t *testing.T, url string) image.Image {
		t.Helper()
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
		require.Equal(t, http.StatusOK, w.Code)
		img, err := png.Decode(w.Body)
		require.NoError(t, err)
		return img
	}

	t.Run("random meme is resized and served", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp MemeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Rex", resp.Author)

		img := fetchMeme(t, resp.URL)
		assert.Equal(t, 500, img.Bounds().Dx())
		assert.Equal(t, 250, img.Bounds().Dy())
	})

	t.Run("create from url", func(t *testing.T) {
		form := validForm()
		form.Set("image_url", imageHost.URL+"/dog.png")

		w := postCreate(router, form, "application/json")
		require.Equal(t, http.StatusOK, w.Code)

		var resp MemeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		img := fetchMeme(t, resp.URL)
		assert.Equal(t, 500, img.Bounds().Dx())
		assert.Equal(t, 375, img.Bounds().Dy())
	})

	t.Run("create from missing image", func(t *testing.T) {
		form := validForm()
		form.Set("image_url", imageHost.URL+"/cat.png")

		w := postCreate(router, form, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "we got 404")
	})

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
