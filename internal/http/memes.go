package http

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/memegen/internal/download"
	"github.com/mrlokans/memegen/internal/entities"
	"github.com/mrlokans/memegen/internal/library"
	"github.com/mrlokans/memegen/internal/meme"
	"github.com/mrlokans/memegen/internal/security"
	"github.com/mrlokans/memegen/internal/services"
)

// MemeGenerator produces memes for the web UI.
type MemeGenerator interface {
	Random(ctx context.Context) (services.MemeResult, error)
	GenerateFromReader(ctx context.Context, src io.Reader, body, author string) (services.MemeResult, error)
}

// ImageFetcher downloads the image behind a submitted URL.
type ImageFetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// MemeResponse is the JSON form of a generated meme.
type MemeResponse struct {
	URL    string `json:"url"`
	Body   string `json:"body"`
	Author string `json:"author"`
}

type createMemeForm struct {
	ImageURL string `form:"image_url" binding:"required"`
	Body     string `form:"body" binding:"required"`
	Author   string `form:"author" binding:"required"`
}

type MemeController struct {
	generator MemeGenerator
	fetcher   ImageFetcher
	sessions  *security.SessionManager
}

func NewMemeController(generator MemeGenerator, fetcher ImageFetcher, sessions *security.SessionManager) *MemeController {
	return &MemeController{
		generator: generator,
		fetcher:   fetcher,
		sessions:  sessions,
	}
}

// Random renders a random library image with a random library quote.
func (mc *MemeController) Random(c *gin.Context) {
	result, err := mc.generator.Random(c.Request.Context())
	if err != nil {
		status, code, message := classifyError(err)
		if status == http.StatusInternalServerError {
			respondInternalError(c, err, "random meme")
			return
		}
		respondError(c, status, code, message)
		return
	}

	mc.respondMeme(c, result)
}

// Form renders the create form.
func (mc *MemeController) Form(c *gin.Context) {
	c.HTML(http.StatusOK, "meme_form", gin.H{
		"CSRFField": template.HTML(security.CSRFTokenField(c)),
	})
}

// Create downloads the submitted image URL and captions it with the submitted quote.
func (mc *MemeController) Create(c *gin.Context) {
	var form createMemeForm
	if err := c.ShouldBind(&form); err != nil {
		mc.formError(c, form, http.StatusBadRequest, "bad_request", "image_url, body and author are required")
		return
	}

	ctx := c.Request.Context()

	data, err := mc.fetcher.Fetch(ctx, form.ImageURL)
	if err != nil {
		status, code, message := classifyError(err)
		mc.formError(c, form, status, code, message)
		return
	}

	result, err := mc.generator.GenerateFromReader(ctx, bytes.NewReader(data), form.Body, form.Author)
	if err != nil {
		status, code, message := classifyError(err)
		if status == http.StatusInternalServerError {
			respondInternalError(c, err, "create meme")
			return
		}
		mc.formError(c, form, status, code, message)
		return
	}

	mc.respondMeme(c, result)
}

func (mc *MemeController) respondMeme(c *gin.Context, result services.MemeResult) {
	url := memeURL(result.Path)

	var recent []string
	if mc.sessions != nil {
		ctx := c.Request.Context()
		mc.sessions.AddRecentMeme(ctx, url)
		recent = mc.sessions.RecentMemes(ctx)
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, MemeResponse{URL: url, Body: result.Quote.Body, Author: result.Quote.Author})
		return
	}

	c.HTML(http.StatusOK, "meme", gin.H{
		"Path":   url,
		"Quote":  result.Quote,
		"Recent": recent,
	})
}

func (mc *MemeController) formError(c *gin.Context, form createMemeForm, status int, code, message string) {
	if wantsJSON(c) {
		c.JSON(status, ErrorResponse{Error: message, Code: code})
		return
	}
	c.HTML(status, "meme_form", gin.H{
		"Error":     message,
		"Form":      form,
		"CSRFField": template.HTML(security.CSRFTokenField(c)),
	})
}

// classifyError maps domain errors to a status, a machine code and a user message.
func classifyError(err error) (int, string, string) {
	var statusErr *download.StatusError
	switch {
	case errors.As(err, &statusErr):
		return http.StatusBadRequest, "download_failed", statusErr.Error()
	case errors.Is(err, download.ErrInvalidURL):
		return http.StatusBadRequest, "invalid_url", "image_url must be an http or https URL"
	case errors.Is(err, download.ErrImageTooLarge):
		return http.StatusBadRequest, "image_too_large", err.Error()
	case errors.Is(err, meme.ErrInvalidImage):
		return http.StatusBadRequest, "invalid_image", "the downloaded file is not a supported image"
	case errors.Is(err, meme.ErrQuoteTooLong):
		return http.StatusUnprocessableEntity, "quote_too_long", "The quote is too long to fit on this image. Try a shorter quote or a larger image."
	case errors.Is(err, entities.ErrInvalidQuote):
		return http.StatusBadRequest, "invalid_quote", err.Error()
	case errors.Is(err, library.ErrNoQuotes), errors.Is(err, library.ErrNoImages):
		return http.StatusServiceUnavailable, "library_empty", err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "timeout", "timed out while downloading the image"
	case errors.Is(err, download.ErrDownloadFailed):
		return http.StatusBadGateway, "download_failed", "could not download the image"
	}
	return http.StatusInternalServerError, "internal_error", "internal server error"
}
