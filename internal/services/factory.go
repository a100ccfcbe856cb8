package services

import (
	"fmt"

	"github.com/mrlokans/memegen/internal/config"
	"github.com/mrlokans/memegen/internal/meme"
	"github.com/mrlokans/memegen/internal/quotes"
)

// NewDispatcher builds the quote dispatcher with the configured PDF extractor.
func NewDispatcher(cfg config.Library) (*quotes.Dispatcher, error) {
	var extractor quotes.TextExtractor
	switch cfg.PDFExtractor {
	case "", config.PDFExtractorPdftotext:
		extractor = quotes.NewPDFToTextExtractor(cfg.PdftotextPath, "")
	case config.PDFExtractorNative:
		extractor = quotes.NewNativePDFExtractor()
	default:
		return nil, fmt.Errorf("unknown pdf extractor %q", cfg.PDFExtractor)
	}
	return quotes.NewDispatcher(quotes.DefaultIngestors(extractor)...), nil
}

// NewEngine builds the meme engine from configuration.
func NewEngine(cfg config.Meme) (*meme.Engine, error) {
	format, err := meme.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	opts := []meme.Option{meme.WithFormat(format)}
	if cfg.MaxCharsPerLine > 0 {
		opts = append(opts, meme.WithMaxCharsPerLine(cfg.MaxCharsPerLine))
	}
	if cfg.FontPath != "" {
		opts = append(opts, meme.WithFontFile(cfg.FontPath, cfg.FontSize))
	} else if cfg.FontSize > 0 {
		tf, err := meme.DefaultTypeface(cfg.FontSize)
		if err != nil {
			return nil, err
		}
		opts = append(opts, meme.WithTypeface(tf))
	}

	return meme.NewEngine(cfg.OutputDir, opts...)
}
