package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/memegen/internal/download"
	"github.com/mrlokans/memegen/internal/http"
	"github.com/mrlokans/memegen/internal/library"
	"github.com/mrlokans/memegen/internal/meme"
	"github.com/mrlokans/memegen/internal/quotes"
	"github.com/mrlokans/memegen/internal/services"
)

// =============================================================================
// Quote Ingestion
// =============================================================================

// Ingestor implementations
var _ quotes.Ingestor = (*quotes.TxtIngestor)(nil)
var _ quotes.Ingestor = (*quotes.CSVIngestor)(nil)
var _ quotes.Ingestor = (*quotes.DocxIngestor)(nil)
var _ quotes.Ingestor = (*quotes.PDFIngestor)(nil)

// TextExtractor implementations
var _ quotes.TextExtractor = (*quotes.PDFToTextExtractor)(nil)
var _ quotes.TextExtractor = (*quotes.NativePDFExtractor)(nil)

// QuoteParser implementations
var _ library.QuoteParser = (*quotes.Dispatcher)(nil)

// =============================================================================
// Meme Generation
// =============================================================================

var _ services.MemeMaker = (*meme.Engine)(nil)
var _ services.QuoteLibrary = (*library.Library)(nil)

// =============================================================================
// HTTP Layer
// =============================================================================

var _ http.MemeGenerator = (*services.MemeService)(nil)
var _ http.ImageFetcher = (*download.Fetcher)(nil)
