// Package interfaces documents the core abstractions used throughout the application.
//
// This package consolidates interface documentation to help contributors find
// extension points and see how to implement new functionality.
//
// # Interface Categories
//
// ## Quote Ingestion
//
//   - Ingestor: Parses one quote file format (internal/quotes/ingestor.go)
//   - TextExtractor: Turns a PDF into plain text (internal/quotes/pdf.go)
//   - QuoteParser: Loads quotes from a list of files (internal/library/library.go)
//
// ## Meme Generation
//
//   - MemeMaker: Renders a quote onto an image (internal/services/interfaces.go)
//   - QuoteLibrary: Random quote and image selection (internal/services/interfaces.go)
//
// ## HTTP Layer
//
//   - MemeGenerator: Random and user supplied memes (internal/http/memes.go)
//   - ImageFetcher: Downloads remote images (internal/http/memes.go)
//
// # Adding a New Quote Format
//
// To support a new quote file format:
//
//  1. Create an ingestor in internal/quotes/
//
//     type MarkdownIngestor struct {
//         Extension
//     }
//
//     func NewMarkdownIngestor() *MarkdownIngestor {
//         return &MarkdownIngestor{Extension: Extension(".md")}
//     }
//
//     func (i *MarkdownIngestor) Parse(ctx context.Context, path string) ([]entities.Quote, error) {
//         // Open the file and run each line through Normalize
//     }
//
//     var _ Ingestor = (*MarkdownIngestor)(nil)
//
//  2. Add it to DefaultIngestors in internal/quotes/dispatcher.go
//
//  3. Add a compile-time check to checks.go
//
// # Adding a New PDF Extractor
//
// To read PDFs with another converter:
//
//  1. Implement TextExtractor in internal/quotes/
//
//     type OCRExtractor struct {
//         binary string
//     }
//
//     func (e *OCRExtractor) Extract(ctx context.Context, path string, read func(r io.Reader) error) error
//
//  2. Accept its name in NewDispatcher in internal/services/factory.go
//     and document the MEME_PDF_EXTRACTOR value in internal/config
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
