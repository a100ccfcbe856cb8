// Package quotes ingests attributed quotes from plain text, CSV, DOCX and PDF files.
//
// # Architecture
//
// Ingestion follows a single flow:
//
//	path → Dispatcher → Ingestor (by extension) → raw lines → Normalize → entities.Quote
//
// Every Ingestor reports whether it handles a path by suffix and parses the
// whole file or fails. A failing file yields no partial results. Lines that
// are empty or cannot be split into body and author are skipped silently.
//
// # Line format
//
// Text, DOCX and PDF sources share one convention, a body and an author
// separated by the first hyphen:
//
//	"Chew the toy" - Rex
//
// CSV sources carry a header row with "author" and "body" columns instead.
//
// # Example Usage
//
//	dispatcher := quotes.NewDefaultDispatcher()
//	items, err := dispatcher.Parse(ctx, "./_data/DogQuotes/DogQuotesTXT.txt")
//	if errors.Is(err, quotes.ErrNoIngestor) {
//		// unsupported extension
//	}
package quotes
