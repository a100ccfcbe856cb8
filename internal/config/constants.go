package config

// Default locations, relative to the working directory.
const (
	// DefaultOutputDir is where generated memes are written
	DefaultOutputDir = "./static/memes"

	// DefaultImagesDir is scanned for images when no path is given
	DefaultImagesDir = "./_data/photos/dog"
)

// DefaultQuoteFiles are the quote sources loaded when QUOTE_FILES is unset.
var DefaultQuoteFiles = []string{
	"./_data/DogQuotes/DogQuotesTXT.txt",
	"./_data/DogQuotes/DogQuotesDOCX.docx",
	"./_data/DogQuotes/DogQuotesPDF.pdf",
	"./_data/DogQuotes/DogQuotesCSV.csv",
}

// PDF extractor names accepted by MEME_PDF_EXTRACTOR.
const (
	PDFExtractorPdftotext = "pdftotext"
	PDFExtractorNative    = "native"
)
