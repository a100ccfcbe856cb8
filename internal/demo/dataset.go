// Package demo writes a small sample library: quote files in every
// supported format and a handful of placeholder photos.
package demo

import (
	"archive/zip"
	"encoding/csv"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrlokans/memegen/internal/entities"
)

// Layout under the dataset root. Matches the default QUOTE_FILES and
// MEME_IMAGES_DIR values when the root is ./_data.
const (
	QuotesDir = "DogQuotes"
	ImagesDir = "photos/dog"

	TXTFile  = "DogQuotesTXT.txt"
	CSVFile  = "DogQuotesCSV.csv"
	DocxFile = "DogQuotesDOCX.docx"
	PDFFile  = "DogQuotesPDF.pdf"
)

// DefaultImageCount is how many placeholder photos Generate writes.
const DefaultImageCount = 3

var txtQuotes = []entities.Quote{
	{Body: "To bork or not to bork", Author: "Bork"},
	{Body: "He who smelt it", Author: "Stinky"},
}

var csvQuotes = []entities.Quote{
	{Body: "Chase the mailman", Author: "Skittle"},
	{Body: "When in doubt, go shoe-shopping", Author: "Mr. Paws"},
}

var docxQuotes = []entities.Quote{
	{Body: "Bark like no one's listening", Author: "Rex"},
	{Body: "RAWRGWAWGGR", Author: "Chewbacca"},
	{Body: "Life is like peanut butter: crunchy", Author: "Peanut"},
}

var pdfQuotes = []entities.Quote{
	{Body: "Treat yo self", Author: "Fluffles"},
	{Body: "Life is like a box of treats", Author: "Forrest Pup"},
	{Body: "It's the size of the fight in the dog", Author: "Boomer"},
}

// Manifest lists what Generate wrote.
type Manifest struct {
	QuoteFiles []string
	Images     []string
}

// Quotes returns every sample quote, grouped in file order: txt, docx, pdf, csv.
func Quotes() []entities.Quote {
	var all []entities.Quote
	all = append(all, txtQuotes...)
	all = append(all, docxQuotes...)
	all = append(all, pdfQuotes...)
	all = append(all, csvQuotes...)
	return all
}

// Generate writes the sample library under root, replacing any files with
// the same names.
func Generate(root string, images int) (*Manifest, error) {
	quotesDir := filepath.Join(root, QuotesDir)
	if err := os.MkdirAll(quotesDir, 0755); err != nil {
		return nil, fmt.Errorf("create quotes dir: %w", err)
	}

	writers := []struct {
		name   string
		quotes []entities.Quote
		write  func(string, []entities.Quote) error
	}{
		{TXTFile, txtQuotes, WriteTXT},
		{DocxFile, docxQuotes, WriteDocx},
		{PDFFile, pdfQuotes, WritePDF},
		{CSVFile, csvQuotes, WriteCSV},
	}

	manifest := &Manifest{}
	for _, w := range writers {
		path := filepath.Join(quotesDir, w.name)
		if err := w.write(path, w.quotes); err != nil {
			return nil, fmt.Errorf("write %s: %w", w.name, err)
		}
		manifest.QuoteFiles = append(manifest.QuoteFiles, path)
	}

	paths, err := WriteImages(filepath.Join(root, ImagesDir), images)
	if err != nil {
		return nil, err
	}
	manifest.Images = paths

	return manifest, nil
}

// WriteTXT writes one `body - author` line per quote.
func WriteTXT(path string, quotes []entities.Quote) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	for _, q := range quotes {
		if _, err := fmt.Fprintf(f, "%s - %s\n", q.Body, q.Author); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}

// WriteCSV writes a body,author header followed by one row per quote.
func WriteCSV(path string, quotes []entities.Quote) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	records := [][]string{{"body", "author"}}
	for _, q := range quotes {
		records = append(records, []string{q.Body, q.Author})
	}
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteDocx writes a minimal Word document with one paragraph per quote.
func WriteDocx(path string, quotes []entities.Quote) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(f)
	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", docxDocument(quotes)},
	}
	for _, part := range parts {
		pw, err := zw.Create(part.name)
		if err != nil {
			f.Close()
			return err
		}
		if _, err := pw.Write([]byte(part.body)); err != nil {
			f.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

func docxDocument(quotes []entities.Quote) string {
	var body strings.Builder
	for _, q := range quotes {
		body.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		body.WriteString(escapeXML(fmt.Sprintf("%s - %s", q.Body, q.Author)))
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body.String() +
		`</w:body></w:document>`
}

func escapeXML(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
