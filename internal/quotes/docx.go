package quotes

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mrlokans/memegen/internal/entities"
)

const (
	docxDocumentPart = "word/document.xml"
	wordNamespace    = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
)

// DocxIngestor reads one quote per paragraph of a Word document.
// A missing or corrupt archive is reported as SourceNotFound.
type DocxIngestor struct {
	Extension
}

func NewDocxIngestor() *DocxIngestor {
	return &DocxIngestor{Extension: ExtensionDocx}
}

func (i *DocxIngestor) Parse(_ context.Context, path string) ([]entities.Quote, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, &SourceNotFoundError{Path: path, Err: err}
	}
	defer archive.Close()

	part, err := archive.Open(docxDocumentPart)
	if err != nil {
		return nil, &SourceNotFoundError{Path: path, Err: err}
	}
	defer part.Close()

	paragraphs, err := DocxParagraphs(part)
	if err != nil {
		return nil, &SourceNotFoundError{Path: path, Err: err}
	}

	var result []entities.Quote
	for _, paragraph := range paragraphs {
		quote, err := Normalize(paragraph)
		if err != nil {
			continue
		}
		result = append(result, quote)
	}
	return result, nil
}

// DocxParagraphs returns the plain text of each paragraph in a
// word/document.xml stream. Tabs become spaces and breaks become newlines.
// Paragraphs nested in text boxes are folded into their enclosing paragraph.
func DocxParagraphs(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	var (
		paragraphs []string
		current    strings.Builder
		depth      int
		inText     bool
	)

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode document xml: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Space != wordNamespace {
				continue
			}
			switch t.Name.Local {
			case "p":
				if depth == 0 {
					current.Reset()
				}
				depth++
			case "t":
				inText = true
			case "tab":
				current.WriteByte(' ')
			case "br", "cr":
				current.WriteByte('\n')
			}
		case xml.EndElement:
			if t.Name.Space != wordNamespace {
				continue
			}
			switch t.Name.Local {
			case "p":
				if depth == 0 {
					continue
				}
				depth--
				if depth == 0 {
					paragraphs = append(paragraphs, current.String())
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}

// Compile-time interface check
var _ Ingestor = (*DocxIngestor)(nil)
