package demo

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/mrlokans/memegen/internal/entities"
)

// WritePDF writes a single-page PDF with one line of Helvetica text per
// quote. The file carries a real text layer, so both pdftotext and the
// native extractor can read it back.
func WritePDF(path string, quotes []entities.Quote) error {
	return WritePDFPages(path, quotes)
}

// WritePDFPages writes one page per quote list, in order.
func WritePDFPages(path string, pages ...[]entities.Quote) error {
	if len(pages) == 0 {
		return fmt.Errorf("pdf needs at least one page")
	}

	// Object layout: 1 catalog, 2 page tree, 3 font, then a page and its
	// content stream for every page.
	const (
		fontObj      = 3
		firstPageObj = 4
	)

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", firstPageObj+2*i)
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}
	for i, quotes := range pages {
		content := pageContent(quotes)
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
				"/Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>", fontObj, firstPageObj+2*i+1),
			fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", len(content), content),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return os.WriteFile(path, buf.Bytes(), 0644)
}

func pageContent(quotes []entities.Quote) string {
	var content strings.Builder
	content.WriteString("BT\n/F1 14 Tf\n18 TL\n72 720 Td\n")
	for i, q := range quotes {
		if i > 0 {
			content.WriteString("T*\n")
		}
		fmt.Fprintf(&content, "(%s) Tj\n", escapePDFString(fmt.Sprintf("%s - %s", q.Body, q.Author)))
	}
	content.WriteString("ET\n")
	return content.String()
}

func escapePDFString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
