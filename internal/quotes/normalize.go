package quotes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mrlokans/memegen/internal/entities"
)

const (
	quoteDelimiter = "-"
	trimSet        = "-\n "

	// Longest single line accepted from a text-like source.
	maxLineSize = 1024 * 1024
)

// Normalize cleans a raw line and splits it into a quote.
//
// Double quotes and anything outside printable ASCII are dropped, hyphens,
// newlines and spaces are trimmed from both ends. An empty result yields
// ErrEmptyLine. Otherwise the line is split on its first hyphen; a line
// without one, or with an empty side, yields a *MalformedLineError.
//
// Non-ASCII letters are discarded rather than transliterated, so accented
// names lose characters.
func Normalize(raw string) (entities.Quote, error) {
	cleaned := strings.Trim(clean(raw), trimSet)
	if cleaned == "" {
		return entities.Quote{}, ErrEmptyLine
	}

	body, author, found := strings.Cut(cleaned, quoteDelimiter)
	if !found {
		return entities.Quote{}, &MalformedLineError{Line: cleaned}
	}

	body = strings.Trim(body, trimSet)
	author = strings.Trim(author, trimSet)
	if body == "" || author == "" {
		return entities.Quote{}, &MalformedLineError{Line: cleaned}
	}

	return entities.Quote{Body: body, Author: author}, nil
}

// clean removes double quotes and every rune outside the printable ASCII range.
func clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '"' || r < 0x20 || r > 0x7e {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeLines normalizes every line read from r. Lines rejected by skip,
// empty lines and malformed lines are left out.
func NormalizeLines(r io.Reader, skip func(line string) bool) ([]entities.Quote, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var result []entities.Quote
	for scanner.Scan() {
		line := scanner.Text()
		if skip != nil && skip(line) {
			continue
		}

		quote, err := Normalize(line)
		if errors.Is(err, ErrEmptyLine) || errors.Is(err, ErrMalformedLine) {
			continue
		}
		if err != nil {
			return nil, err
		}
		result = append(result, quote)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading lines: %w", err)
	}

	return result, nil
}
