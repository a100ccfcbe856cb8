package entities

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidQuote = errors.New("invalid quote")

// Quote is an attributed saying. Both fields are non-empty once constructed
// through NewQuote or the ingestion pipeline.
type Quote struct {
	Body   string `json:"body"`
	Author string `json:"author"`
}

// NewQuote builds a Quote from user supplied strings, trimming surrounding whitespace.
func NewQuote(body, author string) (Quote, error) {
	body = strings.TrimSpace(body)
	author = strings.TrimSpace(author)

	if body == "" {
		return Quote{}, fmt.Errorf("%w: body is empty", ErrInvalidQuote)
	}
	if author == "" {
		return Quote{}, fmt.Errorf("%w: author is empty", ErrInvalidQuote)
	}

	return Quote{Body: body, Author: author}, nil
}

// String renders the quote as `"body" - author`.
func (q Quote) String() string {
	return fmt.Sprintf("\"%s\" - %s", q.Body, q.Author)
}
