package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote_String(t *testing.T) {
	assert.Equal(t, `"B" - A`, Quote{Body: "B", Author: "A"}.String())
	assert.Equal(t, `"Chew the toy" - Rex`, Quote{Body: "Chew the toy", Author: "Rex"}.String())
}

func TestNewQuote(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		author  string
		want    Quote
		wantErr bool
	}{
		{name: "valid", body: "To bork or not to bork", author: "Bork", want: Quote{Body: "To bork or not to bork", Author: "Bork"}},
		{name: "trims whitespace", body: "  Stay  \n", author: "\tFido ", want: Quote{Body: "Stay", Author: "Fido"}},
		{name: "empty body", body: "  ", author: "Fido", wantErr: true},
		{name: "empty author", body: "Sit", author: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewQuote(tt.body, tt.author)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidQuote))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
