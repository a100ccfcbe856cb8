package quotes

import (
	"context"
	"testing"

	"github.com/mrlokans/memegen/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingIngestor struct {
	Extension
	name   string
	parsed []string
}

func (r *recordingIngestor) Parse(_ context.Context, path string) ([]entities.Quote, error) {
	r.parsed = append(r.parsed, path)
	return []entities.Quote{{Body: r.name, Author: path}}, nil
}

func TestDispatcher_Parse(t *testing.T) {
	t.Run("text file end to end", func(t *testing.T) {
		path := writeFile(t, "DogQuotesTXT.txt", "Chew the toy - Rex\n")

		got, err := NewDefaultDispatcher().Parse(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, []entities.Quote{{Body: "Chew the toy", Author: "Rex"}}, got)
	})

	t.Run("unregistered extension", func(t *testing.T) {
		_, err := NewDefaultDispatcher().Parse(context.Background(), "quotes.xyz")

		var noIngestor *NoIngestorError
		require.ErrorAs(t, err, &noIngestor)
		assert.Equal(t, "quotes.xyz", noIngestor.Path)
		assert.ErrorIs(t, err, ErrNoIngestor)
	})

	t.Run("upper case extension is not recognised", func(t *testing.T) {
		path := writeFile(t, "QUOTES.TXT", "Chew the toy - Rex\n")

		_, err := NewDefaultDispatcher().Parse(context.Background(), path)

		assert.ErrorIs(t, err, ErrNoIngestor)
	})

	t.Run("first matching ingestor wins", func(t *testing.T) {
		first := &recordingIngestor{Extension: ".txt", name: "first"}
		second := &recordingIngestor{Extension: ".txt", name: "second"}

		got, err := NewDispatcher(first, second).Parse(context.Background(), "a.txt")

		require.NoError(t, err)
		assert.Equal(t, "first", got[0].Body)
		assert.Empty(t, second.parsed)
	})

	t.Run("csv content in txt file is parsed as text", func(t *testing.T) {
		path := writeFile(t, "sneaky.txt", "author,body\nRex,Sit\n")

		got, err := NewDefaultDispatcher().Parse(context.Background(), path)

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestDispatcher_ParseAll(t *testing.T) {
	txt := writeFile(t, "quotes.txt", "Chew the toy - Rex\n")
	csv := writeFile(t, "quotes.csv", "author,body\nFido,Fetch\n")
	docx := writeDocx(t, "quotes.docx", "Sit - Spot")

	t.Run("concatenates in order", func(t *testing.T) {
		got, err := NewDefaultDispatcher().ParseAll(context.Background(), txt, csv, docx)

		require.NoError(t, err)
		assert.Equal(t, []entities.Quote{
			{Body: "Chew the toy", Author: "Rex"},
			{Body: "Fetch", Author: "Fido"},
			{Body: "Sit", Author: "Spot"},
		}, got)
	})

	t.Run("first failure aborts", func(t *testing.T) {
		got, err := NewDefaultDispatcher().ParseAll(context.Background(), txt, "/missing/quotes.csv", docx)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrSourceNotFound)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewDefaultDispatcher().ParseAll(ctx, txt)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDispatcher_Extensions(t *testing.T) {
	d := NewDefaultDispatcher()

	assert.Equal(t, []string{".csv", ".txt", ".pdf", ".docx"}, d.Extensions())
	assert.True(t, d.CanIngest("a.pdf"))
	assert.True(t, d.CanIngest("a.docx"))
	assert.False(t, d.CanIngest("a.doc"))
}
