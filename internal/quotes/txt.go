package quotes

import (
	"context"

	"github.com/mrlokans/memegen/internal/entities"
)

// TxtIngestor reads one "body - author" quote per line of a UTF-8 text file.
type TxtIngestor struct {
	Extension
}

func NewTxtIngestor() *TxtIngestor {
	return &TxtIngestor{Extension: ExtensionTxt}
}

func (i *TxtIngestor) Parse(_ context.Context, path string) ([]entities.Quote, error) {
	f, err := openSource(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return NormalizeLines(f, nil)
}

// Compile-time interface check
var _ Ingestor = (*TxtIngestor)(nil)
