package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/memegen/internal/config"
	"github.com/mrlokans/memegen/internal/services"
)

// IngestCommand parses quote files and prints the quotes found.
type IngestCommand struct {
	Files        []string
	JSON         bool
	PDFExtractor string

	cfg *config.Config
	out io.Writer
}

func NewIngestCommand(cfg *config.Config) *IngestCommand {
	return &IngestCommand{cfg: cfg, out: os.Stdout}
}

func (cmd *IngestCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("ingest", flag.ExitOnError)

	fs.BoolVar(&cmd.JSON, "json", false, "Print quotes as a JSON array")
	fs.StringVar(&cmd.PDFExtractor, "pdf-extractor", cmd.cfg.Library.PDFExtractor, "PDF text extractor: pdftotext or native")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s ingest [options] <file>...\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Parse quotes from .txt, .csv, .docx and .pdf files.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ingest ./_data/DogQuotes/DogQuotesTXT.txt\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s ingest -json -pdf-extractor native quotes.pdf quotes.csv\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd.Files = fs.Args()
	if len(cmd.Files) == 0 {
		fs.Usage()
		return fmt.Errorf("at least one file is required")
	}

	return nil
}

func (cmd *IngestCommand) Run() error {
	libCfg := cmd.cfg.Library
	libCfg.PDFExtractor = cmd.PDFExtractor

	dispatcher, err := services.NewDispatcher(libCfg)
	if err != nil {
		return err
	}

	found, err := dispatcher.ParseAll(context.Background(), cmd.Files...)
	if err != nil {
		return err
	}

	if cmd.JSON {
		enc := json.NewEncoder(cmd.out)
		enc.SetIndent("", "  ")
		return enc.Encode(found)
	}

	for _, q := range found {
		fmt.Fprintln(cmd.out, q.String())
	}
	return nil
}
