package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mrlokans/memegen/internal/config"
	"github.com/mrlokans/memegen/internal/library"
	"github.com/mrlokans/memegen/internal/services"
)

// GenerateCommand renders a single meme and prints its path.
type GenerateCommand struct {
	ImagePath string
	Body      string
	Author    string
	OutputDir string
	Format    string
	MaxWidth  int

	cfg *config.Config
	out io.Writer
}

func NewGenerateCommand(cfg *config.Config) *GenerateCommand {
	return &GenerateCommand{cfg: cfg, out: os.Stdout}
}

func (cmd *GenerateCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)

	fs.StringVar(&cmd.ImagePath, "path", "", "Path to an image file (random image from IMAGES_DIR if omitted)")
	fs.StringVar(&cmd.Body, "body", "", "Quote body to add to the image (random quote if omitted)")
	fs.StringVar(&cmd.Author, "author", "", "Quote author, required when -body is set")
	fs.StringVar(&cmd.OutputDir, "output", cmd.cfg.Meme.OutputDir, "Directory to write the meme into")
	fs.StringVar(&cmd.Format, "format", cmd.cfg.Meme.Format, "Output format: png, jpeg or gif")
	fs.IntVar(&cmd.MaxWidth, "max-width", cmd.cfg.Meme.MaxWidth, "Maximum width of the generated image in pixels")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s generate [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Generate a captioned image. Anything not given is picked at random from\n")
		fmt.Fprintf(os.Stderr, "the images in IMAGES_DIR and the quotes in QUOTE_FILES.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s generate\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s generate -path ./dog.jpg -body \"To bork or not to bork\" -author Bork\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Body != "" && cmd.Author == "" {
		return services.ErrAuthorRequired
	}

	return nil
}

func (cmd *GenerateCommand) Run() error {
	ctx := context.Background()

	memeCfg := cmd.cfg.Meme
	memeCfg.OutputDir = cmd.OutputDir
	memeCfg.Format = cmd.Format

	engine, err := services.NewEngine(memeCfg)
	if err != nil {
		return fmt.Errorf("failed to create meme engine: %w", err)
	}

	// Only load what the flags leave open
	var quoteFiles []string
	if cmd.Body == "" {
		quoteFiles = cmd.cfg.Library.QuoteFiles
	}
	var imagesDir string
	if cmd.ImagePath == "" {
		imagesDir = cmd.cfg.Library.ImagesDir
	}

	dispatcher, err := services.NewDispatcher(cmd.cfg.Library)
	if err != nil {
		return err
	}
	lib, err := library.Load(ctx, dispatcher, quoteFiles, imagesDir, nil)
	if err != nil {
		return err
	}

	svc := services.NewMemeService(engine, lib, cmd.MaxWidth)
	result, err := svc.Generate(ctx, services.GenerateInput{
		ImagePath: cmd.ImagePath,
		Body:      cmd.Body,
		Author:    cmd.Author,
	})
	if err != nil {
		return fmt.Errorf("failed to generate meme: %w", err)
	}

	path := result.Path
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	fmt.Fprintln(cmd.out, path)
	return nil
}
