// Command generate_demo writes the sample dog library: quote files in every
// supported format and a few placeholder photos.
// Usage: go run cmd/generate_demo/main.go [-dir ./_data] [-images 3]
package main

import (
	"flag"
	"log"

	"github.com/mrlokans/memegen/internal/demo"
)

const defaultDataDir = "./_data"

func main() {
	dir := flag.String("dir", defaultDataDir, "directory to write the sample library into")
	images := flag.Int("images", demo.DefaultImageCount, "number of placeholder photos to write")
	flag.Parse()

	if *images < 0 {
		log.Fatalf("-images must not be negative, got %d", *images)
	}

	log.Printf("Generating sample library at %s...", *dir)

	manifest, err := demo.Generate(*dir, *images)
	if err != nil {
		log.Fatalf("Failed to generate sample library: %v", err)
	}

	for _, path := range manifest.QuoteFiles {
		log.Printf("Wrote quotes: %s", path)
	}
	log.Printf("Wrote %d photos to %s", len(manifest.Images), *dir)
	log.Printf("Sample library generated with %d quotes", len(demo.Quotes()))
}
