package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Meme
		Library
		UI
		Retention
		Security
		Download
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Meme struct {
		OutputDir       string
		FontPath        string // Empty means the bundled Go Regular font
		FontSize        float64
		Format          string // png, jpeg or gif
		MaxWidth        int
		MaxCharsPerLine int
	}
	Library struct {
		QuoteFiles    []string
		ImagesDir     string
		PDFExtractor  string // pdftotext or native
		PdftotextPath string
	}
	UI struct {
		TemplatesPath string
		StaticPath    string
	}
	Retention struct {
		MaxAge   time.Duration // Zero disables the sweep
		Schedule string        // Cron format: "*/15 * * * *" = every 15 minutes
	}
	Security struct {
		CSRFSecret    string // Generated at startup if empty
		SecureCookies bool   // Set to false for local dev without HTTPS
	}
	Download struct {
		Timeout  time.Duration
		MaxBytes int64
	}
)

// splitList parses a comma-separated value, dropping blank entries.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("templates_path", "./templates")
	v.SetDefault("static_path", "./static")

	// Meme rendering defaults
	v.SetDefault("meme_output_dir", DefaultOutputDir)
	v.SetDefault("meme_font_path", "")
	v.SetDefault("meme_font_size", 30)
	v.SetDefault("meme_format", "png")
	v.SetDefault("meme_max_width", 500)
	v.SetDefault("meme_max_chars_per_line", 40)

	// Quote and image sources
	v.SetDefault("quote_files", strings.Join(DefaultQuoteFiles, ","))
	v.SetDefault("images_dir", DefaultImagesDir)
	v.SetDefault("meme_pdf_extractor", PDFExtractorPdftotext)
	v.SetDefault("pdftotext_path", "pdftotext")

	v.SetDefault("meme_retention", "24h")
	v.SetDefault("meme_retention_schedule", "*/15 * * * *")

	v.SetDefault("csrf_secret", "")
	v.SetDefault("secure_cookies", false)

	v.SetDefault("image_download_timeout", "10s")
	v.SetDefault("image_download_max_bytes", 10<<20) // 10 MiB

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Meme: Meme{
			OutputDir:       v.GetString("MEME_OUTPUT_DIR"),
			FontPath:        v.GetString("MEME_FONT_PATH"),
			FontSize:        v.GetFloat64("MEME_FONT_SIZE"),
			Format:          v.GetString("MEME_FORMAT"),
			MaxWidth:        v.GetInt("MEME_MAX_WIDTH"),
			MaxCharsPerLine: v.GetInt("MEME_MAX_CHARS_PER_LINE"),
		},
		Library: Library{
			QuoteFiles:    splitList(v.GetString("QUOTE_FILES")),
			ImagesDir:     v.GetString("IMAGES_DIR"),
			PDFExtractor:  strings.ToLower(v.GetString("MEME_PDF_EXTRACTOR")),
			PdftotextPath: v.GetString("PDFTOTEXT_PATH"),
		},
		UI: UI{
			TemplatesPath: v.GetString("TEMPLATES_PATH"),
			StaticPath:    v.GetString("STATIC_PATH"),
		},
		Retention: Retention{
			MaxAge:   v.GetDuration("MEME_RETENTION"),
			Schedule: v.GetString("MEME_RETENTION_SCHEDULE"),
		},
		Security: Security{
			CSRFSecret:    v.GetString("CSRF_SECRET"),
			SecureCookies: v.GetBool("SECURE_COOKIES"),
		},
		Download: Download{
			Timeout:  v.GetDuration("IMAGE_DOWNLOAD_TIMEOUT"),
			MaxBytes: v.GetInt64("IMAGE_DOWNLOAD_MAX_BYTES"),
		},
	}
}
