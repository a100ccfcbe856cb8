package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mrlokans/memegen/internal/config"
	"github.com/mrlokans/memegen/internal/download"
	http_controllers "github.com/mrlokans/memegen/internal/http"
	"github.com/mrlokans/memegen/internal/library"
	"github.com/mrlokans/memegen/internal/meme"
	"github.com/mrlokans/memegen/internal/scheduler"
	"github.com/mrlokans/memegen/internal/security"
	"github.com/mrlokans/memegen/internal/services"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// sessionLifetime bounds how long a visitor's recent memes are remembered.
const sessionLifetime = 24 * time.Hour

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill (no param) default sends syscall.SIGTERM, kill -2 is syscall.SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting memegen v%s", version)

	engine, err := services.NewEngine(cfg.Meme)
	if err != nil {
		log.Fatalf("Failed to initialize meme engine: %v", err)
	}
	log.Printf("Writing memes to %s as %s", engine.OutputDir(), engine.Format())

	dispatcher, err := services.NewDispatcher(cfg.Library)
	if err != nil {
		log.Fatalf("Failed to initialize quote ingestion: %v", err)
	}

	lib, err := library.Load(context.Background(), dispatcher, cfg.Library.QuoteFiles, cfg.Library.ImagesDir, nil)
	if err != nil {
		log.Printf("WARNING: Failed to load quote library: %v", err)
		lib = library.New(nil, nil, nil)
	}
	log.Printf("Loaded %d quotes and %d images", len(lib.Quotes()), len(lib.Images()))
	if len(lib.Quotes()) == 0 || len(lib.Images()) == 0 {
		log.Printf("WARNING: library is incomplete, random memes on / will be unavailable. Check QUOTE_FILES and IMAGES_DIR, or run generate_demo for a sample library.")
	}

	csrfSecret, generated, err := security.ParseSecret(cfg.Security.CSRFSecret)
	if err != nil {
		log.Fatalf("Failed to generate CSRF secret: %v", err)
	}
	if generated {
		log.Printf("Generated CSRF secret (set CSRF_SECRET to persist)")
	}

	sweeper := scheduler.NewRetentionSweeper(
		engine.OutputDir(),
		cfg.Retention.MaxAge,
		cfg.Retention.Schedule,
		meme.FormatPNG.Extension(), meme.FormatJPEG.Extension(), meme.FormatGIF.Extension(),
	)
	sweepCtx, sweepCancel := context.WithCancel(context.Background())
	if err := sweeper.Start(sweepCtx); err != nil {
		log.Fatalf("Failed to start meme retention: %v", err)
	}

	routerCfg := http_controllers.RouterConfig{
		Generator:     services.NewMemeService(engine, lib, cfg.Meme.MaxWidth),
		Fetcher:       download.NewFetcher(cfg.Download.Timeout, cfg.Download.MaxBytes),
		OutputDir:     engine.OutputDir(),
		TemplatesPath: cfg.UI.TemplatesPath,
		StaticPath:    cfg.UI.StaticPath,
		Version:       version,
		CSRFSecret:    csrfSecret,
		SecureCookies: cfg.Security.SecureCookies,
		Sessions:      security.NewSessionManager(sessionLifetime, cfg.Security.SecureCookies),
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		sweeper.Stop()
		sweepCancel()
	}

	Serve(router, cfg, onShutdown)
}
