package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/ytcommunity/scraper/internal/config"
	"github.com/ytcommunity/scraper/internal/dashboard"
	"github.com/ytcommunity/scraper/internal/domain"
	"github.com/ytcommunity/scraper/internal/scraper"
	"github.com/ytcommunity/scraper/internal/storage"
	"github.com/ytcommunity/scraper/internal/youtube"
)

func main() {
	// 1. Setup
	godotenv.Load()

	var (
		numPosts      int
		outputDir     string
		dashboardPort string
	)
	pflag.IntVarP(&numPosts, "num-posts", "n", 0, "number of posts to scrape (default: all)")
	pflag.StringVarP(&outputDir, "output", "o", ".", "output directory")
	pflag.StringVar(&dashboardPort, "dashboard-port", "", "serve charts for the finished scrape on this port")
	pflag.Parse()

	if pflag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <channel-id>\n", os.Args[0])
		pflag.PrintDefaults()
		os.Exit(2)
	}
	channelID := pflag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, nil)
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	// 2. Initialize Source (Using Factory)
	source, err := youtube.NewSource(cfg)
	if err != nil {
		logger.Error("Failed to initialize source", "error", err)
		os.Exit(1)
	}
	logger.Info("Source initialized", "mode", cfg.SourceMode)

	limit := scraper.Limit{}
	if numPosts > 0 {
		limit = scraper.LimitOf(numPosts)
	}

	// 3. Graceful Shutdown: an interrupt aborts at the next page boundary
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 4. Scrape
	posts, err := scraper.New(source).Run(ctx, channelID, limit)
	if err != nil {
		logger.Error("Scrape failed", "channel_id", channelID, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// 5. Persist
	result := domain.NewScrapeResult(channelID, posts, time.Now())
	writer := &storage.WriterService{Dir: outputDir}
	path, err := writer.Write(&result)
	if err != nil {
		logger.Error("Write failed", "path", outputDir, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully scraped %d posts\n", result.PostsCount)
	fmt.Printf("Results saved to: %s\n", path)

	// 6. Optional chart server for the run just written
	if dashboardPort != "" {
		logger.Info("Starting dashboard", "port", dashboardPort, "file", path)
		if err := dashboard.StartServer(path, dashboardPort); err != nil {
			logger.Error("Dashboard failed", "error", err)
			os.Exit(1)
		}
	}
}
