package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/unnativehicles2009-web/Open-RO/internal/api"
	"github.com/unnativehicles2009-web/Open-RO/internal/cache"
	"github.com/unnativehicles2009-web/Open-RO/internal/config"
	"github.com/unnativehicles2009-web/Open-RO/internal/logging"
	"github.com/unnativehicles2009-web/Open-RO/internal/server"
	"github.com/unnativehicles2009-web/Open-RO/internal/source"
	"github.com/unnativehicles2009-web/Open-RO/internal/util"
)

var (
	port       = flag.Int("port", 0, "listen port (overrides only a defaulted config port)")
	noBrowser  = flag.Bool("no-browser", false, "do not open the dashboard in a browser")
	configPath = flag.String("config", "", "config file (default: openro.toml beside the executable)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Unnati Vehicles - Open RO Dashboard")
	fmt.Println("==========================================")

	cfg, info, err := config.LoadConfigWithInfo(*configPath)
	if err != nil {
		fmt.Printf("config load failed, using defaults: %v\n", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	if *port > 0 && !info.PortSpecified {
		cfg.Port = *port
	}
	if *noBrowser {
		cfg.AutoOpenBrowser = false
	}

	logging.Setup(cfg.LogLevel, cfg.LogFormat)
	if info.File != "" {
		slog.Info("config loaded", "file", info.File)
	}

	c := cache.New(buildSource(cfg), cfg.CacheTTL())

	// Warm the cache so the first page paints with data. A failed fetch
	// only logs; the dashboard starts and retries per request.
	warmCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	c.ForceReload(warmCtx)
	cancel()

	srv := server.NewServer(cfg.Addr(), api.NewHandler(c))

	go func() {
		slog.Info("server listening", "addr", cfg.Addr())
		if err := srv.Start(); err != nil {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	url := fmt.Sprintf("http://localhost:%d", cfg.Port)
	if cfg.AutoOpenBrowser && !config.IsRender() {
		fmt.Printf("Opening browser: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("Could not open a browser, visit %s manually\n", url)
		}
	} else {
		fmt.Printf("Dashboard: %s\n", url)
	}

	fmt.Println("\nPress Ctrl+C to stop...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}

// buildSource picks the dataset origin. Anything but an explicit
// "excel" means the published Google Sheet.
func buildSource(cfg *config.AppConfig) source.Source {
	if cfg.Source == "excel" {
		return source.NewExcelSource(cfg.ExcelPath, cfg.ExcelSheet)
	}
	return source.NewSheetSource(cfg.SheetCSVURL)
}
