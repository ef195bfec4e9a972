package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"fetcharr/internal/cfg"
	"fetcharr/internal/database"
	"fetcharr/internal/domain/keys"
	"fetcharr/internal/extraction"
	"fetcharr/internal/repo"
	"fetcharr/internal/scraper"
	"fetcharr/internal/server"
	"fetcharr/internal/utils/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var startTime time.Time

func init() {
	startTime = time.Now()
	// Local overrides, absence is fine.
	_ = godotenv.Load()
}

// main is the program entrypoint.
func main() {
	if err := cfg.InitCommands(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := cfg.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if !viper.GetBool(keys.Execute) {
		return // Exit early if not meant to execute (e.g. help invoked)
	}

	settings, err := cfg.GetSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := logging.SetupLogging(viper.GetString(keys.LogDir)); err != nil {
		fmt.Printf("Notice: Log file was not created\nReason: %s\n", err)
	}

	logging.I("Fetcharr started at: %v", startTime.Format("2006-01-02 15:04:05.00 MST"))

	db, err := database.InitDB(settings.DBFile)
	if err != nil {
		logging.E("Failed to initialize database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	store := repo.InitStores(db.DB)

	var cookies extraction.CookieProvider
	if settings.CookieSource != "" {
		cookies = scraper.NewCookieManager(filepath.Join(settings.TempDir, "cookies"))
	}

	extractor := extraction.New(settings, cookies)
	previewer := scraper.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.StartServer(ctx, store, extractor, previewer, settings); err != nil {
		logging.E("Server error: %v", err)
		os.Exit(1)
	}

	logging.P("Fetcharr finished at: %v", time.Now().Format("2006-01-02 15:04:05.00 MST"))
}
