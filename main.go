package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"healthdash/adapters/dataset"
	"healthdash/domain/records"
	"healthdash/internal/config"
	"healthdash/internal/signals"
	"healthdash/internal/testkit"
	"healthdash/internal/views"
	"healthdash/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Load-time failures are fatal: never serve a partially loaded table
	table, err := loadTable(appConfig)
	if err != nil {
		log.Fatalf("Failed to load records: %v", err)
	}
	log.Printf("Loaded %d records from %s (dataset %s)", table.Len(), table.Source(), table.ID())

	dispatcher := signals.NewDispatcher(table)
	views.RegisterAll(dispatcher, table)

	app, err := ui.NewApp(table, dispatcher, ui.Config{Debug: appConfig.Server.Debug})
	if err != nil {
		log.Fatalf("Failed to initialize UI: %v", err)
	}

	if err := serve(app, appConfig.Server.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// loadTable reads the configured data file, falling back to synthetic
// records when none is set
func loadTable(appConfig *config.Config) (*records.Table, error) {
	if appConfig.Data.File == "" {
		log.Printf("No data file configured, using synthetic records")
		return testkit.SyntheticTable(), nil
	}
	log.Printf("Using data file: %s", appConfig.Data.File)
	return dataset.Load(appConfig.Data.File)
}

// serve runs the HTTP server until an interrupt, then shuts down
// gracefully
func serve(app *ui.App, port string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:    ":" + port,
		Handler: app.Handler(),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Dashboard listening on http://localhost:%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
