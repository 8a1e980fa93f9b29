package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hamzaelsherif03/Calculator/alert"
	"github.com/hamzaelsherif03/Calculator/pkg/logger"
	"github.com/hamzaelsherif03/Calculator/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard and JSON API",
	Long: `Start the HTTP server: an HTML dashboard on / and a JSON API under
/api. Parameters can be updated live; presets and sessions persist to the
SQLite store.

Examples:
  gridcalc serve
  gridcalc serve --listen :9000 --db ./gold.db`,
	RunE: runServe,
}

var serveListen string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveListen, "listen", "", "listen address (default from config, :8087)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveListen != "" {
		cfg.Web.Listen = serveListen
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	manager := alert.NewManager(log, alert.NewLogChannel(log))
	if cfg.Alert.Bell {
		manager.Register(alert.NewBellChannel(os.Stderr))
	}
	watcher := alert.NewWatcher(manager, cfg.Alert.WarnDistance)

	srv, err := web.NewServer(web.ServerConfig{
		Addr:    cfg.Web.Listen,
		Params:  cfg.Grid,
		Options: cfg.Report,
		Store:   store,
		Watcher: watcher,
		Log:     log,
	})
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	fmt.Printf("Dashboard: http://localhost%s\n", cfg.Web.Listen)
	fmt.Printf("Store: %s\n", cfg.Store.DBPath)
	fmt.Println("Press Ctrl+C to stop.")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped", zap.String("addr", cfg.Web.Listen))
	return nil
}
