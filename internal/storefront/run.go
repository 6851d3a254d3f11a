// Package storefront wires the catalog, configurator and session store into
// the HTTP API and owns the service lifecycle.
package storefront

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"shekinah-storefront/internal/config"
	"shekinah-storefront/pkg/logger"
)

// ErrHelp signals that usage was printed and no service should start.
var ErrHelp = errors.New("help requested")

// Execute parses flags, builds the server and runs it until a signal or a
// fatal error stops it.
func Execute(ctx context.Context, mylog *logger.Logger, args []string) error {
	newCtx, stop := signal.NotifyContext(ctx, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	showHelp := fs.Bool("help", false, "Show help")
	port := fs.Int("port", 0, "Port to run the storefront service")

	if err := fs.Parse(args); err != nil {
		mylog.Error("", "command_parse_failed", "Invalid command received", err)
		return errors.New("cannot parse arguments")
	}
	if *showHelp {
		fs.Usage()
		return ErrHelp
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		mylog.Error("", "config_load_failed", "Failed to load configuration", err)
		return err
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if cfg.Port <= 0 || cfg.Port >= 65536 {
		return fmt.Errorf("port must be in [1: 65535]: %d", cfg.Port)
	}

	server := NewServer(cfg, mylog)

	g, gctx := errgroup.WithContext(newCtx)
	g.Go(func() error {
		return server.Run()
	})
	g.Go(func() error {
		return server.store.RunJanitor(gctx, cfg.JanitorInterval)
	})
	g.Go(func() error {
		<-gctx.Done()
		mylog.Info("", "shutdown_signal_received", "Shutdown signal received")
		return server.Stop(context.Background())
	})

	if err := g.Wait(); err != nil {
		mylog.Error("", "storefront_failed", "Service exited with error", err)
		return err
	}
	mylog.Info("", "server_stopped", "Service exited normally")
	return nil
}
