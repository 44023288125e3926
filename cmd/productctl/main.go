// Command productctl manages products through the product service gRPC API.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/abgdnv/productstore/internal/cli"
	"github.com/abgdnv/productstore/pkg/bootstrap"
	"github.com/abgdnv/productstore/pkg/config/configloader"
)

const serviceName = "productctl"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, cli.ErrUsage) {
			fmt.Fprint(os.Stderr, cli.Usage())
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := configloader.Load[*cli.Config](serviceName, configloader.WithDefaults(cli.Defaults()))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := bootstrap.NewLoggerTo(os.Stderr, cfg.Log.Level)
	logger.Debug("Configuration loaded", "config", cfg.String())

	client, conn, err := cli.Dial(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := conn.Close(); err != nil {
			logger.Warn("Failed to close gRPC connection", "error", err)
		}
	}()

	return cli.Run(ctx, client, args, os.Stdout)
}
