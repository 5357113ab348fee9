package main

import (
	"context"
	"fmt"
	"os"

	"frankfurter/internal/application"
	"frankfurter/internal/bootstrap"
	"frankfurter/internal/cli"
	"frankfurter/internal/config"

	"github.com/joho/godotenv"
)

func init() { _ = godotenv.Load() }

func main() {
	ctx := context.Background()
	cleanup := func() {}

	root := cli.NewRootCommand(func(verbose bool) (*application.FXRatesService, error) {
		cfg := config.Load()
		if verbose {
			cfg.Quiet = false
		}
		svc, done, err := bootstrap.InitService(ctx, cfg)
		if err != nil {
			return nil, err
		}
		cleanup = done
		return svc, nil
	})

	err := root.ExecuteContext(ctx)
	cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, "fx:", err)
		os.Exit(1)
	}
}
