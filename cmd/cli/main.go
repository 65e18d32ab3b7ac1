package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/pagebound/bookclub/internal/buildinfo"
	"github.com/pagebound/bookclub/internal/client/cli"
	"github.com/pagebound/bookclub/internal/client/config"
	"github.com/pagebound/bookclub/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	// Diagnostics go to stderr so they do not interleave with the REPL.
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
