package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/idilsaglam/lists/internal/cli"
	"github.com/idilsaglam/lists/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.New().ExecuteContext(ctx); err != nil {
		ui.Fail(err.Error())
		return 1
	}
	return 0
}
