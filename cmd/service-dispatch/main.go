// Command service-dispatch serves the dispatch HTTP API.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"ecodeli-dispatch/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	container := app.MustBuildContainer(ctx)
	app.NewRunner().MustRun(container)
}
