// Command service-dispatch-worker consumes planned-route events from Kafka
// and matches each route against open delivery requests.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"ecodeli-dispatch/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.NewWorkerRunner().MustRun(app.MustBuildWorkerContainer(ctx))
}
