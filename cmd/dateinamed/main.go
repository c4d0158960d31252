// Command dateinamed runs the HTTP service. It is shorthand for
// "dateiname serve" and accepts the same flags.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmccarthy619/file-name-generator/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	args := append([]string{"serve"}, os.Args[1:]...)
	os.Exit(cli.NewApp().Run(ctx, args))
}
