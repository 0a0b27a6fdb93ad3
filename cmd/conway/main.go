// Command conway checks identities between combinatorial games.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/roach88/conway/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.NewRootCommand()
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		format, _ := cmd.PersistentFlags().GetString("format")
		cli.WriteError(os.Stderr, format, err)
	}
	stop()
	os.Exit(cli.GetExitCode(err))
}
