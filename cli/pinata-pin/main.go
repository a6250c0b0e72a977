package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	cliruntime "github.com/tomasbasham/cli-runtime"

	"github.com/web3-storage/go-pinata-client/cli/pinata-pin/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	command := cmd.NewRootCommand()
	command.SetContext(ctx)
	code := cliruntime.Run(command)
	stop()
	if code != 0 {
		os.Exit(code)
	}
}
