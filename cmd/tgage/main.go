package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tgage/internal/cli"
	"tgage/internal/platform/config"
)

func main() {
	// a missing .env is fine, a broken one is not
	if err := config.LoadDotenv(); err != nil {
		fmt.Fprintln(os.Stderr, "tgage:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.Execute(ctx, cli.Env{Out: os.Stdout, Err: os.Stderr, Cfg: config.New()}, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "tgage:", err)
		stop()
		os.Exit(1)
	}
}
