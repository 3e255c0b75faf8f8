package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/teaform/teaform/internal/demo"
)

func main() {
	os.Exit(run())
}

func run() int {
	flavor := flag.String("store", "", "state store flavor: memory, global, file, or redis (optional)")
	stateDir := flag.String("state-dir", "", "directory for the file flavor (optional)")
	redisURL := flag.String("redis", "", "redis URL for the redis flavor (optional)")
	noAutoReset := flag.Bool("no-auto-reset", false, "keep the draft after submit")
	logFile := flag.String("log", "", "append logs to this file (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := demo.Options{
		Flavor:      *flavor,
		StateDir:    *stateDir,
		RedisURL:    *redisURL,
		NoAutoReset: *noAutoReset,
		LogFile:     *logFile,
	}

	if err := demo.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "teaform-demo: %v\n", err)
		return 1
	}
	return 0
}
