package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Radek987976/hyperbare-manager/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT, syscall.SIGTERM,
	)
	defer cancel()

	a, err := app.New(ctx)
	if err != nil {
		log.Fatalf("failed to create the application: %v", err)
	}

	if err := a.Run(ctx); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}
