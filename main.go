package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/filelog/cli"
	"github.com/ardnew/filelog/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		log.Slog().Error(
			"run failed",
			slog.Any("error", err),
		) // slog automatically uses LogValue()
		os.Exit(1)
	}
}
