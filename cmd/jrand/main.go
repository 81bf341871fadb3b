package main

import (
	"context"
	"flag"
	"os"

	"github.com/herabit/jrand/internal/platform/config"
	"github.com/herabit/jrand/internal/platform/otel"
	"github.com/herabit/jrand/internal/tools/randgen"
)

func main() {
	ctx := context.Background()

	cfg, err := randgen.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}

	shutdown, err := otel.Setup(ctx, "jrand")
	if err != nil {
		config.Exitf("setup telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			config.Exitf("shutdown telemetry: %v", err)
		}
	}()

	if err := randgen.Run(ctx, cfg, os.Stdout); err != nil {
		config.Exitf("draw values: %v", err)
	}
}
