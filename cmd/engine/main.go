package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/cxm940188/kafka-ui/internal/config"
	"github.com/cxm940188/kafka-ui/internal/engine"
	"github.com/cxm940188/kafka-ui/internal/logging"
)

func main() {
	path := flag.String("config", "engine.yml", "engine config (env KUI_ENGINE__* overrides)")
	flag.Parse()

	logging.InitFromEnv()
	cfg, err := config.LoadEngineConfig(*path)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e, err := engine.Bootstrap(ctx, cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	if err := e.Run(ctx); err != nil {
		log.Fatalf("engine: %v", err)
	}
}
