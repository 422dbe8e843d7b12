package engine

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/cxm940188/kafka-ui/internal/config"
	"github.com/cxm940188/kafka-ui/internal/cursorstore"
	"github.com/cxm940188/kafka-ui/internal/emitter"
	"github.com/cxm940188/kafka-ui/internal/logging"
	"github.com/cxm940188/kafka-ui/internal/pipeline"
	"github.com/cxm940188/kafka-ui/internal/serde"
	"github.com/cxm940188/kafka-ui/internal/telemetry"
	"github.com/cxm940188/kafka-ui/internal/transport"
	"github.com/cxm940188/kafka-ui/source/kafka"
)

type Option func(*options)

type options struct {
	connect emitter.Connector
}

// WithConnector replaces the driver named in the kafka config.
func WithConnector(c emitter.Connector) Option { return func(o *options) { o.connect = c } }

// Bootstrap starts every component. The startup query, if any, runs under ctx.
func Bootstrap(ctx context.Context, cfg config.Engine, opts ...Option) (*Engine, error) {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	e := &Engine{cfg: cfg, log: logging.L()}
	ok := false
	defer func() {
		if !ok {
			if e.transport != nil {
				e.transport.Kill()
			}
			e.close()
		}
	}()

	// 1. log connection
	kc, err := config.LoadKafkaConfig(cfg.KafkaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka config: %w", err)
	}
	connect := o.connect
	if connect == nil {
		connect = func(ctx context.Context) (kafka.Client, error) { return kafka.NewClient(ctx, kc) }
	}

	// 2. cursor store
	if e.store, err = cursorstore.Open(ctx, cfg.CursorStore); err != nil {
		return nil, fmt.Errorf("cursor store: %w", err)
	}

	// 3. serde plugins
	if len(cfg.SerdePlugins) > 0 {
		if e.plugins, err = serde.LoadPlugins(ctx, cfg.SerdePlugins); err != nil {
			return nil, err
		}
		e.log.Info("serde plugins loaded", "serdes", e.plugins.Names())
	}

	// 4. metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := telemetry.NewMetrics(reg)
	if cfg.MetricsPort > 0 {
		e.metrics = telemetry.Expose(cfg.MetricsPort, reg)
	}

	// 5. transport server
	svc := transport.NewService(connect, kc.Polling, e.store, transport.WithRecorder(metrics))
	if e.transport, err = transport.StartServer(cfg.GRPCPort, svc); err != nil {
		return nil, fmt.Errorf("transport: %w", err)
	}

	// 6. startup query
	if cfg.QueryFile != "" {
		e.runner, err = pipeline.Compile(cfg.QueryFile,
			pipeline.WithStore(e.store),
			pipeline.WithMetrics(metrics),
			pipeline.WithConnector(connect),
		)
		if err != nil {
			return nil, fmt.Errorf("pipeline: %w", err)
		}
		if err := e.runner.Start(ctx); err != nil {
			return nil, err
		}
	}

	ok = true
	e.log.Info("engine ready", "grpc", e.transport.Addr().String(), "metrics_port", cfg.MetricsPort, "cursor_store", cfg.CursorStore.Driver)
	return e, nil
}
