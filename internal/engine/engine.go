// Package engine wires the long-running tail server together.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/cxm940188/kafka-ui/internal/config"
	"github.com/cxm940188/kafka-ui/internal/cursorstore"
	"github.com/cxm940188/kafka-ui/internal/pipeline"
	"github.com/cxm940188/kafka-ui/internal/serde"
	"github.com/cxm940188/kafka-ui/internal/transport"
)

type Engine struct {
	cfg       config.Engine
	log       *slog.Logger
	transport *transport.Server
	runner    *pipeline.Runner
	store     cursorstore.Store
	plugins   *serde.Plugins
	metrics   *http.Server
}

func (e *Engine) Addr() net.Addr { return e.transport.Addr() }

// Run serves until ctx is done, then drains open streams for at most the
// configured shutdown timeout.
func (e *Engine) Run(ctx context.Context) error {
	served := make(chan error, 1)
	go func() { served <- e.transport.Serve() }()

	select {
	case err := <-served:
		e.close()
		return err
	case <-ctx.Done():
	}

	stopped := make(chan struct{})
	go func() {
		e.transport.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(e.cfg.ShutdownTimeout):
		e.log.Warn("shutdown timeout, closing open streams", "timeout", e.cfg.ShutdownTimeout)
		e.transport.Kill()
		<-stopped
	}
	<-served
	e.close()
	return nil
}

func (e *Engine) close() {
	if e.runner != nil {
		if _, err := e.runner.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			e.log.Warn("startup query", "err", err)
		}
		_ = e.runner.Close()
	}
	if e.metrics != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		_ = e.metrics.Shutdown(ctx)
		cancel()
	}
	if err := e.plugins.Close(); err != nil {
		e.log.Warn("close serde plugins", "err", err)
	}
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			e.log.Warn("close cursor store", "err", err)
		}
	}
}
