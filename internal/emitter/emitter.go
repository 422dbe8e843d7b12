// Package emitter reads a bounded slice of a partitioned log, forward or
// backward, and streams decoded records to a Sink.
package emitter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cxm940188/kafka-ui/internal/logging"
	"github.com/cxm940188/kafka-ui/internal/serde"
	"github.com/cxm940188/kafka-ui/source/kafka"
)

// Connector opens the log connection a single run owns.
type Connector func(ctx context.Context) (kafka.Client, error)

// Predicate decides whether a decoded message is emitted.
type Predicate func(*Message) (bool, error)

func MatchAll(*Message) (bool, error) { return true, nil }

// Request describes one run. Filter, Decoder and Throttler are optional.
type Request struct {
	Direction Direction
	Position  Position
	Limit     int
	Filter    Predicate
	Decoder   serde.Decoder
	Throttler Throttler
}

type Emitter struct {
	connect  Connector
	req      Request
	settings Settings
	rec      Recorder
	log      *slog.Logger
}

type Option func(*Emitter)

func WithSettings(s Settings) Option { return func(e *Emitter) { e.settings = s } }

func WithRecorder(r Recorder) Option { return func(e *Emitter) { e.rec = r } }

func WithLogger(l *slog.Logger) Option { return func(e *Emitter) { e.log = l } }

// Create prepares a run. Nothing is validated or connected until Run.
func Create(connect Connector, req Request, opts ...Option) *Emitter {
	e := &Emitter{
		connect:  connect,
		req:      req,
		settings: DefaultSettings(),
		rec:      NopRecorder{},
	}
	for _, o := range opts {
		o(e)
	}
	e.settings = e.settings.normalized()
	if e.log == nil {
		e.log = logging.L()
	}
	if e.req.Filter == nil {
		e.req.Filter = MatchAll
	}
	if e.req.Throttler == nil {
		e.req.Throttler = Noop()
	}
	if e.req.Decoder == nil {
		// String/String is always registered.
		e.req.Decoder, _ = serde.NewDecoder("", "")
	}
	return e
}

func (e *Emitter) validate() error {
	if err := e.req.Position.Validate(); err != nil {
		return err
	}
	switch e.req.Direction {
	case Forward, Backward:
	default:
		return &ValidationError{Field: "direction", Reason: fmt.Sprintf("unknown direction %q", e.req.Direction)}
	}
	if !e.req.Direction.accepts(e.req.Position.Mode) {
		return &ValidationError{Field: "mode", Reason: fmt.Sprintf("%s cannot be used with %s", e.req.Position.Mode, e.req.Direction)}
	}
	if e.req.Limit <= 0 {
		return &ValidationError{Field: "limit", Reason: "must be positive"}
	}
	if e.connect == nil {
		return &ValidationError{Field: "connector", Reason: "is required"}
	}
	if e.req.Decoder == nil {
		return &ValidationError{Field: "decoder", Reason: "is required"}
	}
	return nil
}

// Run drives one run to completion, writing events to sink and closing it on
// return. It returns the cursor when the limit was reached, and the error
// carried by the terminal ERROR event, if any. A cancelled run returns
// (nil, nil) and emits no terminal event.
func (e *Emitter) Run(ctx context.Context, sink *Sink) (*Cursor, error) {
	defer sink.close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-sink.Detached():
			cancel()
		case <-ctx.Done():
		}
	}()

	r := newRun(ctx, e, sink)
	return r.execute()
}

// Stream starts Run in its own goroutine and returns the sink it feeds. The
// cursor, if any, arrives in the DONE summary.
func (e *Emitter) Stream(ctx context.Context, buffer int) *Sink {
	s := NewSink(buffer)
	go func() { _, _ = e.Run(ctx, s) }()
	return s
}
