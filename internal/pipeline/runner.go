// Package pipeline runs a query file end to end: one tail run whose events
// are fanned out to the configured sinks.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/cxm940188/kafka-ui/internal/cursorstore"
	"github.com/cxm940188/kafka-ui/internal/emitter"
	"github.com/cxm940188/kafka-ui/internal/logging"
	"github.com/cxm940188/kafka-ui/internal/query"
	"github.com/cxm940188/kafka-ui/internal/serde"
	"github.com/cxm940188/kafka-ui/internal/telemetry"
	"github.com/cxm940188/kafka-ui/sink"
	"github.com/cxm940188/kafka-ui/source/kafka"
)

const defaultEventBuffer = 256

type namedSink struct {
	name string
	sink.Adapter
}

// Result describes a finished run. CursorID is set when the run stopped on
// its limit and the cursor was stored.
type Result struct {
	Summary  *emitter.Summary
	Cursor   *emitter.Cursor
	CursorID string
}

type Runner struct {
	connect   emitter.Connector
	polling   kafka.PollingCfg
	query     query.Query
	store     cursorstore.Store
	ownsStore bool
	sinks     []namedSink
	plugins   *serde.Plugins
	metrics   *telemetry.Metrics
	out       io.Writer
	log       *slog.Logger
	buffer    int

	done   chan struct{}
	result Result
	err    error
	once   sync.Once
}

type Option func(*Runner)

// WithConnector replaces the driver named in the kafka config.
func WithConnector(c emitter.Connector) Option { return func(r *Runner) { r.connect = c } }

// WithStore shares a cursor store the caller keeps ownership of.
func WithStore(s cursorstore.Store) Option { return func(r *Runner) { r.store = s } }

func WithMetrics(m *telemetry.Metrics) Option { return func(r *Runner) { r.metrics = m } }

// WithOutput redirects the stdout sink.
func WithOutput(w io.Writer) Option { return func(r *Runner) { r.out = w } }

func WithLogger(l *slog.Logger) Option { return func(r *Runner) { r.log = l } }

// WithEventBuffer sizes the channel between the run and the sinks.
func WithEventBuffer(n int) Option { return func(r *Runner) { r.buffer = n } }

func NewRunner(opts ...Option) *Runner {
	r := &Runner{log: logging.L(), buffer: defaultEventBuffer}
	for _, o := range opts {
		o(r)
	}
	return r
}

func (r *Runner) AddSink(name string, s sink.Adapter) {
	r.sinks = append(r.sinks, namedSink{name: name, Adapter: s})
}
func (r *Runner) SetConnector(c emitter.Connector) { r.connect = c }
func (r *Runner) SetQuery(q query.Query)           { r.query = q }
func (r *Runner) SetPolling(p kafka.PollingCfg)    { r.polling = p }

// Resume makes the next Run continue from a stored cursor.
func (r *Runner) Resume(id string) { r.query.Resume = id }

// SetStore installs the cursor store; owned stores are closed by Close.
func (r *Runner) SetStore(s cursorstore.Store, owned bool) {
	r.store, r.ownsStore = s, owned
}

/*──────── event routing ───────*/
func (r *Runner) pushEvent(ev emitter.Event) error {
	for _, s := range r.sinks {
		if err := s.Push(ev); err != nil {
			if r.metrics != nil {
				r.metrics.SinkErrors.WithLabelValues(s.name).Inc()
			}
			return fmt.Errorf("sink %s: %w", s.name, err)
		}
	}
	return nil
}

// Run executes the query once and blocks until every event reached the sinks.
// A failing sink detaches the run; its error is returned.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	if r.connect == nil {
		return Result{}, errors.New("runner: no connector configured")
	}
	if len(r.sinks) == 0 {
		return Result{}, errors.New("runner: no sinks configured")
	}
	b, err := r.query.Build(ctx, r.store, r.polling)
	if err != nil {
		return Result{}, err
	}

	opts := []emitter.Option{
		emitter.WithSettings(b.Settings),
		emitter.WithLogger(r.log.With("topic", b.Request.Position.Topic)),
	}
	if r.metrics != nil {
		opts = append(opts, emitter.WithRecorder(r.metrics))
	}
	em := emitter.Create(r.connect, b.Request, opts...)

	type outcome struct {
		cursor *emitter.Cursor
		err    error
	}
	es := emitter.NewSink(r.buffer)
	finished := make(chan outcome, 1)
	go func() {
		c, err := em.Run(ctx, es)
		finished <- outcome{c, err}
	}()

	var res Result
	var sinkErr error
	for ev := range es.Events() {
		if ev.Type == emitter.EventDone {
			res.Summary = ev.Done
		}
		if sinkErr != nil {
			continue
		}
		if err := r.pushEvent(ev); err != nil {
			r.log.Error("sink failed, detaching", "err", err)
			sinkErr = err
			es.Detach()
		}
	}
	out := <-finished
	if sinkErr != nil {
		return res, sinkErr
	}
	if out.err != nil {
		return res, out.err
	}

	res.Cursor = out.cursor
	if res.Cursor != nil && r.store != nil {
		id, err := r.store.Put(ctx, b.Entry(res.Cursor))
		if err != nil {
			return res, fmt.Errorf("store cursor: %w", err)
		}
		res.CursorID = id
		r.log.Info("cursor stored", "id", id, "topic", res.Cursor.Topic)
	}
	return res, nil
}

// Start runs the query in the background; Wait returns its outcome.
func (r *Runner) Start(ctx context.Context) error {
	if r.connect == nil {
		return errors.New("runner: no connector configured")
	}
	r.done = make(chan struct{})
	go func() {
		defer close(r.done)
		r.result, r.err = r.Run(ctx)
		if r.err != nil {
			r.log.Error("query run failed", "err", r.err)
		}
	}()
	return nil
}

func (r *Runner) Wait() (Result, error) {
	if r.done == nil {
		return Result{}, errors.New("runner: not started")
	}
	<-r.done
	return r.result, r.err
}

// Close releases sinks, serde plugins and an owned cursor store. Idempotent.
func (r *Runner) Close() error {
	var errs []error
	r.once.Do(func() {
		for _, s := range r.sinks {
			if err := s.Close(); err != nil {
				errs = append(errs, fmt.Errorf("sink %s: %w", s.name, err))
			}
		}
		if err := r.plugins.Close(); err != nil {
			errs = append(errs, fmt.Errorf("serde plugins: %w", err))
		}
		if r.ownsStore && r.store != nil {
			errs = append(errs, r.store.Close())
		}
	})
	return errors.Join(errs...)
}
