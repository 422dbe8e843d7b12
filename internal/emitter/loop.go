package emitter

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/cxm940188/kafka-ui/source/kafka"
)

// direction is what differs between forward and backward runs; the polling
// loop itself is shared.
type direction interface {
	// resolve computes per-partition boundaries. Called once, before any poll.
	resolve(ctx context.Context, r *run, scope []int32) error
	// next seeks the client for the next traversal stage and returns its label.
	// done reports that every boundary has been traversed.
	next(r *run) (label string, done bool, err error)
	// take consumes one poll batch and returns how many records fell inside the
	// current stage. stop is set once the run must end.
	take(r *run, recs []kafka.Record) (inStage int, stop bool)
	// stageRead reports that the current stage holds no more unread offsets.
	stageRead() bool
	// idle handles EmptyPolls consecutive empty polls; end finishes the run.
	idle(r *run) (end bool)
	// flush emits whatever the stage buffered.
	flush(r *run) (stop bool)
	cursor() map[int32]int64
}

type run struct {
	ctx      context.Context
	e        *Emitter
	sink     *Sink
	cl       kafka.Client
	log      *slog.Logger
	settings Settings
	topic    string

	budget    int
	sum       Summary
	started   time.Time
	cancelled bool
}

func newRun(ctx context.Context, e *Emitter, sink *Sink) *run {
	topic := e.req.Position.Topic
	return &run{
		ctx:      ctx,
		e:        e,
		sink:     sink,
		settings: e.settings,
		topic:    topic,
		budget:   e.req.Limit,
		started:  time.Now(),
		log:      e.log.With("topic", topic, "direction", string(e.req.Direction)),
	}
}

func (r *run) execute() (*Cursor, error) {
	dir := r.e.req.Direction
	if err := r.e.validate(); err != nil {
		return nil, r.fail(err)
	}

	cl, err := r.e.connect(r.ctx)
	if err != nil {
		if r.ctx.Err() != nil {
			return nil, r.cancel()
		}
		return nil, r.fail(transportErr("connect", r.topic, err))
	}
	r.cl = cl
	defer func() {
		if err := cl.Close(); err != nil {
			r.log.Warn("close log client", "err", err)
		}
	}()

	var d direction
	if dir == Forward {
		d = &forward{}
	} else {
		d = &backward{}
	}

	scope, err := r.scope()
	if err == nil {
		err = d.resolve(r.ctx, r, scope)
	}
	if err != nil {
		if r.ctx.Err() != nil {
			return nil, r.cancel()
		}
		return nil, r.fail(err)
	}

	reason, err := r.loop(d)
	switch {
	case r.cancelled || r.ctx.Err() != nil:
		return nil, r.cancel()
	case err != nil:
		return nil, r.fail(err)
	}

	r.sum.Reason = reason
	var cur *Cursor
	if reason == StopBudget {
		cur = &Cursor{Topic: r.topic, Direction: dir, Next: d.cursor()}
		r.sum.Cursor = cur
	}
	r.sum.Elapsed = time.Since(r.started)
	sum := r.sum
	if !r.sink.send(r.ctx, Event{Type: EventDone, Done: &sum}) {
		return nil, r.cancel()
	}
	r.e.rec.ObserveRun(dir, OutcomeDone, sum)
	r.log.Debug("tail done", "reason", reason, "messages", sum.Messages, "polls", sum.Polls)
	return cur, nil
}

func (r *run) loop(d direction) (StopReason, error) {
	first := true
	var phase string
	for {
		label, done, err := d.next(r)
		if err != nil {
			return "", err
		}
		if first || (!done && label != phase) {
			if !r.emit(Event{Type: EventPhase, Phase: label}) {
				return "", nil
			}
			first, phase = false, label
		}
		if done {
			return StopExhausted, nil
		}

		empty := 0
		for !d.stageRead() {
			if !r.throttle() {
				return "", nil
			}
			recs, err := r.poll()
			if err != nil {
				return "", err
			}
			if r.cancelled {
				return "", nil
			}
			n, stop := d.take(r, recs)
			if stop {
				return r.stopReason(), nil
			}
			if n > 0 {
				empty = 0
				continue
			}
			empty++
			if empty >= r.settings.EmptyPolls {
				if d.idle(r) {
					return StopIdle, nil
				}
				empty = 0
			}
		}
		if d.flush(r) {
			return r.stopReason(), nil
		}
	}
}

func (r *run) stopReason() StopReason {
	if r.cancelled {
		return ""
	}
	return StopBudget
}

func (r *run) throttle() bool {
	wait := r.e.req.Throttler.BeforePoll()
	if wait <= 0 {
		return true
	}
	r.e.rec.ObserveThrottle(r.e.req.Direction, wait)
	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-r.ctx.Done():
		r.cancelled = true
		return false
	}
}

func (r *run) poll() ([]kafka.Record, error) {
	start := time.Now()
	recs, err := r.cl.Poll(r.ctx, r.settings.PollTimeout)
	if r.ctx.Err() != nil {
		r.cancelled = true
		return nil, nil
	}
	if err != nil {
		return nil, transportErr("poll", r.topic, err)
	}
	bytes := 0
	for _, rec := range recs {
		bytes += rec.Size()
	}
	r.sum.Polls++
	r.sum.BytesPolled += int64(bytes)
	r.e.req.Throttler.AfterPoll(len(recs), bytes)
	r.e.rec.ObservePoll(r.e.req.Direction, len(recs), bytes, time.Since(start))
	return recs, nil
}

// process decodes, filters and emits one record. It reports true when the
// run must stop, either because the budget is spent or the sink is gone.
func (r *run) process(rec kafka.Record) (stop bool) {
	dec, err := r.e.req.Decoder.Decode(rec.Key, rec.Value, rec.Headers)
	if err != nil {
		r.sum.Skipped++
		r.log.Warn("skipping undecodable record", "partition", rec.Partition, "offset", rec.Offset, "err", err)
		return false
	}
	msg := &Message{
		Topic:     rec.Topic,
		Partition: rec.Partition,
		Offset:    rec.Offset,
		Timestamp: rec.Timestamp,
		Decoded:   dec,
		Raw:       rec,
	}
	ok, err := r.e.req.Filter(msg)
	if err != nil {
		r.sum.FilterErrors++
		r.log.Debug("filter failed", "partition", rec.Partition, "offset", rec.Offset, "err", err)
		return false
	}
	if !ok {
		r.sum.Filtered++
		return false
	}
	if !r.emit(Event{Type: EventMessage, Message: msg}) {
		return true
	}
	r.sum.Messages++
	r.budget--
	return r.budget <= 0
}

func (r *run) emit(ev Event) bool {
	if !r.sink.send(r.ctx, ev) {
		r.cancelled = true
		return false
	}
	return true
}

func (r *run) fail(err error) error {
	r.sum.Elapsed = time.Since(r.started)
	r.log.Warn("tail failed", "err", err)
	r.sink.send(r.ctx, Event{Type: EventError, Err: err})
	r.e.rec.ObserveRun(r.e.req.Direction, OutcomeError, r.sum)
	return err
}

func (r *run) cancel() error {
	r.sum.Elapsed = time.Since(r.started)
	r.log.Debug("tail cancelled", "messages", r.sum.Messages)
	r.e.rec.ObserveRun(r.e.req.Direction, OutcomeCancelled, r.sum)
	return nil
}

// scope resolves the partitions a run covers and checks that offset modes
// have an offset for each of them.
func (r *run) scope() ([]int32, error) {
	pos := r.e.req.Position
	all, err := r.cl.Partitions(r.ctx, r.topic)
	if err != nil {
		return nil, transportErr("list partitions", r.topic, err)
	}
	slices.Sort(all)

	scope := all
	if want := pos.requested(); len(want) > 0 {
		for _, id := range want {
			if _, found := slices.BinarySearch(all, id); !found {
				return nil, &TransportError{Op: "resolve", Topic: r.topic, Partition: id, Offset: -1, Err: ErrUnknownPartition}
			}
		}
		scope = want
	}
	if pos.explicitOffsets() {
		for _, id := range scope {
			if _, ok := pos.offsetFor(id); !ok {
				return nil, &ValidationError{Field: "offsets", Reason: fmt.Sprintf("missing offset for partition %d", id)}
			}
		}
	}
	return scope, nil
}

// offsets fetches log-start offsets and high-water marks for scope.
func (r *run) offsets(scope []int32) (start, hwm map[int32]int64, err error) {
	start, err = r.cl.LogStartOffsets(r.ctx, r.topic, scope)
	if err != nil {
		return nil, nil, transportErr("list start offsets", r.topic, err)
	}
	hwm, err = r.cl.HighWatermarks(r.ctx, r.topic, scope)
	if err != nil {
		return nil, nil, transportErr("list end offsets", r.topic, err)
	}
	return start, hwm, nil
}

func (r *run) forTimestamp(scope []int32) (map[int32]int64, error) {
	ts := *r.e.req.Position.Timestamp
	offs, err := r.cl.OffsetsForTimestamp(r.ctx, r.topic, scope, ts)
	if err != nil {
		return nil, &TransportError{Op: fmt.Sprintf("offsets for timestamp %d", ts), Topic: r.topic, Partition: -1, Offset: -1, Err: err}
	}
	return offs, nil
}

func (r *run) seek(partition int32, offset int64) error {
	if err := r.cl.Seek(r.topic, partition, offset); err != nil {
		return &TransportError{Op: "seek", Topic: r.topic, Partition: partition, Offset: offset, Err: err}
	}
	return nil
}

func clamp(v, lo, hi int64) int64 { return min(max(v, lo), hi) }
