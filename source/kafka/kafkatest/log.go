// Package kafkatest provides an in-memory partitioned log that satisfies
// kafka.Client, for tests and local demos.
package kafkatest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cxm940188/kafka-ui/source/kafka"
)

var ErrUnknownTopic = errors.New("kafkatest: unknown topic or partition")

type partitionLog struct {
	start   int64 // log-start offset
	records []kafka.Record
}

func (p *partitionLog) hwm() int64 { return p.start + int64(len(p.records)) }

// Log is safe for concurrent use; connections created from it are not.
type Log struct {
	mu       sync.Mutex
	topics   map[string][]*partitionLog
	produced chan struct{} // closed and replaced on every Produce

	maxPollRecords int
	pollErr        error

	opened atomic.Int64
	closed atomic.Int64
}

type Option func(*Log)

// WithMaxPollRecords caps the records one Poll returns (default 19).
func WithMaxPollRecords(n int) Option { return func(l *Log) { l.maxPollRecords = n } }

func NewLog(opts ...Option) *Log {
	l := &Log{
		topics:         make(map[string][]*partitionLog),
		produced:       make(chan struct{}),
		maxPollRecords: 19,
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

func (l *Log) CreateTopic(name string, partitions int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ps := make([]*partitionLog, partitions)
	for i := range ps {
		ps[i] = &partitionLog{}
	}
	l.topics[name] = ps
}

func (l *Log) DeleteTopic(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.topics, name)
}

// Produce appends a record and returns its offset.
func (l *Log) Produce(topic string, partition int32, ts time.Time, key, value []byte, headers ...kafka.Header) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, err := l.partition(topic, partition)
	if err != nil {
		return 0, err
	}
	off := p.hwm()
	p.records = append(p.records, kafka.Record{
		Topic: topic, Partition: partition, Offset: off, Timestamp: ts,
		Key: key, Value: value, Headers: headers,
	})
	close(l.produced)
	l.produced = make(chan struct{})
	return off, nil
}

// Truncate drops every record below offset, moving the log-start offset like
// retention would.
func (l *Log) Truncate(topic string, partition int32, offset int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, err := l.partition(topic, partition)
	if err != nil {
		return err
	}
	if offset <= p.start {
		return nil
	}
	drop := min(offset-p.start, int64(len(p.records)))
	p.records = p.records[drop:]
	p.start += drop
	return nil
}

// FailPolls makes every subsequent Poll return err (nil clears it).
func (l *Log) FailPolls(err error) {
	l.mu.Lock()
	l.pollErr = err
	l.mu.Unlock()
}

// OpenConnections is the number of connections not yet closed.
func (l *Log) OpenConnections() int64 { return l.opened.Load() - l.closed.Load() }

// Connect opens a connection; its method value fits emitter.Connector.
func (l *Log) Connect(context.Context) (kafka.Client, error) {
	l.opened.Add(1)
	return &Conn{log: l, pos: make(map[int32]int64)}, nil
}

// must hold l.mu
func (l *Log) partition(topic string, partition int32) (*partitionLog, error) {
	ps, ok := l.topics[topic]
	if !ok || partition < 0 || int(partition) >= len(ps) {
		return nil, fmt.Errorf("%w: %s[%d]", ErrUnknownTopic, topic, partition)
	}
	return ps[partition], nil
}

// Conn is a single-topic-at-a-time connection to a Log.
type Conn struct {
	log    *Log
	topic  string
	pos    map[int32]int64
	next   int // round-robin cursor over assigned partitions
	closed bool
}

func (c *Conn) Partitions(_ context.Context, topic string) ([]int32, error) {
	c.log.mu.Lock()
	defer c.log.mu.Unlock()
	ps, ok := c.log.topics[topic]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTopic, topic)
	}
	out := make([]int32, len(ps))
	for i := range ps {
		out[i] = int32(i)
	}
	return out, nil
}

func (c *Conn) LogStartOffsets(_ context.Context, topic string, partitions []int32) (map[int32]int64, error) {
	return c.each(topic, partitions, func(p *partitionLog) (int64, bool) { return p.start, true })
}

func (c *Conn) HighWatermarks(_ context.Context, topic string, partitions []int32) (map[int32]int64, error) {
	return c.each(topic, partitions, func(p *partitionLog) (int64, bool) { return p.hwm(), true })
}

func (c *Conn) OffsetsForTimestamp(_ context.Context, topic string, partitions []int32, ms int64) (map[int32]int64, error) {
	return c.each(topic, partitions, func(p *partitionLog) (int64, bool) {
		for _, r := range p.records {
			if r.Timestamp.UnixMilli() >= ms {
				return r.Offset, true
			}
		}
		return 0, false
	})
}

func (c *Conn) each(topic string, partitions []int32, fn func(*partitionLog) (int64, bool)) (map[int32]int64, error) {
	c.log.mu.Lock()
	defer c.log.mu.Unlock()
	out := make(map[int32]int64, len(partitions))
	for _, id := range partitions {
		p, err := c.log.partition(topic, id)
		if err != nil {
			return nil, err
		}
		if off, ok := fn(p); ok {
			out[id] = off
		}
	}
	return out, nil
}

func (c *Conn) Seek(topic string, partition int32, offset int64) error {
	if c.topic != "" && c.topic != topic {
		return fmt.Errorf("kafkatest: connection already bound to topic %s", c.topic)
	}
	c.log.mu.Lock()
	_, err := c.log.partition(topic, partition)
	c.log.mu.Unlock()
	if err != nil {
		return err
	}
	c.topic = topic
	c.pos[partition] = offset
	return nil
}

// Poll hands out records round-robin across assigned partitions, one at a
// time, so batches interleave partitions the way broker fetches do.
func (c *Conn) Poll(ctx context.Context, timeout time.Duration) ([]kafka.Record, error) {
	if c.closed {
		return nil, errors.New("kafkatest: connection closed")
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		recs, wake, err := c.take()
		if err != nil || len(recs) > 0 {
			return recs, err
		}
		select {
		case <-wake:
		case <-timer.C:
			return nil, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (c *Conn) take() ([]kafka.Record, <-chan struct{}, error) {
	c.log.mu.Lock()
	defer c.log.mu.Unlock()
	if c.log.pollErr != nil {
		return nil, nil, c.log.pollErr
	}
	ids := make([]int32, 0, len(c.pos))
	for id := range c.pos {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []kafka.Record
	for progressed := true; progressed && len(out) < c.log.maxPollRecords; {
		progressed = false
		for range ids {
			if len(out) >= c.log.maxPollRecords {
				break
			}
			id := ids[c.next%len(ids)]
			c.next++
			p, err := c.log.partition(c.topic, id)
			if err != nil {
				return nil, nil, err
			}
			at := max(c.pos[id], p.start)
			if at >= p.hwm() {
				continue
			}
			out = append(out, p.records[at-p.start])
			c.pos[id] = at + 1
			progressed = true
		}
	}
	return out, c.log.produced, nil
}

func (c *Conn) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.log.closed.Add(1)
	return nil
}
