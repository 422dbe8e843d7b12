package kafka

import (
	"errors"
	"fmt"
	"sync"

	"github.com/IBM/sarama"

	"github.com/cxm940188/kafka-ui/internal/emitter"
	"github.com/cxm940188/kafka-ui/internal/logging"
	"github.com/cxm940188/kafka-ui/sink"
	source "github.com/cxm940188/kafka-ui/source/kafka"
)

// Config republishes tailed records to Topic on the cluster described by
// Conn. Producer, when set, is used instead of dialing Conn.
type Config struct {
	Conn     source.Config
	Topic    string
	Acks     int16 // 0,1,-1
	Producer sarama.AsyncProducer
}

type driver struct {
	cfg Config
	p   sarama.AsyncProducer

	mu      sync.Mutex
	failed  error
	drained chan struct{}
	once    sync.Once
}

func (d *driver) Configure(c any) error {
	cfg, ok := c.(Config)
	if !ok {
		return fmt.Errorf("kafka-sink: want Config, got %T", c)
	}
	if cfg.Topic == "" {
		return errors.New("kafka-sink: topic is required")
	}
	d.cfg = cfg

	d.p = cfg.Producer
	if d.p == nil {
		sc, err := source.SaramaConfig(cfg.Conn)
		if err != nil {
			return fmt.Errorf("kafka-sink: %w", err)
		}
		sc.Producer.RequiredAcks = sarama.RequiredAcks(cfg.Acks)
		sc.Producer.Return.Errors = true
		if d.p, err = sarama.NewAsyncProducer(cfg.Conn.Brokers, sc); err != nil {
			return fmt.Errorf("kafka-sink: %w", err)
		}
	}
	d.drained = make(chan struct{})
	go d.drain()
	return nil
}

// Push forwards MESSAGE events; every other event is ignored. A delivery
// failure surfaces on the next Push or on Close.
func (d *driver) Push(ev emitter.Event) error {
	if err := d.err(); err != nil {
		return err
	}
	if ev.Type != emitter.EventMessage {
		return nil
	}
	r := ev.Message.Raw
	msg := &sarama.ProducerMessage{
		Topic: d.cfg.Topic,
		Value: sarama.ByteEncoder(r.Value),
	}
	if r.Key != nil {
		msg.Key = sarama.ByteEncoder(r.Key)
	}
	if !r.Timestamp.IsZero() {
		msg.Timestamp = r.Timestamp
	}
	for _, h := range r.Headers {
		msg.Headers = append(msg.Headers, sarama.RecordHeader{Key: []byte(h.Key), Value: h.Value})
	}
	d.p.Input() <- msg
	return nil
}

func (d *driver) Close() error {
	d.once.Do(func() {
		d.p.AsyncClose()
		<-d.drained
	})
	return d.err()
}

func (d *driver) drain() {
	defer close(d.drained)
	for pe := range d.p.Errors() {
		logging.L().Warn("kafka-sink delivery failed", "topic", d.cfg.Topic, "err", pe.Err)
		d.mu.Lock()
		if d.failed == nil {
			d.failed = fmt.Errorf("kafka-sink: deliver to %s: %w", d.cfg.Topic, pe.Err)
		}
		d.mu.Unlock()
	}
}

func (d *driver) err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.failed
}

func init() { sink.Register("kafka", func() sink.Adapter { return &driver{} }) }
