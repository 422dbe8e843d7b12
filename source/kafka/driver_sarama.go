package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"github.com/cxm940188/kafka-ui/internal/logging"
)

type topicPartition struct {
	topic     string
	partition int32
}

// claim is one live PartitionConsumer. gen lets Poll drop messages that were
// already in flight when the partition was re-seeked.
type claim struct {
	pc   sarama.PartitionConsumer
	gen  uint64
	stop chan struct{}
}

type delivery struct {
	tp  topicPartition
	gen uint64
	msg *sarama.ConsumerMessage
	err error
}

type SaramaDriver struct {
	cfg  Config
	cl   sarama.Client
	cons sarama.Consumer

	gen    uint64
	claims map[topicPartition]*claim
	inbox  chan delivery
}

func init() {
	Register("sarama", func(_ context.Context, cfg Config) (Client, error) {
		return NewSaramaDriver(cfg)
	})
}

func NewSaramaDriver(config Config) (*SaramaDriver, error) {
	sc, err := SaramaConfig(config)
	if err != nil {
		return nil, err
	}
	d := &SaramaDriver{
		cfg:    config,
		claims: make(map[topicPartition]*claim),
		inbox:  make(chan delivery, max(config.Polling.MaxPollRecords, 1)),
	}
	if d.cl, err = sarama.NewClient(config.Brokers, sc); err != nil {
		return nil, err
	}
	if d.cons, err = sarama.NewConsumerFromClient(d.cl); err != nil {
		_ = d.cl.Close()
		return nil, err
	}
	return d, nil
}

// SaramaConfig maps the connection settings onto a sarama config. Producers
// reuse it for TLS and SASL.
func SaramaConfig(config Config) (*sarama.Config, error) {
	ver, err := sarama.ParseKafkaVersion(config.Version)
	if err != nil {
		return nil, err
	}
	sc := sarama.NewConfig()
	sc.Version = ver
	sc.ClientID = config.ClientID
	sc.Consumer.Return.Errors = true
	sc.ChannelBufferSize = max(config.Polling.MaxPollRecords, 1)
	if config.DialTimeout > 0 {
		sc.Net.DialTimeout = config.DialTimeout
	}
	if config.TLS.Enabled {
		tlsCfg, err := buildTLSConfig(config.TLS)
		if err != nil {
			return nil, fmt.Errorf("tls config: %w", err)
		}
		sc.Net.TLS.Enable = true
		sc.Net.TLS.Config = tlsCfg
	}
	switch config.SASL.Mechanism {
	case "":
	case "PLAIN":
		sc.Net.SASL.Enable = true
		sc.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		sc.Net.SASL.User, sc.Net.SASL.Password = config.SASL.User, config.SASL.Pass
	default:
		return nil, fmt.Errorf("sarama-driver: sasl mechanism %q not supported, use the franz driver", config.SASL.Mechanism)
	}
	return sc, nil
}

func (d *SaramaDriver) Partitions(ctx context.Context, topic string) ([]int32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return d.cl.Partitions(topic)
}

func (d *SaramaDriver) LogStartOffsets(ctx context.Context, topic string, partitions []int32) (map[int32]int64, error) {
	return d.offsets(ctx, topic, partitions, sarama.OffsetOldest)
}

func (d *SaramaDriver) HighWatermarks(ctx context.Context, topic string, partitions []int32) (map[int32]int64, error) {
	return d.offsets(ctx, topic, partitions, sarama.OffsetNewest)
}

func (d *SaramaDriver) OffsetsForTimestamp(ctx context.Context, topic string, partitions []int32, ms int64) (map[int32]int64, error) {
	out, err := d.offsets(ctx, topic, partitions, ms)
	if err != nil {
		return nil, err
	}
	// brokers answer -1 when no record is at or after ms
	for p, off := range out {
		if off < 0 {
			delete(out, p)
		}
	}
	return out, nil
}

func (d *SaramaDriver) offsets(ctx context.Context, topic string, partitions []int32, at int64) (map[int32]int64, error) {
	out := make(map[int32]int64, len(partitions))
	for _, p := range partitions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		off, err := d.cl.GetOffset(topic, p, at)
		if err != nil {
			return nil, fmt.Errorf("get offset %s[%d]: %w", topic, p, err)
		}
		out[p] = off
	}
	return out, nil
}

func (d *SaramaDriver) Seek(topic string, partition int32, offset int64) error {
	key := topicPartition{topic, partition}
	if old, ok := d.claims[key]; ok {
		d.release(old)
		delete(d.claims, key)
	}
	pc, err := d.cons.ConsumePartition(topic, partition, offset)
	if err != nil {
		return fmt.Errorf("consume %s[%d]@%d: %w", topic, partition, offset, err)
	}
	d.gen++
	c := &claim{pc: pc, gen: d.gen, stop: make(chan struct{})}
	d.claims[key] = c
	go d.forward(key, c)
	return nil
}

// forward pipes one partition consumer into the shared inbox. After stop it
// keeps draining until sarama closes both channels.
func (d *SaramaDriver) forward(key topicPartition, c *claim) {
	msgs, errs := c.pc.Messages(), c.pc.Errors()
	for msgs != nil || errs != nil {
		select {
		case m, ok := <-msgs:
			if !ok {
				msgs = nil
				continue
			}
			select {
			case d.inbox <- delivery{tp: key, gen: c.gen, msg: m}:
			case <-c.stop:
			}
		case e, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			select {
			case d.inbox <- delivery{tp: key, gen: c.gen, err: e.Err}:
			case <-c.stop:
			}
		}
	}
}

// release must finish before the parent consumer is closed.
func (d *SaramaDriver) release(c *claim) {
	close(c.stop)
	if err := c.pc.Close(); err != nil {
		logging.L().Debug("sarama-driver: partition consumer close", "error", err)
	}
}

func (d *SaramaDriver) Poll(ctx context.Context, timeout time.Duration) ([]Record, error) {
	limit := max(d.cfg.Polling.MaxPollRecords, 1)
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var out []Record
	for len(out) < limit {
		var dl delivery
		if len(out) > 0 {
			select {
			case dl = <-d.inbox:
			default:
				return out, nil
			}
		} else {
			select {
			case dl = <-d.inbox:
			case <-timer.C:
				return out, nil
			case <-ctx.Done():
				return out, ctx.Err()
			}
		}

		if c, ok := d.claims[dl.tp]; !ok || c.gen != dl.gen {
			continue
		}
		if dl.err != nil {
			return out, fmt.Errorf("fetch %s[%d]: %w", dl.tp.topic, dl.tp.partition, dl.err)
		}
		out = append(out, fromSarama(dl.msg))
	}
	return out, nil
}

func (d *SaramaDriver) Close() error {
	for key, c := range d.claims {
		d.release(c)
		delete(d.claims, key)
	}
	if d.cons != nil {
		if err := d.cons.Close(); err != nil {
			logging.L().Warn("sarama-driver: consumer close", "error", err)
		}
	}
	if d.cl != nil && !d.cl.Closed() {
		return d.cl.Close()
	}
	return nil
}

func fromSarama(m *sarama.ConsumerMessage) Record {
	return Record{
		Topic:     m.Topic,
		Partition: m.Partition,
		Offset:    m.Offset,
		Timestamp: m.Timestamp,
		Key:       m.Key,
		Value:     m.Value,
		Headers:   toHeaders(m.Headers),
	}
}

func toHeaders(src []*sarama.RecordHeader) []Header {
	if len(src) == 0 {
		return nil
	}
	out := make([]Header, 0, len(src))
	for _, h := range src {
		if h == nil {
			continue
		}
		out = append(out, Header{Key: string(h.Key), Value: h.Value})
	}
	return out
}
