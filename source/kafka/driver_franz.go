package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sasl"
	"github.com/twmb/franz-go/pkg/sasl/plain"
	"github.com/twmb/franz-go/pkg/sasl/scram"
)

// franzConsumer is the part of *kgo.Client the driver polls through.
type franzConsumer interface {
	AddConsumePartitions(partitions map[string]map[int32]kgo.Offset)
	SetOffsets(setOffsets map[string]map[int32]kgo.EpochOffset)
	PollRecords(ctx context.Context, maxPollRecords int) kgo.Fetches
	Close()
}

// FranzDriver consumes partitions directly (no group) and resolves offsets
// through the admin API.
type FranzDriver struct {
	cfg      Config
	cl       franzConsumer
	adm      *kadm.Client
	assigned map[topicPartition]bool
}

func init() {
	Register("franz", func(_ context.Context, cfg Config) (Client, error) {
		return NewFranzDriver(cfg)
	})
}

func NewFranzDriver(cfg Config) (*FranzDriver, error) {
	opts, err := ClientOptions(cfg)
	if err != nil {
		return nil, err
	}
	cl, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("kafka client: %w", err)
	}
	return &FranzDriver{
		cfg:      cfg,
		cl:       cl,
		adm:      kadm.NewClient(cl),
		assigned: make(map[topicPartition]bool),
	}, nil
}

// ClientOptions returns the kgo options for a connection config.
func ClientOptions(cfg Config) ([]kgo.Opt, error) {
	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ClientID(cfg.ClientID),
	}
	if cfg.DialTimeout > 0 {
		opts = append(opts, kgo.DialTimeout(cfg.DialTimeout))
	}
	if cfg.SASL.Mechanism != "" {
		saslOpt, err := saslOption(cfg.SASL)
		if err != nil {
			return nil, fmt.Errorf("sasl config: %w", err)
		}
		opts = append(opts, saslOpt)
	}
	if cfg.TLS.Enabled {
		tlsCfg, err := buildTLSConfig(cfg.TLS)
		if err != nil {
			return nil, fmt.Errorf("tls config: %w", err)
		}
		opts = append(opts, kgo.DialTLSConfig(tlsCfg))
	}
	return opts, nil
}

func saslOption(auth SASLCfg) (kgo.Opt, error) {
	var mechanism sasl.Mechanism
	switch auth.Mechanism {
	case "PLAIN":
		mechanism = plain.Auth{User: auth.User, Pass: auth.Pass}.AsMechanism()
	case "SCRAM-SHA-256":
		mechanism = scram.Auth{User: auth.User, Pass: auth.Pass}.AsSha256Mechanism()
	case "SCRAM-SHA-512":
		mechanism = scram.Auth{User: auth.User, Pass: auth.Pass}.AsSha512Mechanism()
	default:
		return nil, fmt.Errorf("unsupported SASL mechanism: %s", auth.Mechanism)
	}
	return kgo.SASL(mechanism), nil
}

func (d *FranzDriver) Partitions(ctx context.Context, topic string) ([]int32, error) {
	details, err := d.adm.ListTopics(ctx, topic)
	if err != nil {
		return nil, err
	}
	td, ok := details[topic]
	if !ok {
		return nil, fmt.Errorf("topic %q not found", topic)
	}
	if td.Err != nil {
		return nil, fmt.Errorf("topic %q: %w", topic, td.Err)
	}
	return td.Partitions.Numbers(), nil
}

func (d *FranzDriver) LogStartOffsets(ctx context.Context, topic string, partitions []int32) (map[int32]int64, error) {
	listed, err := d.adm.ListStartOffsets(ctx, topic)
	return pick(listed, err, topic, partitions, false)
}

func (d *FranzDriver) HighWatermarks(ctx context.Context, topic string, partitions []int32) (map[int32]int64, error) {
	listed, err := d.adm.ListEndOffsets(ctx, topic)
	return pick(listed, err, topic, partitions, false)
}

func (d *FranzDriver) OffsetsForTimestamp(ctx context.Context, topic string, partitions []int32, ms int64) (map[int32]int64, error) {
	listed, err := d.adm.ListOffsetsAfterMilli(ctx, ms, topic)
	return pick(listed, err, topic, partitions, true)
}

func pick(listed kadm.ListedOffsets, err error, topic string, partitions []int32, sparse bool) (map[int32]int64, error) {
	if err != nil {
		return nil, err
	}
	out := make(map[int32]int64, len(partitions))
	for _, p := range partitions {
		lo, ok := listed.Lookup(topic, p)
		if !ok {
			return nil, fmt.Errorf("no offset listed for %s[%d]", topic, p)
		}
		if lo.Err != nil {
			return nil, fmt.Errorf("list offsets %s[%d]: %w", topic, p, lo.Err)
		}
		if sparse && lo.Offset < 0 {
			continue
		}
		out[p] = lo.Offset
	}
	return out, nil
}

func (d *FranzDriver) Seek(topic string, partition int32, offset int64) error {
	key := topicPartition{topic, partition}
	if d.assigned[key] {
		d.cl.SetOffsets(map[string]map[int32]kgo.EpochOffset{
			topic: {partition: {Epoch: -1, Offset: offset}},
		})
		return nil
	}
	d.cl.AddConsumePartitions(map[string]map[int32]kgo.Offset{
		topic: {partition: kgo.NewOffset().At(offset)},
	})
	d.assigned[key] = true
	return nil
}

func (d *FranzDriver) Poll(ctx context.Context, timeout time.Duration) ([]Record, error) {
	pctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	fetches := d.cl.PollRecords(pctx, max(d.cfg.Polling.MaxPollRecords, 1))
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, fe := range fetches.Errors() {
		if errors.Is(fe.Err, context.DeadlineExceeded) || errors.Is(fe.Err, context.Canceled) {
			continue
		}
		return nil, fmt.Errorf("fetch %s[%d]: %w", fe.Topic, fe.Partition, fe.Err)
	}

	var out []Record
	fetches.EachRecord(func(r *kgo.Record) {
		out = append(out, fromFranz(r))
	})
	return out, nil
}

func (d *FranzDriver) Close() error {
	d.cl.Close()
	return nil
}

func fromFranz(r *kgo.Record) Record {
	rec := Record{
		Topic:     r.Topic,
		Partition: r.Partition,
		Offset:    r.Offset,
		Timestamp: r.Timestamp,
		Key:       r.Key,
		Value:     r.Value,
	}
	if len(r.Headers) > 0 {
		rec.Headers = make([]Header, len(r.Headers))
		for i, h := range r.Headers {
			rec.Headers[i] = Header{Key: h.Key, Value: h.Value}
		}
	}
	return rec
}
