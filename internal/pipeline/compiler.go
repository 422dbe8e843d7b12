package pipeline

import (
	"context"
	"fmt"

	"github.com/cxm940188/kafka-ui/internal/config"
	"github.com/cxm940188/kafka-ui/internal/cursorstore"
	"github.com/cxm940188/kafka-ui/internal/query"
	"github.com/cxm940188/kafka-ui/internal/serde"
	"github.com/cxm940188/kafka-ui/sink"
	kafkasink "github.com/cxm940188/kafka-ui/sink/kafka"
	"github.com/cxm940188/kafka-ui/sink/stdout"
	"github.com/cxm940188/kafka-ui/source/kafka"
)

// Compile loads a query file into a ready Runner. Options override what the
// file would otherwise provide.
func Compile(path string, opts ...Option) (*Runner, error) {
	r := NewRunner(opts...)
	if err := LoadYAML(path, r); err != nil {
		_ = r.Close()
		return nil, err
	}
	return r, nil
}

func LoadYAML(path string, r *Runner) error {
	f, confPath, err := config.LoadQueryFile(path)
	if err != nil {
		return err
	}
	kc, err := config.LoadKafkaConfig(confPath)
	if err != nil {
		return fmt.Errorf("kafka config: %w", err)
	}
	if f.Source.Driver != "" {
		kc.Driver = f.Source.Driver
	}

	r.SetQuery(f.Tail)
	r.SetPolling(kc.Polling)
	if r.connect == nil {
		r.SetConnector(func(ctx context.Context) (kafka.Client, error) {
			return kafka.NewClient(ctx, kc)
		})
	}
	if len(f.SerdePlugins) > 0 {
		p, err := serde.LoadPlugins(context.Background(), f.SerdePlugins)
		if err != nil {
			return err
		}
		r.plugins = p
		r.log.Info("serde plugins loaded", "serdes", p.Names())
	}
	if r.store == nil {
		st, err := cursorstore.Open(context.Background(), f.CursorStore)
		if err != nil {
			return fmt.Errorf("cursor store: %w", err)
		}
		r.SetStore(st, true)
	}

	for _, name := range f.Sinks {
		sDrv, err := sink.NewAdapter(name)
		if err != nil {
			return err
		}

		switch name {
		case "stdout":
			so := f.SinkConfigs.Stdout
			err = sDrv.Configure(stdout.Config{
				Format:        so.Format,
				PrintValue:    so.PrintValue,
				ValueMaxBytes: so.ValueMaxBytes,
				PrintCounter:  so.PrintCounter,
				Writer:        r.out,
			})

		case "kafka":
			var kcfg kafkasink.Config
			if kcfg, err = kafkaSinkConfig(f.SinkConfigs.Kafka, kc); err == nil {
				err = sDrv.Configure(kcfg)
			}

		default:
			err = fmt.Errorf("no config block for sink %q", name)
		}
		if err != nil {
			return err
		}
		r.AddSink(name, sDrv)
	}
	return nil
}

// kafkaSinkConfig reuses the source connection unless the sink names its own.
func kafkaSinkConfig(opts query.KafkaSinkOptions, source kafka.Config) (kafkasink.Config, error) {
	conn := source
	if opts.Config != "" {
		c, err := config.LoadKafkaConfig(opts.Config)
		if err != nil {
			return kafkasink.Config{}, fmt.Errorf("kafka sink config: %w", err)
		}
		conn = c
	}
	return kafkasink.Config{Conn: conn, Topic: opts.Topic, Acks: opts.Acks}, nil
}
