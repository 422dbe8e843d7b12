package query

import (
	"github.com/cxm940188/kafka-ui/internal/cursorstore"
	"github.com/cxm940188/kafka-ui/internal/serde"
)

type StdoutOptions struct {
	Format        string `yaml:"format"` // text|json
	PrintValue    bool   `yaml:"print_value"`
	ValueMaxBytes int    `yaml:"value_max_bytes"`
	PrintCounter  bool   `yaml:"print_counter"`
}

type KafkaSinkOptions struct {
	Topic  string `yaml:"topic"`
	Config string `yaml:"config"` // kafka connection file; defaults to the source's
	Acks   int16  `yaml:"required_acks"`
}

type sinkConfigs struct {
	Kafka  KafkaSinkOptions `yaml:"kafka"`
	Stdout StdoutOptions    `yaml:"stdout"`
}

// File is a query file as written in YAML.
type File struct {
	SchemaVersion string `yaml:"schema_version"`

	Source struct {
		Kind   string `yaml:"kind"`
		Driver string `yaml:"driver"`
		Config string `yaml:"config"`
	} `yaml:"source"`

	Tail Query `yaml:"tail"`

	CursorStore cursorstore.Config `yaml:"cursor_store"`

	SerdePlugins []serde.PluginConfig `yaml:"serde_plugins"`

	Sinks       []string    `yaml:"sinks"`
	SinkConfigs sinkConfigs `yaml:"sink_configs"`
}
