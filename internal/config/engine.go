package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/cxm940188/kafka-ui/internal/cursorstore"
	"github.com/cxm940188/kafka-ui/internal/serde"
)

const engineEnvPrefix = "KUI_ENGINE__"

// Engine configures the long-running tail server.
type Engine struct {
	GRPCPort        int                  `koanf:"grpc_port"`
	MetricsPort     int                  `koanf:"metrics_port"` // 0 disables /metrics
	KafkaConfig     string               `koanf:"kafka_config"` // path to the kafka connection YAML
	QueryFile       string               `koanf:"query_file"`   // optional query run once at startup
	ShutdownTimeout time.Duration        `koanf:"shutdown_timeout"`
	CursorStore     cursorstore.Config   `koanf:"cursor_store"`
	SerdePlugins    []serde.PluginConfig `koanf:"serde_plugins"`
}

// LoadEngineConfig merges YAML (if present) with env-vars
// (prefix `KUI_ENGINE__`, delimiter `__`, e.g. KUI_ENGINE__CURSOR_STORE__DRIVER).
func LoadEngineConfig(path string) (Engine, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Engine{}, err
		}
	}
	if sv := k.String("schema_version"); sv != "" && sv != SupportedSchema {
		return Engine{}, fmt.Errorf("engine schema_version %q not supported (want %q)", sv, SupportedSchema)
	}
	if err := k.Load(env.Provider(engineEnvPrefix, "__", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, engineEnvPrefix))
	}), nil); err != nil {
		return Engine{}, err
	}

	var cfg Engine
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	cfg.applyDefaults()
	return cfg, cfg.Validate()
}

func (c *Engine) applyDefaults() {
	if c.GRPCPort == 0 {
		c.GRPCPort = 7070
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	if c.CursorStore.Driver == "" {
		c.CursorStore.Driver = "memory"
	}
}

// Validate reports every problem at once.
func (c *Engine) Validate() error {
	var errs []error
	if c.GRPCPort < 0 || c.GRPCPort > 65535 {
		errs = append(errs, fmt.Errorf("grpc_port %d out of range", c.GRPCPort))
	}
	if c.MetricsPort < 0 || c.MetricsPort > 65535 {
		errs = append(errs, fmt.Errorf("metrics_port %d out of range", c.MetricsPort))
	}
	if c.MetricsPort != 0 && c.MetricsPort == c.GRPCPort {
		errs = append(errs, errors.New("metrics_port and grpc_port must differ"))
	}
	switch c.CursorStore.Driver {
	case "memory", "badger":
	case "postgres":
		if c.CursorStore.DSN == "" {
			errs = append(errs, errors.New("cursor_store.dsn is required for postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("cursor_store.driver %q is not valid (must be memory, badger, or postgres)", c.CursorStore.Driver))
	}
	for i, p := range c.SerdePlugins {
		if p.Address == "" {
			errs = append(errs, fmt.Errorf("serde_plugins[%d].address is required", i))
		}
	}
	return errors.Join(errs...)
}
