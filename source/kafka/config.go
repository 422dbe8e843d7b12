package kafka

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
)

const envPrefix = "KUI_KAFKA__"

type TLSCfg struct {
	Enabled    bool   `koanf:"enabled"`
	CAFile     string `koanf:"ca_file"`
	CertFile   string `koanf:"cert_file"` // mTLS
	KeyFile    string `koanf:"key_file"`  // mTLS
	SkipVerify bool   `koanf:"skip_verify"`
}

type SASLCfg struct {
	Mechanism string `koanf:"mechanism"` // PLAIN|SCRAM-SHA-256|SCRAM-SHA-512
	User      string `koanf:"user"`
	Pass      string `koanf:"pass"`
}

// PollingCfg tunes tail runs. Durations accept "250ms"-style strings.
type PollingCfg struct {
	PollTimeout      time.Duration `koanf:"poll_timeout"`
	EmptyPolls       int           `koanf:"empty_polls"`      // consecutive empty polls that end a run
	ChunkSize        int           `koanf:"chunk_size"`       // max backward window per partition
	MaxPollRecords   int           `koanf:"max_poll_records"` // records returned by one Poll
	ThrottleRate     int           `koanf:"throttle_bytes_per_second"`
	ThrottleMaxDelay time.Duration `koanf:"throttle_max_delay"`
	DefaultLimit     int           `koanf:"default_limit"`
	MaxLimit         int           `koanf:"max_limit"`
}

type Config struct {
	Driver      string        `koanf:"driver"` // sarama|franz
	Brokers     []string      `koanf:"brokers"`
	ClientID    string        `koanf:"client_id"`
	Version     string        `koanf:"version"`
	DialTimeout time.Duration `koanf:"dial_timeout"`
	TLS         TLSCfg        `koanf:"tls"`
	SASL        SASLCfg       `koanf:"sasl"`

	Polling PollingCfg `koanf:"polling"`
}

// ---------------------------------------------------------------------------
// Loader
// ---------------------------------------------------------------------------

// LoadConfig merges YAML (if present) with env-vars
// (prefix `KUI_KAFKA__`, delimiter `__`, e.g. KUI_KAFKA__POLLING__CHUNK_SIZE).
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}
	// schema version check (only when YAML is present)
	sv := k.String("schema_version")
	if sv != "" && sv != "v1" {
		return Config{}, fmt.Errorf("kafka schema_version %q not supported (want v1)", sv)
	}

	if err := k.Load(env.Provider(envPrefix, "__", envKey), nil); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	return cfg, cfg.Validate()
}

func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error
	if len(c.Brokers) == 0 {
		errs = append(errs, errors.New("brokers are required"))
	}
	switch c.SASL.Mechanism {
	case "":
	case "PLAIN", "SCRAM-SHA-256", "SCRAM-SHA-512":
		if c.SASL.User == "" {
			errs = append(errs, errors.New("sasl.user is required when mechanism is set"))
		}
	default:
		errs = append(errs, fmt.Errorf("sasl.mechanism %q is not valid (must be PLAIN, SCRAM-SHA-256, or SCRAM-SHA-512)", c.SASL.Mechanism))
	}
	if (c.TLS.CertFile == "") != (c.TLS.KeyFile == "") {
		errs = append(errs, errors.New("tls.cert_file and tls.key_file must be set together"))
	}
	if c.Polling.DefaultLimit > c.Polling.MaxLimit {
		errs = append(errs, fmt.Errorf("polling.default_limit %d exceeds polling.max_limit %d", c.Polling.DefaultLimit, c.Polling.MaxLimit))
	}
	return errors.Join(errs...)
}

// ---------------------------------------------------------------------------
// defaults
// ---------------------------------------------------------------------------

func applyDefaults(c *Config) {
	if c.Driver == "" {
		c.Driver = "sarama"
	}
	if c.ClientID == "" {
		c.ClientID = "kafka-ui-tail"
	}
	if c.Version == "" {
		c.Version = "2.8.0"
	}
	if c.DialTimeout == 0 {
		c.DialTimeout = 10 * time.Second
	}
	ApplyPollingDefaults(&c.Polling)
}

// ApplyPollingDefaults fills zero polling knobs.
func ApplyPollingDefaults(p *PollingCfg) {
	if p.PollTimeout == 0 {
		p.PollTimeout = time.Second
	}
	if p.EmptyPolls == 0 {
		p.EmptyPolls = 3
	}
	if p.ChunkSize == 0 {
		p.ChunkSize = 500
	}
	if p.MaxPollRecords == 0 {
		p.MaxPollRecords = 500
	}
	if p.ThrottleMaxDelay == 0 {
		p.ThrottleMaxDelay = 5 * time.Second
	}
	if p.MaxLimit == 0 {
		p.MaxLimit = 10_000
	}
	if p.DefaultLimit == 0 {
		p.DefaultLimit = min(100, p.MaxLimit)
	}
}
