// Package cursorstore keeps tail cursors so a later request can resume by id.
package cursorstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cxm940188/kafka-ui/internal/emitter"
)

var ErrNotFound = errors.New("cursor not found")

// Entry is a cursor plus what is needed to replay the request that produced
// it: the same filter and decoders.
type Entry struct {
	Cursor     emitter.Cursor `json:"cursor"`
	Filter     string         `json:"filter,omitempty"`   // CEL expression
	Contains   string         `json:"contains,omitempty"` // substring filter
	KeySerde   string         `json:"keySerde,omitempty"`
	ValueSerde string         `json:"valueSerde,omitempty"`
	Limit      int            `json:"limit"`
	CreatedAt  time.Time      `json:"createdAt"`
}

type Store interface {
	Put(ctx context.Context, e Entry) (string, error)
	Get(ctx context.Context, id string) (Entry, error)
	Close() error
}

type Config struct {
	Driver   string        `koanf:"driver" yaml:"driver"`     // memory|badger|postgres
	Capacity int           `koanf:"capacity" yaml:"capacity"` // memory
	Path     string        `koanf:"path" yaml:"path"`         // badger; empty keeps it in memory
	TTL      time.Duration `koanf:"ttl" yaml:"ttl"`           // badger
	DSN      string        `koanf:"dsn" yaml:"dsn"`           // postgres
	Table    string        `koanf:"table" yaml:"table"`       // postgres
}

// Open builds the configured store. An empty driver means memory.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Driver {
	case "", "memory":
		return NewMemory(cfg.Capacity), nil
	case "badger":
		return OpenBadger(cfg.Path, cfg.TTL)
	case "postgres":
		return OpenPostgres(ctx, cfg.DSN, cfg.Table)
	default:
		return nil, fmt.Errorf("cursorstore: unsupported driver %q", cfg.Driver)
	}
}

func newID() string { return uuid.NewString() }

func stamp(e *Entry) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
}
