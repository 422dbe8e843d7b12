package kafka

import (
	"context"
	"fmt"
	"sort"
)

// Factory opens a Client for the given connection config (sarama, franz, …).
type Factory func(ctx context.Context, cfg Config) (Client, error)

var registry = map[string]Factory{}

// Register is called from each driver’s init().
func Register(name string, f Factory) {
	registry[name] = f
}

// NewClient opens a connection with the driver named in cfg.Driver.
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	if f, ok := registry[cfg.Driver]; ok {
		return f(ctx, cfg)
	}
	return nil, fmt.Errorf("kafka: unsupported driver %q", cfg.Driver)
}

// Drivers lists the registered driver names.
func Drivers() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
