// Package serde turns raw record bytes into displayable text.
package serde

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/cxm940188/kafka-ui/source/kafka"
)

// Deserializer renders one side (key or value) of a record.
type Deserializer func(data []byte) (string, error)

var (
	mu       sync.RWMutex
	registry = map[string]Deserializer{}
)

// Register adds or replaces a named deserializer.
func Register(name string, d Deserializer) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = d
}

func unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	delete(registry, name)
}

func Lookup(name string) (Deserializer, bool) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := registry[name]
	return d, ok
}

func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Decoded is a record after deserialization. Key and Value are nil when the
// record carried none.
type Decoded struct {
	Key         *string           `json:"key,omitempty"`
	Value       *string           `json:"value,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	KeySize     int               `json:"keySize"`
	ValueSize   int               `json:"valueSize"`
	KeyFormat   string            `json:"keyFormat,omitempty"`
	ValueFormat string            `json:"valueFormat,omitempty"`
}

type Decoder interface {
	Decode(key, value []byte, headers []kafka.Header) (Decoded, error)
}

// DecodeError reports bytes a deserializer could not handle.
type DecodeError struct {
	Target string // "key" or "value"
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s as %s: %v", e.Target, e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

type decoder struct {
	keyName, valueName string
	key, value         Deserializer
}

// NewDecoder builds a decoder from registered deserializer names. Empty names
// default to String.
func NewDecoder(key, value string) (Decoder, error) {
	if key == "" {
		key = "String"
	}
	if value == "" {
		value = "String"
	}
	kd, ok := Lookup(key)
	if !ok {
		return nil, fmt.Errorf("serde: unknown key deserializer %q", key)
	}
	vd, ok := Lookup(value)
	if !ok {
		return nil, fmt.Errorf("serde: unknown value deserializer %q", value)
	}
	return &decoder{keyName: key, valueName: value, key: kd, value: vd}, nil
}

func (d *decoder) Decode(key, value []byte, headers []kafka.Header) (Decoded, error) {
	out := Decoded{
		KeySize:     len(key),
		ValueSize:   len(value),
		KeyFormat:   d.keyName,
		ValueFormat: d.valueName,
		Headers:     decodeHeaders(headers),
	}
	var errs []error
	if key != nil {
		s, err := d.key(key)
		if err != nil {
			errs = append(errs, &DecodeError{Target: "key", Format: d.keyName, Err: err})
		} else {
			out.Key = &s
		}
	}
	if value != nil {
		s, err := d.value(value)
		if err != nil {
			errs = append(errs, &DecodeError{Target: "value", Format: d.valueName, Err: err})
		} else {
			out.Value = &s
		}
	}
	return out, errors.Join(errs...)
}

func decodeHeaders(hs []kafka.Header) map[string]string {
	if len(hs) == 0 {
		return nil
	}
	m := make(map[string]string, len(hs))
	for _, h := range hs {
		if utf8.Valid(h.Value) {
			m[h.Key] = string(h.Value)
		} else {
			m[h.Key] = hexString(h.Value)
		}
	}
	return m
}
