// Package query describes tail requests as they arrive from files, the CLI or
// the wire, and turns them into emitter requests.
package query

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cxm940188/kafka-ui/internal/cursorstore"
	"github.com/cxm940188/kafka-ui/internal/emitter"
	"github.com/cxm940188/kafka-ui/internal/filter"
	"github.com/cxm940188/kafka-ui/internal/serde"
	"github.com/cxm940188/kafka-ui/source/kafka"
)

var ErrNoStore = errors.New("resume needs a cursor store")

// Query is one tail request. Resume names a stored cursor, which then fixes
// where the read starts; the cursor's recorded filter and decoders fill
// whatever the query leaves empty.
type Query struct {
	Topic      string          `yaml:"topic" json:"topic,omitempty"`
	Direction  string          `yaml:"direction" json:"direction,omitempty"` // forward|backward
	Mode       string          `yaml:"mode" json:"mode,omitempty"`
	Partitions []int32         `yaml:"partitions" json:"partitions,omitempty"`
	Offset     *int64          `yaml:"offset" json:"offset,omitempty"`
	Offsets    map[int32]int64 `yaml:"offsets" json:"offsets,omitempty"`
	Timestamp  *int64          `yaml:"timestamp_ms" json:"timestampMs,omitempty"`
	Limit      int             `yaml:"limit" json:"limit,omitempty"`
	Follow     bool            `yaml:"follow" json:"follow,omitempty"`
	Filter     string          `yaml:"filter" json:"filter,omitempty"` // CEL
	Contains   string          `yaml:"contains" json:"contains,omitempty"`
	KeySerde   string          `yaml:"key_serde" json:"keySerde,omitempty"`
	ValueSerde string          `yaml:"value_serde" json:"valueSerde,omitempty"`
	Resume     string          `yaml:"resume" json:"resume,omitempty"`
}

// Built is a query ready to run.
type Built struct {
	Query    Query // after the resumed cursor was merged in
	Request  emitter.Request
	Settings emitter.Settings
}

// Build validates q, merges a resumed cursor from store and compiles filters
// and decoders. store may be nil when q does not resume.
func (q Query) Build(ctx context.Context, store cursorstore.Store, polling kafka.PollingCfg) (Built, error) {
	kafka.ApplyPollingDefaults(&polling)

	var pos emitter.Position
	if q.Resume != "" {
		if store == nil {
			return Built{}, ErrNoStore
		}
		entry, err := store.Get(ctx, q.Resume)
		if err != nil {
			return Built{}, fmt.Errorf("resume %s: %w", q.Resume, err)
		}
		q = q.merge(entry)
		pos = entry.Cursor.Position()
	} else {
		p, err := q.position()
		if err != nil {
			return Built{}, err
		}
		pos = p
	}
	dir, err := parseDirection(q.Direction)
	if err != nil {
		return Built{}, err
	}

	limit := q.Limit
	switch {
	case limit < 0:
		return Built{}, &emitter.ValidationError{Field: "limit", Reason: "must be positive"}
	case limit == 0:
		limit = polling.DefaultLimit
	case limit > polling.MaxLimit:
		limit = polling.MaxLimit
	}
	q.Limit = limit

	pred, err := q.predicate()
	if err != nil {
		return Built{}, err
	}
	dec, err := serde.NewDecoder(q.KeySerde, q.ValueSerde)
	if err != nil {
		return Built{}, err
	}

	var th emitter.Throttler = emitter.Noop()
	if polling.ThrottleRate > 0 {
		th = emitter.NewRateThrottler(polling.ThrottleRate, polling.ThrottleMaxDelay)
	}

	settings := emitter.SettingsFrom(polling)
	settings.Follow = q.Follow

	return Built{
		Query: q,
		Request: emitter.Request{
			Direction: dir,
			Position:  pos,
			Limit:     limit,
			Filter:    pred,
			Decoder:   dec,
			Throttler: th,
		},
		Settings: settings,
	}, nil
}

func (q Query) merge(e cursorstore.Entry) Query {
	q.Topic = e.Cursor.Topic
	q.Direction = string(e.Cursor.Direction)
	if q.Filter == "" {
		q.Filter = e.Filter
	}
	if q.Contains == "" {
		q.Contains = e.Contains
	}
	if q.KeySerde == "" {
		q.KeySerde = e.KeySerde
	}
	if q.ValueSerde == "" {
		q.ValueSerde = e.ValueSerde
	}
	if q.Limit == 0 {
		q.Limit = e.Limit
	}
	return q
}

func (q Query) position() (emitter.Position, error) {
	dir, err := parseDirection(q.Direction)
	if err != nil {
		return emitter.Position{}, err
	}
	mode := emitter.Mode(strings.ToUpper(strings.TrimSpace(q.Mode)))
	if mode == "" {
		mode = emitter.Earliest
		if dir == emitter.Backward {
			mode = emitter.Latest
		}
	}
	return emitter.Position{
		Mode:       mode,
		Topic:      q.Topic,
		Partitions: q.Partitions,
		Timestamp:  q.Timestamp,
		Offset:     q.Offset,
		Offsets:    q.Offsets,
	}, nil
}

func (q Query) predicate() (emitter.Predicate, error) {
	preds := []emitter.Predicate{filter.Contains(q.Contains)}
	if q.Filter != "" {
		p, err := filter.CEL(q.Filter)
		if err != nil {
			return nil, &emitter.ValidationError{Field: "filter", Reason: err.Error()}
		}
		preds = append(preds, p)
	}
	return filter.All(preds...), nil
}

func parseDirection(s string) (emitter.Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(emitter.Forward):
		return emitter.Forward, nil
	case string(emitter.Backward):
		return emitter.Backward, nil
	}
	return "", &emitter.ValidationError{Field: "direction", Reason: fmt.Sprintf("unknown direction %q", s)}
}

// Entry captures what a follow-up request needs to continue this query.
func (b Built) Entry(c *emitter.Cursor) cursorstore.Entry {
	return cursorstore.Entry{
		Cursor:     *c,
		Filter:     b.Query.Filter,
		Contains:   b.Query.Contains,
		KeySerde:   b.Query.KeySerde,
		ValueSerde: b.Query.ValueSerde,
		Limit:      b.Query.Limit,
	}
}
