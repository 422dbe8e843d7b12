package stdout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/cxm940188/kafka-ui/internal/emitter"
	"github.com/cxm940188/kafka-ui/sink"
)

/* ────────── public YAML config ────────── */
type Config struct {
	Format        string    `yaml:"format"`          // text (default) | json
	PrintValue    bool      `yaml:"print_value"`     // text: include key and value
	ValueMaxBytes int       `yaml:"value_max_bytes"` // 0 = no truncation
	PrintCounter  bool      `yaml:"print_counter"`   // prepend seq#
	Writer        io.Writer `yaml:"-"`               // defaults to os.Stdout
}

/* ────────── driver ────────── */
type driver struct {
	cfg Config
	seq atomic.Uint64

	mu  sync.Mutex // guards out
	out io.Writer
	enc *json.Encoder
}

/* ────────── sink.Adapter ────────── */
func (d *driver) Configure(raw any) error {
	c, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("stdout-sink: expected Config, got %T", raw)
	}
	switch c.Format {
	case "":
		c.Format = "text"
	case "text", "json":
	default:
		return fmt.Errorf("stdout-sink: unknown format %q", c.Format)
	}
	d.cfg = c
	d.out = c.Writer
	if d.out == nil {
		d.out = os.Stdout
	}
	d.enc = json.NewEncoder(d.out)
	return nil
}

func (d *driver) Push(ev emitter.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cfg.Format == "json" {
		return d.enc.Encode(d.record(ev))
	}
	line := d.text(ev)
	if line == "" {
		return nil
	}
	if d.cfg.PrintCounter {
		line = fmt.Sprintf("[sink %06d] %s", d.seq.Add(1), line)
	}
	_, err := fmt.Fprintln(d.out, line)
	return err
}

func (d *driver) Close() error { return nil }

/* ────────── internals ────────── */

type jsonEvent struct {
	Type    emitter.EventType `json:"type"`
	Phase   string            `json:"phase,omitempty"`
	Message *emitter.Message  `json:"message,omitempty"`
	Done    *emitter.Summary  `json:"done,omitempty"`
	Error   string            `json:"error,omitempty"`
}

func (d *driver) record(ev emitter.Event) jsonEvent {
	out := jsonEvent{Type: ev.Type, Phase: ev.Phase, Done: ev.Done}
	if ev.Err != nil {
		out.Error = ev.Err.Error()
	}
	if ev.Message != nil {
		m := *ev.Message
		m.Key = d.truncate(m.Key)
		m.Value = d.truncate(m.Value)
		out.Message = &m
	}
	return out
}

func (d *driver) text(ev emitter.Event) string {
	switch ev.Type {
	case emitter.EventPhase:
		return "# " + ev.Phase
	case emitter.EventMessage:
		m := ev.Message
		line := fmt.Sprintf("%s[%d]@%d %s", m.Topic, m.Partition, m.Offset, m.Timestamp.UTC().Format(time.RFC3339Nano))
		if d.cfg.PrintValue {
			line += fmt.Sprintf(" key=%s value=%s", show(d.truncate(m.Key)), show(d.truncate(m.Value)))
		}
		return line
	case emitter.EventDone:
		s := ev.Done
		line := fmt.Sprintf("# done reason=%s messages=%d polls=%d bytes=%d filtered=%d elapsed=%s",
			s.Reason, s.Messages, s.Polls, s.BytesPolled, s.Filtered, s.Elapsed.Round(time.Millisecond))
		if s.Cursor != nil {
			line += fmt.Sprintf(" next=%v", s.Cursor.Next)
		}
		return line
	case emitter.EventError:
		return "# error " + ev.Err.Error()
	}
	return ""
}

func (d *driver) truncate(s *string) *string {
	if s == nil || d.cfg.ValueMaxBytes <= 0 || len(*s) <= d.cfg.ValueMaxBytes {
		return s
	}
	n := d.cfg.ValueMaxBytes
	for n > 0 && !utf8.RuneStart((*s)[n]) {
		n--
	}
	t := (*s)[:n] + "…"
	return &t
}

func show(s *string) string {
	if s == nil {
		return "<null>"
	}
	return *s
}

/* ────────── auto-register ────────── */
func init() {
	sink.Register("stdout", func() sink.Adapter { return &driver{} })
}
