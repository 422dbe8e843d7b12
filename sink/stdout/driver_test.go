package stdout

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cxm940188/kafka-ui/internal/emitter"
	"github.com/cxm940188/kafka-ui/internal/serde"
	"github.com/cxm940188/kafka-ui/sink"
)

func strp(s string) *string { return &s }

func message() emitter.Event {
	return emitter.Event{Type: emitter.EventMessage, Message: &emitter.Message{
		Topic:     "orders",
		Partition: 2,
		Offset:    41,
		Timestamp: time.UnixMilli(1_700_000_000_000),
		Decoded:   serde.Decoded{Key: strp("k1"), Value: strp("héllo world")},
	}}
}

func open(t *testing.T, cfg Config) sink.Adapter {
	t.Helper()
	a, err := sink.NewAdapter("stdout")
	if err != nil {
		t.Fatalf("NewAdapter: %v", err)
	}
	if err := a.Configure(cfg); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	return a
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	a := open(t, Config{PrintValue: true, ValueMaxBytes: 2, PrintCounter: true, Writer: &buf})

	events := []emitter.Event{
		{Type: emitter.EventPhase, Phase: "Reading partition 2"},
		message(),
		{Type: emitter.EventDone, Done: &emitter.Summary{Messages: 1, Reason: emitter.StopBudget,
			Cursor: &emitter.Cursor{Topic: "orders", Direction: emitter.Forward, Next: map[int32]int64{2: 42}}}},
		{Type: emitter.EventError, Err: errors.New("boom")},
	}
	for _, ev := range events {
		if err := a.Push(ev); err != nil {
			t.Fatalf("Push: %v", err)
		}
	}
	_ = a.Close()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("want 4 lines, got %q", lines)
	}
	if lines[0] != "[sink 000001] # Reading partition 2" {
		t.Fatalf("phase line %q", lines[0])
	}
	if !strings.Contains(lines[1], "orders[2]@41") || !strings.Contains(lines[1], "key=k1 value=h…") {
		t.Fatalf("message line %q", lines[1])
	}
	if !strings.Contains(lines[2], "reason=budget") || !strings.Contains(lines[2], "next=map[2:42]") {
		t.Fatalf("done line %q", lines[2])
	}
	if !strings.HasSuffix(lines[3], "# error boom") {
		t.Fatalf("error line %q", lines[3])
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	a := open(t, Config{Format: "json", Writer: &buf})
	if err := a.Push(message()); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := a.Push(emitter.Event{Type: emitter.EventError, Err: errors.New("boom")}); err != nil {
		t.Fatalf("Push: %v", err)
	}

	dec := json.NewDecoder(&buf)
	var got struct {
		Type    string `json:"type"`
		Message struct {
			Offset int64  `json:"offset"`
			Value  string `json:"value"`
		} `json:"message"`
	}
	if err := dec.Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Type != "MESSAGE" || got.Message.Offset != 41 || got.Message.Value != "héllo world" {
		t.Fatalf("unexpected %+v", got)
	}
	var errEv map[string]any
	if err := dec.Decode(&errEv); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if errEv["error"] != "boom" {
		t.Fatalf("unexpected %v", errEv)
	}
}

func TestConfigure_Rejects(t *testing.T) {
	a, _ := sink.NewAdapter("stdout")
	if err := a.Configure("nope"); err == nil {
		t.Fatal("want error for wrong config type")
	}
	if err := a.Configure(Config{Format: "xml"}); err == nil {
		t.Fatal("want error for unknown format")
	}
}
