package emitter

import (
	"context"
	"slices"
	"testing"
	"time"
)

func TestPositionValidate(t *testing.T) {
	ts := int64(5)
	cases := []struct {
		name string
		pos  Position
		ok   bool
	}{
		{"earliest", Position{Mode: Earliest, Topic: "t"}, true},
		{"offsets", Position{Mode: ToOffset, Topic: "t", Offsets: map[int32]int64{0: 3}}, true},
		{"single offset", Position{Mode: FromOffset, Topic: "t", Offset: ptr(int64(0))}, true},
		{"timestamp", Position{Mode: FromTimestamp, Topic: "t", Timestamp: &ts}, true},
		{"no offsets", Position{Mode: ToOffset, Topic: "t"}, false},
		{"no timestamp", Position{Mode: FromTimestamp, Topic: "t"}, false},
		{"negative partition", Position{Mode: Latest, Topic: "t", Partitions: []int32{-1}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.pos.Validate(); (err == nil) != tc.ok {
				t.Fatalf("Validate() = %v, want ok=%v", err, tc.ok)
			}
		})
	}
}

func TestPositionRequested(t *testing.T) {
	p := Position{Mode: FromOffset, Topic: "t", Offsets: map[int32]int64{3: 1, 1: 0}}
	if got := p.requested(); !slices.Equal(got, []int32{1, 3}) {
		t.Fatalf("offset keys should scope the run, got %v", got)
	}
	p = Position{Mode: Latest, Topic: "t", Partitions: []int32{2, 0, 2}}
	if got := p.requested(); !slices.Equal(got, []int32{0, 2}) {
		t.Fatalf("want sorted unique partitions, got %v", got)
	}
}

func TestCursorPosition(t *testing.T) {
	c := &Cursor{Topic: "t", Direction: Backward, Next: map[int32]int64{2: 10, 0: 4}}
	p := c.Position()
	if p.Mode != ToOffset || p.Topic != "t" || !slices.Equal(p.Partitions, []int32{0, 2}) || p.Offsets[2] != 10 {
		t.Fatalf("unexpected position %+v", p)
	}
	p.Offsets[2] = 0
	if c.Next[2] != 10 {
		t.Fatal("position must not alias the cursor")
	}
	if (&Cursor{Direction: Forward}).Position().Mode != FromOffset {
		t.Fatal("forward cursors resume FROM_OFFSET")
	}
}

func TestRateThrottler(t *testing.T) {
	now := time.Unix(100, 0)
	th := NewRateThrottler(100, 5*time.Second)
	th.now = func() time.Time { return now }

	if d := th.BeforePoll(); d != 0 {
		t.Fatalf("fresh throttler should not delay, got %v", d)
	}
	th.AfterPoll(3, 300)
	if d := th.BeforePoll(); d != 2*time.Second {
		t.Fatalf("want 2s to pay off 200 bytes of debt, got %v", d)
	}
	th.AfterPoll(10, 10_000)
	if d := th.BeforePoll(); d != 5*time.Second {
		t.Fatalf("delay should be capped at 5s, got %v", d)
	}
	now = now.Add(time.Hour)
	if d := th.BeforePoll(); d != 0 {
		t.Fatalf("debt should be paid after an hour, got %v", d)
	}
}

func TestSinkDetach(t *testing.T) {
	s := NewSink(1)
	if !s.send(context.Background(), Event{Type: EventPhase}) {
		t.Fatal("send into buffer failed")
	}
	s.Detach()
	s.Detach()
	if s.send(context.Background(), Event{Type: EventDone}) {
		t.Fatal("send after Detach must fail")
	}
}

func TestSettingsNormalized(t *testing.T) {
	s := Settings{EmptyPolls: 9}.normalized()
	if s.EmptyPolls != 9 || s.PollTimeout != time.Second || s.ChunkSize != 500 {
		t.Fatalf("unexpected settings %+v", s)
	}
}
