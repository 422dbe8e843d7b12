package emitter

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"testing"
	"time"

	"github.com/cxm940188/kafka-ui/internal/logging"
	"github.com/cxm940188/kafka-ui/internal/serde"
	"github.com/cxm940188/kafka-ui/source/kafka/kafkatest"
)

var base = time.UnixMilli(1_700_000_000_000)

// seedTopic writes perPartition records to every partition. Record i of
// partition p has value "p-i" and timestamp base+i seconds.
func seedTopic(t *testing.T, l *kafkatest.Log, topic string, partitions, perPartition int) {
	t.Helper()
	l.CreateTopic(topic, partitions)
	for i := range perPartition {
		for p := range partitions {
			v := fmt.Sprintf("%d-%d", p, i)
			if _, err := l.Produce(topic, int32(p), base.Add(time.Duration(i)*time.Second), []byte(v), []byte(v)); err != nil {
				t.Fatalf("produce: %v", err)
			}
		}
	}
}

func testSettings() Settings {
	return Settings{PollTimeout: 20 * time.Millisecond, EmptyPolls: 2, ChunkSize: 500}
}

func newEmitter(l *kafkatest.Log, req Request, opts ...Option) *Emitter {
	opts = append([]Option{WithSettings(testSettings()), WithLogger(logging.Discard())}, opts...)
	return Create(l.Connect, req, opts...)
}

type result struct {
	events []Event
	cursor *Cursor
	err    error
}

func (r result) messages() []*Message {
	var out []*Message
	for _, ev := range r.events {
		if ev.Type == EventMessage {
			out = append(out, ev.Message)
		}
	}
	return out
}

func (r result) types() []EventType {
	out := make([]EventType, 0, len(r.events))
	for _, ev := range r.events {
		if len(out) > 0 && ev.Type == EventMessage && out[len(out)-1] == EventMessage {
			continue
		}
		out = append(out, ev.Type)
	}
	return out
}

func (r result) summary(t *testing.T) *Summary {
	t.Helper()
	last := r.events[len(r.events)-1]
	if last.Type != EventDone {
		t.Fatalf("last event is %s, want DONE (err=%v)", last.Type, last.Err)
	}
	return last.Done
}

func runAll(t *testing.T, e *Emitter) result {
	t.Helper()
	sink := NewSink(8)
	var res result
	done := make(chan struct{})
	go func() {
		res.cursor, res.err = e.Run(context.Background(), sink)
		close(done)
	}()
	for ev := range sink.Events() {
		res.events = append(res.events, ev)
	}
	<-done
	return res
}

func values(msgs []*Message) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = *m.Value
	}
	return out
}

func sortedValues(msgs []*Message) []string {
	out := values(msgs)
	sort.Strings(out)
	return out
}

func allValues(partitions, perPartition int, keep func(p, i int) bool) []string {
	var out []string
	for p := range partitions {
		for i := range perPartition {
			if keep == nil || keep(p, i) {
				out = append(out, fmt.Sprintf("%d-%d", p, i))
			}
		}
	}
	sort.Strings(out)
	return out
}

func checkOrder(t *testing.T, msgs []*Message, dir Direction) {
	t.Helper()
	last := map[int32]int64{}
	for _, m := range msgs {
		prev, seen := last[m.Partition]
		if seen && dir == Forward && m.Offset <= prev {
			t.Fatalf("partition %d: offset %d after %d in forward run", m.Partition, m.Offset, prev)
		}
		if seen && dir == Backward && m.Offset >= prev {
			t.Fatalf("partition %d: offset %d after %d in backward run", m.Partition, m.Offset, prev)
		}
		last[m.Partition] = m.Offset
	}
}

func ptr[T any](v T) *T { return &v }

func TestForward_EarliestReadsEverything(t *testing.T) {
	l := kafkatest.NewLog()
	seedTopic(t, l, "orders", 5, 20)

	res := runAll(t, newEmitter(l, Request{Direction: Forward, Position: Position{Mode: Earliest, Topic: "orders"}, Limit: 1000}))
	if res.err != nil || res.cursor != nil {
		t.Fatalf("err=%v cursor=%v", res.err, res.cursor)
	}
	if got := res.types(); !slices.Equal(got, []EventType{EventPhase, EventMessage, EventDone}) {
		t.Fatalf("event types %v", got)
	}
	msgs := res.messages()
	checkOrder(t, msgs, Forward)
	if !slices.Equal(sortedValues(msgs), allValues(5, 20, nil)) {
		t.Fatalf("forward scan mismatch: got %d messages", len(msgs))
	}
	if s := res.summary(t); s.Reason != StopExhausted || s.Messages != 100 || s.BytesPolled == 0 {
		t.Fatalf("unexpected summary %+v", s)
	}
}

func TestBackward_LatestMatchesForwardContents(t *testing.T) {
	l := kafkatest.NewLog()
	seedTopic(t, l, "orders", 5, 20)

	fwd := runAll(t, newEmitter(l, Request{Direction: Forward, Position: Position{Mode: Earliest, Topic: "orders"}, Limit: 1000}))
	bwd := runAll(t, newEmitter(l, Request{Direction: Backward, Position: Position{Mode: Latest, Topic: "orders"}, Limit: 1000},
		WithSettings(Settings{PollTimeout: 20 * time.Millisecond, EmptyPolls: 2, ChunkSize: 7})))
	if bwd.err != nil {
		t.Fatalf("backward: %v", bwd.err)
	}
	checkOrder(t, bwd.messages(), Backward)
	if !slices.Equal(sortedValues(fwd.messages()), sortedValues(bwd.messages())) {
		t.Fatal("backward contents differ from forward contents")
	}
	if s := bwd.summary(t); s.Reason != StopExhausted {
		t.Fatalf("reason %s", s.Reason)
	}
}

func TestOffsets(t *testing.T) {
	l := kafkatest.NewLog()
	seedTopic(t, l, "orders", 3, 10)
	offs := map[int32]int64{0: 0, 1: 4, 2: 9}

	fwd := runAll(t, newEmitter(l, Request{Direction: Forward, Position: Position{Mode: FromOffset, Topic: "orders", Offsets: offs}, Limit: 1000}))
	want := allValues(3, 10, func(p, i int) bool { return int64(i) >= offs[int32(p)] })
	if got := sortedValues(fwd.messages()); !slices.Equal(got, want) {
		t.Fatalf("FROM_OFFSET got %v want %v", got, want)
	}

	bwd := runAll(t, newEmitter(l, Request{Direction: Backward, Position: Position{Mode: ToOffset, Topic: "orders", Offsets: offs}, Limit: 1000}))
	want = allValues(3, 10, func(p, i int) bool { return int64(i) < offs[int32(p)] })
	if got := sortedValues(bwd.messages()); !slices.Equal(got, want) {
		t.Fatalf("TO_OFFSET got %v want %v", got, want)
	}
}

func TestOffsets_SingleOffsetAndClamping(t *testing.T) {
	l := kafkatest.NewLog()
	seedTopic(t, l, "orders", 2, 10)
	if err := l.Truncate("orders", 0, 5); err != nil {
		t.Fatal(err)
	}

	res := runAll(t, newEmitter(l, Request{Direction: Forward, Position: Position{Mode: FromOffset, Topic: "orders", Offset: ptr(int64(2))}, Limit: 1000}))
	want := allValues(2, 10, func(p, i int) bool { return (p == 0 && i >= 5) || (p == 1 && i >= 2) })
	if got := sortedValues(res.messages()); !slices.Equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}

	res = runAll(t, newEmitter(l, Request{Direction: Backward, Position: Position{Mode: ToOffset, Topic: "orders", Offset: ptr(int64(99))}, Limit: 1000}))
	if len(res.messages()) != 15 {
		t.Fatalf("TO_OFFSET past the end should read everything, got %d", len(res.messages()))
	}
}

func TestTimestamps(t *testing.T) {
	l := kafkatest.NewLog()
	seedTopic(t, l, "orders", 3, 10)
	target := base.Add(6 * time.Second).UnixMilli()

	fwd := runAll(t, newEmitter(l, Request{Direction: Forward, Position: Position{Mode: FromTimestamp, Topic: "orders", Timestamp: &target}, Limit: 1000}))
	if got, want := sortedValues(fwd.messages()), allValues(3, 10, func(_, i int) bool { return i >= 6 }); !slices.Equal(got, want) {
		t.Fatalf("FROM_TIMESTAMP got %v want %v", got, want)
	}

	bwd := runAll(t, newEmitter(l, Request{Direction: Backward, Position: Position{Mode: ToTimestamp, Topic: "orders", Timestamp: &target}, Limit: 1000}))
	if got, want := sortedValues(bwd.messages()), allValues(3, 10, func(_, i int) bool { return i < 6 }); !slices.Equal(got, want) {
		t.Fatalf("TO_TIMESTAMP got %v want %v", got, want)
	}

	future := base.Add(time.Hour).UnixMilli()
	fwd = runAll(t, newEmitter(l, Request{Direction: Forward, Position: Position{Mode: FromTimestamp, Topic: "orders", Timestamp: &future}, Limit: 1000}))
	if len(fwd.messages()) != 0 || fwd.summary(t).Reason != StopExhausted {
		t.Fatal("FROM_TIMESTAMP past the last record should read nothing")
	}
	bwd = runAll(t, newEmitter(l, Request{Direction: Backward, Position: Position{Mode: ToTimestamp, Topic: "orders", Timestamp: &future}, Limit: 1000}))
	if len(bwd.messages()) != 30 {
		t.Fatalf("TO_TIMESTAMP past the last record should read everything, got %d", len(bwd.messages()))
	}
}

func TestBudget_CursorResumesContiguously(t *testing.T) {
	odd := func(m *Message) (bool, error) { return m.Offset%2 == 1, nil }
	for _, tc := range []struct {
		name   string
		dir    Direction
		mode   Mode
		filter Predicate
		keep   func(p, i int) bool
	}{
		{"forward", Forward, Earliest, nil, nil},
		{"backward", Backward, Latest, nil, nil},
		{"forward filtered", Forward, Earliest, odd, func(_, i int) bool { return i%2 == 1 }},
		{"backward filtered", Backward, Latest, odd, func(_, i int) bool { return i%2 == 1 }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			l := kafkatest.NewLog(kafkatest.WithMaxPollRecords(4))
			seedTopic(t, l, "orders", 3, 10)

			first := runAll(t, newEmitter(l, Request{Direction: tc.dir, Position: Position{Mode: tc.mode, Topic: "orders"}, Limit: 7, Filter: tc.filter}))
			if got := len(first.messages()); got != 7 {
				t.Fatalf("want 7 messages, got %d", got)
			}
			s := first.summary(t)
			if s.Reason != StopBudget || first.cursor == nil || s.Cursor != first.cursor {
				t.Fatalf("budget stop should carry a cursor: %+v", s)
			}
			if first.cursor.Direction != tc.dir || first.cursor.Topic != "orders" {
				t.Fatalf("unexpected cursor %+v", first.cursor)
			}

			rest := runAll(t, newEmitter(l, Request{Direction: tc.dir, Position: first.cursor.Position(), Limit: 1000, Filter: tc.filter}))
			if rest.err != nil {
				t.Fatalf("resume: %v", rest.err)
			}
			checkOrder(t, append(first.messages(), rest.messages()...), tc.dir)

			seen := map[string]bool{}
			for _, v := range append(values(first.messages()), values(rest.messages())...) {
				if seen[v] {
					t.Fatalf("duplicate %s across runs", v)
				}
				seen[v] = true
			}
			if got, want := sortedValues(append(first.messages(), rest.messages()...)), allValues(3, 10, tc.keep); !slices.Equal(got, want) {
				t.Fatalf("union of runs has gaps: got %d want %d", len(got), len(want))
			}
		})
	}
}

func TestBackward_LatestSplitsBudgetAcrossPartitions(t *testing.T) {
	l := kafkatest.NewLog(kafkatest.WithMaxPollRecords(19))
	seedTopic(t, l, "orders", 5, 100)

	res := runAll(t, newEmitter(l, Request{Direction: Backward, Position: Position{Mode: Latest, Topic: "orders"}, Limit: 100}))
	want := allValues(5, 100, func(_, i int) bool { return i >= 80 })
	if got := sortedValues(res.messages()); !slices.Equal(got, want) {
		t.Fatalf("want the last 20 of every partition, got %v", got)
	}
	for _, off := range res.cursor.Next {
		if off != 80 {
			t.Fatalf("cursor should stop at 80 everywhere: %v", res.cursor.Next)
		}
	}
}

func TestBackward_EarliestReadsNothing(t *testing.T) {
	l := kafkatest.NewLog()
	seedTopic(t, l, "orders", 2, 10)

	res := runAll(t, newEmitter(l, Request{Direction: Backward, Position: Position{Mode: Earliest, Topic: "orders"}, Limit: 100}))
	if got := res.types(); !slices.Equal(got, []EventType{EventPhase, EventDone}) {
		t.Fatalf("event types %v", got)
	}
}

func TestForward_EarliestWithLimit(t *testing.T) {
	l := kafkatest.NewLog(kafkatest.WithMaxPollRecords(19))
	seedTopic(t, l, "orders", 5, 100)

	res := runAll(t, newEmitter(l, Request{Direction: Forward, Position: Position{Mode: Earliest, Topic: "orders"}, Limit: 100}))
	msgs := res.messages()
	if len(msgs) != 100 {
		t.Fatalf("want 100 messages, got %d", len(msgs))
	}
	checkOrder(t, msgs, Forward)
	for _, m := range msgs {
		if res.cursor.Next[m.Partition] <= m.Offset {
			t.Fatalf("cursor %v not past emitted offset %d", res.cursor.Next, m.Offset)
		}
	}
}

func TestEmptyTopic(t *testing.T) {
	for _, tc := range []struct {
		dir  Direction
		mode Mode
	}{
		{Forward, Earliest}, {Forward, Latest}, {Backward, Latest}, {Backward, Earliest},
	} {
		t.Run(string(tc.dir)+"/"+string(tc.mode), func(t *testing.T) {
			l := kafkatest.NewLog()
			l.CreateTopic("empty", 3)
			res := runAll(t, newEmitter(l, Request{Direction: tc.dir, Position: Position{Mode: tc.mode, Topic: "empty"}, Limit: 10}))
			if got := res.types(); !slices.Equal(got, []EventType{EventPhase, EventDone}) {
				t.Fatalf("event types %v", got)
			}
		})
	}
}

func TestCancel_DetachStopsAndReleases(t *testing.T) {
	l := kafkatest.NewLog(kafkatest.WithMaxPollRecords(5))
	seedTopic(t, l, "orders", 3, 50)

	e := newEmitter(l, Request{Direction: Forward, Position: Position{Mode: Earliest, Topic: "orders"}, Limit: 1000})
	sink := NewSink(0)
	done := make(chan result, 1)
	go func() {
		cur, err := e.Run(context.Background(), sink)
		done <- result{cursor: cur, err: err}
	}()

	for ev := range sink.Events() {
		if ev.Type == EventMessage {
			break
		}
	}
	sink.Detach()

	select {
	case res := <-done:
		if res.err != nil || res.cursor != nil {
			t.Fatalf("cancelled run should return nothing, got %+v", res)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop after detach")
	}
	if ev, ok := <-sink.Events(); ok {
		t.Fatalf("event after cancellation: %+v", ev)
	}
	if n := l.OpenConnections(); n != 0 {
		t.Fatalf("%d connections left open", n)
	}
}

type stallThrottler struct{}

func (stallThrottler) BeforePoll() time.Duration { return time.Hour }
func (stallThrottler) AfterPoll(int, int)        {}

func TestCancel_DuringThrottleWait(t *testing.T) {
	l := kafkatest.NewLog()
	seedTopic(t, l, "orders", 1, 5)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	e := newEmitter(l, Request{Direction: Forward, Position: Position{Mode: Earliest, Topic: "orders"}, Limit: 10, Throttler: stallThrottler{}})
	sink := NewSink(8)

	start := time.Now()
	cur, err := e.Run(ctx, sink)
	if err != nil || cur != nil {
		t.Fatalf("got cursor=%v err=%v", cur, err)
	}
	if time.Since(start) > 2*time.Second {
		t.Fatal("throttle wait ignored cancellation")
	}
	var types []EventType
	for ev := range sink.Events() {
		types = append(types, ev.Type)
	}
	if !slices.Equal(types, []EventType{EventPhase}) {
		t.Fatalf("want only the PHASE event, got %v", types)
	}
	if l.OpenConnections() != 0 {
		t.Fatal("connection left open")
	}
}

func TestIdempotentForwardRuns(t *testing.T) {
	l := kafkatest.NewLog(kafkatest.WithMaxPollRecords(3))
	seedTopic(t, l, "orders", 4, 15)
	req := Request{Direction: Forward, Position: Position{Mode: Earliest, Topic: "orders"}, Limit: 25}

	a := runAll(t, newEmitter(l, req))
	b := runAll(t, newEmitter(l, req))
	va, vb := values(a.messages()), values(b.messages())
	if !slices.Equal(va, vb) {
		t.Fatalf("runs differ:\n%v\n%v", va, vb)
	}
}

func TestValidation_FailsBeforePolling(t *testing.T) {
	l := kafkatest.NewLog()
	seedTopic(t, l, "orders", 2, 5)

	cases := map[string]Request{
		"missing offsets":   {Direction: Forward, Position: Position{Mode: FromOffset, Topic: "orders"}, Limit: 5},
		"partial offsets":   {Direction: Forward, Position: Position{Mode: FromOffset, Topic: "orders", Partitions: []int32{0, 1}, Offsets: map[int32]int64{0: 1}}, Limit: 5},
		"missing timestamp": {Direction: Backward, Position: Position{Mode: ToTimestamp, Topic: "orders"}, Limit: 5},
		"wrong direction":   {Direction: Backward, Position: Position{Mode: FromOffset, Topic: "orders", Offset: ptr(int64(0))}, Limit: 5},
		"zero limit":        {Direction: Forward, Position: Position{Mode: Earliest, Topic: "orders"}},
		"no topic":          {Direction: Forward, Position: Position{Mode: Earliest}, Limit: 5},
		"bad mode":          {Direction: Forward, Position: Position{Mode: "SIDEWAYS", Topic: "orders"}, Limit: 5},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			res := runAll(t, newEmitter(l, req))
			var ve *ValidationError
			if !errors.As(res.err, &ve) {
				t.Fatalf("want ValidationError, got %v", res.err)
			}
			if len(res.events) != 1 || res.events[0].Type != EventError {
				t.Fatalf("want a single ERROR event, got %v", res.types())
			}
		})
	}
	if l.OpenConnections() != 0 {
		t.Fatal("connection left open")
	}
}

func TestTransportErrors(t *testing.T) {
	l := kafkatest.NewLog()
	seedTopic(t, l, "orders", 2, 5)

	res := runAll(t, newEmitter(l, Request{Direction: Forward, Position: Position{Mode: Earliest, Topic: "missing"}, Limit: 5}))
	var te *TransportError
	if !errors.As(res.err, &te) || !errors.Is(res.err, kafkatest.ErrUnknownTopic) {
		t.Fatalf("want TransportError for a missing topic, got %v", res.err)
	}

	res = runAll(t, newEmitter(l, Request{Direction: Forward, Position: Position{Mode: Earliest, Topic: "orders", Partitions: []int32{7}}, Limit: 5}))
	if !errors.Is(res.err, ErrUnknownPartition) || !errors.As(res.err, &te) || te.Partition != 7 {
		t.Fatalf("want unknown partition 7, got %v", res.err)
	}

	boom := errors.New("broker gone")
	l.FailPolls(boom)
	res = runAll(t, newEmitter(l, Request{Direction: Backward, Position: Position{Mode: Latest, Topic: "orders"}, Limit: 5}))
	if !errors.Is(res.err, boom) {
		t.Fatalf("want poll error, got %v", res.err)
	}
	if got := res.types(); !slices.Equal(got, []EventType{EventPhase, EventError}) {
		t.Fatalf("event types %v", got)
	}
	if l.OpenConnections() != 0 {
		t.Fatal("connection left open")
	}
}

func TestDecodeAndFilterErrorsAreCounted(t *testing.T) {
	l := kafkatest.NewLog()
	l.CreateTopic("nums", 1)
	for i, v := range [][]byte{{0, 0, 0, 1}, {0xff}, {0, 0, 0, 3}, {0, 0, 0, 4}} {
		if _, err := l.Produce("nums", 0, base.Add(time.Duration(i)*time.Second), nil, v); err != nil {
			t.Fatal(err)
		}
	}
	dec, err := serde.NewDecoder("String", "Int32")
	if err != nil {
		t.Fatal(err)
	}
	filter := func(m *Message) (bool, error) {
		if m.Offset == 3 {
			return false, errors.New("bad expression")
		}
		return true, nil
	}

	res := runAll(t, newEmitter(l, Request{Direction: Forward, Position: Position{Mode: Earliest, Topic: "nums"}, Limit: 10, Decoder: dec, Filter: filter}))
	if got := values(res.messages()); !slices.Equal(got, []string{"1", "3"}) {
		t.Fatalf("got %v", got)
	}
	s := res.summary(t)
	if s.Skipped != 1 || s.FilterErrors != 1 || s.Messages != 2 {
		t.Fatalf("unexpected counters %+v", s)
	}
	terminals := 0
	for _, ev := range res.events {
		if ev.Type == EventError {
			t.Fatal("decode failures must not end the run")
		}
		if ev.Type == EventDone {
			terminals++
		}
	}
	if terminals != 1 || res.events[len(res.events)-1].Type != EventDone {
		t.Fatalf("want a single closing DONE, got %d terminals", terminals)
	}
}

func TestForward_Latest(t *testing.T) {
	l := kafkatest.NewLog()
	seedTopic(t, l, "orders", 2, 5)

	res := runAll(t, newEmitter(l, Request{Direction: Forward, Position: Position{Mode: Latest, Topic: "orders"}, Limit: 5}))
	s := res.summary(t)
	if len(res.messages()) != 0 || s.Reason != StopIdle || s.Polls != 2 {
		t.Fatalf("quiet LATEST tail should stop idle after 2 polls: %+v", s)
	}

	settings := testSettings()
	settings.Follow = true
	sink := newEmitter(l, Request{Direction: Forward, Position: Position{Mode: Latest, Topic: "orders"}, Limit: 2}, WithSettings(settings)).
		Stream(context.Background(), 8)

	if ev := <-sink.Events(); ev.Type != EventPhase {
		t.Fatalf("want PHASE first, got %s", ev.Type)
	}
	time.Sleep(100 * time.Millisecond)
	for p := range int32(2) {
		if _, err := l.Produce("orders", p, time.Now(), nil, []byte("new")); err != nil {
			t.Fatal(err)
		}
	}
	var got []EventType
	for ev := range sink.Events() {
		got = append(got, ev.Type)
	}
	if !slices.Equal(got, []EventType{EventMessage, EventMessage, EventDone}) {
		t.Fatalf("follow tail events %v", got)
	}
}

type countingRecorder struct {
	NopRecorder
	polls    int
	outcomes []Outcome
}

func (c *countingRecorder) ObservePoll(Direction, int, int, time.Duration) { c.polls++ }
func (c *countingRecorder) ObserveRun(_ Direction, o Outcome, _ Summary)   { c.outcomes = append(c.outcomes, o) }

func TestRecorder(t *testing.T) {
	l := kafkatest.NewLog()
	seedTopic(t, l, "orders", 2, 5)
	rec := &countingRecorder{}

	res := runAll(t, newEmitter(l, Request{Direction: Forward, Position: Position{Mode: Earliest, Topic: "orders"}, Limit: 100}, WithRecorder(rec)))
	if rec.polls != res.summary(t).Polls || rec.polls == 0 {
		t.Fatalf("recorder saw %d polls, summary %d", rec.polls, res.summary(t).Polls)
	}
	if !slices.Equal(rec.outcomes, []Outcome{OutcomeDone}) {
		t.Fatalf("outcomes %v", rec.outcomes)
	}
}
