package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"github.com/prometheus/client_golang/prometheus/testutil"

	pb "github.com/cxm940188/kafka-ui/api/proto/v1"
	"github.com/cxm940188/kafka-ui/internal/cursorstore"
	"github.com/cxm940188/kafka-ui/internal/emitter"
	"github.com/cxm940188/kafka-ui/internal/logging"
	"github.com/cxm940188/kafka-ui/internal/query"
	"github.com/cxm940188/kafka-ui/internal/serde"
	"github.com/cxm940188/kafka-ui/internal/telemetry"
	"github.com/cxm940188/kafka-ui/source/kafka"
	"github.com/cxm940188/kafka-ui/source/kafka/kafkatest"
)

type captureSink struct {
	pushed []emitter.Event
	failAt int // 1-based MESSAGE index that fails; 0 = never
	msgs   int
	closed int
}

func (c *captureSink) Configure(any) error { return nil }
func (c *captureSink) Push(ev emitter.Event) error {
	if ev.Type == emitter.EventMessage {
		c.msgs++
		if c.msgs == c.failAt {
			return errors.New("disk full")
		}
	}
	c.pushed = append(c.pushed, ev)
	return nil
}
func (c *captureSink) Close() error { c.closed++; return nil }

func (c *captureSink) offsets() []string {
	var out []string
	for _, ev := range c.pushed {
		if ev.Type == emitter.EventMessage {
			out = append(out, fmt.Sprintf("%d@%d", ev.Message.Partition, ev.Message.Offset))
		}
	}
	return out
}

func seed(t *testing.T, topic string, partitions, per int) *kafkatest.Log {
	t.Helper()
	l := kafkatest.NewLog()
	l.CreateTopic(topic, partitions)
	ts := time.UnixMilli(1_700_000_000_000)
	for i := range per {
		for p := range partitions {
			v := []byte(fmt.Sprintf("%d-%d", p, i))
			if _, err := l.Produce(topic, int32(p), ts.Add(time.Duration(i)*time.Second), v, v); err != nil {
				t.Fatalf("produce: %v", err)
			}
		}
	}
	return l
}

func fastPolling() kafka.PollingCfg {
	return kafka.PollingCfg{PollTimeout: 20 * time.Millisecond, EmptyPolls: 2}
}

func newRunner(l *kafkatest.Log, q query.Query, store cursorstore.Store, opts ...Option) (*Runner, *captureSink) {
	opts = append([]Option{WithConnector(l.Connect), WithLogger(logging.Discard())}, opts...)
	r := NewRunner(opts...)
	r.SetQuery(q)
	r.SetPolling(fastPolling())
	if store != nil {
		r.SetStore(store, false)
	}
	cs := &captureSink{}
	r.AddSink("capture", cs)
	return r, cs
}

func TestRunner_StoresCursorAndResumes(t *testing.T) {
	l := seed(t, "orders", 2, 5)
	store := cursorstore.NewMemory(10)
	ctx := context.Background()

	r, cs := newRunner(l, query.Query{Topic: "orders", Limit: 4}, store)
	res, err := r.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.CursorID == "" || res.Cursor == nil || res.Summary == nil || res.Summary.Reason != emitter.StopBudget {
		t.Fatalf("unexpected result %+v", res)
	}
	first := cs.offsets()
	if len(first) != 4 {
		t.Fatalf("want 4 messages, got %v", first)
	}

	r2, cs2 := newRunner(l, query.Query{Resume: res.CursorID, Limit: 100}, store)
	res2, err := r2.Run(ctx)
	if err != nil {
		t.Fatalf("resume Run: %v", err)
	}
	if res2.CursorID != "" || res2.Summary.Reason == emitter.StopBudget {
		t.Fatalf("resumed run should finish the topic, got %+v", res2)
	}
	seen := map[string]bool{}
	for _, o := range append(first, cs2.offsets()...) {
		if seen[o] {
			t.Fatalf("offset %s delivered twice", o)
		}
		seen[o] = true
	}
	if len(seen) != 10 {
		t.Fatalf("want all 10 records across both runs, got %d", len(seen))
	}
}

func TestRunner_SinkFailureDetaches(t *testing.T) {
	l := seed(t, "orders", 1, 50)
	reg := prometheus.NewRegistry()
	m := telemetry.NewMetrics(reg)

	r, cs := newRunner(l, query.Query{Topic: "orders", Limit: 50}, nil, WithMetrics(m), WithEventBuffer(0))
	cs.failAt = 3
	_, err := r.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("want sink error, got %v", err)
	}
	if got := len(cs.offsets()); got != 2 {
		t.Fatalf("want 2 messages before failure, got %d", got)
	}
	if got := testutil.ToFloat64(m.SinkErrors.WithLabelValues("capture")); got != 1 {
		t.Fatalf("sink errors: want 1, got %v", got)
	}
	if got := testutil.ToFloat64(m.Runs.WithLabelValues("FORWARD", "cancelled", "")); got != 1 {
		t.Fatalf("cancelled runs: want 1, got %v", got)
	}
	if l.OpenConnections() != 0 {
		t.Fatalf("connection leaked")
	}
}

func TestRunner_SurfacesRunErrors(t *testing.T) {
	l := seed(t, "orders", 1, 1)
	r, cs := newRunner(l, query.Query{Topic: "missing"}, nil)
	_, err := r.Run(context.Background())
	var te *emitter.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("want TransportError, got %v", err)
	}
	last := cs.pushed[len(cs.pushed)-1]
	if last.Type != emitter.EventError {
		t.Fatalf("sink should see the ERROR event, got %v", last.Type)
	}
}

func TestRunner_StartWaitClose(t *testing.T) {
	l := seed(t, "orders", 1, 3)
	r, cs := newRunner(l, query.Query{Topic: "orders", Direction: "backward"}, nil)
	if _, err := r.Wait(); err == nil {
		t.Fatal("Wait before Start should fail")
	}
	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	res, err := r.Wait()
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if res.Summary.Messages != 3 {
		t.Fatalf("want 3 messages, got %+v", res.Summary)
	}
	if got := cs.offsets(); strings.Join(got, ",") != "0@2,0@1,0@0" {
		t.Fatalf("backward order: %v", got)
	}
	_ = r.Close()
	_ = r.Close()
	if cs.closed != 1 {
		t.Fatalf("sink closed %d times", cs.closed)
	}
}

func TestCompile_QueryFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	write("kafka.yml", `schema_version: v1
brokers: [localhost:9092]
polling:
  poll_timeout: 20ms
  empty_polls: 2
`)
	write("tail.yml", `schema_version: v1
source: { kind: kafka, driver: sarama, config: kafka.yml }
tail:
  topic: orders
  partitions: [1]
  contains: "1-2"
sinks: [stdout]
sink_configs:
  stdout: { format: text, print_value: true }
`)

	l := seed(t, "orders", 2, 4)
	var out bytes.Buffer
	r, err := Compile(filepath.Join(dir, "tail.yml"), WithConnector(l.Connect), WithOutput(&out), WithLogger(logging.Discard()))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	defer r.Close()

	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Summary.Messages != 1 || res.Summary.Filtered != 3 {
		t.Fatalf("unexpected summary %+v", res.Summary)
	}
	if !strings.Contains(out.String(), "orders[1]@2") || !strings.Contains(out.String(), "value=1-2") {
		t.Fatalf("stdout sink output:\n%s", out.String())
	}
}

func TestCompile_UnknownSink(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "tail.yml")
	body := "source: {config: kafka.yml}\ntail: {topic: t}\nsinks: [s3]\n"
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "kafka.yml"), []byte("brokers: [b:9092]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Compile(p); err == nil || !strings.Contains(err.Error(), "s3") {
		t.Fatalf("want unknown sink error, got %v", err)
	}
}

type reversePlugin struct {
	pb.UnimplementedSerdePluginServer
}

func (reversePlugin) Metadata(context.Context, *pb.MetadataRequest) (*pb.MetadataResponse, error) {
	return &pb.MetadataResponse{Name: "reverse", Serdes: []string{"Reverse"}}, nil
}

func (reversePlugin) Health(context.Context, *pb.HealthRequest) (*pb.HealthResponse, error) {
	return &pb.HealthResponse{Ok: true}, nil
}

func (reversePlugin) Deserialize(_ context.Context, req *pb.DeserializeRequest) (*pb.DeserializeResponse, error) {
	b := []byte(string(req.GetData()))
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return &pb.DeserializeResponse{Text: string(b)}, nil
}

func TestCompile_SerdePlugin(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := grpc.NewServer()
	pb.RegisterSerdePluginServer(srv, reversePlugin{})
	go func() { _ = srv.Serve(lis) }()
	defer srv.Stop()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "kafka.yml"), []byte("brokers: [b:9092]\npolling: {poll_timeout: 20ms, empty_polls: 2}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	body := fmt.Sprintf(`source: {config: kafka.yml}
tail: {topic: orders, value_serde: "plugin:Reverse"}
serde_plugins:
  - {name: reverse, address: %q, timeout: 1s}
sink_configs:
  stdout: {print_value: true}
`, lis.Addr().String())
	p := filepath.Join(dir, "tail.yml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	l := seed(t, "orders", 1, 3)
	var out bytes.Buffer
	r, err := Compile(p, WithConnector(l.Connect), WithOutput(&out), WithLogger(logging.Discard()))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "value=2-0") {
		t.Fatalf("stdout sink output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "orders[0]@2") {
		t.Fatalf("missing record line:\n%s", out.String())
	}

	_ = r.Close()
	if _, ok := serde.Lookup("plugin:Reverse"); ok {
		t.Fatal("closing the runner should drop its plugin serdes")
	}
}
