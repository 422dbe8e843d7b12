package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

type fakeFranz struct {
	added   map[string]map[int32]kgo.Offset
	set     map[string]map[int32]kgo.EpochOffset
	fetches kgo.Fetches
	closed  bool
}

func (f *fakeFranz) AddConsumePartitions(p map[string]map[int32]kgo.Offset) { f.added = p }
func (f *fakeFranz) SetOffsets(p map[string]map[int32]kgo.EpochOffset)     { f.set = p }
func (f *fakeFranz) PollRecords(context.Context, int) kgo.Fetches           { return f.fetches }
func (f *fakeFranz) Close()                                                 { f.closed = true }

func fetchOf(parts ...kgo.FetchPartition) kgo.Fetches {
	return kgo.Fetches{{Topics: []kgo.FetchTopic{{Topic: "t", Partitions: parts}}}}
}

func TestFranzDriver_SeekAddsThenSets(t *testing.T) {
	fc := &fakeFranz{}
	d := &FranzDriver{cl: fc, assigned: make(map[topicPartition]bool)}

	if err := d.Seek("t", 3, 42); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	if _, ok := fc.added["t"][3]; !ok {
		t.Fatal("first seek should add the partition")
	}
	if err := d.Seek("t", 3, 7); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	if eo := fc.set["t"][3]; eo.Offset != 7 || eo.Epoch != -1 {
		t.Fatalf("second seek should set offset 7, got %+v", eo)
	}
}

func TestFranzDriver_PollConvertsRecords(t *testing.T) {
	ts := time.UnixMilli(1_700_000_000_000)
	fc := &fakeFranz{fetches: fetchOf(kgo.FetchPartition{
		Partition: 1,
		Records: []*kgo.Record{
			{Topic: "t", Partition: 1, Offset: 5, Timestamp: ts, Value: []byte("a"),
				Headers: []kgo.RecordHeader{{Key: "h", Value: []byte("v")}}},
			{Topic: "t", Partition: 1, Offset: 6, Timestamp: ts, Value: []byte("b")},
		},
	})}
	d := &FranzDriver{cl: fc, cfg: Config{Polling: PollingCfg{MaxPollRecords: 10}}}

	recs, err := d.Poll(context.Background(), time.Second)
	if err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if len(recs) != 2 || recs[0].Offset != 5 || recs[1].Offset != 6 {
		t.Fatalf("unexpected records: %+v", recs)
	}
	if len(recs[0].Headers) != 1 || recs[0].Headers[0].Key != "h" {
		t.Fatalf("headers not converted: %+v", recs[0].Headers)
	}
	if !recs[0].Timestamp.Equal(ts) {
		t.Fatalf("timestamp mismatch: %v", recs[0].Timestamp)
	}
}

func TestFranzDriver_PollIgnoresDeadline(t *testing.T) {
	fc := &fakeFranz{fetches: fetchOf(kgo.FetchPartition{Partition: -1, Err: context.DeadlineExceeded})}
	d := &FranzDriver{cl: fc}

	recs, err := d.Poll(context.Background(), time.Millisecond)
	if err != nil {
		t.Fatalf("deadline should read as an empty poll, got %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("want no records, got %d", len(recs))
	}
}

func TestFranzDriver_PollSurfacesFetchErrors(t *testing.T) {
	fc := &fakeFranz{fetches: fetchOf(kgo.FetchPartition{Partition: 2, Err: kerr.UnknownTopicOrPartition})}
	d := &FranzDriver{cl: fc}

	_, err := d.Poll(context.Background(), time.Second)
	if !errors.Is(err, kerr.UnknownTopicOrPartition) {
		t.Fatalf("want UnknownTopicOrPartition, got %v", err)
	}
}

func TestFranzDriver_Close(t *testing.T) {
	fc := &fakeFranz{}
	d := &FranzDriver{cl: fc}
	if err := d.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !fc.closed {
		t.Fatal("client not closed")
	}
}

func TestClientOptions(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantLen int
		wantErr bool
	}{
		{"basic", Config{Brokers: []string{"localhost:9092"}}, 2, false},
		{"dial timeout", Config{Brokers: []string{"b"}, DialTimeout: time.Second}, 3, false},
		{"plain", Config{Brokers: []string{"b"}, SASL: SASLCfg{Mechanism: "PLAIN", User: "u", Pass: "p"}}, 3, false},
		{"scram-512", Config{Brokers: []string{"b"}, SASL: SASLCfg{Mechanism: "SCRAM-SHA-512", User: "u", Pass: "p"}}, 3, false},
		{"tls", Config{Brokers: []string{"b"}, TLS: TLSCfg{Enabled: true, SkipVerify: true}}, 3, false},
		{"unknown sasl", Config{Brokers: []string{"b"}, SASL: SASLCfg{Mechanism: "GSSAPI"}}, 0, true},
		{"missing ca", Config{Brokers: []string{"b"}, TLS: TLSCfg{Enabled: true, CAFile: "/nonexistent/ca.pem"}}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ClientOptions(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ClientOptions() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(opts) != tt.wantLen {
				t.Errorf("want %d options, got %d", tt.wantLen, len(opts))
			}
		})
	}
}
