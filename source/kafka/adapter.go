package kafka

import (
	"context"
	"time"
)

type Header struct {
	Key   string
	Value []byte
}

// Record is one fetched log entry.
type Record struct {
	Topic     string
	Partition int32
	Offset    int64
	Timestamp time.Time
	Key       []byte
	Value     []byte
	Headers   []Header
}

// Size is the number of payload bytes the record carried over the wire.
func (r Record) Size() int {
	n := len(r.Key) + len(r.Value)
	for _, h := range r.Headers {
		n += len(h.Key) + len(h.Value)
	}
	return n
}

// Client is a single log connection. It is not safe for concurrent use; one
// tail run owns one Client for its whole lifetime.
type Client interface {
	Partitions(ctx context.Context, topic string) ([]int32, error)
	LogStartOffsets(ctx context.Context, topic string, partitions []int32) (map[int32]int64, error)
	HighWatermarks(ctx context.Context, topic string, partitions []int32) (map[int32]int64, error)
	// OffsetsForTimestamp returns, per partition, the offset of the first record
	// whose timestamp is >= ms. Partitions without such a record are absent.
	OffsetsForTimestamp(ctx context.Context, topic string, partitions []int32, ms int64) (map[int32]int64, error)

	// Seek positions the read cursor of a partition and assigns it if needed.
	Seek(topic string, partition int32, offset int64) error
	// Poll returns records of assigned partitions in increasing offset order per
	// partition. It blocks for at most timeout and returns an empty slice when
	// nothing arrived in time.
	Poll(ctx context.Context, timeout time.Duration) ([]Record, error)
	Close() error
}
