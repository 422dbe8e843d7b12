package emitter

import (
	"time"

	"github.com/cxm940188/kafka-ui/internal/serde"
	"github.com/cxm940188/kafka-ui/source/kafka"
)

type EventType string

const (
	EventPhase   EventType = "PHASE"
	EventMessage EventType = "MESSAGE"
	EventDone    EventType = "DONE"
	EventError   EventType = "ERROR"
)

// Event is one item of a run's output. Exactly one of Phase, Message, Done or
// Err is meaningful, depending on Type.
type Event struct {
	Type    EventType
	Phase   string
	Message *Message
	Done    *Summary
	Err     error
}

type Message struct {
	Topic     string    `json:"topic"`
	Partition int32     `json:"partition"`
	Offset    int64     `json:"offset"`
	Timestamp time.Time `json:"timestamp"`
	serde.Decoded
	Raw kafka.Record `json:"-"`
}

type StopReason string

const (
	StopBudget    StopReason = "budget"    // limit reached; a cursor is attached
	StopExhausted StopReason = "exhausted" // every boundary traversed
	StopIdle      StopReason = "idle"      // too many consecutive empty polls
)

type Summary struct {
	Elapsed      time.Duration `json:"elapsed"`
	Polls        int           `json:"polls"`
	Messages     int           `json:"messages"`
	BytesPolled  int64         `json:"bytesPolled"`
	Filtered     int           `json:"filtered"`
	FilterErrors int           `json:"filterErrors"`
	Skipped      int           `json:"skipped"`
	Reason       StopReason    `json:"reason"`
	Cursor       *Cursor       `json:"cursor,omitempty"`
}
