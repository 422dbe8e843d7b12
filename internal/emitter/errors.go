package emitter

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownPartition = errors.New("unknown partition")

// ValidationError is a request that cannot run. It is reported before any
// poll is issued.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Reason)
}

// TransportError is a failure of the log client. Partition and Offset are -1
// when they do not apply.
type TransportError struct {
	Op        string
	Topic     string
	Partition int32
	Offset    int64
	Err       error
}

func (e *TransportError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", e.Op, e.Topic)
	if e.Partition >= 0 {
		fmt.Fprintf(&b, "[%d]", e.Partition)
	}
	if e.Offset >= 0 {
		fmt.Fprintf(&b, "@%d", e.Offset)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *TransportError) Unwrap() error { return e.Err }

func transportErr(op, topic string, err error) *TransportError {
	return &TransportError{Op: op, Topic: topic, Partition: -1, Offset: -1, Err: err}
}
