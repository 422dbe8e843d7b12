package emitter

import (
	"fmt"
	"slices"
)

type Mode string

const (
	Earliest      Mode = "EARLIEST"
	Latest        Mode = "LATEST"
	FromOffset    Mode = "FROM_OFFSET"
	ToOffset      Mode = "TO_OFFSET"
	FromTimestamp Mode = "FROM_TIMESTAMP"
	ToTimestamp   Mode = "TO_TIMESTAMP"
)

type Direction string

const (
	Forward  Direction = "FORWARD"
	Backward Direction = "BACKWARD"
)

// Position says where a run starts (forward) or stops reading downward from
// (backward). Timestamp is in epoch milliseconds. Offset applies to every
// partition in scope; Offsets overrides it per partition.
type Position struct {
	Mode       Mode            `json:"mode" yaml:"mode"`
	Topic      string          `json:"topic" yaml:"topic"`
	Partitions []int32         `json:"partitions,omitempty" yaml:"partitions,omitempty"`
	Timestamp  *int64          `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Offset     *int64          `json:"offset,omitempty" yaml:"offset,omitempty"`
	Offsets    map[int32]int64 `json:"offsets,omitempty" yaml:"offsets,omitempty"`
}

func (p Position) Validate() error {
	if p.Topic == "" {
		return &ValidationError{Field: "topic", Reason: "is required"}
	}
	switch p.Mode {
	case Earliest, Latest:
	case FromOffset, ToOffset:
		if p.Offset == nil && len(p.Offsets) == 0 {
			return &ValidationError{Field: "offsets", Reason: fmt.Sprintf("%s needs an offset", p.Mode)}
		}
	case FromTimestamp, ToTimestamp:
		if p.Timestamp == nil {
			return &ValidationError{Field: "timestamp", Reason: fmt.Sprintf("%s needs a timestamp", p.Mode)}
		}
	default:
		return &ValidationError{Field: "mode", Reason: fmt.Sprintf("unknown mode %q", p.Mode)}
	}
	for _, id := range p.Partitions {
		if id < 0 {
			return &ValidationError{Field: "partitions", Reason: fmt.Sprintf("negative partition %d", id)}
		}
	}
	return nil
}

func (p Position) explicitOffsets() bool {
	return p.Mode == FromOffset || p.Mode == ToOffset
}

func (p Position) offsetFor(partition int32) (int64, bool) {
	if off, ok := p.Offsets[partition]; ok {
		return off, true
	}
	if p.Offset != nil {
		return *p.Offset, true
	}
	return 0, false
}

// requested returns the partitions the caller asked for, sorted and without
// duplicates. Offset modes without explicit partitions are scoped to the keys
// of Offsets.
func (p Position) requested() []int32 {
	ids := slices.Clone(p.Partitions)
	if len(ids) == 0 && p.explicitOffsets() && p.Offset == nil {
		for id := range p.Offsets {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

func (d Direction) accepts(m Mode) bool {
	switch m {
	case Earliest, Latest:
		return true
	case FromOffset, FromTimestamp:
		return d == Forward
	case ToOffset, ToTimestamp:
		return d == Backward
	}
	return false
}
