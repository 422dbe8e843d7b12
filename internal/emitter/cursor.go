package emitter

import (
	"maps"
	"slices"
)

// Cursor is where a budget-bounded run stopped. Forward cursors hold the next
// unread offset per partition; backward cursors hold the exclusive upper bound
// of what is still unread.
type Cursor struct {
	Topic     string          `json:"topic"`
	Direction Direction       `json:"direction"`
	Next      map[int32]int64 `json:"next"`
}

// Position turns the cursor into the position of the follow-up run.
func (c *Cursor) Position() Position {
	mode := FromOffset
	if c.Direction == Backward {
		mode = ToOffset
	}
	return Position{
		Mode:       mode,
		Topic:      c.Topic,
		Partitions: slices.Sorted(maps.Keys(c.Next)),
		Offsets:    maps.Clone(c.Next),
	}
}
