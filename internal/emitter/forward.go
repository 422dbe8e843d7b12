package emitter

import (
	"context"
	"fmt"

	"github.com/cxm940188/kafka-ui/source/kafka"
)

const unbounded int64 = -1

type span struct {
	next int64 // next unread offset
	end  int64 // exclusive; unbounded for live tails
}

func (s *span) read() bool { return s.end != unbounded && s.next >= s.end }

// forward reads every partition upward from its start to the high-water mark
// seen at run start, processing records in poll order.
type forward struct {
	spans  map[int32]*span
	order  []int32
	seeked bool
}

func (f *forward) resolve(_ context.Context, r *run, scope []int32) error {
	pos := r.e.req.Position
	start, hwm, err := r.offsets(scope)
	if err != nil {
		return err
	}
	var byTime map[int32]int64
	if pos.Mode == FromTimestamp {
		if byTime, err = r.forTimestamp(scope); err != nil {
			return err
		}
	}

	f.spans = make(map[int32]*span, len(scope))
	f.order = scope
	for _, id := range scope {
		lo, hi := start[id], hwm[id]
		s := &span{end: hi}
		switch pos.Mode {
		case Earliest:
			s.next = lo
		case Latest:
			s.next, s.end = hi, unbounded
		case FromOffset:
			off, _ := pos.offsetFor(id)
			s.next = clamp(off, lo, hi)
		case FromTimestamp:
			if off, ok := byTime[id]; ok {
				s.next = clamp(off, lo, hi)
			} else {
				s.next = hi
			}
		}
		f.spans[id] = s
	}
	return nil
}

func (f *forward) next(r *run) (string, bool, error) {
	var active []int32
	for _, id := range f.order {
		if !f.spans[id].read() {
			active = append(active, id)
		}
	}
	label := fmt.Sprintf("Forward: reading partitions %v", active)
	if f.seeked || len(active) == 0 {
		return label, true, nil
	}
	for _, id := range active {
		if err := r.seek(id, f.spans[id].next); err != nil {
			return "", false, err
		}
	}
	f.seeked = true
	return label, false, nil
}

func (f *forward) take(r *run, recs []kafka.Record) (int, bool) {
	n := 0
	for _, rec := range recs {
		s, ok := f.spans[rec.Partition]
		if !ok || s.read() || rec.Offset < s.next {
			continue
		}
		if s.end != unbounded && rec.Offset >= s.end {
			s.next = s.end
			continue
		}
		n++
		stop := r.process(rec)
		s.next = rec.Offset + 1
		if stop {
			return n, true
		}
	}
	return n, false
}

func (f *forward) stageRead() bool {
	for _, s := range f.spans {
		if !s.read() {
			return false
		}
	}
	return true
}

func (f *forward) idle(r *run) bool {
	if !r.settings.Follow {
		return true
	}
	for _, s := range f.spans {
		if s.end == unbounded {
			return false
		}
	}
	return true
}

func (f *forward) flush(*run) bool { return false }

func (f *forward) cursor() map[int32]int64 {
	out := make(map[int32]int64, len(f.spans))
	for id, s := range f.spans {
		out[id] = s.next
	}
	return out
}
