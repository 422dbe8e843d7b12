package emitter

import (
	"context"
	"fmt"

	"github.com/cxm940188/kafka-ui/source/kafka"
)

// window is one partition's backward progress. Offsets in [floor, end) are
// still unread; during a round [start, end) is being buffered.
type window struct {
	floor, end int64
	start      int64
	reading    bool
	buf        []kafka.Record
}

func (w *window) exhausted() bool { return w.end <= w.floor }

// backward synthesizes a descending scan: each round reads a chunk below every
// active partition's upper bound, then emits those chunks highest offset
// first.
type backward struct {
	wins  map[int32]*window
	order []int32
	round int
}

func (b *backward) resolve(_ context.Context, r *run, scope []int32) error {
	pos := r.e.req.Position
	start, hwm, err := r.offsets(scope)
	if err != nil {
		return err
	}
	var byTime map[int32]int64
	if pos.Mode == ToTimestamp {
		if byTime, err = r.forTimestamp(scope); err != nil {
			return err
		}
	}

	b.wins = make(map[int32]*window, len(scope))
	b.order = scope
	for _, id := range scope {
		lo, hi := start[id], hwm[id]
		w := &window{floor: lo}
		switch pos.Mode {
		case Latest:
			w.end = hi
		case Earliest:
			w.end = lo
		case ToOffset:
			off, _ := pos.offsetFor(id)
			w.end = clamp(off, lo, hi)
		case ToTimestamp:
			if off, ok := byTime[id]; ok {
				w.end = clamp(off, lo, hi)
			} else {
				w.end = hi
			}
		}
		b.wins[id] = w
	}
	return nil
}

func (b *backward) next(r *run) (string, bool, error) {
	var active []int32
	for _, id := range b.order {
		if !b.wins[id].exhausted() {
			active = append(active, id)
		}
	}
	if len(active) == 0 {
		return "Backward: nothing left to read", true, nil
	}

	// Split what is left of the budget evenly so one round can satisfy it.
	share := (r.budget + len(active) - 1) / len(active)
	chunk := int64(min(max(share, 1), r.settings.ChunkSize))

	b.round++
	for _, id := range active {
		w := b.wins[id]
		w.start = max(w.floor, w.end-chunk)
		w.reading = true
		w.buf = w.buf[:0]
		if err := r.seek(id, w.start); err != nil {
			return "", false, err
		}
	}
	return fmt.Sprintf("Backward round %d: reading partitions %v", b.round, active), false, nil
}

func (b *backward) take(_ *run, recs []kafka.Record) (int, bool) {
	n := 0
	for _, rec := range recs {
		w, ok := b.wins[rec.Partition]
		if !ok || !w.reading || rec.Offset < w.start {
			continue
		}
		if rec.Offset >= w.end {
			w.reading = false
			continue
		}
		if k := len(w.buf); k > 0 && rec.Offset <= w.buf[k-1].Offset {
			continue
		}
		w.buf = append(w.buf, rec)
		n++
		if rec.Offset == w.end-1 {
			w.reading = false
		}
	}
	return n, false
}

func (b *backward) stageRead() bool {
	for _, w := range b.wins {
		if w.reading {
			return false
		}
	}
	return true
}

// idle closes the round's windows. Offsets missing from a window were
// compacted away or were control records.
func (b *backward) idle(*run) bool {
	for _, w := range b.wins {
		w.reading = false
	}
	return false
}

func (b *backward) flush(r *run) bool {
	for _, id := range b.order {
		w := b.wins[id]
		if w.exhausted() || w.start == w.end {
			continue
		}
		for i := len(w.buf) - 1; i >= 0; i-- {
			rec := w.buf[i]
			stop := r.process(rec)
			w.end = rec.Offset
			if stop {
				return true
			}
		}
		w.end = w.start
		w.buf = w.buf[:0]
	}
	return false
}

func (b *backward) cursor() map[int32]int64 {
	out := make(map[int32]int64, len(b.wins))
	for id, w := range b.wins {
		out[id] = w.end
	}
	return out
}
