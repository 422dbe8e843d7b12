package emitter

import (
	"time"

	"golang.org/x/time/rate"
)

// Throttler is consulted around every poll. BeforePoll returns how long to
// wait before polling; it is never negative.
type Throttler interface {
	BeforePoll() time.Duration
	AfterPoll(records, bytes int)
}

type noop struct{}

func (noop) BeforePoll() time.Duration { return 0 }
func (noop) AfterPoll(int, int)        {}

func Noop() Throttler { return noop{} }

// RateThrottler caps polled bytes per second. Bytes are charged after each
// poll; the debt is paid off by delaying the next one, at most maxDelay.
type RateThrottler struct {
	lim      *rate.Limiter
	burst    int
	maxDelay time.Duration
	now      func() time.Time
}

func NewRateThrottler(bytesPerSecond int, maxDelay time.Duration) *RateThrottler {
	burst := max(bytesPerSecond, 1)
	return &RateThrottler{
		lim:      rate.NewLimiter(rate.Limit(bytesPerSecond), burst),
		burst:    burst,
		maxDelay: maxDelay,
		now:      time.Now,
	}
}

func (t *RateThrottler) AfterPoll(_ int, bytes int) {
	now := t.now()
	for bytes > 0 {
		n := min(bytes, t.burst)
		t.lim.ReserveN(now, n)
		bytes -= n
	}
}

func (t *RateThrottler) BeforePoll() time.Duration {
	now := t.now()
	d := t.lim.ReserveN(now, 0).DelayFrom(now)
	return min(max(d, 0), t.maxDelay)
}
