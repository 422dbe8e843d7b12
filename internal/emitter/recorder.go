package emitter

import "time"

type Outcome string

const (
	OutcomeDone      Outcome = "done"
	OutcomeError     Outcome = "error"
	OutcomeCancelled Outcome = "cancelled"
)

// Recorder receives run measurements. Implementations must be safe for
// concurrent runs.
type Recorder interface {
	ObservePoll(dir Direction, records, bytes int, took time.Duration)
	ObserveThrottle(dir Direction, delay time.Duration)
	ObserveRun(dir Direction, outcome Outcome, s Summary)
}

type NopRecorder struct{}

func (NopRecorder) ObservePoll(Direction, int, int, time.Duration) {}
func (NopRecorder) ObserveThrottle(Direction, time.Duration)       {}
func (NopRecorder) ObserveRun(Direction, Outcome, Summary)         {}
