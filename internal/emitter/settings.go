package emitter

import (
	"time"

	"github.com/cxm940188/kafka-ui/source/kafka"
)

type Settings struct {
	PollTimeout time.Duration
	EmptyPolls  int  // consecutive empty polls that end a forward run or close a backward window
	ChunkSize   int  // largest backward window per partition
	Follow      bool // LATEST forward runs ignore EmptyPolls and tail until the budget or cancel
}

func DefaultSettings() Settings {
	return Settings{PollTimeout: time.Second, EmptyPolls: 3, ChunkSize: 500}
}

func SettingsFrom(p kafka.PollingCfg) Settings {
	kafka.ApplyPollingDefaults(&p)
	return Settings{PollTimeout: p.PollTimeout, EmptyPolls: p.EmptyPolls, ChunkSize: p.ChunkSize}
}

func (s Settings) normalized() Settings {
	d := DefaultSettings()
	if s.PollTimeout <= 0 {
		s.PollTimeout = d.PollTimeout
	}
	if s.EmptyPolls <= 0 {
		s.EmptyPolls = d.EmptyPolls
	}
	if s.ChunkSize <= 0 {
		s.ChunkSize = d.ChunkSize
	}
	return s
}
