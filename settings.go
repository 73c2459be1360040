package xlevel

import (
	"sync"
	"sync/atomic"
)

// Settings is the mutable, process-wide part of a logger's configuration.
type Settings struct {
	Threshold Level
	Colorize  bool
}

// DefaultSettings admits every level and colors where the terminal allows it.
func DefaultSettings() Settings {
	return Settings{Threshold: LevelVerbose, Colorize: true}
}

// settings is shared by a root Logger and every child derived from it, so a
// change through any of them is seen by all on the next call. The observer
// list lives here too: an observer added through any logger of the tree hears
// every entry and config change of the whole tree.
type settings struct {
	threshold atomic.Int32
	colorize  atomic.Bool

	// Lock-free reads via atomic.Value; updates synchronized via obsMu.
	// The stored []Observer MUST be treated as immutable by readers.
	observers atomic.Value // holds []Observer
	obsMu     sync.Mutex
}

func newSettings(s Settings, observers []Observer) *settings {
	st := &settings{}
	st.store(s)
	if len(observers) > 0 {
		obs := make([]Observer, len(observers))
		copy(obs, observers)
		st.observers.Store(obs)
	} else {
		st.observers.Store(([]Observer)(nil))
	}
	return st
}

func (s *settings) addObserver(o Observer) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	cur := s.loadObservers()
	next := make([]Observer, len(cur), len(cur)+1)
	copy(next, cur)
	s.observers.Store(append(next, o))
}

func (s *settings) loadObservers() []Observer {
	v := s.observers.Load()
	if v == nil {
		return nil
	}
	return v.([]Observer)
}

func (s *settings) load() Settings {
	return Settings{
		Threshold: Level(s.threshold.Load()),
		Colorize:  s.colorize.Load(),
	}
}

func (s *settings) store(v Settings) {
	s.threshold.Store(int32(v.Threshold))
	s.colorize.Store(v.Colorize)
}
