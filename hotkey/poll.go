package hotkey

import (
	"sync"
	"time"
)

// KeyState reports whether every key of b is currently held down.
type KeyState func(b Binding) bool

// DefaultPollInterval is how often a PollSource samples key state.
const DefaultPollInterval = 30 * time.Millisecond

// PollSource scans key state on a ticker. It stands in for platforms without
// global hotkey registration and only sees what its KeyState reports.
type PollSource struct {
	keys     KeyState
	interval time.Duration

	bindings []Binding
	held     map[Binding]bool

	wake     chan struct{}
	wakeOnce sync.Once
}

// NewPollSource returns a source that samples keys every interval. A nil
// keys makes every registration fail.
func NewPollSource(keys KeyState, interval time.Duration) *PollSource {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &PollSource{
		keys:     keys,
		interval: interval,
		held:     map[Binding]bool{},
		wake:     make(chan struct{}),
	}
}

func (s *PollSource) Open() error { return nil }

func (s *PollSource) Register(b Binding) error {
	if s.keys == nil {
		return ErrUnsupported
	}
	for _, have := range s.bindings {
		if have == b {
			return nil
		}
	}
	s.bindings = append(s.bindings, b)
	// A combination already held at registration must be released first.
	s.held[b] = s.keys(b)
	return nil
}

func (s *PollSource) Unregister(b Binding) error {
	for i, have := range s.bindings {
		if have == b {
			s.bindings = append(s.bindings[:i], s.bindings[i+1:]...)
			break
		}
	}
	delete(s.held, b)
	return nil
}

// Receive returns on the press edge of a registered binding.
func (s *PollSource) Receive() (Binding, error) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.wake:
			return Binding{}, ErrClosed
		case <-ticker.C:
		}
		for _, b := range s.bindings {
			down := s.keys(b)
			was := s.held[b]
			s.held[b] = down
			if down && !was {
				return b, nil
			}
		}
	}
}

func (s *PollSource) Wake() error {
	s.wakeOnce.Do(func() { close(s.wake) })
	return nil
}
