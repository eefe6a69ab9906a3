package hotkey

import (
	"errors"
	"io"
	"log/slog"
	"runtime"
	"sync"
)

// Command is what the bridge delivers to the UI goroutine. Toggle is the only
// one.
type Command int

const Toggle Command = iota

const commandBuffer = 16

var (
	// ErrClosed is returned by Source.Receive once Wake has been called.
	ErrClosed = errors.New("hotkey source closed")
	// ErrUnsupported is returned by sources that cannot register hotkeys on
	// this platform.
	ErrUnsupported = errors.New("global hotkeys unsupported")
)

// Source is an OS hotkey facility. Every method except Wake is called from
// the bridge's listener goroutine, which stays locked to one OS thread.
type Source interface {
	// Open prepares the calling thread to receive hotkey events.
	Open() error
	Register(b Binding) error
	Unregister(b Binding) error
	// Receive blocks until a registered binding fires or Wake is called.
	Receive() (Binding, error)
	// Wake unblocks Receive. Safe from any goroutine.
	Wake() error
}

// Bridge owns the listener goroutine. Use NewBridge, then Start and Stop once
// each; Stop without Start is allowed.
type Bridge struct {
	source     Source
	candidates []Binding
	logger     *slog.Logger

	commands chan Command
	ready    chan struct{}
	done     chan struct{}

	active    Binding
	hasActive bool

	startOnce  sync.Once
	stopOnce   sync.Once
	mu         sync.Mutex
	started    bool
	registered bool
	stopping   bool
}

func NewBridge(source Source, candidates []Binding, logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Bridge{
		source:     source,
		candidates: candidates,
		logger:     logger,
		commands:   make(chan Command, commandBuffer),
		ready:      make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Commands is drained by the UI goroutine.
func (b *Bridge) Commands() <-chan Command { return b.commands }

// Ready is closed once registration has finished, successfully or not.
func (b *Bridge) Ready() <-chan struct{} { return b.ready }

// Active returns the live binding. It is only meaningful after Ready.
func (b *Bridge) Active() (Binding, bool) {
	select {
	case <-b.ready:
		return b.active, b.hasActive
	default:
		return Binding{}, false
	}
}

// Start launches the listener.
func (b *Bridge) Start() {
	b.startOnce.Do(func() {
		b.mu.Lock()
		b.started = true
		b.mu.Unlock()
		go b.listen()
	})
}

// Stop wakes the listener, which unregisters its binding on its own thread,
// and waits for it to exit. If registration is still in progress Stop
// returns at once and the listener releases its binding when it finishes.
func (b *Bridge) Stop() {
	b.stopOnce.Do(func() {
		b.mu.Lock()
		started, registered := b.started, b.registered
		b.stopping = true
		b.mu.Unlock()
		if !started {
			return
		}
		if !registered {
			b.logger.Debug("Hotkey listener still registering, not waiting")
			return
		}
		if err := b.source.Wake(); err != nil {
			b.logger.Debug("Hotkey wake failed", "err", err)
		}
		<-b.done
		b.logger.Debug("Hotkey listener stopped")
	})
}

func (b *Bridge) listen() {
	// Hotkeys are bound to the registering thread on Windows. The thread is
	// discarded when this goroutine returns without unlocking.
	runtime.LockOSThread()
	defer close(b.done)

	if err := b.source.Open(); err != nil {
		b.logger.Warn("Global hotkeys unavailable, use the tray icon", "err", err)
		b.finishRegistration()
		return
	}

	for _, c := range b.candidates {
		if err := b.source.Register(c); err != nil {
			b.logger.Warn("Hotkey registration failed", "hotkey", c.String(), "err", err)
			continue
		}
		b.active, b.hasActive = c, true
		break
	}
	stopping := b.finishRegistration()

	if !b.hasActive {
		b.logger.Warn("No global hotkey could be registered, use the tray icon")
		return
	}
	b.logger.Info("Registered toggle hotkey", "hotkey", b.active.String())

	defer func() {
		if err := b.source.Unregister(b.active); err != nil {
			b.logger.Warn("Hotkey unregistration failed", "hotkey", b.active.String(), "err", err)
		}
	}()
	if stopping {
		return
	}

	for {
		got, err := b.source.Receive()
		if err != nil {
			if !errors.Is(err, ErrClosed) {
				b.logger.Error("Hotkey listener failed", "err", err)
			}
			return
		}
		if got != b.active {
			continue
		}
		select {
		case b.commands <- Toggle:
		default:
			b.logger.Debug("Dropped toggle command, queue full")
		}
	}
}

// finishRegistration publishes the registration result and reports whether
// Stop was called while it ran.
func (b *Bridge) finishRegistration() bool {
	b.mu.Lock()
	b.registered = true
	stopping := b.stopping
	b.mu.Unlock()
	close(b.ready)
	return stopping
}
