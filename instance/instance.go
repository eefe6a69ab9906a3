// Package instance keeps a second copy of the program from starting.
package instance

import "errors"

var ErrAlreadyRunning = errors.New("another instance is already running")

// Lock is a held process-wide lock. The OS drops it when the process dies.
type Lock struct {
	release func() error
}

// Release gives the lock up. Calling it more than once is harmless.
func (l *Lock) Release() error {
	if l == nil || l.release == nil {
		return nil
	}
	fn := l.release
	l.release = nil
	return fn()
}
