package runner

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// SignalManager turns interrupts into context cancellation so that a wait can
// end cleanly instead of the process being killed. After an interrupt has
// been consumed the manager is Reset to catch the next one.
type SignalManager struct {
	parent context.Context
	notify bool
	ctx    context.Context
	cancel context.CancelFunc
}

// newSignalManager creates a manager derived from parent. With notify set it
// starts listening for SIGINT and SIGTERM at once; otherwise only the parent
// and Stop end its context.
func newSignalManager(parent context.Context, notify bool) *SignalManager {
	sm := &SignalManager{parent: parent, notify: notify}
	sm.Reset()
	return sm
}

// Context returns the current signal context.
func (sm *SignalManager) Context() context.Context {
	return sm.ctx
}

// Interrupted reports whether the current context was cancelled by a signal
// rather than by the parent.
func (sm *SignalManager) Interrupted() bool {
	return sm.ctx.Err() != nil && sm.parent.Err() == nil
}

// Reset re-arms the signal listener.
func (sm *SignalManager) Reset() {
	if sm.cancel != nil {
		sm.cancel()
	}
	if sm.notify {
		sm.ctx, sm.cancel = signal.NotifyContext(sm.parent, os.Interrupt, syscall.SIGTERM)
		return
	}
	sm.ctx, sm.cancel = context.WithCancel(sm.parent)
}

// Stop permanently stops the signal listener.
func (sm *SignalManager) Stop() {
	if sm.cancel != nil {
		sm.cancel()
	}
}

// CheckRace waits briefly to see if a context cancellation follows an input
// error. Some terminals deliver EOF slightly before the interrupt.
func (sm *SignalManager) CheckRace() {
	if sm.ctx.Err() == nil {
		select {
		case <-sm.ctx.Done():
		case <-time.After(100 * time.Millisecond):
		}
	}
}
