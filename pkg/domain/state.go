package domain

import "fmt"

// Status defines the current phase of a presentation.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusDisplaying Status = "displaying" // A slide is on screen
	StatusFinished   Status = "finished"   // Sink state: every slide shown
	StatusCancelled  Status = "cancelled"  // Sink state: interrupted while waiting
	StatusFailed     Status = "failed"     // Sink state: an action returned an error
)

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == StatusFinished || s == StatusCancelled || s == StatusFailed
}

// State is a snapshot of the presentation.
type State struct {
	Status Status

	// Current is the 1-based index of the slide on screen (0 before the first).
	Current int

	// Total is the number of registered slides.
	Total int
}

func (s State) String() string {
	if s.Status == StatusDisplaying {
		return fmt.Sprintf("%s(%d/%d)", s.Status, s.Current, s.Total)
	}
	return string(s.Status)
}

// WaitResult is the outcome of waiting for the presenter.
type WaitResult int

const (
	// Confirmed means a line (or end of input) was read.
	Confirmed WaitResult = iota
	// Cancelled means the wait was interrupted.
	Cancelled
)

func (r WaitResult) String() string {
	if r == Cancelled {
		return "cancelled"
	}
	return "confirmed"
}
