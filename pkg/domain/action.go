package domain

import "context"

// Action is the body executed after a slide has been displayed and confirmed.
// It may block, e.g. while an interactive shell owns the terminal.
type Action func(ctx context.Context) error

// Slide is one unit of presentation content.
// It is created once at registration time and never modified afterwards.
type Slide struct {
	// Name identifies the slide in the header (usually the function name).
	Name string

	// Content is the fully rendered ANSI text.
	Content string

	// Action runs after confirmation. Nil for no-op slides.
	Action Action

	// NoOp records that the action has no observable effect.
	NoOp bool
}

// Run executes the slide action. A nil action succeeds immediately.
func (s Slide) Run(ctx context.Context) error {
	if s.Action == nil {
		return nil
	}
	return s.Action(ctx)
}
