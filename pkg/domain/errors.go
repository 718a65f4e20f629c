package domain

import (
	"errors"
	"fmt"
)

// ErrMissingDocumentation is returned when a slide function has no doc comment.
var ErrMissingDocumentation = errors.New("missing documentation")

// ErrUnrecognizedLanguage is returned when a code block names an unknown syntax.
var ErrUnrecognizedLanguage = errors.New("unrecognized language")

// ErrCancelled is returned when the presenter interrupts a wait.
var ErrCancelled = errors.New("presentation cancelled")

// ErrActionFailed is returned when a slide action fails.
var ErrActionFailed = errors.New("slide action failed")

// LanguageError reports a code block whose language the colorizer does not know.
type LanguageError struct {
	Language string
}

func (e *LanguageError) Error() string {
	return fmt.Sprintf("unknown language %q", e.Language)
}

func (e *LanguageError) Unwrap() error {
	return ErrUnrecognizedLanguage
}

// ActionError wraps the failure of a slide action.
type ActionError struct {
	Slide string
	Index int
	Err   error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("slide %d (%s): %v", e.Index, e.Slide, e.Err)
}

// Unwrap exposes both the action's own error and ErrActionFailed.
func (e *ActionError) Unwrap() []error {
	return []error{ErrActionFailed, e.Err}
}

// ErrSlideOutOfRange is returned when presentation starts past the last slide.
var ErrSlideOutOfRange = errors.New("slide out of range")
