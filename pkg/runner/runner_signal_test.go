//go:build unix

package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/slideception/pkg/domain"
)

func interruptSelf(t *testing.T) {
	t.Helper()
	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT))
}

// interruptingPrompter raises SIGINT on its nth wait before delegating.
type interruptingPrompter struct {
	t     *testing.T
	inner Prompter
	at    int
	calls int
}

func (p *interruptingPrompter) Wait(ctx context.Context, prompt string) (domain.WaitResult, error) {
	p.calls++
	if p.calls == p.at {
		interruptSelf(p.t)
	}
	return p.inner.Wait(ctx, prompt)
}

func TestRunner_InterruptDuringAction(t *testing.T) {
	f := newFixture(t, WithSignals(true))
	f.prompter.On("Wait", mock.Anything, mock.Anything).Return(domain.Confirmed, nil)

	ranSecond := false
	deck := slides("a", "b", "c")
	deck[0].NoOp = false
	deck[0].Action = func(ctx context.Context) error {
		time.Sleep(50 * time.Millisecond)
		interruptSelf(t)
		select {
		case <-ctx.Done():
		case <-time.After(300 * time.Millisecond):
		}
		return nil
	}
	deck[1].NoOp = false
	deck[1].Action = func(context.Context) error {
		ranSecond = true
		return nil
	}

	err := f.runner.Present(context.Background(), deck, PresentOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrActionFailed)
	assert.ErrorIs(t, err, context.Canceled)

	var actionErr *domain.ActionError
	require.True(t, errors.As(err, &actionErr))
	assert.Equal(t, 1, actionErr.Index)

	assert.False(t, ranSecond, "no action runs after an interrupt")
	assert.Contains(t, f.out.String(), "Slides FAIL!!!")
	assert.NotContains(t, f.out.String(), "[2/3]")
	assert.Equal(t, domain.State{Status: domain.StatusFailed, Current: 1, Total: 3}, f.runner.State())
}

func TestRunner_InterruptAfterWaitError(t *testing.T) {
	f := newFixture(t, WithSignals(true))
	f.prompter.On("Wait", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { interruptSelf(t) }).
		Return(domain.Confirmed, errors.New("input closed"))

	err := f.runner.Present(context.Background(), slides("a", "b"), PresentOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCancelled)
	assert.Contains(t, f.out.String(), "Slides CANCEL!!!")
	assert.NotContains(t, f.out.String(), "Slides FAIL!!!")
	assert.Equal(t, domain.StatusCancelled, f.runner.State().Status)
}

func TestRunner_InterruptOnSecondOfFive(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})
	_, err = w.WriteString("\n")
	require.NoError(t, err)

	prompter := &interruptingPrompter{t: t, inner: NewTextPrompter(r, &bytes.Buffer{}), at: 2}
	f := newFixture(t, WithSignals(true), WithPrompter(prompter))

	err = f.runner.Present(context.Background(), slides("a", "b", "c", "d", "e"), PresentOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCancelled)

	out := f.out.String()
	assert.Contains(t, out, "[2/5]")
	assert.NotContains(t, out, "[3/5]")
	assert.Contains(t, out, "\nSlides CANCEL!!!\n")
	assert.NotContains(t, out, "Slides END!!!")
	assert.Equal(t, domain.State{Status: domain.StatusCancelled, Current: 2, Total: 5}, f.runner.State())
	assert.Equal(t, 2, prompter.calls)
}
