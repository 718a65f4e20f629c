package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/aretw0/slideception/internal/terminal"
	"github.com/aretw0/slideception/pkg/domain"
)

// Prompter waits for the presenter to move on. It writes prompt, blocks for
// one line of input and reports whether the wait was confirmed or cancelled.
// End of input counts as confirmation.
type Prompter interface {
	Wait(ctx context.Context, prompt string) (domain.WaitResult, error)
}

// NewPrompter picks a readline prompter when in is a terminal and a plain line
// reader otherwise.
func NewPrompter(in *os.File, out io.Writer) (Prompter, error) {
	if terminal.IsTerminal(in) {
		return NewReadlinePrompter(in, out)
	}
	return NewTextPrompter(in, out), nil
}

// TextPrompter reads lines from a plain reader. It reads byte by byte and
// only while a wait is pending, so input typed for a child process after a
// confirmed wait stays on the reader. A read abandoned by a cancelled wait is
// handed over to the next wait. A TextPrompter is not safe for concurrent use.
type TextPrompter struct {
	reader io.Reader
	writer io.Writer

	pending chan lineResult
	eof     bool
}

type lineResult struct {
	text string
	err  error
}

// NewTextPrompter creates a prompter over r, writing prompts to w.
func NewTextPrompter(r io.Reader, w io.Writer) *TextPrompter {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &TextPrompter{
		reader: r,
		writer: w,
	}
}

// read starts a line read unless one is still in flight.
func (p *TextPrompter) read() <-chan lineResult {
	if p.pending == nil {
		ch := make(chan lineResult, 1)
		p.pending = ch
		go func() {
			text, err := readLine(p.reader)
			ch <- lineResult{text: text, err: err}
		}()
	}
	return p.pending
}

// readLine reads up to and including the next newline without read-ahead.
func readLine(r io.Reader) (string, error) {
	var (
		line strings.Builder
		buf  [1]byte
	)
	for {
		n, err := r.Read(buf[:])
		if n > 0 {
			line.WriteByte(buf[0])
			if buf[0] == '\n' {
				return line.String(), nil
			}
		}
		if err != nil {
			return line.String(), err
		}
	}
}

// Wait implements Prompter.
func (p *TextPrompter) Wait(ctx context.Context, prompt string) (domain.WaitResult, error) {
	if ctx.Err() != nil {
		return domain.Cancelled, nil
	}
	fmt.Fprint(p.writer, prompt)
	if p.eof {
		fmt.Fprint(p.writer, "\r")
		return domain.Confirmed, nil
	}

	select {
	case <-ctx.Done():
		return domain.Cancelled, nil
	case res := <-p.read():
		p.pending = nil
		switch {
		case res.err == nil:
			return domain.Confirmed, nil
		case errors.Is(res.err, io.EOF):
			p.eof = true
			if res.text == "" {
				fmt.Fprint(p.writer, "\r")
			}
			return domain.Confirmed, nil
		default:
			return domain.Confirmed, fmt.Errorf("input error: %w", res.err)
		}
	}
}

// ReadlinePrompter waits on a terminal in raw mode. Ctrl-C cancels the wait
// and Ctrl-D confirms it.
//
// A wait abandoned through its context closes the instance, after which
// every wait is cancelled.
type ReadlinePrompter struct {
	rl     *readline.Instance
	writer io.Writer
	closed bool
}

// NewReadlinePrompter creates a readline-backed prompter.
func NewReadlinePrompter(in io.ReadCloser, out io.Writer) (*ReadlinePrompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		Stdin:                  in,
		Stdout:                 out,
		HistoryLimit:           -1,
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	return &ReadlinePrompter{rl: rl, writer: out}, nil
}

// Wait implements Prompter.
func (p *ReadlinePrompter) Wait(ctx context.Context, prompt string) (domain.WaitResult, error) {
	if p.closed || ctx.Err() != nil {
		return domain.Cancelled, nil
	}
	p.rl.SetPrompt(prompt)

	done := make(chan lineResult, 1)
	go func() {
		line, err := p.rl.Readline()
		done <- lineResult{text: line, err: err}
	}()

	select {
	case <-ctx.Done():
		// Unblocks the pending Readline.
		_ = p.Close()
		return domain.Cancelled, nil
	case res := <-done:
		switch {
		case res.err == nil:
			return domain.Confirmed, nil
		case errors.Is(res.err, readline.ErrInterrupt):
			return domain.Cancelled, nil
		case errors.Is(res.err, io.EOF):
			fmt.Fprint(p.writer, "\r")
			return domain.Confirmed, nil
		default:
			return domain.Confirmed, fmt.Errorf("input error: %w", res.err)
		}
	}
}

// Close restores the terminal.
func (p *ReadlinePrompter) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	return p.rl.Close()
}
