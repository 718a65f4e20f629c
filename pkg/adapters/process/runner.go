package process

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Runner starts interactive child processes (shells and REPLs) that take over
// the terminal until they exit.
type Runner struct {
	shell   string
	python  string
	ipython string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithShell sets the bash-compatible shell binary.
func WithShell(bin string) RunnerOption {
	return func(r *Runner) {
		if bin != "" {
			r.shell = bin
		}
	}
}

// WithPython sets the python interpreter binary.
func WithPython(bin string) RunnerOption {
	return func(r *Runner) {
		if bin != "" {
			r.python = bin
		}
	}
}

// WithIPython sets the ipython binary.
func WithIPython(bin string) RunnerOption {
	return func(r *Runner) {
		if bin != "" {
			r.ipython = bin
		}
	}
}

// WithIO replaces the inherited standard streams.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) RunnerOption {
	return func(r *Runner) {
		r.stdin, r.stdout, r.stderr = stdin, stdout, stderr
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a Runner that inherits the controlling terminal.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		shell:   "bash",
		python:  "python3",
		ipython: "ipython",
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

const bashrcTemplate = `[ -f ~/.bashrc ] && source ~/.bashrc
HISTFILE=%s
history -c
history -r
%s
`

// Bash runs an interactive shell whose history is seeded with history
// (most recent last) and which runs init after the user's bashrc.
func (r *Runner) Bash(ctx context.Context, history, init []string) error {
	dir, err := os.MkdirTemp("", "slides-bash")
	if err != nil {
		return fmt.Errorf("failed to create shell workspace: %w", err)
	}
	defer os.RemoveAll(dir)

	rc, err := writeBashFiles(dir, history, init)
	if err != nil {
		return err
	}
	return r.run(ctx, r.shell, []string{"--rcfile", rc, "-i"}, nil)
}

// writeBashFiles writes the history and rc files into dir and returns the rc path.
func writeBashFiles(dir string, history, init []string) (string, error) {
	histfile := filepath.Join(dir, "history")
	var hist strings.Builder
	for _, entry := range history {
		hist.WriteString(entry)
		hist.WriteString("\n")
	}
	if err := os.WriteFile(histfile, []byte(hist.String()), 0o600); err != nil {
		return "", fmt.Errorf("failed to write shell history: %w", err)
	}

	rc := filepath.Join(dir, "bashrc")
	content := fmt.Sprintf(bashrcTemplate, shellQuote(histfile), strings.Join(init, "\n"))
	if err := os.WriteFile(rc, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("failed to write shell rc: %w", err)
	}
	return rc, nil
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Python runs the standard interactive interpreter with locals bound as
// global variables and init executed first.
func (r *Runner) Python(ctx context.Context, locals map[string]any, init ...string) error {
	return r.withStartup(locals, init, func(startup string) error {
		return r.run(ctx, r.python, []string{"-q", "-i"}, []string{"PYTHONSTARTUP=" + startup})
	})
}

// IPython runs IPython without banner or exit confirmation.
func (r *Runner) IPython(ctx context.Context, locals map[string]any, init ...string) error {
	return r.withStartup(locals, init, func(startup string) error {
		args := []string{"--no-banner", "--TerminalInteractiveShell.confirm_exit=False", "-i", startup}
		return r.run(ctx, r.ipython, args, nil)
	})
}

func (r *Runner) withStartup(locals map[string]any, init []string, fn func(path string) error) error {
	script, err := PythonStartup(locals, init)
	if err != nil {
		return err
	}
	dir, err := os.MkdirTemp("", "slides-python")
	if err != nil {
		return fmt.Errorf("failed to create python workspace: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "startup.py")
	if err := os.WriteFile(path, []byte(script), 0o600); err != nil {
		return fmt.Errorf("failed to write python startup: %w", err)
	}
	return fn(path)
}

var identifierRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// PythonStartup builds a startup script binding locals (JSON encoded) and
// running init. Names are bound in sorted order.
func PythonStartup(locals map[string]any, init []string) (string, error) {
	var b strings.Builder
	if len(locals) > 0 {
		names := make([]string, 0, len(locals))
		for name := range locals {
			if !identifierRE.MatchString(name) {
				return "", fmt.Errorf("invalid python identifier %q", name)
			}
			names = append(names, name)
		}
		sort.Strings(names)

		b.WriteString("import json as _slides_json\n")
		for _, name := range names {
			data, err := json.Marshal(locals[name])
			if err != nil {
				return "", fmt.Errorf("failed to encode %s: %w", name, err)
			}
			// A JSON string literal is also a valid Python string literal.
			literal, _ := json.Marshal(string(data))
			fmt.Fprintf(&b, "%s = _slides_json.loads(%s)\n", name, literal)
		}
		b.WriteString("del _slides_json\n")
	}
	for _, line := range init {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func (r *Runner) run(ctx context.Context, name string, args []string, env []string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	cmd.Env = append(cmd.Environ(), env...)

	r.logger.Debug("starting interactive process", "command", name, "args", args)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s exited: %w", name, err)
	}
	r.logger.Debug("interactive process finished", "command", name)
	return nil
}
