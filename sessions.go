package slideception

import "context"

// Bash drops into an interactive shell whose history is seeded with history
// (arrow-up recalls the last entry first) and which runs init on startup.
// It blocks until the shell exits.
func (d *Deck) Bash(ctx context.Context, history, init []string) error {
	return d.processes.Bash(ctx, history, init)
}

// Python drops into the standard Python REPL with locals bound as globals.
func (d *Deck) Python(ctx context.Context, locals map[string]any, init ...string) error {
	return d.processes.Python(ctx, locals, init...)
}

// IPython drops into IPython with locals bound as globals.
func (d *Deck) IPython(ctx context.Context, locals map[string]any, init ...string) error {
	return d.processes.IPython(ctx, locals, init...)
}
