/*
Package runner implements the deck controller: the loop that puts each slide
on screen, waits for the presenter and runs the slide's action.

The runner owns the terminal for the length of a presentation. It clears the
screen, draws the header line, prints the pre-rendered content and blocks on a
Prompter. Interrupts during the wait are turned into a Cancelled result by the
SignalManager instead of killing the process, so the cursor shape is always
restored. An interrupt during an action cancels the action's context and
fails the slide.

# Key Components

  - Runner: the state machine (NotStarted, Displaying, Finished, Cancelled, Failed).
  - Prompter: how the runner waits for the presenter (readline on a terminal,
    a plain line reader on pipes and in tests).
  - SignalManager: re-armable interrupt context.

# Usage

	r := runner.NewRunner(
		runner.WithName("demo"),
		runner.WithPrompter(runner.NewTextPrompter(os.Stdin, os.Stdout)),
	)

	if err := r.Present(ctx, slides, runner.PresentOptions{}); err != nil {
		os.Exit(1)
	}
*/
package runner
