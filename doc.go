/*
Package slideception turns documented Go functions into a terminal slide deck.

Each slide is an ordinary function. Its doc comment is the slide content,
written in markdown and rendered to ANSI escape sequences when the slide is
registered. Its body is the action that runs after the presenter confirms the
slide, e.g. dropping into a shell to show a demo.

# Concept

A Deck owns an ordered registry. Registration order is presentation order.
Rendering happens eagerly, so a slide with a broken code block fails at
startup and never in the middle of a talk.

Slides whose body does nothing are marked with NoOp so that the deck does not
pad their display time.

# Usage

	var deck = slideception.MustNew()

	// Units
	//
	// ```systemd
	// [Service]
	// Restart=on-failure
	// ```
	func units(ctx context.Context) error {
		return deck.Bash(ctx, []string{"systemctl cat sshd.service"}, nil)
	}

	func main() {
		deck.Slide(units)
		deck.Main()
	}

The deck command line accepts --start N to begin at slide N, --only to show a
single slide and exit, and --list to print the outline.
*/
package slideception
