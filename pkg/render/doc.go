/*
Package render converts markdown into terminal output decorated with ANSI
escape sequences.

The renderer walks a goldmark document tree and maps every node kind to one
rule: headings, emphasis, links (with OSC 8 hyperlinks), lists, tables, code
blocks and so on. Code blocks are colorized with chroma, or with the built-in
systemd unit highlighter when tagged `systemd`, and boxed with a lipgloss
border unless the tag carries the `.nobox` suffix.

All escape sequences come from a single Styles table so that related rules
cannot drift apart.

# Usage

	r := render.New(render.WithWidth(100))
	out, err := r.Render("# Hello\n\nSee systemd.unit(5).")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(out)
*/
package render
