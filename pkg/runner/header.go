package runner

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const counterWidth = 10

// Header lays out "<name>/<slide>" left-aligned and "[n/total]" right-aligned
// across width columns. An overlong label is truncated with an ellipsis.
func Header(name, slide string, n, total, width int) string {
	labelWidth := width - counterWidth
	label := ""
	if labelWidth > 0 {
		label = truncate.StringWithTail(name+"/"+slide, uint(labelWidth), "…")
	}
	counter := fmt.Sprintf("[%d/%d]", n, total)
	return runewidth.FillRight(label, labelWidth) + runewidth.FillLeft(counter, counterWidth)
}
