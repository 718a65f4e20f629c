package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Banner identifies one of the presentation lifecycle banners.
type Banner int

const (
	BannerStart Banner = iota
	BannerCancel
	BannerFail
	BannerEnd
)

var banners = map[Banner]struct {
	text  string
	color string
}{
	BannerStart:  {"Slides START!!", "#818cf8"},
	BannerCancel: {"Slides CANCEL!!!", "#fbbf24"},
	BannerFail:   {"Slides FAIL!!!", "#fb7185"},
	BannerEnd:    {"Slides END!!!", "#34d399"},
}

// Text returns the plain banner text.
func (b Banner) Text() string {
	return banners[b].text
}

// PrintBanner writes a banner line to w, colored when the output supports it.
func PrintBanner(w io.Writer, b Banner) {
	out := termenv.NewOutput(w)
	s := out.String(banners[b].text).Foreground(out.Color(banners[b].color)).Bold()
	fmt.Fprintln(w, s)
}
