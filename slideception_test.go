package slideception_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/slideception"
	"github.com/aretw0/slideception/pkg/domain"
	"github.com/aretw0/slideception/pkg/registry"
	"github.com/aretw0/slideception/pkg/runner"
)

// Hello
func fnname(context.Context) error { return nil }

func undocumented(context.Context) error { return nil }

// Counting
//
// Increments the package counter.
func counting(context.Context) error {
	calls++
	return nil
}

var calls int

// scriptedPrompter answers waits from a fixed script, confirming once it runs out.
type scriptedPrompter struct {
	results []domain.WaitResult
	waits   int
}

func (p *scriptedPrompter) Wait(_ context.Context, _ string) (domain.WaitResult, error) {
	p.waits++
	if len(p.results) == 0 {
		return domain.Confirmed, nil
	}
	r := p.results[0]
	p.results = p.results[1:]
	return r, nil
}

func newDeck(t *testing.T, out *bytes.Buffer, opts ...slideception.Option) *slideception.Deck {
	t.Helper()
	base := []slideception.Option{
		slideception.WithName("prog"),
		slideception.WithWidth(40),
		slideception.WithOutput(out),
		slideception.WithPrompter(&scriptedPrompter{}),
		slideception.WithMinDisplay(0),
	}
	d, err := slideception.New(append(base, opts...)...)
	require.NoError(t, err)
	return d
}

func TestRegister_HelloScenario(t *testing.T) {
	out := &bytes.Buffer{}
	d := newDeck(t, out)

	_, err := d.Register(fnname, slideception.NoOp())
	require.NoError(t, err)

	slides := d.Slides()
	require.Len(t, slides, 1)
	assert.Equal(t, "fnname", slides[0].Name)
	assert.True(t, slides[0].NoOp)
	assert.Equal(t, "\n\x1b[1m"+strings.Repeat(" ", 17)+"Hello"+strings.Repeat(" ", 18)+"\x1b[22m\n\n", slides[0].Content)

	require.NoError(t, d.Present(context.Background(), runner.PresentOptions{Only: true}))
	lines := strings.Split(out.String(), "\n")
	assert.Contains(t, lines[0], "prog/fnname")
	assert.True(t, strings.HasSuffix(lines[0], "[1/1]\x1b[0m"))
	assert.True(t, strings.HasSuffix(out.String(), slides[0].Content))
}

func TestRegister_ReturnsActionUnchanged(t *testing.T) {
	d := newDeck(t, &bytes.Buffer{})
	calls = 0

	action, err := d.Register(counting)
	require.NoError(t, err)
	require.NoError(t, action(context.Background()))
	assert.Equal(t, 1, calls)
	assert.Contains(t, d.Slides()[0].Content, "Increments the package counter.")
}

func TestRegister_MissingDocumentation(t *testing.T) {
	d := newDeck(t, &bytes.Buffer{})

	_, err := d.Register(undocumented)
	assert.ErrorIs(t, err, domain.ErrMissingDocumentation)
	assert.Empty(t, d.Slides())

	assert.Panics(t, func() { d.Slide(undocumented) })
}

func TestRegister_UnrecognizedLanguage(t *testing.T) {
	d := newDeck(t, &bytes.Buffer{})

	_, err := d.Register(fnname, slideception.WithDoc("Code\n\n```nosuchlanguage\nx\n```"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnrecognizedLanguage)

	var langErr *domain.LanguageError
	require.True(t, errors.As(err, &langErr))
	assert.Equal(t, "nosuchlanguage", langErr.Language)
	assert.Empty(t, d.Slides())
}

func TestRegister_StaticDocs(t *testing.T) {
	d := newDeck(t, &bytes.Buffer{}, slideception.WithDocSource(registry.StaticDocs{
		"undocumented": "From a map",
	}))

	d.Slide(undocumented, slideception.WithSlideName("mapped"))
	slides := d.Slides()
	require.Len(t, slides, 1)
	assert.Equal(t, "mapped", slides[0].Name)
	assert.Contains(t, slides[0].Content, "From a map")
}

func TestRegister_Order(t *testing.T) {
	d := newDeck(t, &bytes.Buffer{})
	for _, name := range []string{"one", "two", "three"} {
		d.Slide(fnname, slideception.WithSlideName(name), slideception.WithDoc(name), slideception.NoOp())
	}

	var names []string
	for _, s := range d.Slides() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"one", "two", "three"}, names)
}

func TestExecute(t *testing.T) {
	boom := func(context.Context) error { return errors.New("boom") }

	tests := []struct {
		name     string
		args     []string
		prompts  []domain.WaitResult
		setup    func(d *slideception.Deck)
		expected int
		contains []string
		excludes []string
	}{
		{
			name:     "empty deck",
			expected: 0,
		},
		{
			name: "full run",
			setup: func(d *slideception.Deck) {
				d.Slide(fnname, slideception.NoOp())
				d.Slide(counting)
			},
			expected: 0,
			contains: []string{"Slides START!!", "[1/2]", "[2/2]", "Slides END!!!"},
		},
		{
			name:    "cancelled",
			prompts: []domain.WaitResult{domain.Confirmed, domain.Cancelled},
			setup: func(d *slideception.Deck) {
				for _, name := range []string{"a", "b", "c", "d", "e"} {
					d.Slide(fnname, slideception.WithSlideName(name), slideception.NoOp())
				}
			},
			expected: 1,
			contains: []string{"[2/5]", "Slides CANCEL!!!"},
			excludes: []string{"[3/5]", "Slides END!!!"},
		},
		{
			name: "action failure",
			setup: func(d *slideception.Deck) {
				d.Slide(boom, slideception.WithSlideName("boom"), slideception.WithDoc("Boom"))
			},
			expected: 1,
			contains: []string{"Slides FAIL!!!"},
		},
		{
			name: "start",
			args: []string{"--start", "2"},
			setup: func(d *slideception.Deck) {
				d.Slide(fnname, slideception.WithSlideName("a"), slideception.NoOp())
				d.Slide(fnname, slideception.WithSlideName("b"), slideception.NoOp())
			},
			expected: 0,
			contains: []string{"[2/2]"},
			excludes: []string{"[1/2]"},
		},
		{
			name: "only",
			args: []string{"--only"},
			setup: func(d *slideception.Deck) {
				d.Slide(fnname, slideception.NoOp())
			},
			expected: 0,
			contains: []string{"prog/fnname", "[1/1]"},
			excludes: []string{"Slides START!!"},
		},
		{
			name: "list",
			args: []string{"--list"},
			setup: func(d *slideception.Deck) {
				d.Slide(fnname, slideception.NoOp())
				d.Slide(counting)
			},
			expected: 0,
			contains: []string{"  1  fnname (no-op)\n", "  2  counting\n"},
			excludes: []string{"[1/2]"},
		},
		{
			name: "graph",
			args: []string{"--graph", "--start", "2"},
			setup: func(d *slideception.Deck) {
				d.Slide(fnname, slideception.NoOp())
				d.Slide(counting)
			},
			expected: 0,
			contains: []string{"graph TD\n", `s2[["2. counting"]]`, "class s2 current;"},
			excludes: []string{"[1/2]"},
		},
		{
			name:     "start out of range",
			args:     []string{"--start", "9"},
			setup:    func(d *slideception.Deck) { d.Slide(fnname, slideception.NoOp()) },
			expected: 1,
		},
		{
			name:     "unknown flag",
			args:     []string{"--bogus"},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			d := newDeck(t, out, slideception.WithPrompter(&scriptedPrompter{results: tt.prompts}))
			if tt.setup != nil {
				tt.setup(d)
			}

			code := d.Execute(context.Background(), append(tt.args, "--min-display", "0s"))
			assert.Equal(t, tt.expected, code)
			for _, s := range tt.contains {
				assert.Contains(t, out.String(), s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out.String(), s)
			}
		})
	}
}

func TestNew_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slides.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: talk\nwidth: 30\nboxing: false\nmin_display: 1s\n"), 0o644))

	d, err := slideception.New(slideception.WithConfigFile(path), slideception.WithOutput(&bytes.Buffer{}))
	require.NoError(t, err)
	assert.Equal(t, "talk", d.Name())

	d.Slide(fnname, slideception.WithDoc("T\n\n```python\nx = 1\n```"), slideception.NoOp())
	assert.NotContains(t, d.Slides()[0].Content, "╒", "boxing disabled by the config file")
}

func TestNew_ExplicitOptionOverridesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slides.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: talk\n"), 0o644))

	d, err := slideception.New(slideception.WithConfigFile(path), slideception.WithName("override"))
	require.NoError(t, err)
	assert.Equal(t, "override", d.Name())
}

func TestNew_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slides.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strikethrough: wavy\n"), 0o644))

	_, err := slideception.New(slideception.WithConfigFile(path))
	assert.Error(t, err)

	_, err = slideception.New(slideception.WithMinDisplay(-time.Second))
	assert.Error(t, err)
}
