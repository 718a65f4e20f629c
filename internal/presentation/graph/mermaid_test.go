package graph_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/slideception/internal/presentation/graph"
	"github.com/aretw0/slideception/pkg/domain"
)

func deck() []domain.Slide {
	return []domain.Slide{
		{Name: "title", NoOp: true},
		{Name: "shell", Action: func(context.Context) error { return nil }},
		{Name: `say "hi"`, NoOp: true},
	}
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		overlay  *graph.Overlay
		contains []string
		excludes []string
	}{
		{
			name: "Shapes and order",
			contains: []string{
				"graph TD\n",
				`s1["1. title"]`,
				`s2[["2. shell"]]`,
				`s3["3. say 'hi'"]`,
				"s1 --> s2",
				"s2 --> s3",
			},
			excludes: []string{"classDef"},
		},
		{
			name:    "Overlay",
			overlay: &graph.Overlay{Current: 2},
			contains: []string{
				"class s1 visited;",
				"class s2 current;",
			},
			excludes: []string{"class s3"},
		},
		{
			name:     "Overlay past the end",
			overlay:  &graph.Overlay{Current: 9},
			contains: []string{"class s3 visited;"},
			excludes: []string{"current;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := graph.GenerateMermaid(deck(), tt.overlay)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestGenerateMermaid_Empty(t *testing.T) {
	out := graph.GenerateMermaid(nil, nil)
	assert.Equal(t, "graph TD\n", out)
	assert.False(t, strings.Contains(out, "-->"))
}
