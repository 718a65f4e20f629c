package terminal

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidth_Columns(t *testing.T) {
	t.Setenv("COLUMNS", "123")
	assert.Equal(t, 123, Width(nil))
}

func TestWidth_Fallback(t *testing.T) {
	t.Setenv("COLUMNS", "not-a-number")
	assert.Equal(t, DefaultWidth, Width(nil))
}

func TestIsTerminal_File(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "tty")
	assert.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
	assert.False(t, IsTerminal(nil))
}
