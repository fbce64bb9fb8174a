package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme("classic") })

	SetTheme("MONO")
	assert.Equal(t, "[x]", Current().BoxChecked)
	assert.Equal(t, "->", Current().ArrowRight)

	SetTheme("neon")
	assert.Equal(t, "◼", Current().BoxChecked)

	SetTheme("nope")
	assert.Equal(t, "☑", Current().BoxChecked)
}

func TestPanel(t *testing.T) {
	t.Cleanup(func() { SetTheme("classic") })
	SetTheme("mono")

	var buf bytes.Buffer
	Panel(&buf, []string{"List 1", "a longer line"})

	out := ansi.Strip(buf.String())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "+"), lines[0])
	assert.Contains(t, lines[1], "List 1")
	assert.Contains(t, lines[2], "a longer line")
	assert.Equal(t, ansi.StringWidth(lines[1]), ansi.StringWidth(lines[2]))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "abcdefgh", Truncate("abcdefgh", 0))
}

func TestOK(t *testing.T) {
	t.Cleanup(func() { SetTheme("classic") })
	SetTheme("mono")

	var buf bytes.Buffer
	OK(&buf, "loaded")

	assert.Equal(t, "ok loaded\n", ansi.Strip(buf.String()))
}
