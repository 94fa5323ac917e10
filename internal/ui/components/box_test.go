package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxWidthBounds(t *testing.T) {
	assert.Equal(t, 40, boxWidth(10))
	assert.Equal(t, 70, boxWidth(100))
	assert.Equal(t, 80, boxWidth(400))
	assert.Equal(t, 0, boxWidth(0))
}

func TestSafeBoxWidthNeverExceedsTerminal(t *testing.T) {
	assert.LessOrEqual(t, safeBoxWidth(30), 30)
	assert.Equal(t, 70, safeBoxWidth(100))
}

func TestClampTextWidth(t *testing.T) {
	assert.Equal(t, "abc", ClampTextWidth("abc", 10))
	assert.Equal(t, "abcde", ClampTextWidth("abcdefgh", 5))
	assert.Equal(t, "abcdefgh", ClampTextWidth("abcdefgh", 0))
}

func TestTitledBoxEmbedsTitle(t *testing.T) {
	out := TitledBox("Groups", "content", 100)
	lines := strings.Split(out, "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "[ Groups ]")
}

func TestTitledBoxTopLineWidthMatchesBody(t *testing.T) {
	out := TitledBox("T", "content", 100)
	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 1)
	assert.Equal(t, lipgloss.Width(lines[1]), lipgloss.Width(lines[0]))
}

func TestErrorBoxContainsTitleAndMessage(t *testing.T) {
	out := ErrorBox("Load error", "connection refused", 100)
	assert.Contains(t, out, "Load error")
	assert.Contains(t, out, "connection refused")
}

func TestTableAlignsLabels(t *testing.T) {
	rows := []TableRow{
		{Label: "Name", Value: "api-docs"},
		{Label: "Type", Value: "notebook"},
	}
	out := Table("Details", rows, 100)
	assert.Contains(t, out, "api-docs")
	assert.Contains(t, out, "notebook")

	assert.Empty(t, Table("Details", nil, 100))
}

func TestInfoRowSanitizesInputs(t *testing.T) {
	out := InfoRow("na\nme", "val\x1b[31mue")
	assert.Contains(t, out, "na me")
	assert.Contains(t, out, "value")
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  a\n  b", Indent("a\nb", 2))
}

func TestCenterLinePads(t *testing.T) {
	out := CenterLine("hi", 100)
	assert.True(t, strings.HasPrefix(out, " "))
	assert.Equal(t, "hi", strings.TrimSpace(out))
}
