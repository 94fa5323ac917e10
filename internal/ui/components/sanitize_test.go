package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeTextStripsAnsiAndControls(t *testing.T) {
	input := "hi\x1b[31mred\x1b[0m\x00 there"
	assert.Equal(t, "hired there", SanitizeText(input))
}

func TestSanitizeTextKeepsNewlinesAndTabs(t *testing.T) {
	assert.Equal(t, "a\nb\tc", SanitizeText("a\nb\tc"))
}

func TestSanitizeTextStripsBidiControls(t *testing.T) {
	input := "safe‮name‬"
	assert.Equal(t, "safename", SanitizeText(input))
}

func TestSanitizeOneLineStripsOscAndNewlines(t *testing.T) {
	input := "title\x1b]0;evil\x07 line1\nline2"
	assert.Equal(t, "title line1 line2", SanitizeOneLine(input))
}

func TestSanitizeOneLineCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", SanitizeOneLine("  a \t b \n c  "))
}
