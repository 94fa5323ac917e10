package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmDialogContainsParts(t *testing.T) {
	out := ConfirmDialog("Delete knowledge base", "This cannot be undone.")
	assert.Contains(t, out, "Delete knowledge base")
	assert.Contains(t, out, "This cannot be undone.")
	assert.Contains(t, out, "y: confirm")
}

func TestFormDialogMarksActiveField(t *testing.T) {
	fields := []FormField{
		{Label: "Name", Value: "api-docs"},
		{Label: "Description", Value: ""},
	}
	out := FormDialog("New knowledge base", fields, 0, "")
	assert.Contains(t, out, "New knowledge base")
	assert.Contains(t, out, "> ")
	assert.Contains(t, out, "api-docs█")
	assert.Contains(t, out, "tab: next field")
}

func TestFormDialogShowsError(t *testing.T) {
	fields := []FormField{{Label: "Name", Value: ""}}
	out := FormDialog("New knowledge base", fields, 0, "name is required")
	assert.Contains(t, out, "name is required")
}
