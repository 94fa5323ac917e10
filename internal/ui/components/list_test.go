package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListNavigation(t *testing.T) {
	l := NewList(3)
	l.SetItems([]string{"a", "b", "c", "d", "e"})

	assert.Equal(t, 0, l.Selected())
	assert.Equal(t, []string{"a", "b", "c"}, l.Visible())

	l.Down()
	l.Down()
	l.Down()
	assert.Equal(t, 3, l.Selected())
	assert.Equal(t, []string{"b", "c", "d"}, l.Visible())

	l.Up()
	l.Up()
	l.Up()
	assert.Equal(t, 0, l.Selected())
	assert.Equal(t, []string{"a", "b", "c"}, l.Visible())
}

func TestListCursorStopsAtEnds(t *testing.T) {
	l := NewList(3)
	l.SetItems([]string{"a", "b"})

	l.Up()
	assert.Equal(t, 0, l.Selected())

	l.Down()
	l.Down()
	l.Down()
	assert.Equal(t, 1, l.Selected())
}

func TestListSetItemsResetsCursor(t *testing.T) {
	l := NewList(3)
	l.SetItems([]string{"a", "b", "c", "d"})
	l.Down()
	l.Down()

	l.SetItems([]string{"x", "y"})
	assert.Equal(t, 0, l.Selected())
	assert.Equal(t, 0, l.Offset)
}

func TestListReplaceClampsCursor(t *testing.T) {
	l := NewList(3)
	l.SetItems([]string{"a", "b", "c", "d", "e"})
	for i := 0; i < 4; i++ {
		l.Down()
	}
	require.Equal(t, 4, l.Selected())

	// A narrowing filter shrinks the list under the cursor.
	l.Replace([]string{"a", "b"})
	assert.Equal(t, 1, l.Selected())
	assert.Equal(t, []string{"a", "b"}, l.Visible())

	l.Replace(nil)
	assert.Equal(t, 0, l.Selected())
	assert.Nil(t, l.Visible())
}

func TestListRelToAbs(t *testing.T) {
	l := NewList(2)
	l.SetItems([]string{"a", "b", "c", "d"})
	l.Down()
	l.Down()

	assert.Equal(t, 1, l.Offset)
	assert.Equal(t, 3, l.RelToAbs(2))
	assert.True(t, l.IsSelected(2))
	assert.False(t, l.IsSelected(0))
}
