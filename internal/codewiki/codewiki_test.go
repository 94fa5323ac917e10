package codewiki

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenlabs/knowhub/internal/api"
)

func projectPage(start, n int) []api.Project {
	items := make([]api.Project, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, api.Project{
			ID:   fmt.Sprintf("proj-%d", start+i),
			Name: fmt.Sprintf("repo-%d", start+i),
		})
	}
	return items
}

func TestLoaderPagingSixtyItems(t *testing.T) {
	l := NewLoader()

	// 60 projects at page size 25: two full pages, then a short one.
	for _, n := range []int{25, 25} {
		page, tok := l.StartPage()
		require.True(t, l.Loading())
		require.True(t, l.ApplyPage(tok, projectPage((page-1)*25+1, n)))
		assert.True(t, l.HasMore())
	}

	page, tok := l.StartPage()
	assert.Equal(t, 3, page)
	require.True(t, l.ApplyPage(tok, projectPage((page-1)*25+1, 10)))
	assert.False(t, l.HasMore())
	assert.Len(t, l.Projects(), 60)
}

func TestLoaderAppendsNeverReplaces(t *testing.T) {
	l := NewLoader()

	_, tok := l.StartPage()
	require.True(t, l.ApplyPage(tok, projectPage(1, 25)))
	_, tok = l.StartPage()
	require.True(t, l.ApplyPage(tok, projectPage(26, 5)))

	got := l.Projects()
	require.Len(t, got, 30)
	assert.Equal(t, "proj-1", got[0].ID)
	assert.Equal(t, "proj-26", got[25].ID)
}

func TestLoaderDiscardsStalePage(t *testing.T) {
	l := NewLoader()

	_, old := l.StartPage()
	l.Reset()
	page, fresh := l.StartPage()
	assert.Equal(t, 1, page)

	assert.False(t, l.ApplyPage(old, projectPage(1, 25)))
	assert.Empty(t, l.Projects())
	assert.True(t, l.Loading())

	require.True(t, l.ApplyPage(fresh, projectPage(1, 3)))
	assert.Len(t, l.Projects(), 3)
	assert.False(t, l.HasMore())
}

func TestLoaderFailedPageIsRetryable(t *testing.T) {
	l := NewLoader()

	page, tok := l.StartPage()
	assert.Equal(t, 1, page)
	require.True(t, l.FailPage(tok))
	assert.False(t, l.Loading())

	// The retry requests the same page.
	page, tok = l.StartPage()
	assert.Equal(t, 1, page)
	require.True(t, l.ApplyPage(tok, projectPage(1, 25)))
	assert.True(t, l.HasMore())
}

func TestVisibleFiltersOwnerAndGenerations(t *testing.T) {
	now := time.Now()
	projects := []api.Project{
		{ID: "p1", Name: "mine-running", Owner: "alice", Generations: []api.Generation{
			{ID: "g11", Status: api.GenerationRunning, CreatedAt: now},
		}},
		{ID: "p2", Name: "mine-empty", Owner: "alice"},
		{ID: "p3", Name: "theirs", Owner: "bob", Generations: []api.Generation{
			{ID: "g31", Status: api.GenerationCompleted, CreatedAt: now},
		}},
		{ID: "p4", Name: "mine-failed", Owner: "alice", Generations: []api.Generation{
			{ID: "g41", Status: api.GenerationFailed, CreatedAt: now},
		}},
	}

	got := Visible(projects, "alice")
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p4", got[1].ID)
}

func TestVisibleUsesLatestGeneration(t *testing.T) {
	now := time.Now()
	projects := []api.Project{
		{ID: "p1", Owner: "alice", Generations: []api.Generation{
			{ID: "g2", Status: api.GenerationRunning, CreatedAt: now},
			{ID: "g1", Status: api.GenerationFailed, CreatedAt: now.Add(-time.Hour)},
		}},
	}
	got := Visible(projects, "alice")
	require.Len(t, got, 1)
	assert.Equal(t, api.GenerationRunning, got[0].LatestGeneration().Status)
}

func TestCancelFlowTwoPhase(t *testing.T) {
	var flow CancelFlow

	_, ok := flow.ConfirmCancel()
	assert.False(t, ok, "confirm without request must not fire")

	flow.RequestCancel("gen-42")
	id, pending := flow.Pending()
	assert.True(t, pending)
	assert.Equal(t, "gen-42", id)

	id, ok = flow.ConfirmCancel()
	require.True(t, ok)
	assert.Equal(t, "gen-42", id)

	_, pending = flow.Pending()
	assert.False(t, pending, "confirm clears the intent")
}

func TestCancelFlowDismiss(t *testing.T) {
	var flow CancelFlow
	flow.RequestCancel("gen-7")
	flow.DismissCancel()

	_, ok := flow.ConfirmCancel()
	assert.False(t, ok, "dismissed intent must not fire")
}

func TestCancelFlowSecondRequestReplacesFirst(t *testing.T) {
	var flow CancelFlow
	flow.RequestCancel("gen-1")
	flow.RequestCancel("gen-2")

	id, ok := flow.ConfirmCancel()
	require.True(t, ok)
	assert.Equal(t, "gen-2", id)
}
