package ui

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenlabs/knowhub/internal/config"
	"github.com/wrenlabs/knowhub/internal/nav"
)

func appAfter(t *testing.T, a App, msgs ...tea.Msg) App {
	t.Helper()
	var model tea.Model = a
	for _, msg := range msgs {
		model, _ = model.Update(msg)
	}
	return model.(App)
}

func TestDeepLinkMatchesManualState(t *testing.T) {
	deep, err := nav.ParseRoute("/knowledge?type=document&tab=group&group=eng")
	require.NoError(t, err)

	manual := nav.Default().
		WithSection(nav.SectionDocument).
		WithDocTab(nav.DocTabGroup).
		WithGroup("eng")

	app := NewApp(nil, nil, deep)
	assert.Equal(t, manual, app.State())
	assert.Equal(t, manual.Route(), app.State().Route())
}

func TestSectionSwitchClearsGroupFromRoute(t *testing.T) {
	app := NewApp(nil, nil, nav.Default().WithGroup("eng"))

	app = appAfter(t, app, keyRunes("2"))
	assert.Equal(t, "/knowledge?type=code", app.State().Route())

	app = appAfter(t, app, keyRunes("1"))
	assert.Equal(t, "/knowledge?tab=personal&type=document", app.State().Route())
}

func TestSidebarTogglePersistsToConfig(t *testing.T) {
	dir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", dir)
	t.Cleanup(func() { os.Setenv("HOME", oldHome) })

	cfg := &config.Config{APIKey: "khb_key", Username: "alice"}
	require.NoError(t, cfg.Save())

	app := NewApp(nil, cfg, nav.Default())
	require.True(t, app.sidebarOpen)

	app = appAfter(t, app, keyRunes("b"))
	assert.False(t, app.sidebarOpen)

	loaded, err := config.Load()
	require.NoError(t, err)
	assert.True(t, loaded.SidebarCollapsed)

	app = appAfter(t, app, keyRunes("b"))
	loaded, err = config.Load()
	require.NoError(t, err)
	assert.False(t, loaded.SidebarCollapsed)
}

func TestCollapsedSidebarHidden(t *testing.T) {
	cfg := &config.Config{APIKey: "k", SidebarCollapsed: true}
	app := NewApp(nil, cfg, nav.Default())
	assert.False(t, app.sidebarOpen)
	assert.Empty(t, app.renderSidebar())
}

func TestQuitConfirmGuardsDirtyDialog(t *testing.T) {
	app := NewApp(nil, nil, nav.Default())

	// Open the create dialog and type something.
	app = appAfter(t, app, keyRunes("n"), keyRunes("draft"))
	require.Equal(t, dialogCreate, app.doc.dialog)
	require.True(t, app.hasUnsaved())

	app = appAfter(t, app, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, app.quitConfirm)

	// n backs out, the dialog is still there.
	app = appAfter(t, app, keyRunes("n"))
	assert.False(t, app.quitConfirm)
	assert.Equal(t, dialogCreate, app.doc.dialog)

	app = appAfter(t, app, tea.KeyMsg{Type: tea.KeyCtrlC})
	_, cmd := app.Update(keyRunes("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestPlainQuitNeedsNoConfirm(t *testing.T) {
	app := NewApp(nil, nil, nav.Default())
	_, cmd := app.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestErrMsgRendersAndKeyDismisses(t *testing.T) {
	app := NewApp(nil, nil, nav.Default())
	app = appAfter(t, app, errMsg{err: assert.AnError})
	assert.Contains(t, app.View(), "Error")

	app = appAfter(t, app, keyRunes("x"))
	assert.Empty(t, app.err)
}

func TestExternalDeepLinkRendersPlaceholder(t *testing.T) {
	st, err := nav.ParseRoute("/knowledge?type=document&tab=external")
	require.NoError(t, err)

	app := NewApp(nil, nil, st)
	view := app.View()
	assert.Contains(t, view, "External")
	assert.Contains(t, view, "not available")
}

func TestRouteLineShowsCanonicalRoute(t *testing.T) {
	app := NewApp(nil, nil, nav.Default().WithGroup("eng"))
	assert.Contains(t, app.View(), "/knowledge?group=eng&tab=group&type=document")
}

func TestHelpOverlayToggles(t *testing.T) {
	app := NewApp(nil, nil, nav.Default())
	app = appAfter(t, app, keyRunes("?"))
	assert.True(t, app.helpOpen)
	assert.Contains(t, app.View(), "Help")

	app = appAfter(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, app.helpOpen)
}
