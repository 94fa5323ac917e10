package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wrenlabs/knowhub/internal/api"
	"github.com/wrenlabs/knowhub/internal/config"
	"github.com/wrenlabs/knowhub/internal/nav"
	"github.com/wrenlabs/knowhub/internal/ui/components"
)

// --- Messages ---

type errMsg struct{ err error }
type clearToastMsg struct{}

type appToast struct {
	level string
	text  string
}

// --- App Model ---

// App is the root TUI model. It owns the navigation state, the section
// tabs, and the shared chrome: banner, route line, group sidebar, status
// bar, toasts, help overlay, and the quit confirmation.
type App struct {
	client      *api.Client
	config      *config.Config
	state       nav.State
	width       int
	height      int
	err         string
	helpOpen    bool
	quitConfirm bool
	sidebarOpen bool
	toast       *appToast

	doc  DocumentModel
	code CodeModel
}

// NewApp creates the root application model, starting at the given route.
func NewApp(client *api.Client, cfg *config.Config, initial nav.State) App {
	username := ""
	if cfg != nil {
		username = cfg.Username
	}
	sidebarOpen := cfg == nil || !cfg.SidebarCollapsed
	return App{
		client:      client,
		config:      cfg,
		state:       initial,
		sidebarOpen: sidebarOpen,
		doc:         NewDocumentModel(client, username, initial),
		code:        NewCodeModel(client, username),
	}
}

// State returns the current navigation state.
func (a App) State() nav.State {
	return a.state
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if a.state.Section == nav.SectionCode {
		cmds = append(cmds, a.code.Init())
	} else {
		cmds = append(cmds, a.doc.Init())
	}
	// The sidebar wants the group list even before the Groups tab is
	// visited.
	if a.doc.groupPhase == groupPhaseIdle && a.state.DocTab != nav.DocTabGroup {
		a.doc.groupPhase = groupPhaseLoading
		cmds = append(cmds, a.doc.loadGroupsCmd())
	}
	return tea.Batch(cmds...)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.doc.width = msg.Width
		a.doc.height = msg.Height
		a.code.width = msg.Width
		a.code.height = msg.Height
		return a, nil

	case errMsg:
		a.err = msg.err.Error()
		return a, nil

	case clearToastMsg:
		a.toast = nil
		return a, nil

	case tea.KeyMsg:
		if a.quitConfirm {
			switch {
			case isKey(msg, "y"):
				return a, tea.Quit
			case isKey(msg, "n"), isBack(msg):
				a.quitConfirm = false
			}
			return a, nil
		}
		if a.helpOpen {
			if isBack(msg) || isKey(msg, "?") {
				a.helpOpen = false
			}
			return a, nil
		}
		if a.err != "" {
			a.err = ""
		}

		if !a.capturingInput() {
			if isKey(msg, "?") {
				a.helpOpen = true
				return a, nil
			}
			if isQuit(msg) {
				if a.hasUnsaved() {
					a.quitConfirm = true
					return a, nil
				}
				return a, tea.Quit
			}
			if isKey(msg, "b") {
				return a.toggleSidebar()
			}
			if isKey(msg, "1") || (isKey(msg, "left") && a.state.Section == nav.SectionCode) {
				return a.switchSection(nav.SectionDocument)
			}
			if isKey(msg, "2") || (isKey(msg, "right") && a.state.Section == nav.SectionDocument) {
				return a.switchSection(nav.SectionCode)
			}
		} else if isKey(msg, "ctrl+c") {
			if a.hasUnsaved() {
				a.quitConfirm = true
				return a, nil
			}
			return a, tea.Quit
		}
	}

	// Delegate to the active section.
	var cmd tea.Cmd
	if a.state.Section == nav.SectionCode {
		a.code, cmd = a.code.Update(msg)
	} else {
		a.doc, cmd = a.doc.Update(msg)
		// The document page may have moved between sub-tabs or groups.
		a.state = a.doc.State()
	}

	toastCmd := a.toastCmdForMsg(msg)
	if toastCmd != nil && cmd != nil {
		return a, tea.Batch(cmd, toastCmd)
	}
	if toastCmd != nil {
		return a, toastCmd
	}
	return a, cmd
}

// capturingInput reports whether the active page is consuming raw text, so
// global single-letter keys must stay out of the way.
func (a App) capturingInput() bool {
	if a.state.Section != nav.SectionDocument {
		return false
	}
	if a.doc.searching {
		return true
	}
	return a.doc.dialog == dialogCreate || a.doc.dialog == dialogEdit
}

func (a App) hasUnsaved() bool {
	if a.doc.dialog == dialogCreate || a.doc.dialog == dialogEdit {
		return strings.TrimSpace(a.doc.formName) != "" || strings.TrimSpace(a.doc.formDesc) != ""
	}
	return false
}

func (a *App) switchSection(section nav.Section) (App, tea.Cmd) {
	if a.state.Section == section {
		return *a, nil
	}
	a.state = a.state.WithSection(section)
	if section == nav.SectionCode {
		return *a, a.code.Init()
	}
	return *a, a.doc.SetNav(a.state)
}

func (a *App) toggleSidebar() (App, tea.Cmd) {
	a.sidebarOpen = !a.sidebarOpen
	if a.config != nil {
		a.config.SidebarCollapsed = !a.sidebarOpen
		if err := a.config.Save(); err != nil {
			a.err = fmt.Sprintf("save config: %v", err)
		}
	}
	return *a, nil
}

func (a *App) setToast(level, text string) tea.Cmd {
	a.toast = &appToast{
		level: level,
		text:  components.SanitizeOneLine(text),
	}
	return tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

func (a *App) toastCmdForMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case kbSavedMsg:
		return a.setToast("success", fmt.Sprintf("Knowledge base %s.", msg.verb))
	case generationCancelledMsg:
		return a.setToast("success", "Generation cancelled.")
	}
	return nil
}

// --- View ---

func (a App) View() string {
	banner := centerBlockUniform(RenderBanner(), a.width)
	tabs := centerBlockUniform(a.renderTabs(), a.width)
	route := centerBlockUniform(RouteStyle.Render(a.state.Route()), a.width)

	var content string
	if a.state.Section == nav.SectionCode {
		content = a.code.View()
	} else {
		content = a.doc.View()
	}
	if sidebar := a.renderSidebar(); sidebar != "" {
		content = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	}
	content = centerBlockUniform(content, a.width)

	if a.quitConfirm {
		content = centerBlockUniform(a.renderQuitConfirm(), a.width)
	} else if a.helpOpen {
		content = centerBlockUniform(a.renderHelp(), a.width)
	}

	hints := components.StatusBar(a.statusHints(), a.width)

	feedback := ""
	if a.err != "" {
		feedback = "\n\n" + centerBlockUniform(components.ErrorBox("Error", a.err, a.width), a.width)
	} else if a.toast != nil {
		feedback = "\n\n" + centerBlockUniform(a.renderToast(), a.width)
	}

	return fmt.Sprintf("%s\n%s\n%s\n\n%s\n\n\n%s%s", banner, tabs, route, content, hints, feedback)
}

func (a App) renderTabs() string {
	names := []string{"Document", "Code"}
	active := 0
	if a.state.Section == nav.SectionCode {
		active = 1
	}
	segments := make([]string, 0, len(names))
	for i, name := range names {
		if i == active {
			segments = append(segments, TabActiveStyle.Render(name))
		} else {
			segments = append(segments, TabInactiveStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, segments...)
}

// renderSidebar lists the user's groups with role badges. Hidden on the
// code section and while collapsed.
func (a App) renderSidebar() string {
	if !a.sidebarOpen || a.state.Section != nav.SectionDocument {
		return ""
	}
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Groups") + "\n")
	switch a.doc.groupPhase {
	case groupPhaseIdle, groupPhaseLoading:
		b.WriteString(MutedStyle.Render("loading..."))
	case groupPhaseError:
		b.WriteString(ErrorStyle.Render("unavailable"))
	default:
		if len(a.doc.groups) == 0 {
			b.WriteString(MutedStyle.Render("none"))
		}
		for i, g := range a.doc.groups {
			name := g.DisplayName
			if name == "" {
				name = g.Name
			}
			line := components.SanitizeOneLine(name)
			if a.state.GroupSelected() && a.state.Group == g.Name {
				line = SelectedStyle.Render("> " + line)
			} else {
				line = MutedStyle.Render("  " + line)
			}
			b.WriteString(line)
			if i < len(a.doc.groups)-1 {
				b.WriteString("\n")
			}
		}
	}
	return SidebarStyle.Render(b.String())
}

func (a App) renderHelp() string {
	hints := a.statusHints()
	lines := make([]string, 0, len(hints)+2)
	lines = append(lines, MutedStyle.Render("esc to close"))
	lines = append(lines, "")
	for _, hint := range hints {
		lines = append(lines, "  "+hint)
	}
	body := strings.Join(lines, "\n")
	return components.Indent(components.TitledBox("Help", body, a.width), 1)
}

func (a App) renderQuitConfirm() string {
	body := "You have unsaved changes. Quit anyway?"
	return components.Indent(components.ConfirmDialog("Quit", body), 1)
}

func (a App) renderToast() string {
	if a.toast == nil {
		return ""
	}
	title := "Info"
	switch a.toast.level {
	case "success":
		title = "Success"
	case "warning":
		title = "Warning"
	case "error":
		return components.ErrorBox("Error", a.toast.text, a.width)
	}
	return components.TitledBox(title, a.toast.text, a.width)
}

func (a App) statusHints() []string {
	if a.quitConfirm {
		return []string{
			components.Hint("y", "Confirm"),
			components.Hint("n", "Cancel"),
		}
	}
	if a.helpOpen {
		return []string{
			components.Hint("esc", "Back"),
		}
	}

	base := []string{
		components.Hint("1/2", "Section"),
		components.Hint("?", "Help"),
		components.Hint("q", "Quit"),
	}
	if a.state.Section == nav.SectionDocument {
		base = append(base, components.Hint("b", "Sidebar"))
		return append(base, a.doc.StatusHints()...)
	}
	return append(base, a.code.StatusHints()...)
}

func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		w := lipgloss.Width(line)
		if w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth <= 0 || maxWidth >= width {
		return s
	}
	pad := (width - maxWidth) / 2
	if pad <= 0 {
		return s
	}
	prefix := strings.Repeat(" ", pad)
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
