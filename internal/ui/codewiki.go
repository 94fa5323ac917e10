package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wrenlabs/knowhub/internal/api"
	"github.com/wrenlabs/knowhub/internal/codewiki"
	"github.com/wrenlabs/knowhub/internal/ui/components"
)

// --- Messages ---

type projectsPageMsg struct {
	token int
	items []api.Project
}
type projectsPageFailedMsg struct {
	token int
	err   error
}
type generationCancelledMsg struct{}

// --- Code Model ---

// CodeModel is the code wiki page: the paged project table with
// incremental load-more and per-row generation cancel.
type CodeModel struct {
	client   *api.Client
	username string

	loader *codewiki.Loader
	cancel codewiki.CancelFlow
	cursor int
	spin   spinner.Model

	width  int
	height int
}

// NewCodeModel builds the code wiki page model.
func NewCodeModel(client *api.Client, username string) CodeModel {
	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = SelectedStyle
	return CodeModel{
		client:   client,
		username: username,
		loader:   codewiki.NewLoader(),
		spin:     spin,
	}
}

func (m CodeModel) Init() tea.Cmd {
	m.loader.Reset()
	m.cursor = 0
	return tea.Batch(m.spin.Tick, m.loadPageCmd())
}

func (m *CodeModel) loadPageCmd() tea.Cmd {
	if m.client == nil {
		return nil
	}
	client := m.client
	page, token := m.loader.StartPage()
	pageSize := m.loader.PageSize
	return func() tea.Msg {
		items, err := client.ListProjects(page, pageSize)
		if err != nil {
			return projectsPageFailedMsg{token: token, err: err}
		}
		return projectsPageMsg{token: token, items: items}
	}
}

func (m *CodeModel) cancelGenerationCmd(id string) tea.Cmd {
	if m.client == nil {
		return nil
	}
	client := m.client
	return func() tea.Msg {
		if err := client.CancelGeneration(id); err != nil {
			return errMsg{err: err}
		}
		return generationCancelledMsg{}
	}
}

// visibleProjects narrows loaded pages to the rows the table shows.
func (m CodeModel) visibleProjects() []api.Project {
	return codewiki.Visible(m.loader.Projects(), m.username)
}

func (m CodeModel) Update(msg tea.Msg) (CodeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case projectsPageMsg:
		m.loader.ApplyPage(msg.token, msg.items)
		if rows := len(m.visibleProjects()); m.cursor >= rows && rows > 0 {
			m.cursor = rows - 1
		}
		return m, nil

	case projectsPageFailedMsg:
		if m.loader.FailPage(msg.token) {
			return m, func() tea.Msg { return errMsg{err: msg.err} }
		}
		return m, nil

	case generationCancelledMsg:
		// Reload from the first page so the new status is authoritative.
		m.loader.Reset()
		m.cursor = 0
		return m, m.loadPageCmd()

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}
	return m, nil
}

func (m CodeModel) handleKeys(msg tea.KeyMsg) (CodeModel, tea.Cmd) {
	if _, pending := m.cancel.Pending(); pending {
		switch {
		case isKey(msg, "y"):
			id, ok := m.cancel.ConfirmCancel()
			if !ok {
				return m, nil
			}
			return m, m.cancelGenerationCmd(id)
		case isKey(msg, "n"), isBack(msg):
			m.cancel.DismissCancel()
		}
		return m, nil
	}

	projects := m.visibleProjects()
	switch {
	case isUp(msg):
		if m.cursor > 0 {
			m.cursor--
		}
	case isDown(msg):
		if m.cursor < len(projects)-1 {
			m.cursor++
		}
	case isKey(msg, "m"):
		if m.loader.HasMore() && !m.loader.Loading() {
			return m, m.loadPageCmd()
		}
	case isKey(msg, "r"):
		m.loader.Reset()
		m.cursor = 0
		return m, m.loadPageCmd()
	case isKey(msg, "x"):
		if m.cursor >= len(projects) {
			return m, nil
		}
		latest := projects[m.cursor].LatestGeneration()
		if latest == nil || latest.Status.Terminal() {
			return m, nil
		}
		m.cancel.RequestCancel(latest.ID)
	}
	return m, nil
}

// --- View ---

func (m CodeModel) View() string {
	if _, pending := m.cancel.Pending(); pending {
		return m.renderCancelConfirm()
	}

	projects := m.visibleProjects()
	if m.loader.Loading() && len(projects) == 0 {
		return m.spin.View() + MutedStyle.Render(" Loading projects...")
	}
	if len(projects) == 0 {
		return components.TitledBox("Code Wiki", MutedStyle.Render("No wiki projects yet."), m.width)
	}

	columns := []components.TableColumn{
		{Header: "Project", Width: 28},
		{Header: "Repository", Width: 32},
		{Header: "Status", Width: 12, Align: lipgloss.Center},
	}
	rows := make([][]string, len(projects))
	for i, p := range projects {
		status := ""
		if latest := p.LatestGeneration(); latest != nil {
			status = statusStyle(string(latest.Status)).Render(string(latest.Status))
		}
		rows[i] = []string{p.Name, p.RepoURL, status}
	}

	tableWidth := components.BoxContentWidth(m.width)
	table := components.TableGridWithActiveRow(columns, rows, tableWidth, m.cursor)

	footer := ""
	switch {
	case m.loader.Loading():
		footer = "\n\n" + m.spin.View() + MutedStyle.Render(" Loading more...")
	case m.loader.HasMore():
		footer = "\n\n" + MutedStyle.Render(fmt.Sprintf("%d shown. Press m to load more.", len(projects)))
	default:
		footer = "\n\n" + MutedStyle.Render(fmt.Sprintf("%d shown.", len(projects)))
	}

	return components.TitledBox("Code Wiki", table+footer, m.width)
}

func (m CodeModel) renderCancelConfirm() string {
	id, _ := m.cancel.Pending()
	body := fmt.Sprintf("Cancel generation %s? The wiki build stops where it is.", id)
	return components.ConfirmDialog("Cancel Generation", body)
}

// StatusHints returns the context hints for the bottom bar.
func (m CodeModel) StatusHints() []string {
	if _, pending := m.cancel.Pending(); pending {
		return []string{
			components.Hint("y", "Confirm"),
			components.Hint("n", "Keep running"),
		}
	}
	hints := []string{
		components.Hint("↑/↓", "Scroll"),
		components.Hint("r", "Refresh"),
		components.Hint("x", "Cancel generation"),
	}
	if m.loader.HasMore() {
		hints = append(hints, components.Hint("m", "Load more"))
	}
	return hints
}
