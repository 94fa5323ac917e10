package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wrenlabs/knowhub/internal/api"
	"github.com/wrenlabs/knowhub/internal/kb"
	"github.com/wrenlabs/knowhub/internal/nav"
	"github.com/wrenlabs/knowhub/internal/ui/components"
)

// --- Messages ---

type groupsLoadedMsg struct{ items []api.Group }
type groupsFailedMsg struct{ err error }
type kbListLoadedMsg struct {
	token int
	items []api.KnowledgeBase
}
type kbListFailedMsg struct {
	token int
	err   error
}
type kbSavedMsg struct{ verb string }
type kbSaveFailedMsg struct{ err error }

// --- Constants ---

var kbTypes = []api.KBType{api.KBTypeNotebook, api.KBTypeClassic}

type groupPhase int

const (
	groupPhaseIdle groupPhase = iota
	groupPhaseLoading
	groupPhaseReady
	groupPhaseNotFound
	groupPhaseError
)

type docDialog int

const (
	dialogNone docDialog = iota
	dialogCreate
	dialogEdit
	dialogDelete
)

// Form field indices for the create/edit dialog.
const (
	kbFieldName = iota
	kbFieldDescription
	kbFieldType
	kbFieldCount
)

// --- Document Model ---

// DocumentModel is the document knowledge page: the Personal | Groups |
// External sub-tab strip, the group picker, and the knowledge base listing
// with search and create/edit/delete dialogs.
type DocumentModel struct {
	client   *api.Client
	username string
	st       nav.State

	groups     []api.Group
	groupPhase groupPhase
	groupErr   string
	groupList  *components.List

	store *kb.Store
	caps  kb.Capabilities

	search    textinput.Model
	searching bool
	spin      spinner.Model

	list     *components.List
	filtered []api.KnowledgeBase

	dialog    docDialog
	formName  string
	formDesc  string
	formFocus int
	typeIdx   int
	formErr   string
	saving    bool
	editing   *api.KnowledgeBase

	width  int
	height int
}

// NewDocumentModel builds the document page model.
func NewDocumentModel(client *api.Client, username string, st nav.State) DocumentModel {
	search := textinput.New()
	search.Placeholder = "search name or description"
	search.CharLimit = 80

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = SelectedStyle

	return DocumentModel{
		client:    client,
		username:  username,
		st:        st,
		groupList: components.NewList(8),
		store:     kb.NewStore(kb.Personal()),
		caps:      kb.FullCapabilities(),
		search:    search,
		spin:      spin,
		list:      components.NewList(10),
	}
}

// State returns the navigation state after the model has applied any
// sub-tab or group transitions.
func (m DocumentModel) State() nav.State {
	return m.st
}

func (m DocumentModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.enterCmd())
}

// SetNav adopts an externally driven navigation state (section switch or a
// deep link) and starts whatever fetches the new state needs.
func (m *DocumentModel) SetNav(st nav.State) tea.Cmd {
	m.st = st
	return m.enterCmd()
}

// enterCmd starts the fetches the current navigation state requires. The
// external tab deliberately fetches nothing.
func (m *DocumentModel) enterCmd() tea.Cmd {
	if m.st.Section != nav.SectionDocument {
		return nil
	}
	switch m.st.DocTab {
	case nav.DocTabPersonal:
		m.store.Reset(kb.Personal())
		m.caps = kb.FullCapabilities()
		m.resetSearch()
		return m.refreshCmd()
	case nav.DocTabGroup:
		if m.groupPhase != groupPhaseReady {
			m.groupPhase = groupPhaseLoading
			return m.loadGroupsCmd()
		}
		return m.enterGroupScope()
	case nav.DocTabExternal:
		return nil
	}
	return nil
}

// enterGroupScope binds the store to the routed group once the group list
// is known. A routed name missing from the list is a distinct terminal
// state, not a transport error.
func (m *DocumentModel) enterGroupScope() tea.Cmd {
	if !m.st.GroupSelected() {
		return nil
	}
	group := m.findGroup(m.st.Group)
	if group == nil {
		m.groupPhase = groupPhaseNotFound
		return nil
	}
	m.caps = kb.CapabilitiesFor(group.MyRole)
	m.store.Reset(kb.ForGroup(group.Name))
	m.resetSearch()
	return m.refreshCmd()
}

func (m *DocumentModel) findGroup(name string) *api.Group {
	for i := range m.groups {
		if m.groups[i].Name == name {
			return &m.groups[i]
		}
	}
	return nil
}

func (m *DocumentModel) resetSearch() {
	m.searching = false
	m.search.Blur()
	m.search.SetValue("")
}

// --- Commands ---

func (m *DocumentModel) loadGroupsCmd() tea.Cmd {
	if m.client == nil {
		return nil
	}
	client := m.client
	return func() tea.Msg {
		items, err := client.ListGroups()
		if err != nil {
			return groupsFailedMsg{err: err}
		}
		return groupsLoadedMsg{items: items}
	}
}

func (m *DocumentModel) refreshCmd() tea.Cmd {
	if m.client == nil {
		return nil
	}
	client := m.client
	token := m.store.Begin()
	namespace := m.store.Scope().Namespace(m.username)
	return func() tea.Msg {
		items, err := client.ListKnowledgeBases(api.QueryParams{"namespace": namespace})
		if err != nil {
			return kbListFailedMsg{token: token, err: err}
		}
		return kbListLoadedMsg{token: token, items: items}
	}
}

func (m *DocumentModel) createCmd() tea.Cmd {
	if m.client == nil {
		return nil
	}
	client := m.client
	input := api.CreateKnowledgeBaseInput{
		Name:        strings.TrimSpace(m.formName),
		Description: strings.TrimSpace(m.formDesc),
		Namespace:   m.store.Scope().Namespace(m.username),
		KBType:      kbTypes[m.typeIdx],
	}
	return func() tea.Msg {
		if _, err := client.CreateKnowledgeBase(input); err != nil {
			return kbSaveFailedMsg{err: err}
		}
		return kbSavedMsg{verb: "created"}
	}
}

func (m *DocumentModel) updateCmd() tea.Cmd {
	if m.client == nil || m.editing == nil {
		return nil
	}
	client := m.client
	id := m.editing.ID

	// Partial update: only fields that actually changed go on the wire.
	var input api.UpdateKnowledgeBaseInput
	if name := strings.TrimSpace(m.formName); name != m.editing.Name {
		input.Name = &name
	}
	if desc := strings.TrimSpace(m.formDesc); desc != m.editing.Description {
		input.Description = &desc
	}
	if kbType := kbTypes[m.typeIdx]; kbType != m.editing.KBType {
		input.KBType = &kbType
	}
	return func() tea.Msg {
		if _, err := client.UpdateKnowledgeBase(id, input); err != nil {
			return kbSaveFailedMsg{err: err}
		}
		return kbSavedMsg{verb: "updated"}
	}
}

func (m *DocumentModel) deleteCmd() tea.Cmd {
	if m.client == nil || m.editing == nil {
		return nil
	}
	client := m.client
	id := m.editing.ID
	return func() tea.Msg {
		if err := client.DeleteKnowledgeBase(id); err != nil {
			return kbSaveFailedMsg{err: err}
		}
		return kbSavedMsg{verb: "deleted"}
	}
}

// --- Update ---

func (m DocumentModel) Update(msg tea.Msg) (DocumentModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case groupsLoadedMsg:
		m.groups = msg.items
		m.groupPhase = groupPhaseReady
		labels := make([]string, len(msg.items))
		for i, g := range msg.items {
			labels[i] = formatGroupLine(g)
		}
		m.groupList.SetItems(labels)
		return m, m.enterGroupScope()

	case groupsFailedMsg:
		m.groupPhase = groupPhaseError
		m.groupErr = msg.err.Error()
		return m, nil

	case kbListLoadedMsg:
		if m.store.Complete(msg.token, msg.items) {
			m.applyFilter()
		}
		return m, nil

	case kbListFailedMsg:
		if m.store.Fail(msg.token) {
			return m, func() tea.Msg { return errMsg{err: msg.err} }
		}
		return m, nil

	case kbSavedMsg:
		m.saving = false
		m.dialog = dialogNone
		m.editing = nil
		return m, m.refreshCmd()

	case kbSaveFailedMsg:
		// The dialog stays open so the user can fix the input and retry.
		m.saving = false
		m.formErr = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}
	return m, nil
}

func (m DocumentModel) handleKeys(msg tea.KeyMsg) (DocumentModel, tea.Cmd) {
	if m.dialog == dialogDelete {
		return m.handleDeleteConfirmKeys(msg)
	}
	if m.dialog != dialogNone {
		return m.handleFormKeys(msg)
	}
	if m.searching {
		return m.handleSearchKeys(msg)
	}

	// Sub-tab switching. External is not reachable by key, only by route.
	switch {
	case isKey(msg, "p") && m.st.DocTab != nav.DocTabPersonal:
		m.st = m.st.WithDocTab(nav.DocTabPersonal)
		return m, m.enterCmd()
	case isKey(msg, "g") && m.st.DocTab != nav.DocTabGroup:
		m.st = m.st.WithDocTab(nav.DocTabGroup)
		return m, m.enterCmd()
	}

	switch m.st.DocTab {
	case nav.DocTabExternal:
		return m, nil
	case nav.DocTabGroup:
		switch m.groupPhase {
		case groupPhaseNotFound, groupPhaseError:
			if isBack(msg) {
				m.groupPhase = groupPhaseIdle
				m.st = m.st.WithDocTab(nav.DocTabGroup)
				return m, m.enterCmd()
			}
			if isKey(msg, "r") && m.groupPhase == groupPhaseError {
				m.groupPhase = groupPhaseLoading
				return m, m.loadGroupsCmd()
			}
			return m, nil
		}
		if !m.st.GroupSelected() {
			return m.handleGroupPickerKeys(msg)
		}
		if isBack(msg) {
			m.st = m.st.WithDocTab(nav.DocTabGroup)
			return m, nil
		}
	}

	return m.handleListKeys(msg)
}

func (m DocumentModel) handleGroupPickerKeys(msg tea.KeyMsg) (DocumentModel, tea.Cmd) {
	switch {
	case isUp(msg):
		m.groupList.Up()
	case isDown(msg):
		m.groupList.Down()
	case isEnter(msg):
		if len(m.groups) == 0 {
			return m, nil
		}
		idx := m.groupList.Selected()
		if idx >= len(m.groups) {
			return m, nil
		}
		m.st = m.st.WithGroup(m.groups[idx].Name)
		return m, m.enterGroupScope()
	case isKey(msg, "r"):
		m.groupPhase = groupPhaseLoading
		return m, m.loadGroupsCmd()
	}
	return m, nil
}

func (m DocumentModel) handleListKeys(msg tea.KeyMsg) (DocumentModel, tea.Cmd) {
	switch {
	case isUp(msg):
		m.list.Up()
	case isDown(msg):
		m.list.Down()
	case isKey(msg, "/"):
		m.searching = true
		return m, m.search.Focus()
	case isKey(msg, "r"):
		return m, m.refreshCmd()
	case isKey(msg, "n") && m.caps.CanCreate:
		m.dialog = dialogCreate
		m.editing = nil
		m.formName = ""
		m.formDesc = ""
		m.typeIdx = 0
		m.formFocus = kbFieldName
		m.formErr = ""
		return m, nil
	case isKey(msg, "e") && m.caps.CanEdit:
		item := m.selectedItem()
		if item == nil {
			return m, nil
		}
		m.dialog = dialogEdit
		m.editing = item
		m.formName = item.Name
		m.formDesc = item.Description
		m.typeIdx = typeIndex(item.KBType)
		m.formFocus = kbFieldName
		m.formErr = ""
		return m, nil
	case isKey(msg, "d") && m.caps.CanDelete:
		item := m.selectedItem()
		if item == nil {
			return m, nil
		}
		m.dialog = dialogDelete
		m.editing = item
		return m, nil
	}
	return m, nil
}

func (m DocumentModel) handleSearchKeys(msg tea.KeyMsg) (DocumentModel, tea.Cmd) {
	switch {
	case isBack(msg):
		m.resetSearch()
		m.applyFilter()
		return m, nil
	case isEnter(msg):
		m.searching = false
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m DocumentModel) handleFormKeys(msg tea.KeyMsg) (DocumentModel, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	switch {
	case isBack(msg):
		m.dialog = dialogNone
		m.editing = nil
		m.formErr = ""
		return m, nil
	case isKey(msg, "tab"):
		m.formFocus = (m.formFocus + 1) % kbFieldCount
		return m, nil
	case isKey(msg, "shift+tab"):
		m.formFocus = (m.formFocus - 1 + kbFieldCount) % kbFieldCount
		return m, nil
	case isEnter(msg):
		if strings.TrimSpace(m.formName) == "" {
			m.formErr = "name is required"
			return m, nil
		}
		m.saving = true
		m.formErr = ""
		if m.dialog == dialogEdit {
			return m, m.updateCmd()
		}
		return m, m.createCmd()
	}

	if m.formFocus == kbFieldType {
		switch {
		case isKey(msg, "left"):
			m.typeIdx = (m.typeIdx - 1 + len(kbTypes)) % len(kbTypes)
		case isKey(msg, "right"), isKey(msg, " "):
			m.typeIdx = (m.typeIdx + 1) % len(kbTypes)
		}
		return m, nil
	}

	field := &m.formName
	if m.formFocus == kbFieldDescription {
		field = &m.formDesc
	}
	switch msg.Type {
	case tea.KeyBackspace:
		if len(*field) > 0 {
			runes := []rune(*field)
			*field = string(runes[:len(runes)-1])
		}
	case tea.KeySpace:
		*field += " "
	case tea.KeyRunes:
		*field += string(msg.Runes)
	}
	return m, nil
}

func (m DocumentModel) handleDeleteConfirmKeys(msg tea.KeyMsg) (DocumentModel, tea.Cmd) {
	switch {
	case isKey(msg, "y"):
		m.dialog = dialogNone
		return m, m.deleteCmd()
	case isKey(msg, "n"), isBack(msg):
		m.dialog = dialogNone
		m.editing = nil
	}
	return m, nil
}

// --- Helpers ---

func (m *DocumentModel) applyFilter() {
	m.filtered = kb.Filter(m.store.Items(), m.search.Value())
	labels := make([]string, len(m.filtered))
	for i, item := range m.filtered {
		labels[i] = formatKnowledgeBaseLine(item)
	}
	m.list.Replace(labels)
}

func (m *DocumentModel) selectedItem() *api.KnowledgeBase {
	idx := m.list.Selected()
	if idx < 0 || idx >= len(m.filtered) {
		return nil
	}
	item := m.filtered[idx]
	return &item
}

func typeIndex(t api.KBType) int {
	for i, kt := range kbTypes {
		if kt == t {
			return i
		}
	}
	return 0
}

func formatGroupLine(g api.Group) string {
	name := components.SanitizeOneLine(g.DisplayName)
	if name == "" {
		name = components.SanitizeOneLine(g.Name)
	}
	return fmt.Sprintf("%s  %s", name, RoleBadgeStyle.Render(string(g.MyRole)))
}

func formatKnowledgeBaseLine(item api.KnowledgeBase) string {
	name := components.SanitizeOneLine(item.Name)
	line := fmt.Sprintf("%s  %s", NormalStyle.Render(name), AccentStyle.Render(string(item.KBType)))
	if item.DocCount > 0 {
		line += MutedStyle.Render(fmt.Sprintf("  %d docs", item.DocCount))
	}
	if item.Description != "" {
		line += MutedStyle.Render("  " + components.SanitizeOneLine(item.Description))
	}
	return line
}

// --- View ---

func (m DocumentModel) View() string {
	strip := m.renderSubTabs()

	var body string
	switch {
	case m.dialog == dialogCreate || m.dialog == dialogEdit:
		body = m.renderFormDialog()
	case m.dialog == dialogDelete:
		body = m.renderDeleteConfirm()
	case m.st.DocTab == nav.DocTabExternal:
		body = components.TitledBox("External",
			MutedStyle.Render("External knowledge sources are not available yet."), m.width)
	case m.st.DocTab == nav.DocTabGroup:
		body = m.renderGroupTab()
	default:
		body = m.renderListing("Personal Knowledge Bases")
	}

	return strip + "\n\n" + body
}

func (m DocumentModel) renderSubTabs() string {
	segments := []string{
		m.subTabLabel("Personal", nav.DocTabPersonal),
		m.subTabLabel("Groups", nav.DocTabGroup),
	}
	// External stays visible but never looks actionable.
	if m.st.DocTab == nav.DocTabExternal {
		segments = append(segments, TabActiveStyle.Render("External"))
	} else {
		segments = append(segments, TabDisabledStyle.Render("External"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, segments...)
}

func (m DocumentModel) subTabLabel(label string, tab nav.DocTab) string {
	if m.st.DocTab == tab {
		return TabActiveStyle.Render(label)
	}
	return TabInactiveStyle.Render(label)
}

func (m DocumentModel) renderGroupTab() string {
	switch m.groupPhase {
	case groupPhaseIdle, groupPhaseLoading:
		return m.spin.View() + MutedStyle.Render(" Loading groups...")
	case groupPhaseError:
		return components.ErrorBox("Load error", m.groupErr+"\n\nr: retry | esc: back", m.width)
	case groupPhaseNotFound:
		return components.ErrorBox("Group not found",
			fmt.Sprintf("You are not a member of %q, or it does not exist.\n\nesc: back", m.st.Group), m.width)
	}

	if !m.st.GroupSelected() {
		if len(m.groups) == 0 {
			return components.TitledBox("Groups", MutedStyle.Render("You are not a member of any group."), m.width)
		}
		var b strings.Builder
		for i, label := range m.groupList.Visible() {
			absIdx := m.groupList.RelToAbs(i)
			prefix := "  "
			if m.groupList.IsSelected(absIdx) {
				prefix = SelectedStyle.Render("> ")
			}
			b.WriteString(prefix + label)
			if i < len(m.groupList.Visible())-1 {
				b.WriteString("\n")
			}
		}
		return components.TitledBox("Groups", b.String(), m.width)
	}

	title := fmt.Sprintf("Group: %s", m.st.Group)
	if group := m.findGroup(m.st.Group); group != nil && group.DisplayName != "" {
		title = fmt.Sprintf("Group: %s", group.DisplayName)
	}
	return m.renderListing(title)
}

func (m DocumentModel) renderListing(title string) string {
	var b strings.Builder

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View() + "\n\n")
	}

	if m.store.Loading() {
		b.WriteString(m.spin.View() + MutedStyle.Render(" Loading..."))
		return components.TitledBox(title, b.String(), m.width)
	}

	switch {
	case len(m.store.Items()) == 0:
		b.WriteString(MutedStyle.Render("No knowledge bases yet."))
		if m.caps.CanCreate {
			b.WriteString(MutedStyle.Render(" Press n to create one."))
		}
	case len(m.filtered) == 0:
		b.WriteString(MutedStyle.Render(fmt.Sprintf("No matches for %q.", m.search.Value())))
	default:
		visible := m.list.Visible()
		for i, label := range visible {
			absIdx := m.list.RelToAbs(i)
			prefix := "  "
			if m.list.IsSelected(absIdx) {
				prefix = SelectedStyle.Render("> ")
			}
			b.WriteString(prefix + label)
			if i < len(visible)-1 {
				b.WriteString("\n")
			}
		}
	}

	return components.TitledBox(title, b.String(), m.width)
}

func (m DocumentModel) renderFormDialog() string {
	title := "New Knowledge Base"
	if m.dialog == dialogEdit {
		title = "Edit Knowledge Base"
	}
	fields := []components.FormField{
		{Label: "Name", Value: m.formName},
		{Label: "Description", Value: m.formDesc},
		{Label: "Type", Value: string(kbTypes[m.typeIdx])},
	}
	errText := m.formErr
	if m.saving {
		errText = ""
	}
	out := components.FormDialog(title, fields, m.formFocus, errText)
	if m.saving {
		out += "\n" + m.spin.View() + MutedStyle.Render(" Saving...")
	}
	return out
}

func (m DocumentModel) renderDeleteConfirm() string {
	name := ""
	if m.editing != nil {
		name = m.editing.Name
	}
	body := fmt.Sprintf("Delete %q and all its documents? This cannot be undone.", name)
	return components.ConfirmDialog("Delete Knowledge Base", body)
}

// StatusHints returns the context hints for the bottom bar.
func (m DocumentModel) StatusHints() []string {
	if m.dialog == dialogDelete {
		return []string{
			components.Hint("y", "Confirm"),
			components.Hint("n", "Cancel"),
		}
	}
	if m.dialog != dialogNone {
		return []string{
			components.Hint("tab", "Field"),
			components.Hint("enter", "Save"),
			components.Hint("esc", "Cancel"),
		}
	}
	if m.searching {
		return []string{
			components.Hint("enter", "Apply"),
			components.Hint("esc", "Clear"),
		}
	}
	if m.st.DocTab == nav.DocTabGroup && !m.st.GroupSelected() && m.groupPhase == groupPhaseReady {
		return []string{
			components.Hint("↑/↓", "Scroll"),
			components.Hint("enter", "Select"),
			components.Hint("r", "Reload"),
			components.Hint("p", "Personal"),
		}
	}
	if m.st.DocTab == nav.DocTabExternal {
		return []string{
			components.Hint("p", "Personal"),
			components.Hint("g", "Groups"),
		}
	}

	hints := []string{
		components.Hint("↑/↓", "Scroll"),
		components.Hint("/", "Search"),
		components.Hint("r", "Refresh"),
	}
	if m.caps.CanCreate {
		hints = append(hints, components.Hint("n", "New"))
	}
	if m.caps.CanEdit {
		hints = append(hints, components.Hint("e", "Edit"))
	}
	if m.caps.CanDelete {
		hints = append(hints, components.Hint("d", "Delete"))
	}
	if m.st.GroupSelected() {
		hints = append(hints, components.Hint("esc", "Groups"))
	}
	return hints
}
