// Package notes is the split-pane terminal view over a notebook: a
// sidebar list of notes beside an editor for the current one.
package notes

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/mdnotes/internal/note"
	"github.com/Paintersrp/mdnotes/internal/state"
	"github.com/Paintersrp/mdnotes/internal/tui/notes/submodels"
	"github.com/Paintersrp/mdnotes/internal/tui/textarea"
)

const (
	sidebarRatio  = 0.3
	defaultWidth  = 100
	defaultHeight = 30

	emptyMessage = "You have no notes"
	createLabel  = "Create one now"
)

type focusArea int

const (
	focusList focusArea = iota
	focusEditor
)

type NotesModel struct {
	state    *state.State
	notebook *note.Notebook
	list     list.Model
	editor   *editorSession
	create   submodels.Button
	keys     *listKeyMap

	focus       focusArea
	showPreview bool
	preview     string
	status      string

	width        int
	height       int
	sidebarWidth int
	editorWidth  int
}

func NewNotesModel(s *state.State) *NotesModel {
	keys := newListKeyMap()

	l := list.New(nil, newItemDelegate(), 0, 0)
	l.Title = "Notes"
	l.Styles.Title = titleStyle
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.KeyMap.NextPage = key.NewBinding(
		key.WithKeys("right", "l", "pgdown", "f"),
		key.WithHelp("→/l/pgdn", "next page"),
	)
	l.AdditionalShortHelpKeys = keys.shortHelp
	l.AdditionalFullHelpKeys = keys.fullHelp

	create := submodels.NewButton(createLabel)
	create.Focus()

	m := &NotesModel{
		state:    s,
		notebook: s.Notebook,
		list:     l,
		editor:   newEditorSession(0, 0),
		create:   create,
		keys:     keys,
	}
	m.setSize(defaultWidth, defaultHeight)
	m.refresh()
	return m
}

func (m *NotesModel) Init() tea.Cmd {
	return m.state.StatusCmd()
}

func (m *NotesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case state.StatusMsg:
		m.status = msg.Line
		return m, nil

	case submodels.PressedMsg:
		return m, m.createNote()

	case textarea.PasteErrMsg:
		return m, m.list.NewStatusMessage(
			errorStyle(fmt.Sprintf("Clipboard unavailable: %v", msg.Err)),
		)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.forceQuit) {
			return m, tea.Quit
		}
		if m.notebook.Len() == 0 {
			return m.handleEmptyUpdate(msg)
		}
		if m.focus == focusEditor {
			return m.handleEditorUpdate(msg)
		}
		if m.list.FilterState() != list.Filtering {
			if cmd, handled := m.handleListKeys(msg); handled {
				return m, cmd
			}
		}

	default:
		cmd := m.editor.update(msg)
		nl, listCmd := m.list.Update(msg)
		m.list = nl
		return m, tea.Batch(cmd, listCmd)
	}

	before := m.highlightedID()
	nl, cmd := m.list.Update(msg)
	m.list = nl
	if after := m.highlightedID(); after != "" && after != before {
		m.selectNote(after)
	}
	return m, cmd
}

func (m *NotesModel) handleEmptyUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.create):
		return m, m.createNote()
	}

	var cmd tea.Cmd
	m.create, cmd = m.create.Update(msg)
	return m, cmd
}

func (m *NotesModel) handleEditorUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.closeEditor) {
		m.editor.blur()
		m.focus = focusList
		return m, nil
	}

	before := m.editor.value()
	cmd := m.editor.update(msg)
	after := m.editor.value()
	if after == before {
		return m, cmd
	}

	if current, ok := m.notebook.Current(); ok {
		after = mergeEdit(current.Body, before, after)
	}

	if err := m.notebook.UpdateCurrent(after); err != nil {
		return m, tea.Batch(cmd, m.list.NewStatusMessage(
			errorStyle(fmt.Sprintf("Failed to save note: %v", err)),
		))
	}

	return m, tea.Batch(cmd, m.refresh())
}

func (m *NotesModel) handleListKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return tea.Quit, true

	case key.Matches(msg, m.keys.create):
		return m.createNote(), true

	case key.Matches(msg, m.keys.delete):
		return m.deleteHighlighted(), true

	case key.Matches(msg, m.keys.openEditor):
		return m.focusEditor(), true

	case key.Matches(msg, m.keys.togglePreview):
		m.showPreview = !m.showPreview
		m.handlePreview()
		return nil, true

	case key.Matches(msg, m.keys.toggleStatusBar):
		m.list.SetShowStatusBar(!m.list.ShowStatusBar())
		return nil, true

	case key.Matches(msg, m.keys.toggleHelpMenu):
		m.list.SetShowHelp(!m.list.ShowHelp())
		return nil, true
	}

	return nil, false
}

func (m *NotesModel) createNote() tea.Cmd {
	if _, err := m.notebook.Create(); err != nil {
		return m.list.NewStatusMessage(
			errorStyle(fmt.Sprintf("Failed to create note: %v", err)),
		)
	}

	cmd := m.refresh()
	return tea.Batch(
		cmd,
		m.focusEditor(),
		m.list.NewStatusMessage(statusStyle("Created note")),
	)
}

// deleteHighlighted removes the note under the list cursor. The
// selection is left alone and resolves to the first note if it pointed
// at the deleted one.
func (m *NotesModel) deleteHighlighted() tea.Cmd {
	item, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		return nil
	}

	if err := m.notebook.Delete(item.id); err != nil {
		return m.list.NewStatusMessage(
			errorStyle(fmt.Sprintf("Failed to delete %s: %v", item.title, err)),
		)
	}
	if m.state.Previews != nil {
		m.state.Previews.Forget(item.id)
	}

	cmd := m.refresh()
	return tea.Batch(cmd, m.list.NewStatusMessage(statusStyle("Deleted "+item.title)))
}

func (m *NotesModel) focusEditor() tea.Cmd {
	if m.notebook.Len() == 0 {
		return nil
	}
	m.focus = focusEditor
	m.showPreview = false
	return m.editor.focus()
}

func (m *NotesModel) selectNote(id string) {
	m.notebook.Select(id)
	if n, ok := m.notebook.Current(); ok {
		m.editor.load(n)
	}
	m.handlePreview()
}

// refresh rebuilds the sidebar from the notebook and points the list
// cursor and the editor at the resolved current note.
func (m *NotesModel) refresh() tea.Cmd {
	if m.list.FilterState() != list.Unfiltered {
		m.list.ResetFilter()
	}

	items := itemsFromNotes(m.notebook.All())
	cmd := m.list.SetItems(items)

	current, ok := m.notebook.Current()
	if !ok {
		m.editor.blur()
		m.editor.clear()
		m.focus = focusList
		m.preview = ""
		return tea.Batch(cmd, m.state.StatusCmd())
	}

	if idx := indexOf(items, current.ID); idx >= 0 {
		m.list.Select(idx)
	}
	m.editor.load(current)
	m.handlePreview()
	return tea.Batch(cmd, m.state.StatusCmd())
}

func (m *NotesModel) handlePreview() {
	if !m.showPreview {
		return
	}

	current, ok := m.notebook.Current()
	if !ok {
		m.preview = ""
		return
	}
	m.preview = m.state.Previews.Render(current.ID, current.Body, m.editorWidth)
}

func (m *NotesModel) highlightedID() string {
	if item, ok := m.list.SelectedItem().(ListItem); ok {
		return item.id
	}
	return ""
}

func (m *NotesModel) setSize(width, height int) {
	m.width = width
	m.height = height

	h, v := appStyle.GetFrameSize()
	innerWidth := max(width-h, 0)
	innerHeight := max(height-v-1, 0)

	m.sidebarWidth = int(float64(innerWidth) * sidebarRatio)
	m.editorWidth = max(
		innerWidth-m.sidebarWidth-listStyle.GetHorizontalFrameSize()-editorStyle.GetHorizontalFrameSize(),
		0,
	)

	m.list.SetSize(m.sidebarWidth, innerHeight)
	m.editor.setSize(m.editorWidth, max(innerHeight-1, 1))
	m.handlePreview()
}

func (m *NotesModel) View() string {
	if m.notebook.Len() == 0 {
		return appStyle.Render(m.emptyView())
	}

	sidebar := listStyle.Width(m.sidebarWidth).Render(m.list.View())

	paneStyle := editorStyle
	if m.focus == focusEditor {
		paneStyle = focusedEditorStyle
	}

	header := titleStyle.Render(m.editor.viewHeader(m.editorWidth))
	body := m.editor.view()
	if m.showPreview {
		header = titleStyle.Render("Preview")
		body = m.preview
	}

	pane := paneStyle.Render(
		lipgloss.NewStyle().
			Height(m.list.Height()).
			MaxHeight(m.list.Height()).
			Render(fmt.Sprintf("%s\n%s", header, body)),
	)

	layout := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, pane)
	return appStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, layout, statusStyle(m.status)),
	)
}

func (m *NotesModel) emptyView() string {
	h, v := appStyle.GetFrameSize()
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		emptyTitleStyle.Render(emptyMessage),
		m.create.View(),
		renderHelpWithinWidth(0, "n create · q quit"),
	)
	return lipgloss.Place(
		max(m.width-h, 0),
		max(m.height-v, 0),
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

func Run(s *state.State) error {
	m := NewNotesModel(s)

	if _, err := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
