package notes

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	create          key.Binding
	delete          key.Binding
	openEditor      key.Binding
	closeEditor     key.Binding
	togglePreview   key.Binding
	toggleStatusBar key.Binding
	toggleHelpMenu  key.Binding
	quit            key.Binding
	forceQuit       key.Binding
}

func newListKeyMap() *listKeyMap {
	return &listKeyMap{
		create: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new note"),
		),
		delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		openEditor: key.NewBinding(
			key.WithKeys("enter", "tab"),
			key.WithHelp("↵", "edit"),
		),
		closeEditor: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to list"),
		),
		togglePreview: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "toggle preview"),
		),
		toggleStatusBar: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "toggle status"),
		),
		toggleHelpMenu: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "toggle help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func (m listKeyMap) shortHelp() []key.Binding {
	return []key.Binding{
		m.create,
		m.openEditor,
		m.delete,
	}
}

func (m listKeyMap) fullHelp() []key.Binding {
	return []key.Binding{
		m.create,
		m.openEditor,
		m.closeEditor,
		m.delete,
		m.togglePreview,
		m.toggleStatusBar,
		m.toggleHelpMenu,
		m.quit,
	}
}
