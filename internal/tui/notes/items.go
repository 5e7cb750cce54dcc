package notes

import (
	"github.com/charmbracelet/bubbles/list"

	"github.com/Paintersrp/mdnotes/internal/note"
	"github.com/Paintersrp/mdnotes/internal/parser"
)

const excerptLength = 60

type ListItem struct {
	id      string
	title   string
	excerpt string
}

func newListItem(n note.Note) ListItem {
	return ListItem{
		id:      n.ID,
		title:   parser.Title(n.Body),
		excerpt: parser.Excerpt(n.Body, excerptLength),
	}
}

func (i ListItem) Title() string {
	return i.title
}

func (i ListItem) Description() string {
	if i.excerpt == "" {
		return "No content"
	}
	return i.excerpt
}

func (i ListItem) FilterValue() string {
	return i.title + " " + i.excerpt
}

func (i ListItem) ID() string {
	return i.id
}

func itemsFromNotes(notes []note.Note) []list.Item {
	items := make([]list.Item, len(notes))
	for i, n := range notes {
		items[i] = newListItem(n)
	}
	return items
}

// indexOf returns the position of id among items, or -1.
func indexOf(items []list.Item, id string) int {
	for i, it := range items {
		if li, ok := it.(ListItem); ok && li.id == id {
			return i
		}
	}
	return -1
}
