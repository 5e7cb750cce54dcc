package notes

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"

	"github.com/Paintersrp/mdnotes/internal/note"
	"github.com/Paintersrp/mdnotes/internal/parser"
	"github.com/Paintersrp/mdnotes/internal/tui/textarea"
)

const tabWidth = 4

// editorSession is the textarea bound to the note it is showing.
type editorSession struct {
	area   *textarea.Model
	noteID string
	title  string
}

func newEditorSession(width, height int) *editorSession {
	return &editorSession{area: textarea.New(width, height)}
}

// load shows n in the editor. Reloading the note already shown with an
// unchanged body keeps the cursor where it is.
func (s *editorSession) load(n note.Note) {
	s.title = parser.Title(n.Body)
	if s.noteID == n.ID && s.area.Value() == displayBody(n.Body) {
		return
	}
	s.noteID = n.ID
	s.area.SetValue(n.Body)
}

func (s *editorSession) clear() {
	s.noteID = ""
	s.title = ""
	s.area.SetValue("")
}

func (s *editorSession) viewHeader(width int) string {
	if s.noteID == "" {
		return ""
	}
	header := "Editing " + s.title
	if width <= 0 {
		return header
	}
	return truncate.StringWithTail(header, uint(width), "…")
}

func (s *editorSession) setSize(width, height int) {
	s.area.SetSize(width, height)
}

func (s *editorSession) focus() tea.Cmd {
	return s.area.Focus()
}

func (s *editorSession) blur() {
	s.area.Blur()
}

func (s *editorSession) focused() bool {
	return s.area.Focused()
}

func (s *editorSession) value() string {
	return s.area.Value()
}

func (s *editorSession) update(msg tea.Msg) tea.Cmd {
	return s.area.Update(msg)
}

func (s *editorSession) view() string {
	return s.area.View()
}

// displayBody is body as the textarea holds it: tabs expanded to four
// spaces, CRLF and lone CR folded to LF.
func displayBody(body string) string {
	shown, _ := displayRunes([]rune(body))
	return string(shown)
}

// displayRunes also returns, for every shown rune, the index of the
// stored rune it came from.
func displayRunes(stored []rune) ([]rune, []int) {
	shown := make([]rune, 0, len(stored))
	owner := make([]int, 0, len(stored))

	for i := 0; i < len(stored); i++ {
		switch r := stored[i]; r {
		case '\t':
			for j := 0; j < tabWidth; j++ {
				shown = append(shown, ' ')
				owner = append(owner, i)
			}
		case '\r':
			shown = append(shown, '\n')
			owner = append(owner, i)
			if i+1 < len(stored) && stored[i+1] == '\n' {
				i++
			}
		default:
			shown = append(shown, r)
			owner = append(owner, i)
		}
	}
	return shown, owner
}

// mergeEdit applies the change between before and after, both as shown
// in the textarea, to the stored body. Only the edited span is taken
// from after, so tabs and line endings elsewhere in stored survive.
// When before is not the display form of stored, after is returned as is.
func mergeEdit(stored, before, after string) string {
	orig := []rune(stored)
	shown, owner := displayRunes(orig)
	if string(shown) != before {
		return after
	}

	a := []rune(after)
	n := min(len(shown), len(a))

	prefix := 0
	for prefix < n && shown[prefix] == a[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < n-prefix && shown[len(shown)-1-suffix] == a[len(a)-1-suffix] {
		suffix++
	}

	// Widen the span to whole stored runes so an expanded tab is
	// replaced entirely or not at all.
	start := prefix
	for start > 0 && start < len(shown) && owner[start] == owner[start-1] {
		start--
	}
	end := len(shown) - suffix
	for end > 0 && end < len(shown) && owner[end] == owner[end-1] {
		end++
	}

	origIndex := func(i int) int {
		if i >= len(shown) {
			return len(orig)
		}
		return owner[i]
	}

	middle := a[start : len(a)-(len(shown)-end)]
	return string(orig[:origIndex(start)]) + string(middle) + string(orig[origIndex(end):])
}
