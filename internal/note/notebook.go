package note

// Notebook is the surface the views work against: the repository plus
// the current selection.
type Notebook struct {
	repo *Repository
	sel  *Selection
}

func NewNotebook(repo *Repository) *Notebook {
	return &Notebook{repo: repo, sel: NewSelection(repo)}
}

func (b *Notebook) Repository() *Repository {
	return b.repo
}

func (b *Notebook) All() []Note {
	return b.repo.All()
}

func (b *Notebook) Len() int {
	return b.repo.Len()
}

func (b *Notebook) Find(id string) (Note, bool) {
	return b.repo.Find(id)
}

// Current resolves the selected note with first-note fallback.
func (b *Notebook) Current() (Note, bool) {
	return b.sel.Resolve(b.repo)
}

// SelectedID returns the raw selection, which may be stale.
func (b *Notebook) SelectedID() string {
	return b.sel.Current()
}

func (b *Notebook) Select(id string) {
	b.sel.Select(id)
}

// Create adds a note and makes it the selection.
func (b *Notebook) Create() (Note, error) {
	n, err := b.repo.Create()
	if err != nil {
		return Note{}, err
	}
	b.sel.Select(n.ID)
	return n, nil
}

func (b *Notebook) Update(id, body string) error {
	return b.repo.Update(id, body)
}

// UpdateCurrent writes body to the note the editor is showing. With an
// empty repository it is a no-op.
func (b *Notebook) UpdateCurrent(body string) error {
	current, ok := b.Current()
	if !ok {
		return nil
	}
	return b.repo.Update(current.ID, body)
}

func (b *Notebook) Delete(id string) error {
	return b.repo.Delete(id)
}
