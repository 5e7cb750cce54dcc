package note

import (
	"reflect"
	"testing"
)

func TestNotebookCreateSelectsNewNote(t *testing.T) {
	t.Parallel()

	repo, _ := seeded(t, []Note{{ID: "a", Body: "A"}})
	book := NewNotebook(repo)

	n, err := book.Create()
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if book.SelectedID() != n.ID {
		t.Fatalf("expected new note to be selected, got %q", book.SelectedID())
	}
	if cur, ok := book.Current(); !ok || cur.ID != n.ID {
		t.Fatalf("expected current to be new note, got %v", cur)
	}
}

func TestNotebookUpdateCurrentFollowsFallback(t *testing.T) {
	t.Parallel()

	repo, _ := seeded(t, []Note{{ID: "a", Body: "A"}, {ID: "b", Body: "B"}})
	book := NewNotebook(repo)
	book.Select("b")

	if err := book.UpdateCurrent("B2"); err != nil {
		t.Fatalf("UpdateCurrent returned error: %v", err)
	}
	want := []Note{{ID: "b", Body: "B2"}, {ID: "a", Body: "A"}}
	if got := book.All(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected notes %v", got)
	}

	if err := book.Delete("b"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := book.UpdateCurrent("A2"); err != nil {
		t.Fatalf("UpdateCurrent returned error: %v", err)
	}
	if n, _ := book.Find("a"); n.Body != "A2" {
		t.Fatalf("expected fallback note to be edited, got %q", n.Body)
	}
}

func TestNotebookUpdateCurrentOnEmptyIsNoop(t *testing.T) {
	t.Parallel()

	repo, store := seeded(t, nil)
	book := NewNotebook(repo)
	writes := store.writes

	if err := book.UpdateCurrent("text"); err != nil {
		t.Fatalf("UpdateCurrent returned error: %v", err)
	}
	if store.writes != writes {
		t.Fatalf("expected no write for empty notebook")
	}
	if book.Len() != 0 {
		t.Fatalf("expected empty notebook")
	}
}
