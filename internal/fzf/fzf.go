package fzf

import (
	"errors"
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/Paintersrp/mdnotes/internal/note"
	"github.com/Paintersrp/mdnotes/internal/parser"
	"github.com/Paintersrp/mdnotes/utils"
)

var (
	ErrNoSelection = errors.New("no note selected")
	ErrNoNotes     = errors.New("no notes to search")
)

const excerptLength = 40

type findFunc func(notes []note.Note, label func(i int) string, opts ...fuzzyfinder.Option) (int, error)

func defaultFind(notes []note.Note, label func(i int) string, opts ...fuzzyfinder.Option) (int, error) {
	return fuzzyfinder.Find(notes, label, opts...)
}

// FuzzyFinder picks a note by fuzzy matching on titles, with the
// rendered body in a preview window.
type FuzzyFinder struct {
	notebook *note.Notebook
	style    string
	Header   string
	notes    []note.Note
	find     findFunc
}

func NewFuzzyFinder(nb *note.Notebook, style, header string) *FuzzyFinder {
	return &FuzzyFinder{
		notebook: nb,
		style:    style,
		Header:   header,
		find:     defaultFind,
	}
}

// Run opens the finder with query prefilled and returns the chosen note.
// Aborting the finder returns ErrNoSelection.
func (f *FuzzyFinder) Run(query string) (note.Note, error) {
	f.notes = f.notebook.All()
	if len(f.notes) == 0 {
		return note.Note{}, ErrNoNotes
	}

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderMarkdownPreview),
	}

	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}

	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	idx, err := f.find(f.notes, f.label, options...)
	if errors.Is(err, fuzzyfinder.ErrAbort) {
		return note.Note{}, ErrNoSelection
	}
	if err != nil {
		return note.Note{}, fmt.Errorf("error selecting note: %w", err)
	}
	if idx < 0 || idx >= len(f.notes) {
		return note.Note{}, ErrNoSelection
	}

	return f.notes[idx], nil
}

func (f *FuzzyFinder) label(i int) string {
	n := f.notes[i]
	title := parser.Title(n.Body)
	if excerpt := parser.Excerpt(n.Body, excerptLength); excerpt != "" {
		return fmt.Sprintf("%s [%s]", title, excerpt)
	}
	return title
}

func (f *FuzzyFinder) renderMarkdownPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}
	return utils.RenderMarkdownPreview(f.notes[i].Body, f.style, w)
}
