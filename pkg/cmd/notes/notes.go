package notes

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/mdnotes/internal/state"
	"github.com/Paintersrp/mdnotes/internal/tui/notes"
)

func NewCmdNotes(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notes",
		Aliases: []string{"ui"},
		Short:   "Open the notes list and editor.",
		Long: heredoc.Doc(`
			Opens the notes view: the list of notes on the left, most recently
			edited first, and an editor for the selected note on the right.

			Keys:
			  n          new note
			  d, delete  delete the highlighted note
			  enter, tab edit the selected note
			  esc        back to the list
			  p          toggle the rendered preview
			  q, ctrl+c  quit
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(s)
		},
	}

	return cmd
}

func Run(s *state.State) error {
	return notes.Run(s)
}
