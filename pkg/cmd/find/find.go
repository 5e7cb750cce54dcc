package find

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/mdnotes/internal/fzf"
	"github.com/Paintersrp/mdnotes/internal/note"
	"github.com/Paintersrp/mdnotes/internal/state"
)

type finder interface {
	Run(query string) (note.Note, error)
}

var newFinder = func(s *state.State) finder {
	return fzf.NewFuzzyFinder(s.Notebook, s.Config.UI.Style, "Select a note")
}

func NewCmdFind(s *state.State) *cobra.Command {
	var showBody bool

	cmd := &cobra.Command{
		Use:     "find [query]",
		Aliases: []string{"f"},
		Short:   "Fuzzy find a note by title.",
		Long: heredoc.Doc(`
			Opens a fuzzy finder over note titles with a rendered preview of
			each note, and prints the id of the note you pick.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := newFinder(s).Run(strings.Join(args, " "))
			if errors.Is(err, fzf.ErrNoSelection) {
				fmt.Fprintln(cmd.ErrOrStderr(), "No note selected")
				return nil
			}
			if err != nil {
				return err
			}

			if showBody {
				fmt.Fprintln(cmd.OutOrStdout(), n.Body)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), n.ID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showBody, "show", false, "print the body instead of the id")
	return cmd
}
