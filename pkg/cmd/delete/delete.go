package delete

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/mdnotes/internal/parser"
	"github.com/Paintersrp/mdnotes/internal/state"
	cmdpkg "github.com/Paintersrp/mdnotes/pkg/cmd"
)

var confirm = func(prompt string) (bool, error) {
	return confirmation.New(prompt, confirmation.No).RunPrompt()
}

func NewCmdDelete(s *state.State) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete [id]",
		Aliases: []string{"rm"},
		Short:   "Delete a note.",
		Long: heredoc.Doc(`
			Deletes the note with the given id after asking for confirmation.
			The id may be shortened to any prefix that matches a single note.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmdpkg.ResolveNote(s, args[0])
			if err != nil {
				return err
			}

			title := parser.Title(n.Body)
			if !yes {
				ok, err := confirm(fmt.Sprintf("Delete %q?", title))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing deleted")
					return nil
				}
			}

			if err := s.Notebook.Delete(n.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", title)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking")
	return cmd
}
