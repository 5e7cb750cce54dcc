package copy

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/mdnotes/internal/parser"
	"github.com/Paintersrp/mdnotes/internal/state"
	cmdpkg "github.com/Paintersrp/mdnotes/pkg/cmd"
)

var writeClipboard = clipboard.WriteAll

func NewCmdCopy(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "copy [id]",
		Aliases: []string{"cp", "yank"},
		Short:   "Copy a note body to the clipboard.",
		Long: heredoc.Doc(`
			Copies the markdown body of the note with the given id to the
			system clipboard.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmdpkg.ResolveNote(s, args[0])
			if err != nil {
				return err
			}
			if err := writeClipboard(n.Body); err != nil {
				return fmt.Errorf("error writing clipboard: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Copied %s\n", parser.Title(n.Body))
			return nil
		},
	}

	return cmd
}
