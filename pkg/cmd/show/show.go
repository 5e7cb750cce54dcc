package show

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/mdnotes/internal/state"
	cmdpkg "github.com/Paintersrp/mdnotes/pkg/cmd"
	"github.com/Paintersrp/mdnotes/utils"
)

func NewCmdShow(s *state.State) *cobra.Command {
	var render bool

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Print a note.",
		Long: heredoc.Doc(`
			Prints the body of a note. The id may be shortened to any prefix
			that matches a single note. With --render the markdown is styled
			for the terminal.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmdpkg.ResolveNote(s, args[0])
			if err != nil {
				return err
			}

			if !render {
				fmt.Fprintln(cmd.OutOrStdout(), n.Body)
				return nil
			}

			out, err := utils.RenderMarkdown(n.Body, s.Config.UI.Style, s.Config.UI.WordWrap)
			if err != nil {
				return fmt.Errorf("error rendering note: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&render, "render", "r", false, "render the markdown")
	return cmd
}
