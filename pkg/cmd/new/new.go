package new

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/mdnotes/internal/state"
	"github.com/Paintersrp/mdnotes/pkg/shared/arg"
	"github.com/Paintersrp/mdnotes/pkg/shared/flags"
)

var readClipboard = clipboard.ReadAll

func NewCmdNew(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "new [body]",
		Aliases: []string{"n"},
		Short:   "Create a new note.",
		Long: heredoc.Doc(`
			Creates a note at the top of the list and prints its id.

			Without a body the note starts with the default title line. The
			body can be given as arguments, with --body, or taken from the
			clipboard with --paste. The id is printed as soon as the note
			exists, so a body that fails to save still leaves a note you
			can edit.
		`),
		Example: heredoc.Doc(`
			mdn new
			mdn new "# Groceries"
			mdn new --paste
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, s)
		},
	}

	flags.AddBody(cmd)
	flags.AddPaste(cmd)
	cmd.MarkFlagsMutuallyExclusive("body", "paste")

	return cmd
}

func run(cmd *cobra.Command, args []string, s *state.State) error {
	body, hasBody, err := handleBody(cmd, args)
	if err != nil {
		return err
	}

	n, err := s.Notebook.Create()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), n.ID)

	if hasBody {
		if err := s.Notebook.Update(n.ID, body); err != nil {
			return fmt.Errorf("note %s was created with the default body: %w", n.ID, err)
		}
	}
	return nil
}

func handleBody(cmd *cobra.Command, args []string) (string, bool, error) {
	paste, err := flags.HandlePaste(cmd)
	if err != nil {
		return "", false, err
	}
	if paste {
		content, err := readClipboard()
		if err != nil {
			return "", false, fmt.Errorf("error reading clipboard: %w", err)
		}
		return content, true, nil
	}

	body, changed, err := flags.HandleBody(cmd)
	if err != nil {
		return "", false, err
	}
	if changed {
		if len(args) > 0 {
			return "", false, fmt.Errorf("give the body either as arguments or with --body, not both")
		}
		return body, true, nil
	}

	if content := arg.HandleContent(args); content != "" {
		return content, true, nil
	}
	return "", false, nil
}
