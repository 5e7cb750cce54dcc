package edit

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/mdnotes/internal/state"
	cmdpkg "github.com/Paintersrp/mdnotes/pkg/cmd"
	"github.com/Paintersrp/mdnotes/pkg/shared/flags"
)

func NewCmdEdit(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Replace the body of a note.",
		Long: heredoc.Doc(`
			Replaces the body of the note with the given id and moves it to
			the top of the list. The id may be shortened to any prefix that
			matches a single note. The new body comes from --body, or from
			standard input when it is not a terminal.
		`),
		Example: heredoc.Doc(`
			mdn edit 3f2a... --body "# Groceries"
			cat draft.md | mdn edit 3f2a...
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmdpkg.ResolveNote(s, args[0])
			if err != nil {
				return err
			}
			body, err := readBody(cmd)
			if err != nil {
				return err
			}
			return s.Notebook.Update(n.ID, body)
		},
	}

	flags.AddBody(cmd)
	return cmd
}

func readBody(cmd *cobra.Command) (string, error) {
	body, changed, err := flags.HandleBody(cmd)
	if err != nil {
		return "", err
	}
	if changed {
		return body, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", errors.New("no body given: use --body or pipe the new body in")
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("error reading body: %w", err)
	}
	return string(data), nil
}
