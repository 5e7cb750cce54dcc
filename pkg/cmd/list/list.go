package list

import (
	"encoding/json"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/mdnotes/internal/parser"
	"github.com/Paintersrp/mdnotes/internal/state"
)

type entry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

func NewCmdList(s *state.State) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes, most recently edited first.",
		Long: heredoc.Doc(`
			Prints one line per note: the id, a tab, and the title taken from
			the first line of the body. With --json the full notes are printed.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print notes as a JSON array")
	return cmd
}

func run(cmd *cobra.Command, s *state.State, asJSON bool) error {
	notes := s.Notebook.All()
	out := cmd.OutOrStdout()

	if asJSON {
		entries := make([]entry, len(notes))
		for i, n := range notes {
			entries[i] = entry{ID: n.ID, Title: parser.Title(n.Body), Body: n.Body}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	for _, n := range notes {
		fmt.Fprintf(out, "%s\t%s\n", n.ID, parser.Title(n.Body))
	}
	return nil
}
