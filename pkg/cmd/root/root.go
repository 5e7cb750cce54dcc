package root

import (
	"log/slog"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/mdnotes/internal/config"
	"github.com/Paintersrp/mdnotes/internal/state"
	"github.com/Paintersrp/mdnotes/internal/store"
	"github.com/Paintersrp/mdnotes/pkg/cmd/changeBackend"
	"github.com/Paintersrp/mdnotes/pkg/cmd/copy"
	"github.com/Paintersrp/mdnotes/pkg/cmd/delete"
	"github.com/Paintersrp/mdnotes/pkg/cmd/edit"
	"github.com/Paintersrp/mdnotes/pkg/cmd/find"
	"github.com/Paintersrp/mdnotes/pkg/cmd/list"
	"github.com/Paintersrp/mdnotes/pkg/cmd/new"
	"github.com/Paintersrp/mdnotes/pkg/cmd/notes"
	"github.com/Paintersrp/mdnotes/pkg/cmd/show"
	"github.com/Paintersrp/mdnotes/pkg/cmd/version"
)

// NewCmdRoot builds the command tree. s is filled in before any
// subcommand runs, unless it already carries a notebook.
func NewCmdRoot(s *state.State) *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:     "mdn",
		Aliases: []string{"mdnotes"},
		Short:   "Write markdown notes in a split list and editor view.",
		Long: heredoc.Doc(`
			mdn keeps a list of markdown notes, most recently edited first.

			Run without a command to open the notes view: the list of notes on
			the left and an editor for the selected note on the right. Every
			keystroke is saved to the configured store.

			  mdn                    open the notes view
			  mdn new "# Groceries"  create a note from the command line
			  mdn list               print ids and titles
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(
				cmd.ErrOrStderr(),
				&slog.HandlerOptions{Level: level},
			)))

			return loadState(cmd, s, configPath)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return s.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return notes.Run(s)
		},
	}

	cmd.PersistentFlags().
		StringVar(&configPath, "config", "", "config file (default is $HOME/.mdnotes/cfg.yaml)")
	cmd.PersistentFlags().
		String("backend", "", "store backend for this run, one of: "+strings.Join(store.Backends, ", "))
	cmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "V", false, "log debug output to stderr")

	cmd.AddCommand(
		notes.NewCmdNotes(s),
		new.NewCmdNew(s),
		list.NewCmdList(s),
		show.NewCmdShow(s),
		edit.NewCmdEdit(s),
		delete.NewCmdDelete(s),
		find.NewCmdFind(s),
		copy.NewCmdCopy(s),
		changeBackend.NewCmdChangeBackend(s),
		version.NewCmdVersion(),
	)

	return cmd
}

func loadState(cmd *cobra.Command, s *state.State, configPath string) error {
	if s.Notebook != nil {
		return nil
	}

	switch annotation(cmd) {
	case state.LoadNothing:
		return nil

	case state.LoadConfigOnly:
		path, err := configOrDefault(configPath)
		if err != nil {
			return err
		}
		cfg, err := state.LoadConfig(path, cmd.Flags())
		if err != nil {
			return err
		}
		s.Config = cfg
		return nil
	}

	loaded, err := state.NewState(cmd.Context(), configPath, cmd.Flags())
	if err != nil {
		return err
	}
	*s = *loaded

	slog.Debug(
		"state loaded",
		"backend", s.Config.Store.Backend,
		"key", s.Repository.Key(),
		"notes", s.Notebook.Len(),
	)
	return nil
}

func annotation(cmd *cobra.Command) string {
	for c := cmd; c != nil; c = c.Parent() {
		if v, ok := c.Annotations[state.LoadAnnotation]; ok {
			return v
		}
	}
	return ""
}

func configOrDefault(configPath string) (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	home, err := state.GetHomeDir()
	if err != nil {
		return "", err
	}
	return config.GetConfigPath(home), nil
}
