package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/mdnotes/internal/constants"
	"github.com/Paintersrp/mdnotes/internal/state"
)

func NewCmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the version.",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{state.LoadAnnotation: state.LoadNothing},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", constants.AppName, constants.Version)
		},
	}
}
