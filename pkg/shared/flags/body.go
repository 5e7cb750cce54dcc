package flags

import (
	"github.com/spf13/cobra"
)

func AddBody(cmd *cobra.Command) {
	cmd.Flags().
		StringP("body", "b", "", "Markdown body for the note.")
}

// HandleBody returns the --body value and whether it was given at all,
// so an explicit empty body can be told apart from none.
func HandleBody(cmd *cobra.Command) (string, bool, error) {
	body, err := cmd.Flags().GetString("body")
	if err != nil {
		return "", false, err
	}
	return body, cmd.Flags().Changed("body"), nil
}
