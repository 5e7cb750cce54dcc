/*
Copyright © 2024 Ryan Painter paintersrp@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package changeBackend

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/mdnotes/internal/state"
)

func NewCmdChangeBackend(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "change-backend [backend]",
		Short: "Change the default store backend",
		Long: `The change-backend command updates the store backend notes are kept in and saves the new setting to the configuration file.
Notes are not copied between backends.`,
		Example: `
    # Keep notes in a local sqlite database
    mdn change-backend sqlite
    `,
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{state.LoadAnnotation: state.LoadConfigOnly},
		RunE: func(cmd *cobra.Command, args []string) error {
			if s.Config == nil {
				return fmt.Errorf("configuration is not loaded")
			}
			if err := s.Config.ChangeBackend(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Store backend set to %s\n", s.Config.Store.Backend)
			return nil
		},
	}

	return cmd
}
