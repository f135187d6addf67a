package settings

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typefast/snip/internal/state"
	"github.com/typefast/snip/internal/tui/settings"
)

func NewCmdSettings(s *state.State) *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"s"},
		Short:   "Preferences menu",
		Long:    "This command allows you to adjust your preferences directly from the CLI tool.",
		Example: "snip settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if reset {
				s.Prefs.Reset()
				fmt.Println("Preferences restored to defaults.")
				return nil
			}
			return settings.Run(s.Prefs)
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Restore the default preferences and exit")

	return cmd
}
