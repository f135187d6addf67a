package combos

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/typefast/snip/internal/state"
	"github.com/typefast/snip/internal/tui/combos"
)

func NewCmdCombos(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "combos",
		Aliases: []string{"c", "list"},
		Short:   "Open the combo manager.",
		Long: heredoc.Doc(`
			The combo manager lists every combo and supports creating,
			editing, duplicating and deleting them, along with searching
			and sorting the list.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return combos.Run(s)
		},
	}
	return cmd
}
