package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/typefast/snip/internal/state"
	"github.com/typefast/snip/pkg/cmd/add"
	"github.com/typefast/snip/pkg/cmd/combos"
	"github.com/typefast/snip/pkg/cmd/echo"
	"github.com/typefast/snip/pkg/cmd/settings"
)

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:     "snip",
		Aliases: []string{"sn"},
		Short:   "Manage and expand text snippets triggered by keywords.",
		Long: heredoc.Doc(`
			snip keeps a list of combos: short keywords bound to text
			snippets. Snippets may embed variables such as #{date},
			#{clipboard} or #{input:Your name} that are resolved when the
			combo is expanded.

			Running snip without a subcommand opens the combo manager.
		`),
		Example: heredoc.Doc(`
			snip add sig --name "Signature" --snippet "Best regards,"
			snip echo sig
			snip echo sig --copy
		`),
		RunE: combos.NewCmdCombos(s).RunE,
	}

	cmd.AddCommand(
		combos.NewCmdCombos(s),
		add.NewCmdAdd(s),
		echo.NewCmdEcho(s),
		settings.NewCmdSettings(s),
	)

	return cmd, nil
}
