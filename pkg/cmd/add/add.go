package add

import (
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/typefast/snip/internal/combo"
	"github.com/typefast/snip/internal/state"
	"github.com/typefast/snip/utils"
)

func NewCmdAdd(s *state.State) *cobra.Command {
	var (
		name     string
		snippet  string
		markdown bool
	)

	cmd := &cobra.Command{
		Use:     "add [keyword]",
		Aliases: []string{"a"},
		Short:   "Add a new combo.",
		Long: heredoc.Doc(`
			The add command creates a new combo bound to the given trigger
			keyword. The snippet is taken from the --snippet flag, or from
			standard input when the flag is omitted.

			Examples:
			  snip add sig --name "Signature" --snippet "Best regards,"
			  cat snippet.txt | snip add sig
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s, args[0], name, snippet, markdown)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Display name for the combo")
	cmd.Flags().StringVar(&snippet, "snippet", "", "Snippet text to expand the keyword to")
	cmd.Flags().BoolVarP(&markdown, "markdown", "m", false, "Treat the snippet as markdown")

	return cmd
}

func run(s *state.State, keyword, name, snippet string, markdown bool) error {
	if err := utils.ValidateKeyword(keyword); err != nil {
		return err
	}
	if _, exists := s.Combos.List().FindByKeyword(keyword); exists {
		return fmt.Errorf("a combo with the keyword '%s' already exists", keyword)
	}

	if snippet == "" {
		var err error
		snippet, err = readSnippet()
		if err != nil {
			return err
		}
	}
	if snippet == "" {
		return fmt.Errorf("the snippet must not be empty")
	}

	c := combo.New()
	c.Name = name
	c.Keyword = keyword
	c.Snippet = snippet
	c.Markdown = markdown

	s.Combos.List().Append(c)
	if err := s.Combos.SaveToFile(); err != nil {
		return err
	}

	fmt.Printf("Added combo '%s'.\n", keyword)
	return nil
}

func readSnippet() (string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Println("Enter the snippet text, end with Ctrl-D:")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read snippet: %w", err)
	}
	return string(data), nil
}
