package echo

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/typefast/snip/internal/combo"
	"github.com/typefast/snip/internal/fzf"
	"github.com/typefast/snip/internal/state"
	"github.com/typefast/snip/internal/variable"
	"github.com/typefast/snip/utils"
)

func NewCmdEcho(s *state.State) *cobra.Command {
	var (
		copyFlag  bool
		plainFlag bool
		htmlFlag  bool
	)

	cmd := &cobra.Command{
		Use:     "echo [keyword]",
		Aliases: []string{"e", "expand"},
		Short:   "Expand a combo and print the result.",
		Long: heredoc.Doc(`
			The echo command substitutes a combo: it resolves the snippet
			variables and prints the resulting text. Without a keyword it
			opens a fuzzy picker over the combo list.

			Examples:
			  snip echo sig
			  snip echo sig --copy
			  snip echo --plain
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword := ""
			if len(args) > 0 {
				keyword = args[0]
			}
			return run(s, keyword, copyFlag, plainFlag, htmlFlag)
		},
	}

	cmd.Flags().BoolVarP(&copyFlag, "copy", "c", false, "Copy the expansion to the clipboard instead of printing it")
	cmd.Flags().BoolVar(&plainFlag, "plain", false, "Strip markdown formatting from the expansion")
	cmd.Flags().BoolVar(&htmlFlag, "html", false, "Convert a markdown snippet to HTML")

	return cmd
}

func run(s *state.State, keyword string, copyFlag, plainFlag, htmlFlag bool) error {
	c, err := pickCombo(s, keyword)
	if err != nil {
		return err
	}

	e := variable.NewEvaluator(s.Combos.List(), variable.WithInput(promptInput))
	text, err := e.Render(c)
	if err != nil {
		if err == variable.ErrCancelled {
			return fmt.Errorf("expansion cancelled")
		}
		return err
	}

	if c.Markdown {
		switch {
		case htmlFlag:
			text, err = utils.MarkdownToHTML(text)
			if err != nil {
				return err
			}
		case plainFlag:
			text = utils.StripMarkdown(text)
		}
	}

	if copyFlag {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("failed to copy expansion to clipboard: %w", err)
		}
		fmt.Printf("Copied expansion of '%s' to the clipboard.\n", c.Keyword)
	} else {
		fmt.Println(text)
	}

	if s.Prefs.PlaySoundOnCombo() {
		fmt.Print("\a")
	}
	return nil
}

func pickCombo(s *state.State, keyword string) (*combo.Combo, error) {
	if keyword != "" {
		c, ok := s.Combos.List().FindByKeyword(keyword)
		if !ok {
			return nil, fmt.Errorf("no enabled combo with the keyword '%s'", keyword)
		}
		return c, nil
	}

	finder := fzf.NewFuzzyFinder(s.Combos.List(), "Select a combo to expand...")
	return finder.Run()
}

// promptInput asks the user for an #{input:} variable on the terminal.
// When no terminal is attached the variable counts as cancelled.
func promptInput(description string) (string, bool) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", false
	}

	fmt.Printf("%s: ", description)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}
