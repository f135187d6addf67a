package combos

import (
	"fmt"
	"strings"

	"github.com/typefast/snip/internal/combo"
)

type ComboItem struct {
	combo       *combo.Combo
	sourceIndex int
	marked      bool
}

func (i ComboItem) Title() string {
	title := i.combo.Name
	if title == "" {
		title = i.combo.Keyword
	}
	if i.marked {
		title = "* " + title
	}
	if !i.combo.Enabled {
		title += " (disabled)"
	}
	return title
}

func (i ComboItem) Description() string {
	snippet := strings.ReplaceAll(i.combo.Snippet, "\n", " ")
	if runes := []rune(snippet); len(runes) > 60 {
		snippet = string(runes[:60]) + "…"
	}
	return fmt.Sprintf("[%s] %s", i.combo.Keyword, snippet)
}

func (i ComboItem) FilterValue() string {
	return strings.Join([]string{i.combo.Keyword, i.combo.Name, i.combo.Snippet}, " ")
}
