// Package fzf provides the interactive combo picker used when a
// command needs a combo and none was named on the command line.
package fzf

import (
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/typefast/snip/internal/combo"
	"github.com/typefast/snip/utils"
)

var ErrNoSelection = fmt.Errorf("no combo selected")

// FuzzyFinder encapsulates fuzzy selection over the combo list with a
// rendered snippet preview.
type FuzzyFinder struct {
	list   *combo.List
	Header string
}

func NewFuzzyFinder(list *combo.List, header string) *FuzzyFinder {
	return &FuzzyFinder{list: list, Header: header}
}

// Run lets the user pick a combo and returns it.
func (f *FuzzyFinder) Run() (*combo.Combo, error) {
	return f.RunWithQuery("")
}

func (f *FuzzyFinder) RunWithQuery(query string) (*combo.Combo, error) {
	combos := f.list.Combos()
	if len(combos) == 0 {
		return nil, ErrNoSelection
	}

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			return f.renderPreview(combos, i, w)
		}),
	}
	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}
	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	idx, err := fuzzyfinder.Find(combos, func(i int) string {
		c := combos[i]
		if c.Name == "" {
			return c.Keyword
		}
		return fmt.Sprintf("%s [%s]", c.Name, c.Keyword)
	}, options...)
	if err == fuzzyfinder.ErrAbort {
		return nil, ErrNoSelection
	}
	if err != nil {
		return nil, fmt.Errorf("error selecting combo: %w", err)
	}

	return combos[idx], nil
}

func (f *FuzzyFinder) renderPreview(combos []*combo.Combo, i, w int) string {
	if i == -1 {
		return ""
	}
	c := combos[i]
	if !c.Markdown {
		return c.Snippet
	}
	return utils.RenderMarkdownPreview(c.Snippet, w)
}
