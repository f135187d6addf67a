// Package state wires the shared application services together so
// commands receive a single ready-to-use handle instead of rebuilding
// the stores themselves.
package state

import (
	"fmt"
	"os"

	"github.com/typefast/snip/internal/combo"
	"github.com/typefast/snip/internal/prefs"
)

type State struct {
	Home   string
	Prefs  *prefs.Manager
	Combos *combo.Manager
}

func NewState() (*State, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return NewStateFromHome(home)
}

// NewStateFromHome builds the full application state rooted at an
// arbitrary home directory.
func NewStateFromHome(home string) (*State, error) {
	p, err := prefs.NewManager(home)
	if err != nil {
		return nil, err
	}

	combos := combo.NewManager(home)
	if err := combos.Load(); err != nil {
		return nil, err
	}

	return &State{
		Home:   home,
		Prefs:  p,
		Combos: combos,
	}, nil
}
