package add

import (
	"testing"

	"github.com/typefast/snip/internal/state"
)

func newTestState(t *testing.T) *state.State {
	t.Helper()

	s, err := state.NewStateFromHome(t.TempDir())
	if err != nil {
		t.Fatalf("NewStateFromHome returned error: %v", err)
	}
	return s
}

func TestRunAddsCombo(t *testing.T) {
	t.Parallel()

	s := newTestState(t)

	if err := run(s, "sig", "Signature", "Best regards,", false); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	c, ok := s.Combos.List().FindByKeyword("sig")
	if !ok {
		t.Fatalf("expected combo to be added")
	}
	if c.Name != "Signature" || c.Snippet != "Best regards," {
		t.Fatalf("unexpected combo: %+v", c)
	}

	reloaded, err := state.NewStateFromHome(s.Home)
	if err != nil {
		t.Fatalf("NewStateFromHome returned error on reload: %v", err)
	}
	if _, ok := reloaded.Combos.List().FindByKeyword("sig"); !ok {
		t.Fatalf("expected combo to survive a reload")
	}
}

func TestRunRejectsDuplicateKeyword(t *testing.T) {
	t.Parallel()

	s := newTestState(t)

	if err := run(s, "sig", "", "first", false); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if err := run(s, "sig", "", "second", false); err == nil {
		t.Fatalf("expected error for duplicate keyword")
	}
}

func TestRunRejectsInvalidKeyword(t *testing.T) {
	t.Parallel()

	s := newTestState(t)

	if err := run(s, "two words", "", "text", false); err == nil {
		t.Fatalf("expected error for invalid keyword")
	}
}
