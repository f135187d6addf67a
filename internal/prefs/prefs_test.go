package prefs

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/typefast/snip/internal/constants"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	home := t.TempDir()
	m, err := NewManager(home)
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}
	return m
}

func TestBoolPreferencesDefaultWhenUnset(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)

	if !m.PlaySoundOnCombo() {
		t.Fatalf("expected PlaySoundOnCombo to default to true")
	}
	if m.AutoStartAtLogin() {
		t.Fatalf("expected AutoStartAtLogin to default to false")
	}
}

func TestBoolPreferencesRoundTrip(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		set  func(*Manager, bool)
		get  func(*Manager) bool
	}{
		{
			name: "play sound on combo",
			set:  (*Manager).SetPlaySoundOnCombo,
			get:  (*Manager).PlaySoundOnCombo,
		},
		{
			name: "auto start at login",
			set:  (*Manager).SetAutoStartAtLogin,
			get:  (*Manager).AutoStartAtLogin,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m := newTestManager(t)

			tc.set(m, false)
			if tc.get(m) {
				t.Fatalf("expected false after setting false")
			}

			tc.set(m, true)
			if !tc.get(m) {
				t.Fatalf("expected true after setting true")
			}
		})
	}
}

func TestPreferencesSurviveReload(t *testing.T) {
	t.Parallel()

	home := t.TempDir()
	m, err := NewManager(home)
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}

	m.SetPlaySoundOnCombo(false)
	m.SetAutoStartAtLogin(true)

	reloaded, err := NewManager(home)
	if err != nil {
		t.Fatalf("NewManager returned error on reload: %v", err)
	}

	if reloaded.PlaySoundOnCombo() {
		t.Fatalf("expected PlaySoundOnCombo false after reload")
	}
	if !reloaded.AutoStartAtLogin() {
		t.Fatalf("expected AutoStartAtLogin true after reload")
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)

	m.SetPlaySoundOnCombo(false)
	m.SetAutoStartAtLogin(true)

	m.Reset()

	if !m.PlaySoundOnCombo() {
		t.Fatalf("expected PlaySoundOnCombo true after reset")
	}
	if m.AutoStartAtLogin() {
		t.Fatalf("expected AutoStartAtLogin false after reset")
	}
}

func TestInstalledApplicationPath(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)

	if got := m.InstalledApplicationPath(); got != "" {
		t.Fatalf("expected empty path when unset, got %q", got)
	}

	// The key is owned by the installer; write it underneath the store
	// the way the installer would.
	m.v.Set("app_exe_path", `C:\Program Files\snip\snip.exe`)

	want := "C:/Program Files/snip/snip.exe"
	if got := m.InstalledApplicationPath(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestMainWindowGeometryRoundTrip(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)

	if got := m.MainWindowGeometry(); got != nil {
		t.Fatalf("expected nil geometry when unset, got %v", got)
	}

	blob := []byte{0x01, 0x00, 0xFF, 0x42, 0x00}
	m.SetMainWindowGeometry(blob)

	if got := m.MainWindowGeometry(); !bytes.Equal(got, blob) {
		t.Fatalf("expected geometry %v, got %v", blob, got)
	}
}

func TestNewManagerCreatesPrefsFile(t *testing.T) {
	t.Parallel()

	home := t.TempDir()
	if _, err := NewManager(home); err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}

	path := filepath.Join(home, constants.ConfigDir, "prefs.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected preferences file at %s: %v", path, err)
	}
}
