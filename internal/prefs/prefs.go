package prefs

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/typefast/snip/internal/constants"
)

const (
	keyGeometry         = "geometry"
	keyAppExePath       = "app_exe_path"
	keyPlaySoundOnCombo = "play_sound_on_combo"
	keyAutoStartAtLogin = "auto_start_at_login"
)

const (
	defaultPlaySoundOnCombo = true
	defaultAutoStartAtLogin = false
)

// Manager provides typed access to the small fixed set of user
// preferences. Missing keys resolve to their documented defaults, never
// to an error, and setters write through to disk on every change. The
// store binds to its file at construction so it is usable before any
// other part of the application has initialized.
type Manager struct {
	v    *viper.Viper
	path string
}

func NewManager(home string) (*Manager, error) {
	dir := filepath.Join(home, constants.ConfigDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}

	path := filepath.Join(
		dir,
		fmt.Sprintf("%s.%s", constants.PrefsFile, constants.PrefsFileType),
	)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		file, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create preferences file: %w", err)
		}
		file.Close()
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(constants.PrefsFileType)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read preferences file: %w", err)
	}

	return &Manager{v: v, path: path}, nil
}

// Reset restores the toggle preferences to their defaults. The OS
// login-item registration maintained by the autostart routine is left
// untouched; only the stored flag is reset.
func (m *Manager) Reset() {
	m.SetPlaySoundOnCombo(defaultPlaySoundOnCombo)
	m.SetAutoStartAtLogin(defaultAutoStartAtLogin)
}

// InstalledApplicationPath returns the application path recorded by the
// installer, normalized to forward slashes, or the empty string if the
// installer never wrote it. This component never sets the key.
func (m *Manager) InstalledApplicationPath() string {
	if !m.v.IsSet(keyAppExePath) {
		return ""
	}
	return strings.ReplaceAll(m.v.GetString(keyAppExePath), `\`, "/")
}

// SetMainWindowGeometry stores the serialized window layout. The blob
// is opaque to the store and is not validated.
func (m *Manager) SetMainWindowGeometry(geometry []byte) {
	m.v.Set(keyGeometry, base64.StdEncoding.EncodeToString(geometry))
	m.save()
}

func (m *Manager) MainWindowGeometry() []byte {
	if !m.v.IsSet(keyGeometry) {
		return nil
	}
	geometry, err := base64.StdEncoding.DecodeString(m.v.GetString(keyGeometry))
	if err != nil {
		return nil
	}
	return geometry
}

func (m *Manager) SetAutoStartAtLogin(value bool) {
	m.v.Set(keyAutoStartAtLogin, value)
	m.save()
}

func (m *Manager) AutoStartAtLogin() bool {
	if !m.v.IsSet(keyAutoStartAtLogin) {
		return defaultAutoStartAtLogin
	}
	return m.v.GetBool(keyAutoStartAtLogin)
}

func (m *Manager) SetPlaySoundOnCombo(value bool) {
	m.v.Set(keyPlaySoundOnCombo, value)
	m.save()
}

func (m *Manager) PlaySoundOnCombo() bool {
	if !m.v.IsSet(keyPlaySoundOnCombo) {
		return defaultPlaySoundOnCombo
	}
	return m.v.GetBool(keyPlaySoundOnCombo)
}

// save writes the current values through to disk. Preference writes are
// best effort: an unwritable file degrades to in-memory values for the
// rest of the session rather than surfacing an error to callers.
func (m *Manager) save() {
	_ = m.v.WriteConfigAs(m.path)
}
