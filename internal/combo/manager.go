package combo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yamlv2 "gopkg.in/yaml.v2"

	"github.com/typefast/snip/internal/constants"
)

const fileFormatVersion = 1

type comboFile struct {
	Version int      `json:"version" yaml:"version"`
	Combos  []*Combo `json:"combos"  yaml:"combos"`
}

// Manager owns the combo list and its backing file under the config
// directory.
type Manager struct {
	path       string
	legacyPath string
	list       *List
}

func NewManager(home string) *Manager {
	dir := filepath.Join(home, constants.ConfigDir)
	return &Manager{
		path:       filepath.Join(dir, constants.ComboFile),
		legacyPath: filepath.Join(dir, constants.LegacyComboFile),
		list:       NewList(),
	}
}

func (m *Manager) List() *List {
	return m.list
}

// Load reads the combo file into the list. A missing file is not an
// error; the list starts empty. When only the old yaml file exists its
// contents are migrated to the current format and rewritten.
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		return m.loadLegacy()
	}
	if err != nil {
		return fmt.Errorf("failed to read combo file: %w", err)
	}

	var file comboFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse combo file: %w", err)
	}

	m.list = NewList(file.Combos...)
	return nil
}

func (m *Manager) loadLegacy() error {
	data, err := os.ReadFile(m.legacyPath)
	if os.IsNotExist(err) {
		m.list = NewList()
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read legacy combo file: %w", err)
	}

	var file comboFile
	if err := yamlv2.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse legacy combo file: %w", err)
	}

	for _, c := range file.Combos {
		if c.ID == "" {
			*c = *migrated(c)
		}
	}

	m.list = NewList(file.Combos...)
	if err := m.SaveToFile(); err != nil {
		return err
	}
	return os.Remove(m.legacyPath)
}

func migrated(c *Combo) *Combo {
	out := New()
	out.Name = c.Name
	out.Keyword = c.Keyword
	out.Snippet = c.Snippet
	out.Markdown = c.Markdown
	out.Enabled = c.Enabled
	if c.Created != "" {
		out.Created = c.Created
	}
	if c.Modified != "" {
		out.Modified = c.Modified
	}
	return out
}

// SaveToFile writes the list to the combo file. The returned error
// message is shown to the user verbatim, so it carries the path.
func (m *Manager) SaveToFile() error {
	file := comboFile{Version: fileFormatVersion, Combos: m.list.combos}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode the combo list: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return fmt.Errorf("could not save the combo list file %s: %w", m.path, err)
	}
	return nil
}
