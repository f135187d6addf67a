package constants

const (
	AppName = `snip`
	Version = `0.1.0`

	ConfigDir     = `/.snip/`
	PrefsFile     = `prefs`
	PrefsFileType = `yaml`

	ComboFile       = `combos.json`
	LegacyComboFile = `combos.yaml`
)
