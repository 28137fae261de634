package types

// StorageConfig selects the persistence backend and its file.
type StorageConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}
