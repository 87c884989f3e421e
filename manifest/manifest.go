// Package manifest handles frame.toml deployment configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/chazu/frameisa/isa"
)

// Manifest represents a frame.toml deployment configuration.
type Manifest struct {
	Project Project       `toml:"project"`
	Store   StoreConfig   `toml:"store"`
	Catalog CatalogConfig `toml:"catalog"`

	// Dir is the directory containing the frame.toml file (set at load time).
	Dir string `toml:"-"`
}

// Project contains project metadata.
type Project struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// StoreConfig configures the program store location.
type StoreConfig struct {
	Path string `toml:"path"`
}

// CatalogConfig declares deployment-local display names for code points
// outside the built-in catalogs. Keys are hex code strings ("0F00"),
// values are names. The core codec is unaffected; only tool output changes.
type CatalogConfig struct {
	Actions  map[string]string `toml:"actions"`
	Subjects map[string]string `toml:"subjects"`
}

// Catalog is the compiled form of CatalogConfig, usable as an isa.Namer.
type Catalog struct {
	actions  map[isa.Action]string
	subjects map[isa.Subject]string
}

// ActionName implements isa.Namer.
func (c *Catalog) ActionName(a isa.Action) (string, bool) {
	name, ok := c.actions[a]
	return name, ok
}

// SubjectName implements isa.Namer.
func (c *Catalog) SubjectName(s isa.Subject) (string, bool) {
	name, ok := c.subjects[s]
	return name, ok
}

// Load parses a frame.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "frame.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	// Defaults
	if m.Store.Path == "" {
		m.Store.Path = "frame.db"
	}

	return &m, nil
}

// FindAndLoad walks up from startDir to find a frame.toml file, then loads
// and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "frame.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// StorePath returns the absolute path of the configured program store.
func (m *Manifest) StorePath() string {
	if filepath.IsAbs(m.Store.Path) {
		return m.Store.Path
	}
	return filepath.Join(m.Dir, m.Store.Path)
}

// CompileCatalog parses the catalog's hex keys into code lookups. A key
// that does not parse as a 16-bit hex value is an error.
func (m *Manifest) CompileCatalog() (*Catalog, error) {
	c := &Catalog{
		actions:  make(map[isa.Action]string, len(m.Catalog.Actions)),
		subjects: make(map[isa.Subject]string, len(m.Catalog.Subjects)),
	}

	for key, name := range m.Catalog.Actions {
		v, err := strconv.ParseUint(key, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("catalog action key %q: %w", key, err)
		}
		c.actions[isa.Action(v)] = name
	}
	for key, name := range m.Catalog.Subjects {
		v, err := strconv.ParseUint(key, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("catalog subject key %q: %w", key, err)
		}
		c.subjects[isa.Subject(v)] = name
	}
	return c, nil
}
