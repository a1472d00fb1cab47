package script

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// Loader handles loading scripts from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new script loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadFile loads a single script file.
func LoadFile(path string) (Script, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(FormatExtensions(), ext) {
		return Script{}, fmt.Errorf("unsupported extension: %s", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return Script{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), ext)
	}
	s.FilePath = path
	return s, nil
}

// LoadAll recursively scans and loads all script files.
// Invalid files are skipped. Returns scripts sorted by name.
func (l *Loader) LoadAll() ([]Script, error) {
	var scripts []Script

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !slices.Contains(FormatExtensions(), strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		s, err := LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		scripts = append(scripts, s)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(scripts, func(i, j int) bool {
		return scripts[i].Name < scripts[j].Name
	})
	return scripts, nil
}

// LoadByName loads a specific script by name.
func (l *Loader) LoadByName(name string) (Script, error) {
	scripts, err := l.LoadAll()
	if err != nil {
		return Script{}, err
	}
	for _, s := range scripts {
		if s.Name == name {
			return s, nil
		}
	}
	return Script{}, fmt.Errorf("script not found: %s", name)
}
