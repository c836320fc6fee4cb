package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlContentFile is the top-level YAML structure for catalog files.
// A single file may carry any combination of sections; LoadDir merges
// all files in a directory.
type yamlContentFile struct {
	Items     []*Item    `yaml:"items"`
	Monsters  []*Monster `yaml:"monsters"`
	Locations []string   `yaml:"locations"`
}

// LoadDir loads every YAML file in dir and builds a catalog from the
// merged content.
//
// Precondition: dir must be a readable directory containing at least
// one .yaml/.yml file.
// Postcondition: Returns a validated catalog or a non-nil error.
func LoadDir(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading catalog directory %s: %w", dir, err)
	}

	var (
		items     []*Item
		monsters  []*Monster
		locations []string
		seen      int
	)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading catalog file %s: %w", name, err)
		}
		file, err := parseContent(data)
		if err != nil {
			return nil, fmt.Errorf("parsing catalog file %s: %w", name, err)
		}
		items = append(items, file.Items...)
		monsters = append(monsters, file.Monsters...)
		locations = append(locations, file.Locations...)
		seen++
	}
	if seen == 0 {
		return nil, fmt.Errorf("no catalog files found in %s", dir)
	}

	return New(items, monsters, locations)
}

// parseContent decodes a catalog YAML document, rejecting unknown keys
// so content typos fail loudly at startup.
func parseContent(data []byte) (*yamlContentFile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file yamlContentFile
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return &file, nil
		}
		return nil, err
	}
	return &file, nil
}
