package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// layoutFile is the on-disk shape accepted by ReadLayout. JSON documents are
// valid YAML, so both formats decode through yaml.v3.
type layoutFile struct {
	Layout [][]int `yaml:"layout"`
}

// ReadLayout loads a board layout of marker codes from a YAML or JSON file.
// The file may hold either {"layout": [[...]]} or a bare 2D array.
func ReadLayout(path string) ([][]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout file: %w", err)
	}

	var wrapped layoutFile
	if err := yaml.Unmarshal(data, &wrapped); err == nil && len(wrapped.Layout) > 0 {
		return wrapped.Layout, nil
	}

	var bare [][]int
	if err := yaml.Unmarshal(data, &bare); err != nil {
		return nil, fmt.Errorf("parse layout file %s: %w", path, err)
	}
	if len(bare) == 0 {
		return nil, fmt.Errorf("layout file %s holds no rows", path)
	}

	return bare, nil
}
