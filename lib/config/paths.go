package config

import (
	"fmt"
	"os"
	"path/filepath"

	yaml "github.com/goccy/go-yaml"
)

// CfgPath is a file path from the config. Relative paths are resolved
// against the directory of the config file.
type CfgPath string

// UnmarshalBase is the directory relative paths are joined to. Parse sets it
// before decoding.
var UnmarshalBase string

func (c *CfgPath) UnmarshalYAML(b []byte) error {
	var path string

	err := yaml.Unmarshal(b, &path)
	if err != nil {
		return err
	}

	if path == "" || filepath.IsAbs(path) {
		*c = CfgPath(path)
	} else {
		*c = CfgPath(filepath.Join(UnmarshalBase, path))
	}
	return nil
}

// Read returns the contents of the file at c.
func (c CfgPath) Read() (string, error) {
	b, err := os.ReadFile(string(c))
	if err != nil {
		return "", fmt.Errorf("could not read %s: %w", c, err)
	}
	return string(b), nil
}
