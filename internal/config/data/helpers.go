// Package data provides the configuration file types and their YAML persistence.
package data

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnsureFullPath creates the parent directories of path.
func EnsureFullPath(path string, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), perm); err != nil {
		return fmt.Errorf("failed to create full path for %q: %w", path, err)
	}
	return nil
}

// SaveYAML writes v to path with two-space indentation.
// The file is replaced through a rename so readers never see a partial write.
func SaveYAML(path string, v any) error {
	if err := EnsureFullPath(path, 0700); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write YAML file %q: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace YAML file %q: %w", path, err)
	}

	return nil
}

// LoadYAML decodes the file at path into v. An empty file leaves v untouched.
func LoadYAML(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read YAML file %q: %w", path, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := yaml.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to unmarshal YAML from %q: %w", path, err)
	}

	return nil
}

// LoadYAMLIfExists is LoadYAML where a missing file is not an error.
func LoadYAMLIfExists(path string, v any) error {
	err := LoadYAML(path, v)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
