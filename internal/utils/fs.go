// Package utils holds small filesystem helpers shared by config and the
// CLI.
package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileExists reports whether a path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates a directory (and parents) if missing.
func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0o755)
}

// LoadTOMLFile decodes a TOML file into dst.
func LoadTOMLFile(path string, dst any) error {
	if _, err := toml.DecodeFile(path, dst); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

// SaveTOMLFile encodes data as TOML at path, creating parent directories.
func SaveTOMLFile(data any, path string) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()
	return toml.NewEncoder(file).Encode(data)
}
