// Copyright (c) 2026 Confstore Team
// Confstore - YAML configuration store
// This source code is licensed under the MIT license found in the LICENSE file.

package confstore

import (
	"fmt"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"

	"github.com/toeirei/confstore/internal/logging"
)

// Persist serializes the store's keys as a single YAML document and writes
// it to the remembered output path, overwriting any existing file. The
// in-memory state is not modified, and the input/output paths never appear
// in the output.
func (s *Store) Persist() error {
	data, err := yaml.Marshal(s.AllSettings())
	if err != nil {
		return fmt.Errorf("could not serialize config: %w", err)
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(s.outputPath)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", dir, err)
	}

	// 0600, as configuration may contain secrets
	if err := afero.WriteFile(s.fs, s.outputPath, data, 0o600); err != nil {
		return fmt.Errorf("could not write config file %s: %w", s.outputPath, err)
	}
	logging.Debugf("persisted %d keys to %s", len(s.data), s.outputPath)
	return nil
}
