// Copyright (c) 2026 Confstore Team
// Confstore - YAML configuration store
// This source code is licensed under the MIT license found in the LICENSE file.

package confstore

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"

	"github.com/toeirei/confstore/internal/logging"
)

// Load reads and parses the configuration file. An optional path argument
// replaces the store's remembered input path before reading.
//
// The file is filtered line by line before parsing: document separator
// lines (three or more leading hyphens), comment lines (leading '#') and
// blank lines are dropped, and the remainder is parsed as one YAML
// document. Because separators are stripped, multi-document files collapse
// into a single document. The parsed mapping is folded into the store,
// last write wins; keys absent from the file are never removed.
func (s *Store) Load(path ...string) error {
	if len(path) > 0 && path[0] != "" {
		s.inputPath = path[0]
	}
	raw, err := afero.ReadFile(s.fs, s.inputPath)
	if err != nil {
		return fmt.Errorf("could not read config file %s: %w", s.inputPath, err)
	}
	doc := filterDocument(string(raw))
	if strings.TrimSpace(doc) == "" {
		logging.Debugf("config file %s empty after filtering, nothing to fold", s.inputPath)
		return nil
	}
	parsed := make(map[string]any)
	if err := yaml.Unmarshal([]byte(doc), &parsed); err != nil {
		return fmt.Errorf("could not parse config file %s: %w", s.inputPath, err)
	}
	s.Fold(parsed)
	logging.Debugf("loaded %d keys from %s", len(parsed), s.inputPath)
	return nil
}

// filterDocument drops separator, comment and blank lines so that files
// carrying '---' markers or annotations still parse as one document.
func filterDocument(raw string) string {
	var b strings.Builder
	for _, line := range strings.Split(raw, "\n") {
		switch {
		case strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "#"):
		case strings.TrimSpace(line) == "":
		default:
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
