// Copyright (c) 2026 Confstore Team
// Confstore - YAML configuration store
// This source code is licensed under the MIT license found in the LICENSE file.

package confstore

import (
	"sort"

	"github.com/spf13/afero"

	"github.com/toeirei/confstore/util/mapst"
)

// Store holds configuration state: a flat map of top-level keys to YAML
// values (scalars, sequences, nested mappings), plus the remembered input
// and output paths. The paths live outside the key map, so Persist never
// has to filter internal entries out of the payload.
//
// A Store is not safe for concurrent use; callers sharing one across
// goroutines must serialize access externally.
type Store struct {
	data       map[string]any
	inputPath  string
	outputPath string
	fs         afero.Fs
}

// Option configures a Store during New.
type Option func(*Store)

// WithOutputPath sets a write destination distinct from the input path.
func WithOutputPath(path string) Option {
	return func(s *Store) { s.outputPath = path }
}

// WithDefaults seeds the store with key/value pairs before the input file
// is loaded. Keys redefined by the file overwrite these defaults.
func WithDefaults(defaults map[string]any) Option {
	return func(s *Store) {
		mapst.Each(defaults, func(k string, v any) { s.data[k] = v })
	}
}

// WithFs replaces the filesystem used for all file I/O. Tests use this to
// run against an in-memory filesystem.
func WithFs(fs afero.Fs) Option {
	return func(s *Store) { s.fs = fs }
}

// New creates a store, applies any options, and loads the file at
// inputPath. The output path falls back to inputPath unless overridden
// with WithOutputPath.
//
// Failures are returned, not fatal: ErrNoInputPath when inputPath is
// empty, otherwise whatever Load reports. The caller decides whether to
// abort.
func New(inputPath string, opts ...Option) (*Store, error) {
	if inputPath == "" {
		return nil, ErrNoInputPath
	}
	s := &Store{
		data:      make(map[string]any),
		inputPath: inputPath,
		fs:        afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.outputPath == "" {
		s.outputPath = s.inputPath
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the value bound to key, or nil when the key is unbound.
// There is no path traversal: a nested mapping stored at key comes back
// whole.
func (s *Store) Get(key string) any {
	return s.data[key]
}

// Has reports whether key is bound.
func (s *Store) Has(key string) bool {
	_, ok := s.data[key]
	return ok
}

// Set binds key to value, fully replacing any prior binding.
func (s *Store) Set(key string, value any) {
	s.data[key] = value
}

// Fold merges data into the store: every key in data overwrites the
// store's binding for that key. Keys absent from data are untouched, so
// Fold never removes anything.
func (s *Store) Fold(data map[string]any) {
	mapst.Each(data, func(k string, v any) { s.data[k] = v })
}

// Len returns the number of top-level keys.
func (s *Store) Len() int {
	return len(s.data)
}

// AllKeys returns the store's top-level keys in sorted order.
func (s *Store) AllKeys() []string {
	keys := mapst.Keys(s.data)
	sort.Strings(keys)
	return keys
}

// AllSettings returns a shallow copy of the store's key map. Mutating the
// returned map does not affect the store; nested values are shared.
func (s *Store) AllSettings() map[string]any {
	return mapst.Clone(s.data)
}

// InputPath returns the remembered input path.
func (s *Store) InputPath() string {
	return s.inputPath
}

// OutputPath returns the remembered output path.
func (s *Store) OutputPath() string {
	return s.outputPath
}
