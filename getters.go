// Copyright (c) 2026 Confstore Team
// Confstore - YAML configuration store
// This source code is licensed under the MIT license found in the LICENSE file.

package confstore

import (
	"time"

	"github.com/spf13/cast"
)

// Typed getters coerce the stored value best-effort and return the zero
// value when the key is unbound or the value cannot be coerced.

// GetString returns the value bound to key as a string.
func (s *Store) GetString(key string) string {
	return cast.ToString(s.Get(key))
}

// GetBool returns the value bound to key as a bool.
func (s *Store) GetBool(key string) bool {
	return cast.ToBool(s.Get(key))
}

// GetInt returns the value bound to key as an int.
func (s *Store) GetInt(key string) int {
	return cast.ToInt(s.Get(key))
}

// GetInt64 returns the value bound to key as an int64.
func (s *Store) GetInt64(key string) int64 {
	return cast.ToInt64(s.Get(key))
}

// GetFloat64 returns the value bound to key as a float64.
func (s *Store) GetFloat64(key string) float64 {
	return cast.ToFloat64(s.Get(key))
}

// GetDuration returns the value bound to key as a time.Duration.
func (s *Store) GetDuration(key string) time.Duration {
	return cast.ToDuration(s.Get(key))
}

// GetStringSlice returns the value bound to key as a []string.
func (s *Store) GetStringSlice(key string) []string {
	return cast.ToStringSlice(s.Get(key))
}

// GetIntSlice returns the value bound to key as a []int.
func (s *Store) GetIntSlice(key string) []int {
	return cast.ToIntSlice(s.Get(key))
}

// GetStringMap returns the value bound to key as a map[string]any.
func (s *Store) GetStringMap(key string) map[string]any {
	return cast.ToStringMap(s.Get(key))
}

// GetStringMapString returns the value bound to key as a map[string]string.
func (s *Store) GetStringMapString(key string) map[string]string {
	return cast.ToStringMapString(s.Get(key))
}
