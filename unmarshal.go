// Copyright (c) 2026 Confstore Team
// Confstore - YAML configuration store
// This source code is licensed under the MIT license found in the LICENSE file.

package confstore

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Unmarshal decodes the store's settings into target, which must be a
// pointer to a struct. Fields match on the yaml tag, then the field name.
// Decoding is weakly typed, so YAML scalars convert to the target field's
// type where a sensible conversion exists.
func (s *Store) Unmarshal(target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("could not build decoder: %w", err)
	}
	if err := dec.Decode(s.AllSettings()); err != nil {
		return fmt.Errorf("could not unmarshal config: %w", err)
	}
	return nil
}
