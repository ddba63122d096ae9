// Copyright (c) 2026 Confstore Team
// Confstore - YAML configuration store
// This source code is licensed under the MIT license found in the LICENSE file.

package confstore

import (
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// BindFlagSet folds every changed flag in fs into the store, keyed by flag
// name. Flags left at their defaults are skipped so they cannot clobber
// values coming from the config file or from defaults.
func (s *Store) BindFlagSet(fs *pflag.FlagSet) {
	fs.Visit(func(f *pflag.Flag) {
		s.Set(f.Name, flagValue(f))
	})
}

// BindCommand folds the command's changed flags into the store. This is
// the cobra-facing convenience for host programs that parse flags before
// loading configuration.
func (s *Store) BindCommand(cmd *cobra.Command) {
	s.BindFlagSet(cmd.Flags())
}

// flagValue converts a pflag value to the Go type its flag declares, so
// typed getters and Unmarshal see real ints and slices instead of the
// flag's string rendering.
func flagValue(f *pflag.Flag) any {
	switch f.Value.Type() {
	case "bool":
		return cast.ToBool(f.Value.String())
	case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
		return cast.ToInt(f.Value.String())
	case "float32", "float64":
		return cast.ToFloat64(f.Value.String())
	case "duration":
		return cast.ToDuration(f.Value.String())
	default:
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			return sv.GetSlice()
		}
		return f.Value.String()
	}
}
