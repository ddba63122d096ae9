// Copyright (c) 2026 Confstore Team
// Confstore - YAML configuration store
// This source code is licensed under the MIT license found in the LICENSE file.

// Package confstore implements a small YAML-backed configuration store: a
// flat map of top-level keys loaded from a file, mutated through Get, Set
// and Fold, and written back out with Persist. Host programs embed it as a
// library; it brings no CLI, no environment-variable surface, and no schema
// validation of its own.
//
// The store remembers an input path and an output path as plain struct
// fields, so persisted files contain only user keys. Typed getters provide
// best-effort coercion of YAML scalars, and BindFlagSet/BindCommand let an
// external flag parser fold parsed flags straight into the store.
package confstore
