// Copyright (c) 2026 Confstore Team
// Confstore - YAML configuration store
// This source code is licensed under the MIT license found in the LICENSE file.

package confstore

import "errors"

// ErrNoInputPath is returned by New when no input path is supplied.
// Construction never touches the filesystem before this check.
var ErrNoInputPath = errors.New("confstore: no input path supplied")
