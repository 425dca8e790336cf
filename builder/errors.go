// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors for the builder package.
// AI-HINT (file):
//   - Branch with errors.Is; context is attached with pkg/errors at the
//     constructor that failed.

package builder

import "github.com/pkg/errors"

// ErrTooFewVertices indicates a size parameter below the constructor's
// minimum (ring smaller than 3, empty chain, bridge shorter than allowed).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrOptionViolation indicates a parameter outside the constructor's domain
// that is not a size, such as an unknown PlatonicName.
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrConstructFailed indicates a nil Constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
