// Package builder: sentinel errors. Callers branch with errors.Is;
// constructors attach context with %w wrapping.
package builder

import "errors"

// ErrTooFewNodes indicates a requested size below the allowed minimum.
var ErrTooFewNodes = errors.New("builder: size too small")

// ErrBadWeightScale indicates a negative weight scale.
var ErrBadWeightScale = errors.New("builder: negative weight scale")

// ErrConstructFailed indicates Build was given a nil constructor or a
// constructor could not complete without breaking its invariants.
var ErrConstructFailed = errors.New("builder: construction failed")
