package core

import "errors"

var (
	// ErrAssetShapeMismatch reports a geometry buffer that is empty or has a
	// malformed attribute layout.
	ErrAssetShapeMismatch = errors.New("asset shape mismatch")
	// ErrTooManyTargets reports more morph targets than a mode supports.
	ErrTooManyTargets = errors.New("too many morph targets")
	// ErrUnknownMode reports a mode name missing from the registry.
	ErrUnknownMode = errors.New("unknown mode")
	// ErrInvalidParameter reports a parameter key a mode does not recognise.
	ErrInvalidParameter = errors.New("invalid parameter")
)
