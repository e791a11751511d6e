package fontselect

import "errors"

// Sentinel errors for fontselect.
var (
	// ErrNotPrepared is returned when a resolver runs while the engine is
	// not loaded: no successful Prepare (or SharedEngine.Acquire) is in
	// effect.
	ErrNotPrepared = errors.New("fontselect: engine not prepared")

	// ErrNoMemory is the allocation-failure kind of engine load error.
	// Engines return it, possibly wrapped, when building their font index
	// exceeds a configured resource limit. Any other load error is the
	// generic kind.
	ErrNoMemory = errors.New("fontselect: out of memory building font index")
)
