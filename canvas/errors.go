package canvas

import (
	"errors"
)

// Errors returned by canvas operations. These are configuration
// errors raised synchronously at the call site; failures inside the
// render loop are reported through the logger instead.
var (
	// ErrRegionExists indicates a region id is already defined.
	ErrRegionExists = errors.New("region already defined")

	// ErrUnknownRegion indicates the region id was never defined.
	ErrUnknownRegion = errors.New("unknown region")

	// ErrAlreadyRunning indicates Start was called on a running canvas.
	ErrAlreadyRunning = errors.New("canvas already running")

	// ErrNotRunning indicates Stop was called on a stopped canvas.
	ErrNotRunning = errors.New("canvas not running")
)
