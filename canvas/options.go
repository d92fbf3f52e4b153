package canvas

import (
	"time"

	"github.com/dshills/termcanvas/logging"
)

// Defaults for canvas construction.
const (
	// DefaultFPS is the target frame rate when none is configured.
	DefaultFPS = 30

	// defaultJoinTimeout bounds how long Stop waits for the render
	// goroutine to exit.
	defaultJoinTimeout = 2 * time.Second

	// defaultRateWindow is the trailing window for FPS measurement.
	defaultRateWindow = 2 * time.Second
)

// Option configures a Canvas.
type Option func(*Canvas)

// WithFPS sets the target frame rate. Values below 1 fall back to the
// default.
func WithFPS(fps int) Option {
	return func(c *Canvas) {
		if fps >= 1 {
			c.frame = time.Second / time.Duration(fps)
		}
	}
}

// WithLogger sets the side channel for render-loop diagnostics.
// Defaults to a no-op logger so diagnostics never hit the screen.
func WithLogger(l *logging.Logger) Option {
	return func(c *Canvas) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithJoinTimeout bounds how long Stop waits for the render goroutine
// before restoring the cursor anyway.
func WithJoinTimeout(d time.Duration) Option {
	return func(c *Canvas) {
		if d > 0 {
			c.joinTimeout = d
		}
	}
}
