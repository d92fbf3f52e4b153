package canvas

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"sync"
	"syscall"
	"time"

	"github.com/dshills/termcanvas/logging"
	"github.com/dshills/termcanvas/metrics"
	"github.com/dshills/termcanvas/term"
)

// Canvas coordinates asynchronous rendering of named regions. All
// external mutations travel through a message queue consumed by a
// single render goroutine; that goroutine is the only writer to the
// terminal output stream and the only mutator of region content.
type Canvas struct {
	mu      sync.Mutex
	regions map[string]*Region
	running bool
	done    chan struct{}

	queue       *queue
	frame       time.Duration
	joinTimeout time.Duration

	term     *term.Terminal
	renderer *Renderer
	monitor  *metrics.RateMonitor
	logger   *logging.Logger
}

// New creates a canvas writing to the given stream. The current
// cursor position is saved once at construction and becomes the
// origin for all region coordinates.
func New(out io.Writer, opts ...Option) *Canvas {
	t := term.New(out)
	c := &Canvas{
		regions:     make(map[string]*Region),
		queue:       newQueue(),
		frame:       time.Second / DefaultFPS,
		joinTimeout: defaultJoinTimeout,
		term:        t,
		renderer:    NewRenderer(t),
		monitor:     metrics.NewRateMonitor(defaultRateWindow),
		logger:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefineRegion registers a new region. It fails if the id already
// exists. On a running canvas the region is painted without waiting
// for external content.
func (c *Canvas) DefineRegion(id string, x, y, width, height int, opts ...RegionOption) (*Region, error) {
	c.mu.Lock()
	if _, exists := c.regions[id]; exists {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: %q", ErrRegionExists, id)
	}
	reg := newRegion(id, x, y, width, height, opts...)
	c.regions[id] = reg
	running := c.running
	c.mu.Unlock()

	if running {
		c.queue.push(message{kind: msgRender, id: id})
	}
	return reg, nil
}

// Regions returns the write-facing façade for mutating region
// content from any goroutine.
func (c *Canvas) Regions() *Regions {
	return &Regions{canvas: c}
}

// Running reports whether the render goroutine is active.
func (c *Canvas) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// ActualFPS returns the measured frame rate over the trailing window.
// Diagnostics only.
func (c *Canvas) ActualFPS() float64 {
	return c.monitor.Rate()
}

// Start begins rendering. It first performs an initial render pass:
// messages enqueued before start are applied synchronously, then
// every defined region is painted in one atomic frame, so the first
// visible frame shows a fully-populated screen. If async is false the
// call blocks until the render goroutine exits or an interrupt
// triggers Stop; if true it returns immediately.
func (c *Canvas) Start(async bool) error {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return ErrAlreadyRunning
	}
	c.running = true
	done := make(chan struct{})
	c.done = done
	c.mu.Unlock()

	c.initialRender()

	go c.renderLoop(done)

	if async {
		return nil
	}

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupts)

	select {
	case <-done:
		return nil
	case <-interrupts:
		return c.Stop()
	}
}

// Stop asks the render goroutine to exit, waits a bounded time for it
// to drain, and restores the cursor to the saved origin. Messages
// enqueued before Stop are still applied and painted.
func (c *Canvas) Stop() error {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return ErrNotRunning
	}
	c.running = false
	done := c.done
	c.mu.Unlock()

	c.queue.push(message{kind: msgStop})

	select {
	case <-done:
	case <-time.After(c.joinTimeout):
		c.logger.Warn("render loop did not exit within %v", c.joinTimeout)
	}

	return c.term.RestoreOrigin()
}

// initialRender drains messages enqueued before start and paints all
// defined regions in one atomic frame. A concurrent Stop may land its
// sentinel among the pre-start messages; the sentinel is re-queued
// after the drain so the render goroutine still observes it and
// exits, letting Stop join.
func (c *Canvas) initialRender() {
	dirty := make(map[string]*Region)
	var clears []*Region
	stopped := false
	for {
		m, ok := c.queue.tryPop()
		if !ok {
			break
		}
		if c.apply(m, dirty, &clears) {
			stopped = true
		}
	}

	c.mu.Lock()
	for id, reg := range c.regions {
		dirty[id] = reg
	}
	c.mu.Unlock()

	if err := c.flushFrame(dirty, clears); err != nil {
		c.logger.Error("initial render: %v", err)
	}

	if stopped {
		c.queue.push(message{kind: msgStop})
	}
}

// renderLoop is the single consumer of the message queue. It runs on
// its own goroutine until the stop sentinel arrives.
func (c *Canvas) renderLoop(done chan struct{}) {
	defer close(done)
	for {
		m := c.queue.pop()
		if c.processFrame(m) {
			return
		}
	}
}

// processFrame applies one batch of messages and paints the resulting
// frame. A burst of rapid updates collapses into one frame: after the
// first message, every immediately available message is drained
// before painting. Returns true when the stop sentinel was seen.
// Any panic is logged and the loop continues; a single bad update
// must never take down the render goroutine.
func (c *Canvas) processFrame(first message) (stop bool) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("render frame panic: %v", r)
		}
	}()

	start := time.Now()

	dirty := make(map[string]*Region)
	var clears []*Region

	stop = c.apply(first, dirty, &clears)
	for !stop {
		m, ok := c.queue.tryPop()
		if !ok {
			break
		}
		stop = c.apply(m, dirty, &clears)
	}

	if len(dirty) > 0 || len(clears) > 0 {
		if err := c.flushFrame(dirty, clears); err != nil {
			c.logger.Error("render frame: %v", err)
		}
		c.monitor.Record()
	}

	if stop {
		return true
	}

	// Cap the loop at the configured frame rate when idle relative to
	// the target; under sustained load there is nothing left to sleep.
	if sleep := c.frame - time.Since(start); sleep > 0 {
		time.Sleep(sleep)
	}
	return false
}

// apply mutates region state for one message and tracks the dirty
// set. Messages for unknown regions are silently dropped: by the time
// a message is processed the region may have been legitimately
// removed. Returns true for the stop sentinel.
func (c *Canvas) apply(m message, dirty map[string]*Region, clears *[]*Region) bool {
	if m.kind == msgStop {
		return true
	}

	c.mu.Lock()
	reg, ok := c.regions[m.id]
	if ok && m.kind == msgDelete {
		delete(c.regions, m.id)
	}
	c.mu.Unlock()

	if !ok {
		return false
	}

	switch m.kind {
	case msgUpdate:
		reg.SetContent(m.text)
		dirty[m.id] = reg
	case msgAppend:
		reg.AppendContent(m.text)
		dirty[m.id] = reg
	case msgClear:
		reg.Clear()
		dirty[m.id] = reg
	case msgRender:
		dirty[m.id] = reg
	case msgDelete:
		delete(dirty, m.id)
		*clears = append(*clears, reg)
	}
	return false
}

// flushFrame paints every dirty region inside one synchronized-update
// envelope and flushes the output stream exactly once, so the
// terminal never displays a partially-updated frame.
func (c *Canvas) flushFrame(dirty map[string]*Region, clears []*Region) error {
	if len(dirty) == 0 && len(clears) == 0 {
		return nil
	}

	c.term.BeginSync()

	ids := make([]string, 0, len(dirty))
	for id := range dirty {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		c.renderer.PaintRegion(dirty[id])
	}
	for _, reg := range clears {
		c.renderer.PaintBlank(reg)
	}

	c.term.EndSync()
	return c.term.Flush()
}

// lookup returns a defined region or ErrUnknownRegion.
func (c *Canvas) lookup(id string) (*Region, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	reg, ok := c.regions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, id)
	}
	return reg, nil
}

// enqueueFor validates the region exists, then enqueues a message.
// The existence check fails fast on programmer errors; the render
// loop still tolerates the region vanishing before the message is
// applied.
func (c *Canvas) enqueueFor(id string, kind msgKind, text string) error {
	if _, err := c.lookup(id); err != nil {
		return err
	}
	c.queue.push(message{kind: kind, id: id, text: text})
	return nil
}
