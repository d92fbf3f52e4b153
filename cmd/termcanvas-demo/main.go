// Package main is a demonstration client for the termcanvas library.
// It defines a handful of regions, streams content into them from
// concurrent producers, and renders everything through a single canvas.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/termcanvas/canvas"
	"github.com/dshills/termcanvas/config"
	"github.com/dshills/termcanvas/logging"
	"github.com/dshills/termcanvas/style"
	"github.com/dshills/termcanvas/term"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	ConfigPath string
	Watch      bool
	FPS        int
	Duration   time.Duration
	LogLevel   string
	LogFile    string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	logger, cleanup, err := newLogger(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer cleanup()

	cv := canvas.New(os.Stdout,
		canvas.WithFPS(opts.FPS),
		canvas.WithLogger(logger),
	)

	if err := layoutCanvas(cv, opts, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.Watch && opts.ConfigPath != "" {
		watcher, err := config.WatchFile(opts.ConfigPath, func(layout *config.Layout) {
			// Existing regions keep their state; the reload only adds
			// regions the edit introduced.
			if err := layout.ApplyNew(cv); err != nil {
				logger.Warn("layout reload: %v", err)
			}
		}, func(err error) {
			logger.Warn("layout watch: %v", err)
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to watch %s: %v\n", opts.ConfigPath, err)
			return 1
		}
		defer watcher.Close() //nolint:errcheck
	}

	if err := cv.Start(true); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to start canvas: %v\n", err)
		return 1
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	startProducers(cv, done, &wg, logger)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	var timeout <-chan time.Time
	if opts.Duration > 0 {
		timeout = time.After(opts.Duration)
	}

	select {
	case <-signals:
	case <-timeout:
	}

	close(done)
	wg.Wait()

	if err := cv.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	logger.Info("rendered at %.1f fps", cv.ActualFPS())

	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to a TOML layout file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to a TOML layout file (shorthand)")
	flag.BoolVar(&opts.Watch, "watch", false, "Reload the layout file on change")
	flag.IntVar(&opts.FPS, "fps", canvas.DefaultFPS, "Frame rate cap")
	flag.DurationVar(&opts.Duration, "duration", 0, "Exit after this long (0 runs until interrupted)")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file instead of discarding them")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "termcanvas-demo - region-based terminal rendering demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: termcanvas-demo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  termcanvas-demo                      Run with a default layout\n")
		fmt.Fprintf(os.Stderr, "  termcanvas-demo -c layout.toml       Load regions from a file\n")
		fmt.Fprintf(os.Stderr, "  termcanvas-demo -c layout.toml -watch  Reload the file on save\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("termcanvas-demo %s (%s)\n", version, commit)
		os.Exit(0)
	}

	return opts
}

// newLogger builds the demo logger. Canvas output owns the terminal,
// so logs go to a file when requested and are discarded otherwise.
func newLogger(opts options) (*logging.Logger, func(), error) {
	if opts.LogFile == "" {
		return logging.Nop(), func() {}, nil
	}
	f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(opts.LogLevel),
		Output: f,
		Prefix: "demo",
	})
	return logger, func() { _ = f.Close() }, nil
}

// layoutCanvas defines regions from the config file when one is given,
// or falls back to a built-in layout sized to the terminal.
func layoutCanvas(cv *canvas.Canvas, opts options, logger *logging.Logger) error {
	if opts.ConfigPath != "" {
		layout, err := config.Load(opts.ConfigPath)
		if err != nil {
			return err
		}
		logger.Info("loaded %d regions from %s", len(layout.Regions), opts.ConfigPath)
		return layout.Apply(cv)
	}
	return defaultLayout(cv)
}

// defaultLayout splits the terminal into a bordered log pane, a status
// line, and a pair of worker panes.
func defaultLayout(cv *canvas.Canvas) error {
	width, height := term.Size()
	half := width / 2
	paneHeight := height - 4
	if paneHeight < 3 {
		paneHeight = 3
	}

	if _, err := cv.DefineRegion("status", 0, 0, width, 1,
		canvas.WithForeground(style.ColorBlack),
		canvas.WithBackground(style.ColorCyan),
	); err != nil {
		return err
	}
	if _, err := cv.DefineRegion("log", 0, 1, half, paneHeight,
		canvas.WithBorder(),
	); err != nil {
		return err
	}
	if _, err := cv.DefineRegion("worker-a", half, 1, width-half, paneHeight/2,
		canvas.WithBorder(),
		canvas.WithForeground(style.ColorGreen),
	); err != nil {
		return err
	}
	if _, err := cv.DefineRegion("worker-b", half, 1+paneHeight/2, width-half, paneHeight-paneHeight/2,
		canvas.WithBorder(),
		canvas.WithForeground(style.ColorYellow),
	); err != nil {
		return err
	}
	return nil
}

// startProducers launches one goroutine per region, each streaming
// lines through the region façade until done closes.
func startProducers(cv *canvas.Canvas, done chan struct{}, wg *sync.WaitGroup, logger *logging.Logger) {
	regions := cv.Regions()

	produce := func(id string, interval time.Duration, line func(n int) string) {
		defer wg.Done()
		w, err := regions.Writer(id)
		if err != nil {
			logger.Warn("producer %s: %v", id, err)
			return
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for n := 1; ; n++ {
			select {
			case <-done:
				return
			case <-ticker.C:
				fmt.Fprintln(w, line(n))
			}
		}
	}

	sessions := []string{uuid.NewString()[:8], uuid.NewString()[:8]}

	wg.Add(4)
	go produce("log", 150*time.Millisecond, func(n int) string {
		return fmt.Sprintf("%s event %d from %s", time.Now().Format("15:04:05"), n, sessions[n%2])
	})
	go produce("worker-a", 250*time.Millisecond, func(n int) string {
		return fmt.Sprintf("[%s] task %d: %d%%", sessions[0], n, rand.Intn(101))
	})
	go produce("worker-b", 400*time.Millisecond, func(n int) string {
		return fmt.Sprintf("[%s] batch %d flushed", sessions[1], n)
	})
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = regions.Set("status", fmt.Sprintf(" termcanvas-demo | %.1f fps | Ctrl-C to quit", cv.ActualFPS()))
			}
		}
	}()
}
