package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.toml")
	if err := os.WriteFile(path, []byte(validLayout), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan *Layout, 1)
	w, err := WatchFile(path, func(l *Layout) {
		select {
		case reloaded <- l:
		default:
		}
	}, nil)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close() //nolint:errcheck

	updated := validLayout + `
[[regions]]
id = "extra"
x = 0
y = 13
width = 10
height = 2
`
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case layout := <-reloaded:
		if len(layout.Regions) != 3 {
			t.Errorf("reloaded regions = %d, want 3", len(layout.Regions))
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
}

func TestWatcherParseFailureKeepsHandlerSilent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.toml")
	if err := os.WriteFile(path, []byte(validLayout), 0o644); err != nil {
		t.Fatal(err)
	}

	reloads := make(chan *Layout, 1)
	failures := make(chan error, 1)
	w, err := WatchFile(path, func(l *Layout) {
		select {
		case reloads <- l:
		default:
		}
	}, func(err error) {
		select {
		case failures <- err:
		default:
		}
	})
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close() //nolint:errcheck

	if err := os.WriteFile(path, []byte("fps = ["), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-failures:
	case l := <-reloads:
		t.Fatalf("handler should not run on parse failure, got %+v", l)
	case <-time.After(5 * time.Second):
		t.Fatal("no error report after bad write")
	}
}

func TestWatcherDoubleClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.toml")
	if err := os.WriteFile(path, []byte(validLayout), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := WatchFile(path, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := w.Close(); err != ErrWatcherClosed {
		t.Errorf("second close = %v, want ErrWatcherClosed", err)
	}
}
