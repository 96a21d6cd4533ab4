package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gsingh93/gdl-parser/pkg/config"
)

func testWatchConfig(paths ...string) *config.WatchConfig {
	return &config.WatchConfig{
		Paths:            paths,
		Extensions:       []string{".kif", ".gdl"},
		DebounceInterval: 20 * time.Millisecond,
		SkipHidden:       true,
	}
}

func TestShouldProcessEvent(t *testing.T) {
	watcher, err := NewWatcher(testWatchConfig(), nil)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer watcher.watcher.Close()

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{
			name:  "kif write",
			event: fsnotify.Event{Name: "games/chess.kif", Op: fsnotify.Write},
			want:  true,
		},
		{
			name:  "gdl create uppercase extension",
			event: fsnotify.Event{Name: "games/HEX.GDL", Op: fsnotify.Create},
			want:  true,
		},
		{
			name:  "wrong extension",
			event: fsnotify.Event{Name: "games/notes.txt", Op: fsnotify.Write},
			want:  false,
		},
		{
			name:  "chmod only",
			event: fsnotify.Event{Name: "games/chess.kif", Op: fsnotify.Chmod},
			want:  false,
		},
		{
			name:  "hidden file",
			event: fsnotify.Event{Name: "games/.chess.kif", Op: fsnotify.Write},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := watcher.shouldProcessEvent(tt.event); got != tt.want {
				t.Errorf("shouldProcessEvent(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()

	watcher, err := NewWatcher(testWatchConfig(dir), nil)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}

	changes := make(chan []string, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- watcher.Watch(ctx, func(paths []string) {
			select {
			case changes <- paths:
			default:
			}
		})
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	path := filepath.Join(dir, "tictactoe.kif")
	if err := os.WriteFile(path, []byte(testSource), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	select {
	case paths := <-changes:
		if len(paths) != 1 || paths[0] != path {
			t.Errorf("expected [%s], got %v", path, paths)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("watcher never reported the change")
	}

	if err := watcher.Stop(); err != nil {
		t.Errorf("failed to stop watcher: %v", err)
	}
	if err := <-done; err != nil {
		t.Errorf("watch loop returned error: %v", err)
	}
}

func TestWatcherRejectsMissingPath(t *testing.T) {
	watcher, err := NewWatcher(testWatchConfig("/nonexistent/path"), nil)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer watcher.watcher.Close()

	if err := watcher.Watch(context.Background(), func([]string) {}); err == nil {
		t.Error("expected error for missing watch path")
	}
}
