package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/zeebo/blake3"
)

// Watch calls onChange with the file's content once at start and again
// whenever a filesystem event changes it. Events that leave the content
// hash unchanged are dropped, and a read error is only reported again once
// the file has been readable in between. It blocks until ctx is done.
//
// The parent directory is watched rather than the file, so editors that
// save by rename keep being followed.
func Watch(ctx context.Context, path string, onChange func([]byte, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	var (
		last   [32]byte
		loaded bool
		failed bool
	)
	check := func() {
		data, err := os.ReadFile(target)
		if err != nil {
			if !failed {
				failed, loaded = true, false
				onChange(nil, err)
			}
			return
		}
		failed = false
		sum := blake3.Sum256(data)
		if loaded && sum == last {
			return
		}
		loaded, last = true, sum
		onChange(data, nil)
	}

	check()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || event.Op == fsnotify.Chmod {
				continue
			}
			check()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onChange(nil, fmt.Errorf("watch %s: %w", path, err))
		}
	}
}
