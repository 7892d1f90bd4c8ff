package share

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/yaoapp/kun/log"
)

var watchOp = map[fsnotify.Op]string{
	fsnotify.Create: "create",
	fsnotify.Write:  "write",
	fsnotify.Remove: "remove",
	fsnotify.Rename: "rename",
	fsnotify.Chmod:  "chmod",
}

// Watch calls cb for every change of the file until ctx is done.
// The directory is watched so editors replacing the file are still seen.
func Watch(ctx context.Context, file string, cb func(op string, file string)) error {
	if ctx.Err() != nil {
		return nil
	}

	file, err := filepath.Abs(file)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return fmt.Errorf("watch %s: %w", file, err)
	}

	fmt.Println(color.GreenString("Watching: %s", file))
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != file {
				continue
			}
			for op, name := range watchOp {
				if event.Has(op) {
					cb(name, event.Name)
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("[watch] %s: %s", file, err.Error())

		case <-ctx.Done():
			fmt.Println(color.GreenString("Stop Watching: %s", file))
			return nil
		}
	}
}
