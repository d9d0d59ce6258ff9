package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"impractical.co/vitae"
	"impractical.co/vitae/internal/config"
)

// debounce is how long to wait after the last change before rebuilding.
// Editors often write a file in several steps.
const debounce = 200 * time.Millisecond

// watchTargets returns the files a build reads, and the shell directory if
// there is one. Every change under the shell directory counts, since a shell
// template can pull in others.
func watchTargets(cfg config.Config) (files []string, shellDir string) {
	files = append(files, filepath.Clean(cfg.Content))
	for _, sheet := range cfg.Stylesheets {
		files = append(files, filepath.Join(cfg.AssetDir, sheet))
	}
	if cfg.ShellDir != "" {
		shellDir = filepath.Clean(cfg.ShellDir)
	}
	return files, shellDir
}

// relevant reports whether event changes one of files or something in
// shellDir.
func relevant(event fsnotify.Event, files []string, shellDir string) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Clean(event.Name)
	for _, file := range files {
		if name == file {
			return true
		}
	}
	return shellDir != "" && filepath.Dir(name) == shellDir
}

// watch calls rebuild whenever the inputs named in cfg change, purging the
// site's caches first, until ctx is done. Failed rebuilds are logged and the
// previous output is left in place.
func watch(ctx context.Context, cfg config.Config, site *vitae.CachedSite, rebuild func(context.Context) error) error {
	log := logFrom(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	defer watcher.Close()

	files, shellDir := watchTargets(cfg)
	dirs := map[string]struct{}{}
	for _, file := range files {
		dirs[filepath.Dir(file)] = struct{}{}
	}
	if shellDir != "" {
		dirs[shellDir] = struct{}{}
	}
	// watching directories rather than files survives editors that
	// replace the file on save
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("error watching %q: %w", dir, err)
		}
		log.DebugContext(ctx, "watching directory", "path", dir)
	}
	log.InfoContext(ctx, "watching for changes", "files", files, "shell_dir", shellDir)

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.InfoContext(ctx, "stopped watching")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event, files, shellDir) {
				continue
			}
			log.DebugContext(ctx, "input changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.ErrorContext(ctx, "watcher error", "error", err)
		case <-timer.C:
			site.Purge(ctx)
			if err := rebuild(ctx); err != nil {
				log.ErrorContext(ctx, "rebuild failed, keeping previous output", "error", err)
			}
		}
	}
}
