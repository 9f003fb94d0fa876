package dev

import (
	"path/filepath"

	"github.com/vango-dev/starter/internal/config"
)

// CollectWatchPaths returns the deduplicated directories to watch: the
// static directory plus every dev.watch entry, resolved against projectDir.
func CollectWatchPaths(projectDir string, cfg *config.Config) []string {
	paths := append([]string{cfg.Server.StaticDir}, cfg.Dev.Watch...)

	unique := make([]string, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		if path == "" {
			continue
		}
		clean := filepath.Clean(resolvePath(projectDir, path))
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		unique = append(unique, clean)
	}

	return unique
}

func resolvePath(projectDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(projectDir, path)
}
