package dev

import (
	"path/filepath"

	"github.com/sitewinder-dev/sitewinder/internal/config"
)

// CollectWatchPaths returns a deduplicated list of watch paths for the
// project: the static dir plus everything listed under dev.watch.
func CollectWatchPaths(cfg *config.Config) []string {
	projectDir := cfg.Dir()
	paths := []string{
		cfg.StaticPath(),
		filepath.Join(projectDir, "main.go"),
	}
	for _, p := range cfg.Dev.Watch {
		paths = append(paths, resolvePath(projectDir, p))
	}

	unique := make([]string, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		clean := filepath.Clean(p)
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		unique = append(unique, clean)
	}
	return unique
}

func resolvePath(projectDir, path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(projectDir, path)
}
