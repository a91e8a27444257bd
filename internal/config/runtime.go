package config

import (
	"os"
	"path/filepath"
)

func GetRuntimePath() string {
	path := os.Getenv("JARVIS_RUNTIME_PATH")
	if path == "" {
		path = ".jarvisbot"
	}
	return resolveRuntimePath(path)
}

// resolveRuntimePath anchors a relative runtime path at the home directory
// so the same default works from any working directory.
func resolveRuntimePath(path string) string {
	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
