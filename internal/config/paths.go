// Package config centralizes configuration resolution: file locations, LLM
// settings and store paths, with Viper as the single lookup surface.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// GetGlobalConfigDir returns the path to the global configuration directory
// (~/.voiceplan). It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".voiceplan"), nil
}

// GetStorePath returns where the task database lives.
// Resolution order (first match wins):
// 1. Explicit config via "store.path" (Viper/env/flag)
// 2. XDG_DATA_HOME/voiceplan/tasks.db (if XDG_DATA_HOME is set)
// 3. Global fallback: ~/.voiceplan/tasks.db
func GetStorePath() string {
	if path := viper.GetString("store.path"); path != "" {
		return path
	}

	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "voiceplan", "tasks.db")
	}

	dir, err := GetGlobalConfigDir()
	if err != nil {
		return "tasks.db"
	}
	return filepath.Join(dir, "tasks.db")
}

// GetPromptTemplatesDir returns the directory checked for prompt template
// overrides, or empty when unset (built-in prompts are used).
func GetPromptTemplatesDir() string {
	if dir := viper.GetString("prompts.templatesDir"); dir != "" {
		return dir
	}

	dir, err := GetGlobalConfigDir()
	if err != nil {
		return ""
	}
	templates := filepath.Join(dir, "templates")
	if info, err := os.Stat(templates); err == nil && info.IsDir() {
		return templates
	}
	return ""
}

// GetCrashLogDir returns where crash reports are written.
func GetCrashLogDir() string {
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return "crash_logs"
	}
	return filepath.Join(dir, "crash_logs")
}
