package prompts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PromptKey is a type for identifying specific prompts.
type PromptKey string

const (
	// KeyCreateTask is the key for the task extraction prompt.
	KeyCreateTask PromptKey = "CreateTask"
	// KeyRetrieveQuery is the key for the retrieval query synthesis prompt.
	KeyRetrieveQuery PromptKey = "RetrieveQuery"
)

// promptConfig defines the default content and filename for a prompt.
type promptConfig struct {
	defaultContent string
	filename       string
}

// promptRegistry maps a PromptKey to its configuration.
var promptRegistry = map[PromptKey]promptConfig{
	KeyCreateTask: {
		defaultContent: CreateTaskSystemPrompt,
		filename:       "create_task_prompt.txt",
	},
	KeyRetrieveQuery: {
		defaultContent: RetrieveQuerySystemPrompt,
		filename:       "retrieve_query_prompt.txt",
	},
}

// Filename returns the override filename for a prompt key, or "" for an
// unknown key. Watchers use it to know which files matter.
func Filename(key PromptKey) string {
	return promptRegistry[key].filename
}

// GetPrompt searches for a user-provided prompt file in the configured
// templates directory. If found, it returns the content of that file.
// Otherwise it returns the hardcoded default prompt content.
func GetPrompt(key PromptKey, templatesDir string) (string, error) {
	config, ok := promptRegistry[key]
	if !ok {
		return "", fmt.Errorf("unrecognized prompt key: %s", key)
	}

	// If templatesDir is not configured or is empty, always use default.
	if strings.TrimSpace(templatesDir) == "" {
		return config.defaultContent, nil
	}

	customPromptPath := filepath.Join(templatesDir, config.filename)

	if _, err := os.Stat(customPromptPath); err == nil {
		content, readErr := os.ReadFile(customPromptPath)
		if readErr != nil {
			return "", fmt.Errorf("failed to read custom prompt file at %s: %w", customPromptPath, readErr)
		}
		return string(content), nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("error checking for custom prompt file at %s: %w", customPromptPath, err)
	}

	return config.defaultContent, nil
}
