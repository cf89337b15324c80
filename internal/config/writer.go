package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/os-dave/voiceplan/internal/llm"
)

// SaveGlobalLLMConfig persists the LLM provider, model and API key to the
// global config file, preserving any other settings already there.
func SaveGlobalLLMConfig(provider, model, key string) error {
	if provider == "" {
		return fmt.Errorf("provider cannot be empty")
	}
	// Key can be empty for providers like Ollama.
	if model == "" {
		model = llm.DefaultModelForProvider(provider)
	}

	configDir, err := GetGlobalConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	configFile := filepath.Join(configDir, "config.yaml")

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")

	// Read existing if any to preserve other settings.
	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		if _, statErr := os.Stat(configFile); statErr == nil {
			return err
		}
	}

	v.Set("llm.provider", provider)
	v.Set("llm.model", model)
	if key != "" {
		v.Set(fmt.Sprintf("llm.apiKeys.%s", provider), key)
	}

	if err := v.WriteConfig(); err != nil {
		return err
	}
	return os.Chmod(configFile, 0600)
}

// SaveAPIKeyForProvider saves only the API key for a specific provider
// without changing the default provider or model.
func SaveAPIKeyForProvider(provider, key string) error {
	if provider == "" {
		return fmt.Errorf("provider cannot be empty")
	}
	if key == "" {
		return fmt.Errorf("API key cannot be empty")
	}

	configDir, err := GetGlobalConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	configFile := filepath.Join(configDir, "config.yaml")

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		if _, statErr := os.Stat(configFile); statErr == nil {
			return err
		}
	}

	v.Set(fmt.Sprintf("llm.apiKeys.%s", provider), key)

	if err := v.WriteConfig(); err != nil {
		return err
	}
	return os.Chmod(configFile, 0600)
}
