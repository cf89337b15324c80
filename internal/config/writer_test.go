package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func overrideConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig := GetGlobalConfigDir
	GetGlobalConfigDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { GetGlobalConfigDir = orig })
	return dir
}

func TestSaveGlobalLLMConfig(t *testing.T) {
	dir := overrideConfigDir(t)

	if err := SaveGlobalLLMConfig("openai", "gpt-4o-mini", "sk-test"); err != nil {
		t.Fatalf("SaveGlobalLLMConfig: %v", err)
	}

	configFile := filepath.Join(dir, "config.yaml")
	info, err := os.Stat(configFile)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("config file mode = %v, want 0600", info.Mode().Perm())
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("read back config: %v", err)
	}
	if got := v.GetString("llm.provider"); got != "openai" {
		t.Errorf("llm.provider = %q", got)
	}
	if got := v.GetString("llm.model"); got != "gpt-4o-mini" {
		t.Errorf("llm.model = %q", got)
	}
	if got := v.GetString("llm.apiKeys.openai"); got != "sk-test" {
		t.Errorf("llm.apiKeys.openai = %q", got)
	}
}

func TestSaveGlobalLLMConfigPreservesOtherSettings(t *testing.T) {
	dir := overrideConfigDir(t)
	configFile := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(configFile, []byte("store:\n  path: /tmp/custom.db\n"), 0600); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	if err := SaveGlobalLLMConfig("ollama", "", ""); err != nil {
		t.Fatalf("SaveGlobalLLMConfig: %v", err)
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("read back config: %v", err)
	}
	if got := v.GetString("store.path"); got != "/tmp/custom.db" {
		t.Errorf("store.path = %q, existing setting lost", got)
	}
	if got := v.GetString("llm.provider"); got != "ollama" {
		t.Errorf("llm.provider = %q", got)
	}
	if got := v.GetString("llm.model"); got == "" {
		t.Error("llm.model is empty, want ollama default filled in")
	}
}

func TestSaveAPIKeyForProvider(t *testing.T) {
	dir := overrideConfigDir(t)

	if err := SaveAPIKeyForProvider("anthropic", "sk-ant-test"); err != nil {
		t.Fatalf("SaveAPIKeyForProvider: %v", err)
	}

	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, "config.yaml"))
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("read back config: %v", err)
	}
	if got := v.GetString("llm.apiKeys.anthropic"); got != "sk-ant-test" {
		t.Errorf("llm.apiKeys.anthropic = %q", got)
	}
	if v.IsSet("llm.provider") {
		t.Error("llm.provider was written, want untouched")
	}
}

func TestSaveGlobalLLMConfigEmptyProvider(t *testing.T) {
	overrideConfigDir(t)
	if err := SaveGlobalLLMConfig("", "", ""); err == nil {
		t.Error("expected error for empty provider")
	}
}
