package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/os-dave/voiceplan/internal/llm"
)

// LoadLLMConfig loads LLM configuration from Viper and environment variables.
// Precedence: explicit Viper config > environment variables > defaults.
// It does NOT handle interactive prompts (that belongs in the CLI layer).
func LoadLLMConfig() (llm.Config, error) {
	// Model first: a recognized model name pins the provider, so
	// llm.model: claude-3-5-haiku-latest works without touching llm.provider.
	model := viper.GetString("llm.model")

	provider := ""
	if model != "" {
		if inferred, ok := llm.InferProviderFromModel(model); ok {
			provider = inferred
		}
	}
	if provider == "" {
		provider = viper.GetString("llm.provider")
	}
	if provider == "" {
		provider = llm.DefaultProvider
	}

	llmProvider, err := llm.ValidateProvider(provider)
	if err != nil {
		return llm.Config{}, fmt.Errorf("invalid provider: %w", err)
	}

	if model == "" {
		model = llm.DefaultModelForProvider(string(llmProvider))
	}

	// Missing keys are not an error here; Ollama needs none and interactive
	// mode may ask for one later.
	apiKey := ResolveAPIKey(llmProvider)

	baseURL := viper.GetString("llm.baseURL")
	if baseURL == "" && llmProvider == llm.ProviderOllama {
		baseURL = llm.DefaultOllamaURL
	}

	return llm.Config{
		Provider: llmProvider,
		Model:    model,
		APIKey:   apiKey,
		BaseURL:  baseURL,
	}, nil
}

// ResolveAPIKey returns the best API key for the given provider using
// per-provider config keys, then provider-specific env vars.
func ResolveAPIKey(provider llm.Provider) string {
	if viper.IsSet(fmt.Sprintf("llm.apiKeys.%s", provider)) {
		if key := strings.TrimSpace(viper.GetString(fmt.Sprintf("llm.apiKeys.%s", provider))); key != "" {
			return key
		}
	}
	return providerEnvKey(provider)
}

func providerEnvKey(provider llm.Provider) string {
	switch provider {
	case llm.ProviderOpenAI:
		return strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	case llm.ProviderAnthropic:
		return strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	case llm.ProviderGemini:
		key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
		if key == "" {
			key = strings.TrimSpace(os.Getenv("GOOGLE_API_KEY"))
		}
		return key
	default:
		return ""
	}
}

// SpeechAPIKey returns the key used for the speech-to-text service, falling
// back to the Google env vars the speech API accepts.
func SpeechAPIKey() string {
	if key := strings.TrimSpace(viper.GetString("speech.apiKey")); key != "" {
		return key
	}
	return strings.TrimSpace(os.Getenv("GOOGLE_API_KEY"))
}
