package llm

import "strings"

// Model represents a chat model definition including provider metadata.
// This is the single source of truth for all model information.
type Model struct {
	ID         string   // Canonical model ID (e.g., "gpt-4o-mini")
	Provider   string   // Provider display name (e.g., "OpenAI")
	ProviderID string   // Internal provider ID (e.g., "openai")
	Aliases    []string // Alternative IDs including dated versions
	IsDefault  bool     // Whether this is the default model for its provider
}

// ModelRegistry is the single source of truth for all supported models.
// Add new models here - everything else derives from this registry.
var ModelRegistry = []Model{
	// OpenAI
	{
		ID:         "gpt-4o-mini",
		Provider:   "OpenAI",
		ProviderID: ProviderOpenAI,
		Aliases:    []string{"gpt-4o-mini-2024-07-18"},
		IsDefault:  true,
	},
	{
		ID:         "gpt-4o",
		Provider:   "OpenAI",
		ProviderID: ProviderOpenAI,
		Aliases:    []string{"gpt-4o-2024-08-06"},
	},
	{
		ID:         "gpt-4.1-mini",
		Provider:   "OpenAI",
		ProviderID: ProviderOpenAI,
		Aliases:    []string{"gpt-4.1-mini-2025-04-14"},
	},

	// Anthropic
	{
		ID:         "claude-3-5-sonnet-latest",
		Provider:   "Anthropic",
		ProviderID: ProviderAnthropic,
		Aliases:    []string{"claude-3-5-sonnet-20241022"},
		IsDefault:  true,
	},
	{
		ID:         "claude-3-5-haiku-latest",
		Provider:   "Anthropic",
		ProviderID: ProviderAnthropic,
		Aliases:    []string{"claude-3-5-haiku-20241022"},
	},

	// Google Gemini
	{
		ID:         "gemini-2.0-flash",
		Provider:   "Google",
		ProviderID: ProviderGemini,
		IsDefault:  true,
	},
	{
		ID:         "gemini-1.5-flash",
		Provider:   "Google",
		ProviderID: ProviderGemini,
	},

	// Ollama (local)
	{
		ID:         "llama3.2",
		Provider:   "Ollama",
		ProviderID: ProviderOllama,
		IsDefault:  true,
	},
	{
		ID:         "mistral",
		Provider:   "Ollama",
		ProviderID: ProviderOllama,
	},
}

// GetModel looks up a model by canonical ID or alias.
func GetModel(modelID string) *Model {
	for i := range ModelRegistry {
		m := &ModelRegistry[i]
		if m.ID == modelID {
			return m
		}
		for _, alias := range m.Aliases {
			if alias == modelID {
				return m
			}
		}
	}
	return nil
}

// GetDefaultModel returns the default model for a provider, or nil.
func GetDefaultModel(providerID string) *Model {
	for i := range ModelRegistry {
		if ModelRegistry[i].ProviderID == providerID && ModelRegistry[i].IsDefault {
			return &ModelRegistry[i]
		}
	}
	return nil
}

// GetDefaultModelID returns the default model ID for a provider.
func GetDefaultModelID(providerID string) string {
	m := GetDefaultModel(providerID)
	if m != nil {
		// Return the dated version for OpenAI (API compatibility)
		if providerID == ProviderOpenAI && len(m.Aliases) > 0 {
			return m.Aliases[0]
		}
		return m.ID
	}
	return ""
}

// InferProvider attempts to determine the provider from a model name.
// Returns the provider ID and true if inference succeeded.
func InferProvider(modelID string) (string, bool) {
	// Check model registry first (most accurate)
	if m := GetModel(modelID); m != nil {
		return m.ProviderID, true
	}

	// Fallback to prefix-based inference for unknown models
	switch {
	case hasPrefix(modelID, "gpt-"), hasPrefix(modelID, "o1-"), hasPrefix(modelID, "o3-"):
		return ProviderOpenAI, true
	case hasPrefix(modelID, "claude-"):
		return ProviderAnthropic, true
	case hasPrefix(modelID, "gemini-"):
		return ProviderGemini, true
	case hasPrefix(modelID, "llama"), hasPrefix(modelID, "mistral"), hasPrefix(modelID, "phi"):
		return ProviderOllama, true
	}

	return "", false
}

func hasPrefix(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), prefix)
}
