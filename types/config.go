/*
Copyright © 2025 os-dave
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose  bool           `mapstructure:"verbose"`
	Config   string         `mapstructure:"config"`
	Store    StoreConfig    `mapstructure:"store" validate:"required"`
	Prompts  PromptsConfig  `mapstructure:"prompts"`
	LLM      LLMConfig      `mapstructure:"llm" validate:"omitempty"`
	Speech   SpeechConfig   `mapstructure:"speech" validate:"omitempty"`
	Resolver ResolverConfig `mapstructure:"resolver" validate:"omitempty"`
}

// StoreConfig holds task database settings
type StoreConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// PromptsConfig holds prompt template override settings
type PromptsConfig struct {
	TemplatesDir string `mapstructure:"templatesDir"`
}

// LLMConfig holds configuration for LLM integration
type LLMConfig struct {
	Provider string `mapstructure:"provider" validate:"omitempty,oneof=openai ollama anthropic gemini"`
	Model    string `mapstructure:"model" validate:"omitempty,min=1"`
	BaseURL  string `mapstructure:"baseURL" validate:"omitempty,url"`
}

// SpeechConfig holds speech-to-text settings
type SpeechConfig struct {
	// Backend selects the input source: "google" for the Speech-to-Text
	// API, "console" for typed input.
	Backend       string `mapstructure:"backend" validate:"omitempty,oneof=google console"`
	LanguageCode  string `mapstructure:"languageCode"`
	ListenSeconds int    `mapstructure:"listenSeconds" validate:"omitempty,min=1,max=60"`
	RecordCommand string `mapstructure:"recordCommand"`
}

// ResolverConfig holds due date resolution settings
type ResolverConfig struct {
	// DefaultTime is the HH:MM clock time assumed when the user gave a
	// date but no time of day.
	DefaultTime string `mapstructure:"defaultTime"`
	Timezone    string `mapstructure:"timezone"`
}
