package llm

import "testing"

func TestGetModel(t *testing.T) {
	if m := GetModel("gpt-4o-mini"); m == nil || m.ProviderID != ProviderOpenAI {
		t.Errorf("GetModel(gpt-4o-mini) = %+v", m)
	}
	// Alias lookup resolves to the canonical entry.
	if m := GetModel("gpt-4o-mini-2024-07-18"); m == nil || m.ID != "gpt-4o-mini" {
		t.Errorf("alias lookup = %+v", m)
	}
	if m := GetModel("no-such-model"); m != nil {
		t.Errorf("GetModel(no-such-model) = %+v, want nil", m)
	}
}

func TestGetDefaultModelID(t *testing.T) {
	tests := []struct {
		provider string
		want     string
	}{
		{ProviderOpenAI, "gpt-4o-mini-2024-07-18"}, // dated alias for API compatibility
		{ProviderAnthropic, "claude-3-5-sonnet-latest"},
		{ProviderGemini, "gemini-2.0-flash"},
		{ProviderOllama, "llama3.2"},
		{"unknown", ""},
	}
	for _, tt := range tests {
		if got := GetDefaultModelID(tt.provider); got != tt.want {
			t.Errorf("GetDefaultModelID(%q) = %q, want %q", tt.provider, got, tt.want)
		}
	}
}

func TestInferProvider(t *testing.T) {
	tests := []struct {
		model  string
		want   string
		wantOK bool
	}{
		{"gpt-4o-mini", ProviderOpenAI, true},
		{"gpt-5-preview", ProviderOpenAI, true}, // prefix fallback
		{"claude-3-5-haiku-latest", ProviderAnthropic, true},
		{"gemini-2.0-flash", ProviderGemini, true},
		{"llama3.2", ProviderOllama, true},
		{"mistral-small", ProviderOllama, true},
		{"totally-unknown", "", false},
	}
	for _, tt := range tests {
		got, ok := InferProvider(tt.model)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("InferProvider(%q) = (%q, %v), want (%q, %v)", tt.model, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestValidateProvider(t *testing.T) {
	for _, p := range []string{"openai", "ollama", "anthropic", "gemini"} {
		if _, err := ValidateProvider(p); err != nil {
			t.Errorf("ValidateProvider(%q): %v", p, err)
		}
	}
	if _, err := ValidateProvider("cohere"); err == nil {
		t.Error("ValidateProvider(cohere) succeeded, want error")
	}
}
