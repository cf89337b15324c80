/*
Copyright © 2025 os-dave
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/cloudwego/eino/components/model"
	"github.com/spf13/viper"

	"github.com/os-dave/voiceplan/internal/app"
	"github.com/os-dave/voiceplan/internal/config"
	"github.com/os-dave/voiceplan/internal/extract"
	"github.com/os-dave/voiceplan/internal/llm"
	"github.com/os-dave/voiceplan/internal/query"
	"github.com/os-dave/voiceplan/internal/speech"
	"github.com/os-dave/voiceplan/internal/store"
	"github.com/os-dave/voiceplan/internal/ui"
	"github.com/os-dave/voiceplan/prompts"
)

// newChatModel builds the configured chat model, prompting for an API key in
// interactive sessions when one is required but missing.
func newChatModel(ctx context.Context) (model.BaseChatModel, error) {
	cfg, err := config.LoadLLMConfig()
	if err != nil {
		return nil, err
	}

	if cfg.APIKey == "" && cfg.Provider != llm.ProviderOllama {
		if !ui.IsInteractive() {
			return nil, fmt.Errorf("no API key configured for provider %s (run 'voiceplan init')", cfg.Provider)
		}
		key, err := ui.PromptAPIKey()
		if err != nil {
			return nil, err
		}
		cfg.APIKey = key
		if err := config.SaveAPIKeyForProvider(string(cfg.Provider), key); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save API key: %v\n", err)
		}
	}

	return llm.NewChatModel(ctx, cfg)
}

// newPlanner wires the full pipeline from configuration. The returned prompt
// cache is shared by the extractor and synthesizer; long-running commands
// invalidate it when template overrides change on disk.
func newPlanner(ctx context.Context) (*app.Planner, *prompts.Cache, error) {
	chatModel, err := newChatModel(ctx)
	if err != nil {
		return nil, nil, err
	}

	st, err := store.NewTaskStore(GlobalAppConfig.Store.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open task store: %w", err)
	}

	resolver, err := config.LoadResolver()
	if err != nil {
		_ = st.Close()
		return nil, nil, err
	}

	promptCache := prompts.NewCache(config.GetPromptTemplatesDir())
	planner := app.NewPlanner(
		st,
		extract.New(chatModel, promptCache),
		resolver,
		query.New(chatModel, promptCache),
	)
	return planner, promptCache, nil
}

// newStore opens just the task store, for commands that never touch the model.
func newStore() (*store.TaskStore, error) {
	st, err := store.NewTaskStore(GlobalAppConfig.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open task store: %w", err)
	}
	return st, nil
}

// newRecognizer builds the configured speech backend.
func newRecognizer(ctx context.Context) (speech.Recognizer, error) {
	switch GlobalAppConfig.Speech.Backend {
	case "google":
		opts := []speech.GoogleOption{
			speech.WithLanguageCode(GlobalAppConfig.Speech.LanguageCode),
			speech.WithListenSeconds(GlobalAppConfig.Speech.ListenSeconds),
		}
		if cmd := GlobalAppConfig.Speech.RecordCommand; cmd != "" {
			opts = append(opts, speech.WithRecordCommand(cmd))
		}
		return speech.NewGoogleRecognizer(ctx, config.SpeechAPIKey(), opts...)
	default:
		return speech.NewConsoleRecognizer(os.Stdin, os.Stdout), nil
	}
}

func verboseLogf(format string, args ...any) {
	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
