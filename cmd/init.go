/*
Copyright © 2025 os-dave
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/os-dave/voiceplan/internal/config"
	"github.com/os-dave/voiceplan/internal/llm"
	"github.com/os-dave/voiceplan/internal/ui"
)

var (
	initProvider string
	initModel    string
	initAPIKey   string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Configure the LLM provider and store the settings globally",
	Long: `Init writes the LLM provider, model and API key to ~/.voiceplan/config.yaml.
When run in a terminal without --api-key, it prompts for the key.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := llm.ValidateProvider(initProvider)
		if err != nil {
			return err
		}

		model := initModel
		if model == "" {
			model = llm.DefaultModelForProvider(string(provider))
		}

		key := initAPIKey
		if key == "" && provider != llm.ProviderOllama {
			if key = config.ResolveAPIKey(provider); key == "" && ui.IsInteractive() {
				if key, err = ui.PromptAPIKey(); err != nil {
					return err
				}
			}
		}

		if err := config.SaveGlobalLLMConfig(string(provider), model, key); err != nil {
			return fmt.Errorf("save config: %w", err)
		}

		dir, _ := config.GetGlobalConfigDir()
		fmt.Println(ui.RenderSuccessPanel("voiceplan configured",
			fmt.Sprintf("provider: %s\nmodel:    %s\nconfig:   %s/config.yaml", provider, model, dir)))
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initProvider, "provider", llm.DefaultProvider, "LLM provider (openai, ollama, anthropic, gemini)")
	initCmd.Flags().StringVar(&initModel, "model", "", "model name (default depends on provider)")
	initCmd.Flags().StringVar(&initAPIKey, "api-key", "", "API key for the provider")
	rootCmd.AddCommand(initCmd)
}
