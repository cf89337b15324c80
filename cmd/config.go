/*
Copyright © 2025 os-dave
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/os-dave/voiceplan/internal/config"
	"github.com/os-dave/voiceplan/models"
	"github.com/os-dave/voiceplan/types"
)

const envPrefix = "VOICEPLAN"

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// InitConfig reads in config file and ENV variables if set.
// Precedence: flags > env > config file > defaults.
func InitConfig() {
	// Load .env file first if present. It's okay if it doesn't exist.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if dir, err := config.GetGlobalConfigDir(); err == nil {
			viper.AddConfigPath(dir)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFile != "" {
				fmt.Fprintln(os.Stderr, "Error: Specified config file not found:", cfgFile)
			}
		} else {
			fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
		}
	}

	viper.SetDefault("store.path", config.GetStorePath())
	viper.SetDefault("prompts.templatesDir", "")

	viper.SetDefault("llm.provider", "openai")
	viper.SetDefault("llm.model", "")
	viper.SetDefault("llm.baseURL", "")

	viper.SetDefault("speech.backend", "console")
	viper.SetDefault("speech.languageCode", config.DefaultLanguageCode)
	viper.SetDefault("speech.listenSeconds", config.DefaultListenSeconds)
	viper.SetDefault("speech.recordCommand", "")

	viper.SetDefault("resolver.defaultTime", config.DefaultTimeOfDay)
	viper.SetDefault("resolver.timezone", "")

	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshaling config: %s\n", err)
		os.Exit(1)
	}

	if GlobalAppConfig.Store.Path == "" {
		GlobalAppConfig.Store.Path = viper.GetString("store.path")
	}
	if !filepath.IsAbs(GlobalAppConfig.Store.Path) && GlobalAppConfig.Store.Path != ":memory:" {
		if abs, err := filepath.Abs(GlobalAppConfig.Store.Path); err == nil {
			GlobalAppConfig.Store.Path = abs
		}
	}

	if err := models.ValidateStruct(GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration validation error: %s\n", err)
		os.Exit(1)
	}
}
