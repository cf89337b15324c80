/*
Copyright © 2025 os-dave
*/
package main

import (
	"github.com/os-dave/voiceplan/cmd"
	"github.com/os-dave/voiceplan/internal/config"
	"github.com/os-dave/voiceplan/internal/logger"
)

func main() {
	logger.SetBasePath(config.GetCrashLogDir())
	defer logger.HandlePanic()

	cmd.Execute()
}
