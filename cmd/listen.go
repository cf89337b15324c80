/*
Copyright © 2025 os-dave
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/os-dave/voiceplan/internal/app"
	"github.com/os-dave/voiceplan/internal/config"
	"github.com/os-dave/voiceplan/internal/logger"
	"github.com/os-dave/voiceplan/internal/speech"
	"github.com/os-dave/voiceplan/internal/ui"
	"github.com/os-dave/voiceplan/prompts"
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Interactive loop: speak (or type) to manage tasks",
	Long: `Listen runs a conversational loop. Each utterance is routed by intent:

  "add ..." / "remind me ..."    creates a task
  "find ..." / "show ..."        retrieves matching tasks
  "list"                         shows everything
  "exit"                         ends the session

With speech.backend set to "google", input comes from the microphone;
otherwise it is read from stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.SetCommand("listen")

		planner, promptCache, err := newPlanner(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = planner.Store().Close() }()

		recognizer, err := newRecognizer(cmd.Context())
		if err != nil {
			return err
		}

		stopWatch := watchPromptTemplates(cmd.Context(), promptCache)
		defer stopWatch()

		ui.RenderPageHeader("voiceplan", "Say what you need. 'exit' ends the session.")
		return runListenLoop(cmd.Context(), planner, recognizer)
	},
}

func runListenLoop(ctx context.Context, planner *app.Planner, recognizer speech.Recognizer) error {
	for {
		utterance, err := recognizer.Listen(ctx)
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		if errors.Is(err, speech.ErrNotUnderstood) {
			fmt.Println(ui.StyleSubtle.Render("Didn't catch that, try again."))
			continue
		}
		if err != nil {
			return err
		}

		logger.SetLastUtterance(utterance)
		fmt.Println(ui.StylePrefixHeard.Render("heard: ") + utterance)

		intent, rest := parseIntent(utterance)
		switch intent {
		case intentExit:
			fmt.Println(ui.StyleSubtle.Render("Bye."))
			return nil

		case intentList:
			tasks, err := planner.ListTasks()
			if err != nil {
				fmt.Println(ui.StylePrefixError.Render("error: ") + err.Error())
				continue
			}
			fmt.Print(ui.RenderTaskTable(tasks))

		case intentRetrieve:
			tasks, stmt, err := planner.RetrieveTasks(ctx, rest)
			if err != nil {
				fmt.Println(ui.StylePrefixError.Render("error: ") + err.Error())
				continue
			}
			verboseLogf("executed: %s", stmt)
			fmt.Print(ui.RenderTaskTable(tasks))

		default:
			task, err := planner.CreateTask(ctx, utterance)
			if err != nil {
				fmt.Println(ui.StylePrefixError.Render("error: ") + err.Error())
				continue
			}
			due := task.DueDate
			if due == "" {
				due = "no due date"
			}
			fmt.Println(ui.StylePrefixDone.Render("created: ") +
				fmt.Sprintf("#%d %s (%s, %s)", task.ID, task.Task, task.Timeframe, due))
		}
	}
}

type intent int

const (
	intentCreate intent = iota
	intentRetrieve
	intentList
	intentExit
)

// parseIntent routes an utterance by its leading words. Anything that isn't
// clearly a retrieval, listing or exit request is treated as a new task;
// the extractor is the judge of whether it actually is one.
func parseIntent(utterance string) (intent, string) {
	lower := strings.ToLower(strings.TrimSpace(utterance))

	switch lower {
	case "exit", "quit", "stop", "goodbye":
		return intentExit, ""
	case "list", "list tasks", "show all", "show everything":
		return intentList, ""
	}

	for _, prefix := range []string{"find ", "show ", "search ", "retrieve ", "what ", "which ", "do i have "} {
		if strings.HasPrefix(lower, prefix) {
			return intentRetrieve, strings.TrimSpace(utterance)
		}
	}

	return intentCreate, strings.TrimSpace(utterance)
}

// watchPromptTemplates watches the template override directory, if any, and
// invalidates the prompt cache when an override file changes. The next
// extraction or retrieval in the loop picks up the edit.
func watchPromptTemplates(ctx context.Context, promptCache *prompts.Cache) func() {
	dir := config.GetPromptTemplatesDir()
	if dir == "" {
		return func() {}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		verboseLogf("template watcher unavailable: %v", err)
		return func() {}
	}
	if err := watcher.Add(dir); err != nil {
		verboseLogf("watch %s: %v", dir, err)
		_ = watcher.Close()
		return func() {}
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) ||
					event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename) {
					promptCache.Invalidate()
					verboseLogf("prompt template changed, cache dropped: %s", event.Name)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				verboseLogf("template watcher: %v", err)
			}
		}
	}()

	return func() { _ = watcher.Close() }
}

func init() {
	rootCmd.AddCommand(listenCmd)
}
