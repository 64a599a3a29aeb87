package main

import (
	"chat-directory/console"
	"chat-directory/internal"
	"chat-directory/moderation"
	"chat-directory/repositories"
	"chat-directory/services"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes for the directory console.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
	}
	os.Exit(code)
}

// run wires configuration, logger, directory and console, then feeds the console
// from SCRIPT_PATH when set and from stdin otherwise.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Moderation, only when a blocklist is configured
	var filter services.ContentFilter
	if words := config.Blocklist(); len(words) > 0 {
		replacement, err := internal.CharacterRune(config.CharacterReplacement)
		if err != nil {
			return exitConfig, fmt.Errorf("config error: %w", err)
		}
		moderator, err := moderation.NewModerator(words, replacement, log)
		if err != nil {
			return exitConfig, fmt.Errorf("moderator initialization failed: %w", err)
		}
		filter = moderator
		log.Info("Moderation enabled", "words", len(words))
	}

	// 3. Directory
	repository := repositories.NewDirectoryRepository(log, time.Now)
	service := services.NewDirectoryService(repository, config.Limits(), filter, log)

	// 4. Input
	var in io.Reader = os.Stdin
	scripted := config.ScriptPath != ""
	if scripted {
		file, err := os.Open(config.ScriptPath)
		if err != nil {
			return exitConfig, fmt.Errorf("cannot open script %s: %w", config.ScriptPath, err)
		}
		defer file.Close()
		in = file
	}

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Directory console started", "script", config.ScriptPath, "at", time.Now().UTC())
	c := console.NewConsole(service, os.Stdout, log, config.TimeLayout, scripted)
	if err := c.Run(ctx, in); err != nil && ctx.Err() == nil {
		return exitRuntime, fmt.Errorf("console stopped: %w", err)
	}

	stats := service.Stats()
	log.Info("Directory console stopped",
		"users", stats.Users,
		"groups", stats.Groups,
		"messages", stats.Messages,
	)
	return exitOK, nil
}
