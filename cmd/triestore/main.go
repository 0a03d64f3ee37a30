// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main runs the triestore word and phrase completion server, or an
interactive CLI over the same store.

triestore keeps two independent prefix trees, one for single words and one
for phrases, and answers exact searches and lexicographically ordered
completions over them.

# Usage

Start the msgpack IPC server with default settings:

	triestore

Load a dictionary file and enable debug logging:

	triestore -preset phrases.txt -d

Run the CLI for interactive testing:

	triestore -c -limit 10

# Configuration

Runtime configuration lives in a TOML file, created with defaults on first
run at [UserConfigDir]/triestore/config.toml:

	[server]
	default_limit = 20
	max_limit = 64
	max_query = 120

	[store]
	cache_size = 512
	enable_cache = true

	[preset]
	path = ""
	load_default = false

	[cli]
	default_limit = 20

# Command Line Flags

	-config string
	    Path to a config file
	-preset string
	    Dictionary file (.txt, .toml, .msgpack) loaded at startup
	-sample
	    Load the built-in sample phrases at startup
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Number of suggestions to return in CLI mode
	-no-filter
	    Disable CLI input filtering
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/triestore/internal/cli"
	"github.com/bastiangx/triestore/internal/utils"
	"github.com/bastiangx/triestore/pkg/config"
	"github.com/bastiangx/triestore/pkg/dictionary"
	"github.com/bastiangx/triestore/pkg/server"
	"github.com/bastiangx/triestore/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0-beta"
	AppName = "triestore"
	gh      = "https://github.com/bastiangx/triestore"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, store and the chosen front end. It does not implement
// logic for them and only manages the flow.
func main() {
	sigHandler()
	log.SetOutput(os.Stderr)

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a config file")
	presetPath := flag.String("preset", "", "Dictionary file (.txt, .toml, .msgpack) loaded at startup")
	loadSample := flag.Bool("sample", false, "Load the built-in sample phrases at startup")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", 0, "Number of suggestions to return in CLI mode (default from config)")
	noFilter := flag.Bool("no-filter", false, "Disable CLI input filtering (DBG only)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, usedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(usedPath))

	store := suggest.NewCachedStore(appConfig.CacheSize())
	log.Debug("Store init done", "cacheSize", appConfig.CacheSize())

	if *presetPath == "" {
		*presetPath = appConfig.Preset.Path
	}
	if *presetPath != "" {
		if err := loadPresetFile(store, *presetPath); err != nil {
			log.Fatalf("Failed to load preset: %v", err)
		}
	}
	if *loadSample || appConfig.Preset.LoadDefault {
		loaded := store.LoadPreset(dictionary.DefaultPhrases())
		log.Debugf("Loaded %d sample phrases", loaded)
	}

	// CLI would be mainly used for testing and dbg purposes.
	if *cliMode {
		log.SetReportTimestamp(false)
		cliLimit := *limit
		if cliLimit <= 0 {
			cliLimit = appConfig.CLI.DefaultLimit
		}
		log.Debug("Input info:", "limit", cliLimit, "noFilter", *noFilter)

		inputHandler := cli.NewInputHandler(store, cliLimit, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(store, appConfig)
	showStartupInfo(store.Stats())

	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// loadPresetFile resolves a dictionary path and loads it into the store.
func loadPresetFile(store *suggest.Store, path string) error {
	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		return fmt.Errorf("failed to initialize path resolver: %w", err)
	}
	resolved, err := pathResolver.ResolvePresetPath(path)
	if err != nil {
		log.Debug("Path resolution", "info", pathResolver.GetRuntimeInfo())
		return fmt.Errorf("preset %s: %w", path, err)
	}
	dict, err := dictionary.Load(resolved)
	if err != nil {
		return err
	}
	words, phrases := dict.Apply(store)
	log.Debugf("Loaded preset %s: %d words, %d phrases", resolved, words, phrases)
	return nil
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ triestore ] Word and phrase completion over prefix trees")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(stats suggest.Stats) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	fmt.Fprintln(os.Stderr, "===========")
	fmt.Fprintln(os.Stderr, " triestore ")
	fmt.Fprintln(os.Stderr, "===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Info("store", "words", stats.TotalWords, "phrases", stats.TotalPhrases, "nodes", stats.TotalNodes)
	log.Info("status: ready")
	fmt.Fprintln(os.Stderr, "===========")
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
