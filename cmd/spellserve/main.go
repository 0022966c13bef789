// Copyright 2026 The SpellServe Authors. All rights reserved.

/*
Package main implements the spell checking server and CLI application.

SpellServe provides trie-based spell checking with bounded edit-distance
suggestions, prefix completion, plain text statistics, and force-directed
relationship graph layout. It can operate as a MessagePack IPC server for
integration with editors, or as a CLI application for testing and debugging.

Two word sources feed the engine: a canonical dictionary loaded once at
startup, and a user-editable custom list (character names, invented lore
terms and the like) that can also grow and shrink at runtime. Custom words
always take priority over the dictionary.

# Usage

Start the server with default settings:

	spellserve -dict words.txt

Load a custom word list as well and enable debug mode:

	spellserve -dict words.txt -custom custom.txt -d

Run in CLI mode for interactive testing:

	spellserve -dict words.txt -c -limit 10 -maxdist 2

Word lists are plain text, one word per line; blank lines and '#' comments
are skipped. The engine is rebuilt from the lists on every startup, nothing
is persisted in between.

# Configuration

Runtime configuration is managed through a TOML file that supports boundary
caps, engine defaults, and CLI defaults:

	[server]
	max_limit = 100
	max_word_len = 255

	[spell]
	max_distance = 2
	dict_path = "dictionary.txt"
	custom_path = "custom.txt"

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Requests carry an
id, a command, and command-specific fields:

	{"id": "r1", "cmd": "check", "w": "alchemy"}
	{"id": "r2", "cmd": "suggest", "w": "alchemey", "d": 2, "l": 10}
	{"id": "r3", "cmd": "add_word", "w": "kirara"}

Suggestion responses are sorted by edit distance, ties alphabetically, and
truncated to the configured max limit at the boundary only.

# Command Line Flags

	-dict string
	    Path to the dictionary word list
	-custom string
	    Path to the custom word list
	-config string
	    Path to a custom config.toml
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Number of suggestions to return in CLI mode
	-maxdist int
	    Maximum edit distance for suggestions in CLI mode
	-no-filter
	    Disable input filtering in CLI mode
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/quillforge/spellserve/internal/cli"
	"github.com/quillforge/spellserve/internal/logger"
	"github.com/quillforge/spellserve/internal/utils"
	"github.com/quillforge/spellserve/pkg/config"
	"github.com/quillforge/spellserve/pkg/dictionary"
	"github.com/quillforge/spellserve/pkg/server"
	"github.com/quillforge/spellserve/pkg/spell"
	"github.com/quillforge/spellserve/pkg/suggest"
)

const (
	Version = "0.3.0"
	AppName = "spellserve"
	gh      = "https://github.com/quillforge/spellserve"
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

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", defaultConfig.Spell.DictPath, "Path to the dictionary word list")
	customPath := flag.String("custom", defaultConfig.Spell.CustomPath, "Path to the custom word list")
	configPath := flag.String("config", "", "Path to a custom config.toml")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of suggestions to return")
	maxDist := flag.Int("maxdist", defaultConfig.CLI.DefaultMaxDistance, "Maximum edit distance for suggestions")
	noFilter := flag.Bool("no-filter", false, "Disable input filtering (DBG only) - checks raw input (numbers, symbols, etc)")

	flag.Parse()

	if *showVersion {
		showVersionInfo()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	var appConfig *config.Config
	var activeConfigPath string
	if *configPath != "" {
		appConfig, activeConfigPath, err = config.LoadConfigWithPriority(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	} else {
		activeConfigPath, err = pathResolver.GetConfigPath("config.toml")
		if err != nil {
			log.Fatalf("Failed to determine config path: (%v)", err)
		}
		appConfig, err = config.InitConfig(activeConfigPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activeConfigPath))

	checker := spell.NewChecker()
	completer := suggest.NewCompleter()

	if words := loadWordList(pathResolver, *dictPath); words != nil {
		checker.LoadDictionary(words)
		completer.AddWords(words)
	} else {
		log.Warn("No dictionary loaded, running with an empty dictionary store...")
	}
	if words := loadWordList(pathResolver, *customPath); words != nil {
		checker.LoadCustomWords(words)
	}

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		skipFilter := *noFilter || appConfig.CLI.DefaultNoFilter
		log.Debug("Input info:",
			"maxDistance", *maxDist,
			"limit", *limit,
			"noFilter", skipFilter)

		inputHandler := cli.NewInputHandler(checker, *maxDist, *limit, skipFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(checker, completer, appConfig, activeConfigPath)

	showStartupInfo(checker)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// loadWordList resolves and loads a word list, returning nil when the file
// cannot be found or read; callers treat that as an empty source.
func loadWordList(pathResolver *utils.PathResolver, path string) []string {
	if path == "" {
		return nil
	}
	resolved, err := pathResolver.ResolveWordList(path)
	if err != nil {
		log.Warnf("Word list not found: %s", path)
		return nil
	}
	words, err := dictionary.LoadFile(resolved)
	if err != nil {
		log.Warnf("Failed to load word list %s: %v", resolved, err)
		return nil
	}
	return words
}

// showVersionInfo prints a styled version banner.
func showVersionInfo() {
	banner := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})

	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ SpellServe ] Spell checking and suggestions for your drafts!")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(checker *spell.Checker) {
	stats := checker.Stats()
	log.Debugf("%s %s", AppName, Version)
	log.Debugf("PID: %d", os.Getpid())
	log.Debugf("Stores ready: dictionary=[%d], custom=[%d]",
		stats["dictionaryWords"], stats["customWords"])
}
