/*
Package main implements the snatch analysis server and CLI application.

Snatch answers "steal" queries from the Snatch word game: take a word,
add one or more letters (possibly merging in a second word), and
rearrange them into a new valid word. The engine finds every such steal
or merge for a query word against a fixed dictionary, and annotates each
result with a validity judgment: a result that is just an inflection or
compound of its inputs is flagged rather than hidden.

It can operate as a msgpack IPC server for integration with UIs, or as
an interactive CLI for testing and exploring.

# Usage

Start the server with default settings:

	snatch

Use a custom data directory and enable debug mode:

	snatch -data /path/to/data -d

Run in CLI mode for interactive queries:

	snatch -c -limit 100

The data directory should contain dictionary.txt (a newline-delimited
uppercase word list) and optionally etymology.json (a word -> tag list
table produced by the Wiktionary extraction pipeline). Both are loaded
fully at startup; the engine performs no I/O afterwards.

# Configuration

Runtime configuration is managed through a TOML file:

	[server]
	max_results = 200
	max_word_len = 24

	[data]
	dictionary_file = "dictionary.txt"
	etymology_file = "etymology.json"

	[cli]
	default_limit = 200
	show_invalid = true

The config file is automatically created with defaults if it doesn't
exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. A steal
request names a command and a word:

	{"id": "req1", "cmd": "steals_from", "w": "PLANE"}

and receives annotated results ordered valid-first:

	{"id": "req1", "s": [{"w": "LANE", "a": "P"}, {"w": "PLAN", "a": "E"}], "c": 2, "t": 145}

Commands: steals_from, steals_to, merge, merge_with, check, health.
Merge responses carry a truncation flag when the result cap cut the
search short.

# Engine

The core search functionality is provided by the snatch package, which
implements letter-multiset subset scans over the dictionary with
etymology-aware validity classification.

	engine := snatch.NewEngine(dict, etymology)
	steals := engine.FindStealsFrom("PLANE")

The engine is immutable after construction and safe for concurrent
queries. The two merge searches accept a context and can be cancelled
mid-scan; they are the expensive operations, quadratic in the candidate
count.

# Command Line Flags

The following flags control application behavior:

	-data string
	    Directory containing dictionary.txt and etymology.json (default "data/")
	-config string
	    Custom config file path
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Result cap for merge searches (default from config)
	-show-invalid
	    Include same-root results in CLI output

The application resolves data and config paths relative to the
executable location, supporting both development and production
deployments.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/wordsnatch/snatch/internal/cli"
	applog "github.com/wordsnatch/snatch/internal/logger"
	"github.com/wordsnatch/snatch/internal/utils"
	"github.com/wordsnatch/snatch/pkg/config"
	"github.com/wordsnatch/snatch/pkg/dictionary"
	"github.com/wordsnatch/snatch/pkg/server"
	"github.com/wordsnatch/snatch/pkg/snatch"
)

const (
	Version = "0.3.0"
	AppName = "snatch"
	gh      = "https://github.com/wordsnatch/snatch"
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

// main wires the loaders, engine, and either the CLI or the IPC server.
// It manages only the flow; the logic lives in the other packages.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dataDir := flag.String("data", "data/", "Directory containing the dictionary and etymology files")
	configPathFlag := flag.String("config", "", "Custom config file path")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and exploring")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Result cap for merge searches")
	showInvalid := flag.Bool("show-invalid", defaults.CLI.ShowInvalid, "Include same-root (invalid) results in CLI output")

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

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	appConfig, activeConfigPath, err := config.LoadConfigWithPriority(*configPathFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activeConfigPath))

	resolvedDataDir, err := pathResolver.GetDataDir(*dataDir)
	if err != nil {
		log.Fatalf("Failed to resolve data dir: (%v)", err)
	}
	log.Debugf("Using data dir at: %s", resolvedDataDir)

	dict, err := dictionary.LoadWordList(filepath.Join(resolvedDataDir, appConfig.Data.DictionaryFile))
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}

	// A missing etymology table is fine: classification falls back to
	// the affix heuristics.
	etymology := map[string][]string{}
	etymPath := filepath.Join(resolvedDataDir, appConfig.Data.EtymologyFile)
	if utils.FileExists(etymPath) {
		etymology, err = dictionary.LoadEtymology(etymPath)
		if err != nil {
			log.Warnf("Failed to load etymology table: %v. Running without it...", err)
			etymology = map[string][]string{}
		}
	} else {
		log.Warnf("No etymology table at %s, relying on affix heuristics only", etymPath)
	}

	engine := snatch.NewEngine(dict, etymology)

	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:", "limit", *limit, "showInvalid", *showInvalid)

		inputHandler := cli.NewInputHandler(engine, *limit, *showInvalid)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(engine, appConfig)

	showStartupInfo(resolvedDataDir, dict.Len())

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// printVersion displays a styled version banner.
func printVersion() {
	logger := applog.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ Snatch ] Finds every steal in the word game!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dataDir string, wordCount int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("==========")
	println("  Snatch  ")
	println("==========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("dictionary: %d words", wordCount)
	log.Infof("data dir: ( %s )", dataDir)
	log.Info("status: ready")
	println("==========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
