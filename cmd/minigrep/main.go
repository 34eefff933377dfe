package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/minigrep/internal/application"
	"github.com/eugenenazirov/minigrep/internal/config"
	"github.com/eugenenazirov/minigrep/internal/logging"
	"github.com/eugenenazirov/minigrep/internal/storage"
)

const programName = "minigrep"

var version = "dev"

var osExit = os.Exit

func main() {
	osExit(run(os.Args[1:], os.LookupEnv, os.Stdout, os.Stderr))
}

// run executes one search and returns the process exit code.
func run(args []string, lookup config.LookupFunc, stdout, stderr io.Writer) int {
	kingpinApp := kingpin.New(programName, "Print the lines of a file that contain a query string. Set CASE_INSENSITIVE to ignore case.")
	kingpinApp.Version(version)
	kingpinApp.UsageWriter(stderr)
	kingpinApp.ErrorWriter(stderr)
	kingpinApp.Terminate(osExit)
	kingpinApp.Interspersed(false)
	kingpin.EnableFileExpansion = false

	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	ignoreCase := kingpinApp.Flag("ignore-case", "Match without regard to case").Short('i').Bool()
	logLevel := kingpinApp.Flag("log-level", "Diagnostic log level (debug, info, warn, error)").String()
	logFile := kingpinApp.Flag("log-file", "Also write diagnostic logs to this rotated file").String()
	positional := kingpinApp.Arg("args", "<query> <filename>; use -- before a query starting with '-'").Strings()

	if _, err := kingpinApp.Parse(args); err != nil {
		fmt.Fprintf(stderr, "Problem parsing arguments: %v\n", err)
		return 1
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
		IgnoreCase: *ignoreCase,
		Lookup:     lookup,
	}

	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	if *logFile != "" {
		overrides.LogFile = logFile
	}

	cfg, err := config.Load(append([]string{programName}, rawPositionals(args, len(*positional))...), overrides)
	if err != nil {
		fmt.Fprintf(stderr, "Problem parsing arguments: %v\n", err)
		return 1
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile, Stderr: stderr})
	if err != nil {
		fmt.Fprintf(stderr, "Problem parsing arguments: %v\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Debug("configuration resolved",
		zap.String("query", cfg.Query),
		zap.String("filename", cfg.Filename),
		zap.Bool("case_sensitive", cfg.CaseSensitive),
	)

	application.WriteHeader(stdout, cfg)

	app := application.New(cfg, storage.NewFileLoader(), logger, stdout)
	if err := app.Run(); err != nil {
		logger.Debug("search failed", zap.Error(err))
		fmt.Fprintf(stderr, "Application Error: %v\n", err)
		return 1
	}

	return 0
}

// rawPositionals returns the last n arguments as typed. Flag parsing stops at
// the first positional, so those are exactly the positionals kingpin saw, but
// kingpin reports a bare "-" as an empty value.
func rawPositionals(args []string, n int) []string {
	if n > len(args) {
		n = len(args)
	}
	return args[len(args)-n:]
}
