package application

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/eugenenazirov/minigrep/internal/config"
	"github.com/eugenenazirov/minigrep/internal/search"
	"github.com/eugenenazirov/minigrep/internal/storage"
)

// ResultPrefix marks each matching line on the output stream.
const ResultPrefix = "result: "

// App encapsulates a single search run and its dependencies.
type App struct {
	cfg      config.Config
	loader   storage.Loader
	searcher search.Searcher
	logger   *zap.Logger
	out      io.Writer
}

// New initializes the application for the provided configuration.
func New(cfg config.Config, loader storage.Loader, logger *zap.Logger, out io.Writer) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &App{
		cfg:      cfg,
		loader:   loader,
		searcher: search.New(cfg.CaseSensitive),
		logger:   logger,
		out:      out,
	}
}

// WriteHeader echoes the resolved query and filename, followed by a blank line.
func WriteHeader(out io.Writer, cfg config.Config) {
	fmt.Fprintf(out, "Searching for: %s\n", cfg.Query)
	fmt.Fprintf(out, "In file: %s\n\n", cfg.Filename)
}

// Run loads the configured file, searches it and prints each match.
func (a *App) Run() error {
	contents, err := a.loader.Load(a.cfg.Filename)
	if err != nil {
		return &FileReadError{Path: a.cfg.Filename, Err: err}
	}

	a.logger.Debug("file loaded",
		zap.String("filename", a.cfg.Filename),
		zap.Int("bytes", len(contents)),
		zap.Bool("case_sensitive", a.cfg.CaseSensitive),
	)

	results := a.searcher.Search(a.cfg.Query, contents)
	for _, line := range results {
		fmt.Fprintf(a.out, "%s%s\n", ResultPrefix, line)
	}

	a.logger.Debug("search completed",
		zap.String("query", a.cfg.Query),
		zap.Int("matches", len(results)),
	)

	return nil
}
