// Package generate orchestrates the javamatrix generate workflow: build the
// catalog, resolve every tuple and render the fragment.
package generate

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/donaldgifford/javamatrix/internal/catalog"
	"github.com/donaldgifford/javamatrix/internal/config"
	"github.com/donaldgifford/javamatrix/internal/getter"
	"github.com/donaldgifford/javamatrix/internal/render"
	"github.com/donaldgifford/javamatrix/internal/resolve"
)

// Opts holds the options for the generate command.
type Opts struct {
	// Config supplies axes, providers and manual entries. Nil means config.Default.
	Config *config.Config

	// Fetcher retrieves provider documents. Nil means a go-getter backed fetcher.
	Fetcher catalog.Fetcher

	// OutputPath is the file to write. If empty, output goes to Writer.
	OutputPath string

	// Writer receives the output when OutputPath is empty.
	Writer io.Writer

	// Format overrides the configured output format.
	Format string

	// Template overrides the configured shell template path.
	Template string

	// Logger for debug output.
	Logger *slog.Logger
}

// Result holds the output of a successful generate run.
type Result struct {
	Installers  int
	Diagnostics []catalog.Diagnostic
	Stats       resolve.Stats
	OutputPath  string
}

// Run executes the generate workflow. Nothing is written unless every step
// succeeds.
func Run(ctx context.Context, opts *Opts) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	cat, diags, err := BuildCatalog(ctx, cfg, opts.Fetcher, logger)
	if err != nil {
		return nil, err
	}

	matrix := resolve.Build(cat, cfg.Axes)
	stats := matrix.Stats()

	for _, t := range matrix.Missing() {
		logger.Debug("no installer found", "target", t.String())
	}

	logger.Info("resolved matrix", "tuples", stats.Total, "found", stats.Found, "missing", stats.Missing)

	format := firstNonEmpty(opts.Format, cfg.Output.Format, render.FormatShell)
	tmplPath := firstNonEmpty(opts.Template, cfg.Output.Template)

	var buf bytes.Buffer
	if err := render.Write(&buf, matrix, format, tmplPath); err != nil {
		return nil, err
	}

	if err := writeOutput(opts, buf.Bytes()); err != nil {
		return nil, err
	}

	return &Result{
		Installers:  cat.Len(),
		Diagnostics: diags,
		Stats:       stats,
		OutputPath:  opts.OutputPath,
	}, nil
}

// BuildCatalog fetches and normalizes every configured provider, then appends
// the manual installers.
func BuildCatalog(ctx context.Context, cfg *config.Config, fetcher catalog.Fetcher, logger *slog.Logger) (*catalog.Catalog, []catalog.Diagnostic, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if fetcher == nil {
		fetcher = getter.New(logger)
	}

	sources, err := cfg.Sources()
	if err != nil {
		return nil, nil, fmt.Errorf("resolving providers: %w", err)
	}

	manual, err := cfg.ManualInstallers()
	if err != nil {
		return nil, nil, fmt.Errorf("loading manual installers: %w", err)
	}

	cat, diags, err := catalog.NewBuilder(fetcher, sources, manual, logger).Build(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("building catalog: %w", err)
	}

	return cat, diags, nil
}

func writeOutput(opts *Opts, data []byte) error {
	if opts.OutputPath == "" {
		w := opts.Writer
		if w == nil {
			w = os.Stdout
		}

		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}

		return nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.OutputPath), 0o750); err != nil {
		return fmt.Errorf("creating directory for %s: %w", opts.OutputPath, err)
	}

	if err := os.WriteFile(opts.OutputPath, data, 0o644); err != nil { //nolint:gosec // generated fragment is meant to be world-readable
		return fmt.Errorf("writing %s: %w", opts.OutputPath, err)
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
