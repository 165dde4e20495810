// Package getter wraps hashicorp/go-getter for fetching provider metadata documents.
package getter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter/v2"
)

// Getter wraps go-getter to fetch single documents over HTTP(S) or from local paths.
type Getter struct {
	client *getter.Client
	logger *slog.Logger
}

// New creates a Getter with default configuration.
func New(logger *slog.Logger) *Getter {
	if logger == nil {
		logger = slog.Default()
	}

	return &Getter{
		client: &getter.Client{
			DisableSymlinks: true,
		},
		logger: logger,
	}
}

// FetchFile downloads a single file from src to dest.
func (g *Getter) FetchFile(ctx context.Context, src, dest string) error {
	g.logger.Debug("fetching file", "src", src, "dest", dest)

	req := &getter.Request{
		Src:             src,
		Dst:             dest,
		GetMode:         getter.ModeFile,
		Copy:            true,
		DisableSymlinks: true,
	}

	_, err := g.client.Get(ctx, req)
	if err != nil {
		return fmt.Errorf("fetching file %s: %w", src, err)
	}

	return nil
}

// FetchBytes downloads src into a scratch directory and returns its contents.
// Nothing is kept on disk afterwards.
func (g *Getter) FetchBytes(ctx context.Context, src string) ([]byte, error) {
	dir, err := os.MkdirTemp("", "javamatrix-fetch-")
	if err != nil {
		return nil, fmt.Errorf("creating scratch dir: %w", err)
	}

	defer func() {
		if removeErr := os.RemoveAll(dir); removeErr != nil {
			g.logger.Warn("failed to remove scratch dir", "dir", dir, "err", removeErr)
		}
	}()

	dest := filepath.Join(dir, "document.json")
	if err := g.FetchFile(ctx, src, dest); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Clean(dest))
	if err != nil {
		return nil, fmt.Errorf("reading fetched document: %w", err)
	}

	g.logger.Debug("fetched document", "src", src, "bytes", len(data))

	return data, nil
}
