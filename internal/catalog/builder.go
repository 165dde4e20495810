//go:generate mockgen -destination=./mocks/fetcher.go . Fetcher

package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/donaldgifford/javamatrix/internal/getter"
	"github.com/donaldgifford/javamatrix/internal/installer"
	"github.com/donaldgifford/javamatrix/internal/provider"
)

// ErrTransport marks a failed metadata fetch. It aborts the build.
var ErrTransport = errors.New("transport failure")

// Fetcher retrieves one metadata document. *getter.Getter satisfies it.
type Fetcher interface {
	FetchBytes(ctx context.Context, src string) ([]byte, error)
}

// Source is one provider endpoint and the major versions to request from it.
type Source struct {
	Profile *provider.Profile
	// URL contains getter.VersionPlaceholder.
	URL      string
	Versions []int
}

// Diagnostic counts what one (provider, version) fetch produced.
type Diagnostic struct {
	Provider   string `json:"provider"`
	Version    int    `json:"version"`
	URL        string `json:"url"`
	Fetched    int    `json:"fetched"`
	Normalized int    `json:"normalized"`
	Skipped    int    `json:"skipped"`
}

// Builder fetches every source, normalizes the records and appends manual entries.
type Builder struct {
	fetcher Fetcher
	sources []Source
	manual  []installer.Installer
	logger  *slog.Logger
}

// NewBuilder creates a Builder. Manual installers are appended after all
// provider records, in the order given.
func NewBuilder(fetcher Fetcher, sources []Source, manual []installer.Installer, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}

	return &Builder{
		fetcher: fetcher,
		sources: sources,
		manual:  manual,
		logger:  logger,
	}
}

// Build fetches sources sequentially in configured order. Any transport,
// payload or classification error aborts the build; no partial catalog is
// returned.
func (b *Builder) Build(ctx context.Context) (*Catalog, []Diagnostic, error) {
	cat := &Catalog{}

	var diags []Diagnostic

	for _, src := range b.sources {
		for _, version := range src.Versions {
			diag, err := b.buildOne(ctx, cat, src, version)
			if err != nil {
				return nil, nil, err
			}

			diags = append(diags, diag)
		}
	}

	for i := range b.manual {
		if err := cat.Add(b.manual[i]); err != nil {
			return nil, nil, fmt.Errorf("adding manual installers: %w", err)
		}
	}

	b.logger.Debug("catalog built", "installers", cat.Len(), "manual", len(b.manual))

	return cat, diags, nil
}

func (b *Builder) buildOne(ctx context.Context, cat *Catalog, src Source, version int) (Diagnostic, error) {
	distro := src.Profile.Distro
	endpoint := getter.EndpointURL(src.URL, version)

	diag := Diagnostic{Provider: distro, Version: version, URL: endpoint}

	if err := ctx.Err(); err != nil {
		return diag, fmt.Errorf("fetching %s %d: %w: %w", distro, version, ErrTransport, err)
	}

	b.logger.Info("fetching metadata", "provider", distro, "version", version, "url", endpoint)

	data, err := b.fetcher.FetchBytes(ctx, endpoint)
	if err != nil {
		return diag, fmt.Errorf("fetching %s %d: %w: %w", distro, version, ErrTransport, err)
	}

	records, err := provider.DecodeRecords(data)
	if err != nil {
		return diag, fmt.Errorf("decoding %s %d: %w", distro, version, err)
	}

	diag.Fetched = len(records)

	for _, rec := range records {
		res, err := src.Profile.Normalize(rec)
		if err != nil {
			return diag, fmt.Errorf("normalizing %s %d: %w", distro, version, err)
		}

		if res.Skipped {
			diag.Skipped++
			b.logger.Debug("skipping record", "provider", distro, "name", rec[src.Profile.NameField], "reason", res.SkipReason)

			continue
		}

		inst := res.Installer
		if err := cat.Add(inst); err != nil {
			return diag, err
		}

		diag.Normalized++

		b.logger.Debug("normalized record",
			"provider", distro,
			"type", inst.Type,
			"version", inst.VersionString(),
			"installer", inst.InstallerType,
			"os", inst.OS,
			"arch", inst.Arch,
			"url", inst.DownloadURL,
		)
	}

	b.logger.Info("normalized metadata",
		"provider", distro,
		"version", version,
		"fetched", diag.Fetched,
		"normalized", diag.Normalized,
		"skipped", diag.Skipped,
	)

	return diag, nil
}
