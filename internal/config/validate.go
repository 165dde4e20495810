package config

import (
	"fmt"
	"strings"

	"github.com/donaldgifford/javamatrix/internal/getter"
	"github.com/donaldgifford/javamatrix/internal/provider"
	"github.com/donaldgifford/javamatrix/internal/render"
)

// Validate checks the axes, providers, manual entries and output settings.
func (c *Config) Validate() error {
	if err := c.Axes.Validate(); err != nil {
		return err
	}

	for i := range c.Providers {
		if err := validateProvider(&c.Providers[i], i); err != nil {
			return err
		}
	}

	for i := range c.Manual {
		if _, err := c.Manual[i].Installer(); err != nil {
			return fmt.Errorf("manual[%d]: %w", i, err)
		}
	}

	if c.Output.Format != "" && c.Output.Format != render.FormatShell && c.Output.Format != render.FormatJSON {
		return fmt.Errorf("invalid output format %q, must be one of: %s", c.Output.Format, strings.Join(render.Formats, ", "))
	}

	return nil
}

func validateProvider(p *ProviderConfig, index int) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("providers[%d]: name is required", index)
	}

	if _, err := provider.Lookup(p.Name); err != nil {
		return fmt.Errorf("providers[%d]: %w", index, err)
	}

	if strings.TrimSpace(p.URL) == "" {
		return fmt.Errorf("providers[%d] (%s): url is required", index, p.Name)
	}

	if !strings.Contains(p.URL, getter.VersionPlaceholder) {
		return fmt.Errorf("providers[%d] (%s): url must contain %s", index, p.Name, getter.VersionPlaceholder)
	}

	for _, v := range p.Versions {
		if v <= 0 {
			return fmt.Errorf("providers[%d] (%s): invalid version %d, must be positive", index, p.Name, v)
		}
	}

	return nil
}
