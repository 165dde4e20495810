// Package config loads the javamatrix configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/javamatrix/internal/catalog"
	"github.com/donaldgifford/javamatrix/internal/installer"
	"github.com/donaldgifford/javamatrix/internal/provider"
	"github.com/donaldgifford/javamatrix/internal/resolve"
)

// Default provider endpoints.
const (
	ZuluURL     = "https://api.azul.com/metadata/v1/zulu/packages?java_version={{version}}"
	LibericaURL = "https://api.bell-sw.com/v1/liberica/releases?version-feature={{version}}"
)

// Config is the user's javamatrix configuration file.
type Config struct {
	Axes      resolve.Axes     `yaml:"axes"`
	Providers []ProviderConfig `yaml:"providers"`
	Manual    []ManualEntry    `yaml:"manual"`
	Output    OutputConfig     `yaml:"output"`
}

// ProviderConfig names a provider profile and the endpoint to fetch it from.
type ProviderConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	// Versions defaults to the version axis.
	Versions []int `yaml:"versions,omitempty"`
}

// ManualEntry declares an installer that no provider publishes.
type ManualEntry struct {
	Distro        string            `yaml:"distro"`
	URL           string            `yaml:"url"`
	Name          string            `yaml:"name,omitempty"`
	Version       installer.Version `yaml:"version"`
	Type          string            `yaml:"type"`
	InstallerType string            `yaml:"installer_type"`
	OS            string            `yaml:"os"`
	Arch          string            `yaml:"arch"`
}

// OutputConfig controls how generate writes the matrix.
type OutputConfig struct {
	Format   string `yaml:"format,omitempty"`
	Template string `yaml:"template,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Axes: resolve.DefaultAxes(),
		Providers: []ProviderConfig{
			{Name: installer.DistroZulu, URL: ZuluURL},
			{Name: installer.DistroLiberica, URL: LibericaURL},
		},
	}
}

// DefaultConfigDir returns the default configuration directory, respecting XDG_CONFIG_HOME.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "javamatrix")
	}

	home, err := homedir.Dir()
	if err != nil {
		return filepath.Join(".config", "javamatrix")
	}

	return filepath.Join(home, ".config", "javamatrix")
}

// DefaultPath returns the config file read when --config is not given.
func DefaultPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// Load reads the config from path, layered over Default. Keys absent from the
// file keep their defaults. If the file doesn't exist, it returns Default.
// A leading ~ in path is expanded.
func Load(path string) (*Config, error) {
	cfg := Default()

	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Sources resolves each configured provider to its profile.
func (c *Config) Sources() ([]catalog.Source, error) {
	sources := make([]catalog.Source, 0, len(c.Providers))

	for i := range c.Providers {
		p := &c.Providers[i]

		profile, err := provider.Lookup(p.Name)
		if err != nil {
			return nil, fmt.Errorf("providers[%d]: %w", i, err)
		}

		versions := p.Versions
		if len(versions) == 0 {
			versions = c.Axes.Versions
		}

		sources = append(sources, catalog.Source{
			Profile:  profile,
			URL:      p.URL,
			Versions: versions,
		})
	}

	return sources, nil
}

// ManualInstallers returns the built-in manual records followed by the
// configured ones.
func (c *Config) ManualInstallers() ([]installer.Installer, error) {
	out := catalog.Manual()

	for i := range c.Manual {
		inst, err := c.Manual[i].Installer()
		if err != nil {
			return nil, fmt.Errorf("manual[%d]: %w", i, err)
		}

		out = append(out, inst)
	}

	return out, nil
}

// Installer validates the entry into a canonical record.
func (m *ManualEntry) Installer() (installer.Installer, error) {
	return installer.New(installer.Params{
		Distro:        m.Distro,
		DownloadURL:   m.URL,
		Name:          m.Name,
		Version:       m.Version,
		Type:          m.Type,
		InstallerType: m.InstallerType,
		OS:            m.OS,
		Arch:          m.Arch,
	})
}

// Scoped returns a copy that only fetches what a query for distro and major
// version can use. An empty distro or zero version leaves that dimension
// unrestricted. A provider whose versions exclude version is dropped. Manual
// entries are kept.
func (c *Config) Scoped(distro string, version int) *Config {
	out := *c
	out.Providers = nil

	for _, p := range c.Providers {
		if distro != "" && !strings.EqualFold(p.Name, distro) {
			continue
		}

		if version != 0 {
			versions := p.Versions
			if len(versions) == 0 {
				versions = c.Axes.Versions
			}

			if !slices.Contains(versions, version) {
				continue
			}

			p.Versions = []int{version}
		}

		out.Providers = append(out.Providers, p)
	}

	if version != 0 {
		out.Axes.Versions = []int{version}
	}

	return &out
}
