package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/javamatrix/internal/catalog"
	"github.com/donaldgifford/javamatrix/internal/config"
	"github.com/donaldgifford/javamatrix/internal/provider"
	"github.com/donaldgifford/javamatrix/internal/resolve"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	return cfgPath
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, resolve.DefaultAxes(), cfg.Axes)
	require.Len(t, cfg.Providers, 2)
	assert.Equal(t, "zulu", cfg.Providers[0].Name)
	assert.Equal(t, "https://api.azul.com/metadata/v1/zulu/packages?java_version={{version}}", cfg.Providers[0].URL)
	assert.Equal(t, "liberica", cfg.Providers[1].Name)
	assert.Equal(t, "https://api.bell-sw.com/v1/liberica/releases?version-feature={{version}}", cfg.Providers[1].URL)
	assert.Empty(t, cfg.Manual)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	cfgPath := writeConfig(t, `
axes:
  versions: [21, 17]
  architectures: [x64, arm64]
providers:
  - name: liberica
    url: https://mirror.example/liberica?version-feature={{version}}
    versions: [21]
manual:
  - distro: zulu
    version: 8.999999.999999
    os: linux
    arch: armel
    type: jdk
    installer_type: tar.gz
    url: https://mirror.example/zulu8-armel.tar.gz
output:
  format: json
`)

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)

	// Axes not mentioned keep their defaults.
	assert.Equal(t, []string{"zulu", "liberica", "nitro"}, cfg.Axes.Distros)
	assert.Equal(t, []int{21, 17}, cfg.Axes.Versions)
	assert.Equal(t, []string{"linux", "linux_musl"}, cfg.Axes.Systems)
	assert.Equal(t, []string{"x64", "arm64"}, cfg.Axes.Architectures)

	require.Len(t, cfg.Providers, 1)
	assert.Equal(t, "liberica", cfg.Providers[0].Name)
	assert.Equal(t, []int{21}, cfg.Providers[0].Versions)

	require.Len(t, cfg.Manual, 1)
	assert.Equal(t, "8.999999.999999", cfg.Manual[0].Version.String())
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoad_NotFound(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("/nonexistent/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := config.Load(writeConfig(t, "{{invalid"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Parallel()

	_, err := config.Load(writeConfig(t, "axes:\n  systems: [freebsd]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating config")
	assert.Contains(t, err.Error(), `invalid system "freebsd"`)
}

func TestSources(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Axes.Versions = []int{21, 11}
	cfg.Providers[1].Versions = []int{17}

	sources, err := cfg.Sources()
	require.NoError(t, err)
	require.Len(t, sources, 2)

	assert.Same(t, provider.Zulu, sources[0].Profile)
	assert.Equal(t, []int{21, 11}, sources[0].Versions)
	assert.Equal(t, config.ZuluURL, sources[0].URL)

	assert.Same(t, provider.Liberica, sources[1].Profile)
	assert.Equal(t, []int{17}, sources[1].Versions)
}

func TestSources_UnknownProvider(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Providers = append(cfg.Providers, config.ProviderConfig{Name: "temurin", URL: "https://x/{{version}}"})

	_, err := cfg.Sources()
	require.ErrorIs(t, err, provider.ErrUnknownProvider)
	assert.Contains(t, err.Error(), "providers[2]")
}

func TestManualInstallers(t *testing.T) {
	t.Parallel()

	cfgPath := writeConfig(t, `
manual:
  - distro: liberica
    version: 17.999999.0
    os: linux
    arch: riscv64
    type: jdk
    installer_type: tar.gz
    url: https://mirror.example/liberica17-riscv64.tar.gz
`)

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)

	manual, err := cfg.ManualInstallers()
	require.NoError(t, err)

	builtin := catalog.Manual()
	require.Len(t, manual, len(builtin)+1)
	assert.Equal(t, builtin, manual[:len(builtin)])

	extra := manual[len(builtin)]
	assert.Equal(t, "liberica", extra.Distro)
	assert.Equal(t, 999999, extra.Version.Minor)
	assert.Equal(t, "https://mirror.example/liberica17-riscv64.tar.gz", extra.DownloadURL)
}

func TestDefaultConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	assert.Equal(t, filepath.Join("/tmp/xdg", "javamatrix"), config.DefaultConfigDir())
	assert.Equal(t, filepath.Join("/tmp/xdg", "javamatrix", "config.yaml"), config.DefaultPath())
}

func TestScoped(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Providers[1].Versions = []int{21, 17}

	scoped := cfg.Scoped("Liberica", 17)
	require.Len(t, scoped.Providers, 1)
	assert.Equal(t, "liberica", scoped.Providers[0].Name)
	assert.Equal(t, []int{17}, scoped.Providers[0].Versions)
	assert.Equal(t, []int{17}, scoped.Axes.Versions)

	// The original is untouched.
	assert.Len(t, cfg.Providers, 2)
	assert.Equal(t, []int{21, 17}, cfg.Providers[1].Versions)
	assert.Equal(t, []int{21, 17, 11, 8, 7}, cfg.Axes.Versions)

	nitro := cfg.Scoped("nitro", 0)
	assert.Empty(t, nitro.Providers)
	assert.Equal(t, cfg.Axes.Versions, nitro.Axes.Versions)

	all := cfg.Scoped("", 0)
	assert.Equal(t, cfg.Providers, all.Providers)
}

func TestScoped_VersionOutsideProvider(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Providers[1].Versions = []int{21, 17}

	// liberica is restricted to 21 and 17.
	assert.Empty(t, cfg.Scoped("liberica", 11).Providers)

	// zulu falls back to the version axis, which has 11.
	scoped := cfg.Scoped("", 11)
	require.Len(t, scoped.Providers, 1)
	assert.Equal(t, "zulu", scoped.Providers[0].Name)
	assert.Equal(t, []int{11}, scoped.Providers[0].Versions)

	assert.Empty(t, cfg.Scoped("zulu", 25).Providers)
}

func TestLoad_OtherUserHome(t *testing.T) {
	t.Parallel()

	_, err := config.Load("~someone/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}
