package info_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/javamatrix/internal/catalog"
	"github.com/donaldgifford/javamatrix/internal/info"
	"github.com/donaldgifford/javamatrix/internal/installer"
	"github.com/donaldgifford/javamatrix/internal/resolve"
)

func zulu(url string, minor, patch int, typ, installerType string) installer.Installer {
	return installer.MustNew(installer.Params{
		Distro:        installer.DistroZulu,
		DownloadURL:   url,
		Version:       installer.Version{Major: 17, Minor: minor, Patch: patch},
		Type:          typ,
		InstallerType: installerType,
		OS:            installer.OSLinux,
		Arch:          installer.ArchX64,
	})
}

func sampleCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.New(
		zulu("https://example/a", 2, 1, installer.TypeJDK, installer.InstallerTarGz),
		zulu("https://example/b", 3, 0, installer.TypeJDK, installer.InstallerTarGz),
		zulu("https://example/c", 4, 0, installer.TypeJRE, installer.InstallerTarGz),
		zulu("https://example/d", 3, 0, installer.TypeJDK, installer.InstallerTarGz),
	)
	require.NoError(t, err)

	return cat
}

var target = resolve.Target{Distro: "zulu", Version: 17, OS: "linux", Arch: "x64"}

func TestExplain(t *testing.T) {
	t.Parallel()

	r := info.Explain(sampleCatalog(t), target)
	require.True(t, r.Found)
	assert.Equal(t, "https://example/b", r.Installer.DownloadURL)

	require.Len(t, r.Candidates, 4)
	assert.False(t, r.Candidates[0].Selected)
	assert.True(t, r.Candidates[1].Selected)
	assert.False(t, r.Candidates[2].Eligible)
	assert.False(t, r.Candidates[2].Selected)
	assert.True(t, r.Candidates[3].Eligible)
	assert.False(t, r.Candidates[3].Selected)
}

func TestRun_TextOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := &info.Opts{
		Catalog:      sampleCatalog(t),
		Target:       target,
		Writer:       &buf,
		OutputFormat: "text",
	}

	err := info.Run(opts)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Target:")
	assert.Contains(t, output, "zulu 17 linux/x64")
	assert.Contains(t, output, "found")
	assert.Contains(t, output, "17.3.0")
	assert.Contains(t, output, "https://example/b")
	assert.Contains(t, output, "Candidates:")
	assert.Contains(t, output, "ELIGIBLE")
}

func TestRun_TextNotFound(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := &info.Opts{
		Catalog:      sampleCatalog(t),
		Target:       resolve.Target{Distro: "liberica", Version: 7, OS: "linux_musl", Arch: "armel"},
		Writer:       &buf,
		OutputFormat: "text",
	}

	require.NoError(t, info.Run(opts))

	output := buf.String()
	assert.Contains(t, output, "does not exist")
	assert.NotContains(t, output, "Candidates:")
}

func TestRun_JSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := &info.Opts{
		Catalog:      sampleCatalog(t),
		Target:       target,
		Writer:       &buf,
		OutputFormat: "json",
	}

	err := info.Run(opts)
	require.NoError(t, err)

	var result map[string]any
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)

	assert.Equal(t, true, result["found"])

	inst, ok := result["installer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://example/b", inst["download_url"])

	candidates, ok := result["candidates"].([]any)
	require.True(t, ok)
	assert.Len(t, candidates, 4)
}

func TestRun_JSONNotFound(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := &info.Opts{
		Catalog:      sampleCatalog(t),
		Target:       resolve.Target{Distro: "nitro", Version: 21, OS: "linux", Arch: "x64"},
		Writer:       &buf,
		OutputFormat: "json",
	}

	require.NoError(t, info.Run(opts))

	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))

	assert.Equal(t, false, result["found"])
	assert.NotContains(t, result, "installer")
	assert.NotContains(t, result, "candidates")
}
