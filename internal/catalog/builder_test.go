package catalog_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/donaldgifford/javamatrix/internal/catalog"
	mock_catalog "github.com/donaldgifford/javamatrix/internal/catalog/mocks"
	"github.com/donaldgifford/javamatrix/internal/installer"
	"github.com/donaldgifford/javamatrix/internal/provider"
)

// fakeFetcher serves testdata files keyed by URL and records every request.
type fakeFetcher struct {
	files    map[string]string
	requests []string
}

func (f *fakeFetcher) FetchBytes(_ context.Context, src string) ([]byte, error) {
	f.requests = append(f.requests, src)

	name, ok := f.files[src]
	if !ok {
		return nil, fmt.Errorf("GET %s: 404 not found", src)
	}

	return os.ReadFile(filepath.Join("testdata", name))
}

const (
	zuluPattern     = "https://api.azul.example/packages?java_version={{version}}"
	libericaPattern = "https://api.bell-sw.example/releases?version-feature={{version}}"
)

func newFetcher() *fakeFetcher {
	return &fakeFetcher{files: map[string]string{
		"https://api.azul.example/packages?java_version=17":       "zulu-17.json",
		"https://api.bell-sw.example/releases?version-feature=17": "liberica-17.json",
		"https://api.azul.example/packages?java_version=11":       "zulu-11-unknown-arch.json",
	}}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	fetcher := newFetcher()
	sources := []catalog.Source{
		{Profile: provider.Zulu, URL: zuluPattern, Versions: []int{17}},
		{Profile: provider.Liberica, URL: libericaPattern, Versions: []int{17}},
	}

	b := catalog.NewBuilder(fetcher, sources, catalog.Manual(), nil)

	cat, diags, err := b.Build(t.Context())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://api.azul.example/packages?java_version=17",
		"https://api.bell-sw.example/releases?version-feature=17",
	}, fetcher.requests)

	require.Len(t, diags, 2)
	assert.Equal(t, catalog.Diagnostic{
		Provider:   "zulu",
		Version:    17,
		URL:        "https://api.azul.example/packages?java_version=17",
		Fetched:    8,
		Normalized: 7,
		Skipped:    1,
	}, diags[0])
	assert.Equal(t, 8, diags[1].Fetched)
	assert.Equal(t, 6, diags[1].Normalized)
	assert.Equal(t, 2, diags[1].Skipped)

	manual := catalog.Manual()
	assert.Equal(t, 7+6+len(manual), cat.Len())

	all := cat.All()
	assert.Equal(t, "zulu17.44.53-ca-jdk17.0.8.1-linux_x64.tar.gz", all[0].Name)
	assert.Equal(t, "17.0.8", all[0].VersionString())
	assert.Equal(t, installer.DistroLiberica, all[7].Distro)
	assert.Equal(t, manual, all[len(all)-len(manual):])
}

func TestBuild_ProviderVersionOrder(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{files: map[string]string{
		"https://api.azul.example/packages?java_version=17":       "zulu-17.json",
		"https://api.azul.example/packages?java_version=21":       "zulu-17.json",
		"https://api.bell-sw.example/releases?version-feature=17": "liberica-17.json",
	}}

	sources := []catalog.Source{
		{Profile: provider.Zulu, URL: zuluPattern, Versions: []int{21, 17}},
		{Profile: provider.Liberica, URL: libericaPattern, Versions: []int{17}},
	}

	_, diags, err := catalog.NewBuilder(fetcher, sources, nil, nil).Build(t.Context())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://api.azul.example/packages?java_version=21",
		"https://api.azul.example/packages?java_version=17",
		"https://api.bell-sw.example/releases?version-feature=17",
	}, fetcher.requests)
	require.Len(t, diags, 3)
	assert.Equal(t, 21, diags[0].Version)
}

func TestBuild_TransportFailure(t *testing.T) {
	t.Parallel()

	sources := []catalog.Source{
		{Profile: provider.Zulu, URL: zuluPattern, Versions: []int{17, 8}},
	}

	cat, diags, err := catalog.NewBuilder(newFetcher(), sources, catalog.Manual(), nil).Build(t.Context())
	require.ErrorIs(t, err, catalog.ErrTransport)
	assert.Contains(t, err.Error(), "fetching zulu 8")
	assert.Nil(t, cat)
	assert.Nil(t, diags)
}

func TestBuild_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	fetcher := mock_catalog.NewMockFetcher(ctrl)

	// Any further fetch fails the test as an unexpected call.
	fetcher.EXPECT().
		FetchBytes(gomock.Any(), "https://api.azul.example/packages?java_version=17").
		Return(nil, errors.New("connection reset")).
		Times(1)

	sources := []catalog.Source{
		{Profile: provider.Zulu, URL: zuluPattern, Versions: []int{17, 11}},
		{Profile: provider.Liberica, URL: libericaPattern, Versions: []int{17}},
	}

	_, _, err := catalog.NewBuilder(fetcher, sources, catalog.Manual(), nil).Build(t.Context())
	require.ErrorIs(t, err, catalog.ErrTransport)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestBuild_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	fetcher := newFetcher()
	sources := []catalog.Source{
		{Profile: provider.Zulu, URL: zuluPattern, Versions: []int{17}},
	}

	_, _, err := catalog.NewBuilder(fetcher, sources, nil, nil).Build(ctx)
	require.ErrorIs(t, err, catalog.ErrTransport)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, fetcher.requests)
}

func TestBuild_ClassificationFailure(t *testing.T) {
	t.Parallel()

	sources := []catalog.Source{
		{Profile: provider.Zulu, URL: zuluPattern, Versions: []int{11}},
	}

	cat, _, err := catalog.NewBuilder(newFetcher(), sources, nil, nil).Build(t.Context())
	require.ErrorIs(t, err, provider.ErrClassification)
	assert.Nil(t, cat)

	var classErr *provider.ClassificationError
	require.ErrorAs(t, err, &classErr)
	assert.Equal(t, "zulu11.68.17-ca-jdk11.0.21-linux_s390x.tar.gz", classErr.Input)
}

func TestBuild_MalformedPayload(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{"not": "an array"}`), 0o644))

	fetcher := fetchFunc(func(_ context.Context, _ string) ([]byte, error) {
		return os.ReadFile(filepath.Join(dir, "broken.json"))
	})

	sources := []catalog.Source{
		{Profile: provider.Liberica, URL: libericaPattern, Versions: []int{17}},
	}

	_, _, err := catalog.NewBuilder(fetcher, sources, nil, nil).Build(t.Context())
	require.ErrorIs(t, err, provider.ErrMalformedPayload)
	assert.False(t, errors.Is(err, catalog.ErrTransport))
}

func TestBuild_InvalidManual(t *testing.T) {
	t.Parallel()

	bad := installer.Installer{Distro: "temurin"}

	_, _, err := catalog.NewBuilder(newFetcher(), nil, []installer.Installer{bad}, nil).Build(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "adding manual installers")
}

type fetchFunc func(ctx context.Context, src string) ([]byte, error)

func (f fetchFunc) FetchBytes(ctx context.Context, src string) ([]byte, error) {
	return f(ctx, src)
}
