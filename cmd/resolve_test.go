package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/javamatrix/internal/platform"
	"github.com/donaldgifford/javamatrix/internal/resolve"
)

func TestParseTarget(t *testing.T) {
	t.Parallel()

	host := platform.Platform{OS: "macos", Arch: "arm64"}

	tests := []struct {
		name string
		args []string
		want resolve.Target
	}{
		{"full tuple", []string{"Zulu", "17", "linux_musl", "x64"}, resolve.Target{Distro: "zulu", Version: 17, OS: "linux_musl", Arch: "x64"}},
		{"host os and arch", []string{"liberica", "21"}, resolve.Target{Distro: "liberica", Version: 21, OS: "macos", Arch: "arm64"}},
		{"host arch", []string{"nitro", "11", "linux"}, resolve.Target{Distro: "nitro", Version: 11, OS: "linux", Arch: "arm64"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseTarget(tt.args, host)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTarget_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"non-numeric version", []string{"zulu", "seventeen", "linux", "x64"}, `invalid version "seventeen"`},
		{"zero version", []string{"zulu", "0", "linux", "x64"}, `invalid version "0"`},
		{"unknown distro", []string{"temurin", "17", "linux", "x64"}, `invalid distro "temurin"`},
		{"unknown os", []string{"zulu", "17", "freebsd", "x64"}, `invalid os "freebsd"`},
		{"unknown arch", []string{"zulu", "17", "linux", "amd64"}, `invalid arch "amd64"`},
		{"undetected host", []string{"zulu", "17"}, `invalid os ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := parseTarget(tt.args, platform.Platform{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestResolveCmd_Args(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"distro only", []string{"zulu"}, true},
		{"host os and arch", []string{"zulu", "17"}, false},
		{"host arch", []string{"zulu", "17", "linux"}, false},
		{"full tuple", []string{"zulu", "17", "linux", "x64"}, false},
		{"too many", []string{"zulu", "17", "linux", "x64", "extra"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := resolveCmd.Args(resolveCmd, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}
