// Package platform maps the running host onto the installer vocabulary.
package platform

import (
	"path/filepath"
	"runtime"

	"github.com/donaldgifford/javamatrix/internal/installer"
)

// Platform holds a canonical os and architecture pair.
type Platform struct {
	OS   string
	Arch string
}

var (
	systems = map[string]string{
		"linux":   installer.OSLinux,
		"darwin":  installer.OSMacOS,
		"windows": installer.OSWindows,
		"solaris": installer.OSSolaris,
		"illumos": installer.OSSolaris,
	}

	arches = map[string]string{
		"amd64":   installer.ArchX64,
		"386":     installer.ArchX32,
		"arm64":   installer.ArchARM64,
		"arm":     installer.ArchARMHF,
		"ppc64le": installer.ArchPPC64,
		"ppc64":   installer.ArchPPC64,
		"riscv64": installer.ArchRISCV64,
		"sparc64": installer.ArchSPARC,
	}
)

// muslLoader is the dynamic loader glob that marks a musl libc host.
const muslLoader = "/lib/ld-musl-*.so.1"

// Detect returns the canonical platform of the running host.
func Detect() Platform {
	return FromGo(runtime.GOOS, runtime.GOARCH, isMusl())
}

// FromGo maps a GOOS and GOARCH pair. Values with no canonical counterpart
// map to the empty string. musl only affects linux.
func FromGo(goos, goarch string, musl bool) Platform {
	p := Platform{OS: systems[goos], Arch: arches[goarch]}
	if p.OS == installer.OSLinux && musl {
		p.OS = installer.OSLinuxMusl
	}

	return p
}

func isMusl() bool {
	if runtime.GOOS != "linux" {
		return false
	}

	matches, err := filepath.Glob(muslLoader)

	return err == nil && len(matches) > 0
}
