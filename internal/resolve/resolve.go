// Package resolve picks the best installer for each target tuple.
package resolve

import (
	"fmt"
	"strings"

	"github.com/donaldgifford/javamatrix/internal/catalog"
	"github.com/donaldgifford/javamatrix/internal/installer"
)

// Target is one (distro, major version, os, arch) tuple.
type Target struct {
	Distro  string `json:"distro"`
	Version int    `json:"version"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

func (t Target) String() string {
	return fmt.Sprintf("%s %d %s/%s", t.Distro, t.Version, t.OS, t.Arch)
}

// Eligible reports whether inst can serve t: same distro (ignoring case),
// major, os and arch, and a jdk packaged as tar.gz.
func (t Target) Eligible(inst *installer.Installer) bool {
	return strings.EqualFold(inst.Distro, t.Distro) &&
		inst.Version.Major == t.Version &&
		inst.OS == t.OS &&
		inst.Arch == t.Arch &&
		inst.Type == installer.TypeJDK &&
		inst.InstallerType == installer.InstallerTarGz
}

// Resolve returns the eligible installer with the highest version. Ties keep
// the earliest record in catalog order. The bool is false when nothing is
// eligible.
func Resolve(cat *catalog.Catalog, t Target) (installer.Installer, bool) {
	var (
		best  installer.Installer
		found bool
	)

	cat.Each(func(inst *installer.Installer) {
		if !t.Eligible(inst) {
			return
		}

		if !found || inst.Version.Compare(best.Version) > 0 {
			best = *inst
			found = true
		}
	})

	return best, found
}
