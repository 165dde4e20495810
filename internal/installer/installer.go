// Package installer defines the canonical description of one downloadable Java installer.
package installer

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// Distributions.
const (
	DistroZulu     = "zulu"
	DistroLiberica = "liberica"
	DistroNitro    = "nitro"
)

// Installer types. Only TypeJDK packaged as InstallerTarGz is ever resolved.
const (
	TypeJDK     = "jdk"
	TypeJRE     = "jre"
	TypeFXJDK   = "fx-jdk"
	TypeFXJRE   = "fx-jre"
	TypeCracJDK = "crac-jdk"
	TypeCracJRE = "crac-jre"
)

// Packaging formats.
const (
	InstallerTarGz = "tar.gz"
	InstallerMSI   = "msi"
	InstallerZip   = "zip"
	InstallerDMG   = "dmg"
	InstallerDeb   = "deb"
	InstallerRPM   = "rpm"
	InstallerAPK   = "apk"
	InstallerPkg   = "pkg"
)

// Operating systems.
const (
	OSLinux     = "linux"
	OSLinuxMusl = "linux_musl"
	OSMacOS     = "macos"
	OSWindows   = "windows"
	OSSolaris   = "solaris"
)

// Architectures.
const (
	ArchX64     = "x64"
	ArchX32     = "x32"
	ArchARM64   = "arm64"
	ArchARMHF   = "armhf"
	ArchARMEL   = "armel"
	ArchSPARC   = "sparc"
	ArchPPC64   = "ppc64"
	ArchRISCV64 = "riscv64"
)

// Vocabularies, in canonical order.
var (
	Distros        = []string{DistroZulu, DistroLiberica, DistroNitro}
	Types          = []string{TypeJDK, TypeJRE, TypeFXJDK, TypeFXJRE, TypeCracJDK, TypeCracJRE}
	InstallerTypes = []string{InstallerTarGz, InstallerMSI, InstallerZip, InstallerDMG, InstallerDeb, InstallerRPM, InstallerAPK, InstallerPkg}
	OperatingSys   = []string{OSLinux, OSLinuxMusl, OSMacOS, OSWindows, OSSolaris}
	Arches         = []string{ArchX64, ArchX32, ArchARM64, ArchARMHF, ArchARMEL, ArchSPARC, ArchPPC64, ArchRISCV64}
)

// Installer is a normalized, vocabulary-constrained installer record.
// Values are built with New and never modified afterwards.
type Installer struct {
	Distro        string  `json:"distro"`
	DownloadURL   string  `json:"download_url"`
	Name          string  `json:"name,omitempty"`
	Version       Version `json:"version"`
	Type          string  `json:"type"`
	InstallerType string  `json:"installer_type"`
	OS            string  `json:"os"`
	Arch          string  `json:"arch"`
}

// Params holds the fields New validates into an Installer.
type Params struct {
	Distro        string
	DownloadURL   string
	Name          string
	Version       Version
	Type          string
	InstallerType string
	OS            string
	Arch          string
}

// New validates p and returns the finished record.
func New(p Params) (Installer, error) {
	inst := Installer(p)

	if err := inst.Validate(); err != nil {
		return Installer{}, err
	}

	return inst, nil
}

// MustNew is New for compile-time constants; it panics on invalid input.
func MustNew(p Params) Installer {
	inst, err := New(p)
	if err != nil {
		panic(err)
	}

	return inst
}

// Validate checks every field against its vocabulary.
func (i *Installer) Validate() error {
	if err := checkVocab("distro", i.Distro, Distros); err != nil {
		return err
	}

	if err := validateURL(i.DownloadURL); err != nil {
		return err
	}

	if err := i.Version.Validate(); err != nil {
		return err
	}

	if err := checkVocab("type", i.Type, Types); err != nil {
		return err
	}

	if err := checkVocab("installer type", i.InstallerType, InstallerTypes); err != nil {
		return err
	}

	if err := checkVocab("os", i.OS, OperatingSys); err != nil {
		return err
	}

	return checkVocab("arch", i.Arch, Arches)
}

// VersionString returns "{major}.{minor}.{patch}".
func (i *Installer) VersionString() string {
	return i.Version.String()
}

func (i Installer) String() string {
	return fmt.Sprintf("%s %s %s/%s %s.%s", i.Distro, i.Version, i.OS, i.Arch, i.Type, i.InstallerType)
}

// IsValid reports whether value belongs to the vocabulary.
func IsValid(value string, vocab []string) bool {
	return slices.Contains(vocab, value)
}

func checkVocab(field, value string, vocab []string) error {
	if value == "" {
		return fmt.Errorf("installer %s is required", field)
	}

	if !IsValid(value, vocab) {
		return fmt.Errorf("invalid installer %s %q, must be one of: %s", field, value, strings.Join(vocab, ", "))
	}

	return nil
}

// validateURL rejects anything that could not be emitted inside a
// double-quoted shell string verbatim.
func validateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("installer download url is required")
	}

	if strings.ContainsAny(raw, "\"\\`$ \t\r\n") {
		return fmt.Errorf("installer download url %q contains characters unsafe for shell output", raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parsing installer download url %q: %w", raw, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("installer download url %q must be an absolute http(s) url", raw)
	}

	return nil
}
