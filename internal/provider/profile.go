// Package provider normalizes vendor metadata records into canonical installers.
//
// Every vendor is described by a Profile: which raw fields carry the download
// URL, filename and version, plus four ordered rule tables that classify the
// installer type, packaging, operating system and architecture. One engine
// (Profile.Normalize) drives all of them.
package provider

import (
	"fmt"
	"slices"

	"github.com/donaldgifford/javamatrix/internal/installer"
)

// VersionFunc extracts the installer version from a raw record.
type VersionFunc func(rec Record) (installer.Version, error)

// ArrayVersion reads a [major, minor, patch, ...] array field.
func ArrayVersion(field string) VersionFunc {
	return func(rec Record) (installer.Version, error) {
		parts, err := rec.Ints(field)
		if err != nil {
			return installer.Version{}, err
		}

		if len(parts) < 3 {
			return installer.Version{}, fmt.Errorf("%w: field %q has %d components, expected 3", ErrMalformedPayload, field, len(parts))
		}

		return installer.Version{Major: parts[0], Minor: parts[1], Patch: parts[2]}, nil
	}
}

// FieldsVersion reads major, minor and patch from three numeric fields.
func FieldsVersion(major, minor, patch string) VersionFunc {
	return func(rec Record) (installer.Version, error) {
		var v installer.Version

		for _, f := range []struct {
			name string
			dst  *int
		}{
			{major, &v.Major},
			{minor, &v.Minor},
			{patch, &v.Patch},
		} {
			n, err := rec.Int(f.name)
			if err != nil {
				return installer.Version{}, err
			}

			*f.dst = n
		}

		return v, nil
	}
}

// Profile configures the normalization engine for one vendor.
type Profile struct {
	// Distro is stamped on every record produced by this profile.
	Distro string
	// URLField holds the download URL.
	URLField string
	// NameField holds the original filename.
	NameField string
	// TypeField, when set, is classified by Types instead of the filename.
	TypeField string
	// Version extracts the version.
	Version VersionFunc

	Types          Table
	InstallerTypes Table
	OS             Table
	Arches         Table
}

// Result is the outcome of normalizing one record.
type Result struct {
	// Installer is set unless Skipped.
	Installer installer.Installer
	// Skipped marks a deliberately excluded record.
	Skipped bool
	// SkipReason says which rule excluded it.
	SkipReason string
}

// Normalize maps one raw record to a canonical installer, a skip, or an error.
// It has no side effects.
func (p *Profile) Normalize(rec Record) (Result, error) {
	downloadURL, err := rec.String(p.URLField)
	if err != nil {
		return Result{}, err
	}

	name, err := rec.String(p.NameField)
	if err != nil {
		return Result{}, err
	}

	version, err := p.Version(rec)
	if err != nil {
		return Result{}, err
	}

	typeInput := name
	if p.TypeField != "" {
		if typeInput, err = rec.String(p.TypeField); err != nil {
			return Result{}, err
		}
	}

	params := installer.Params{
		Distro:      p.Distro,
		DownloadURL: downloadURL,
		Name:        name,
		Version:     version,
	}

	// Order matters: a skip in an earlier step wins over a failure in a later one.
	steps := []struct {
		field string
		table Table
		input string
		dst   *string
	}{
		{"java type (e.g. jdk or jre)", p.Types, typeInput, &params.Type},
		{"installer type (e.g. .tar.gz or .msi)", p.InstallerTypes, name, &params.InstallerType},
		{"os (e.g. linux)", p.OS, name, &params.OS},
		{"arch (e.g. x86_64)", p.Arches, name, &params.Arch},
	}

	for _, s := range steps {
		rule, ok := s.table.Lookup(s.input)
		if !ok {
			return Result{}, &ClassificationError{Distro: p.Distro, Field: s.field, Input: s.input}
		}

		if rule.Skip {
			return Result{Skipped: true, SkipReason: rule.Reason}, nil
		}

		*s.dst = rule.Value
	}

	inst, err := installer.New(params)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %v", ErrMalformedPayload, name, err)
	}

	return Result{Installer: inst}, nil
}

var profiles = map[string]*Profile{
	installer.DistroZulu:     Zulu,
	installer.DistroLiberica: Liberica,
}

// Lookup returns the profile registered under name.
func Lookup(name string) (*Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, must be one of: %v", ErrUnknownProvider, name, Names())
	}

	return p, nil
}

// Names lists the registered provider names in sorted order.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
