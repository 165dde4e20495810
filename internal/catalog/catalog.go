// Package catalog assembles the flat list of canonical installers that the
// resolver selects from.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/donaldgifford/javamatrix/internal/installer"
)

// Catalog is an ordered, append-only collection of validated installers.
// Order is insertion order and is significant for tie-breaking.
type Catalog struct {
	installers []installer.Installer
}

// New builds a catalog from already-constructed installers.
func New(items ...installer.Installer) (*Catalog, error) {
	c := &Catalog{installers: make([]installer.Installer, 0, len(items))}

	for i := range items {
		if err := c.Add(items[i]); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Add validates inst and appends it. Duplicates are kept.
func (c *Catalog) Add(inst installer.Installer) error {
	if err := inst.Validate(); err != nil {
		return fmt.Errorf("adding %s to catalog: %w", inst.Name, err)
	}

	c.installers = append(c.installers, inst)

	return nil
}

// Len returns the number of installers.
func (c *Catalog) Len() int {
	return len(c.installers)
}

// All returns a copy of every installer in catalog order.
func (c *Catalog) All() []installer.Installer {
	return slices.Clone(c.installers)
}

// Each calls fn for every installer in catalog order.
func (c *Catalog) Each(fn func(inst *installer.Installer)) {
	for i := range c.installers {
		inst := c.installers[i]
		fn(&inst)
	}
}

// Filter selects installers by field. Empty fields and a zero Major match anything.
type Filter struct {
	Distro string
	Major  int
	Type   string
	OS     string
	Arch   string
}

// Matches reports whether inst satisfies every set field. Distro is compared
// case-insensitively.
func (f Filter) Matches(inst *installer.Installer) bool {
	if f.Distro != "" && !strings.EqualFold(f.Distro, inst.Distro) {
		return false
	}

	if f.Major != 0 && f.Major != inst.Version.Major {
		return false
	}

	if f.Type != "" && f.Type != inst.Type {
		return false
	}

	if f.OS != "" && f.OS != inst.OS {
		return false
	}

	return f.Arch == "" || f.Arch == inst.Arch
}

// Filter returns the installers matching f in catalog order.
func (c *Catalog) Filter(f Filter) []installer.Installer {
	var out []installer.Installer

	for i := range c.installers {
		if f.Matches(&c.installers[i]) {
			out = append(out, c.installers[i])
		}
	}

	return out
}
