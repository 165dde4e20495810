package resolve

import (
	"fmt"
	"slices"

	"github.com/donaldgifford/javamatrix/internal/catalog"
	"github.com/donaldgifford/javamatrix/internal/installer"
)

// Axes are the declared values resolved for every combination. Order is kept
// as declared; versions are not sorted.
type Axes struct {
	Distros       []string `yaml:"distros" json:"distros"`
	Versions      []int    `yaml:"versions" json:"versions"`
	Systems       []string `yaml:"systems" json:"systems"`
	Architectures []string `yaml:"architectures" json:"architectures"`
}

// DefaultAxes returns the axes the generated fragment is consumed with.
func DefaultAxes() Axes {
	return Axes{
		Distros:       []string{installer.DistroZulu, installer.DistroLiberica, installer.DistroNitro},
		Versions:      []int{21, 17, 11, 8, 7},
		Systems:       []string{installer.OSLinux, installer.OSLinuxMusl},
		Architectures: []string{installer.ArchX64, installer.ArchX32, installer.ArchARM64, installer.ArchARMHF, installer.ArchARMEL, installer.ArchRISCV64},
	}
}

// Validate checks that every axis is non-empty and uses canonical vocabulary.
func (a *Axes) Validate() error {
	if len(a.Distros) == 0 || len(a.Versions) == 0 || len(a.Systems) == 0 || len(a.Architectures) == 0 {
		return fmt.Errorf("axes must declare at least one distro, version, system and architecture")
	}

	checks := []struct {
		axis   string
		values []string
		vocab  []string
	}{
		{"distro", a.Distros, installer.Distros},
		{"system", a.Systems, installer.OperatingSys},
		{"architecture", a.Architectures, installer.Arches},
	}

	for _, c := range checks {
		for _, v := range c.values {
			if !installer.IsValid(v, c.vocab) {
				return fmt.Errorf("invalid %s %q in axes, must be one of: %v", c.axis, v, c.vocab)
			}
		}
	}

	for _, v := range a.Versions {
		if v <= 0 {
			return fmt.Errorf("invalid version %d in axes, must be positive", v)
		}
	}

	return nil
}

// Size is the number of tuples the axes span.
func (a *Axes) Size() int {
	return len(a.Distros) * len(a.Versions) * len(a.Systems) * len(a.Architectures)
}

// Cell is the resolution of one tuple.
type Cell struct {
	Target    Target              `json:"target"`
	Found     bool                `json:"found"`
	Installer installer.Installer `json:"installer,omitzero"`
}

// Matrix holds one cell per tuple, in axis order.
type Matrix struct {
	Axes  Axes   `json:"axes"`
	Cells []Cell `json:"cells"`
}

// Build resolves every tuple of axes against cat.
func Build(cat *catalog.Catalog, axes Axes) *Matrix {
	m := &Matrix{
		Axes:  axes,
		Cells: make([]Cell, 0, axes.Size()),
	}

	for _, distro := range axes.Distros {
		for _, version := range axes.Versions {
			for _, osName := range axes.Systems {
				for _, arch := range axes.Architectures {
					t := Target{Distro: distro, Version: version, OS: osName, Arch: arch}
					inst, ok := Resolve(cat, t)
					m.Cells = append(m.Cells, Cell{Target: t, Found: ok, Installer: inst})
				}
			}
		}
	}

	return m
}

// Lookup returns the cell for t, if t lies on the axes.
func (m *Matrix) Lookup(t Target) (Cell, bool) {
	i := slices.IndexFunc(m.Cells, func(c Cell) bool { return c.Target == t })
	if i < 0 {
		return Cell{}, false
	}

	return m.Cells[i], true
}

// Stats summarizes a matrix.
type Stats struct {
	Total   int
	Found   int
	Missing int
}

// Stats counts found and missing cells.
func (m *Matrix) Stats() Stats {
	s := Stats{Total: len(m.Cells)}

	for i := range m.Cells {
		if m.Cells[i].Found {
			s.Found++
		}
	}

	s.Missing = s.Total - s.Found

	return s
}

// Missing returns the targets no installer was found for.
func (m *Matrix) Missing() []Target {
	var out []Target

	for i := range m.Cells {
		if !m.Cells[i].Found {
			out = append(out, m.Cells[i].Target)
		}
	}

	return out
}

// DistroNode groups cells by distro, then version, then os.
type DistroNode struct {
	Distro   string
	Versions []VersionNode
}

// VersionNode groups one major version's systems.
type VersionNode struct {
	Version int
	Systems []SystemNode
}

// SystemNode holds one cell per architecture.
type SystemNode struct {
	OS    string
	Cells []Cell
}

// Tree nests the cells in axis order for rendering.
func (m *Matrix) Tree() []DistroNode {
	nArch := len(m.Axes.Architectures)
	idx := 0

	distros := make([]DistroNode, 0, len(m.Axes.Distros))

	for _, distro := range m.Axes.Distros {
		dn := DistroNode{Distro: distro, Versions: make([]VersionNode, 0, len(m.Axes.Versions))}

		for _, version := range m.Axes.Versions {
			vn := VersionNode{Version: version, Systems: make([]SystemNode, 0, len(m.Axes.Systems))}

			for _, osName := range m.Axes.Systems {
				vn.Systems = append(vn.Systems, SystemNode{OS: osName, Cells: m.Cells[idx : idx+nArch]})
				idx += nArch
			}

			dn.Versions = append(dn.Versions, vn)
		}

		distros = append(distros, dn)
	}

	return distros
}
