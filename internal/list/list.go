// Package list implements the javamatrix catalog command for browsing normalized installers.
package list

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/donaldgifford/javamatrix/internal/catalog"
	"github.com/donaldgifford/javamatrix/internal/installer"
)

// Opts configures the list operation.
type Opts struct {
	// Catalog is the built catalog to list.
	Catalog *catalog.Catalog
	// Filter limits output to matching installers.
	Filter catalog.Filter
	// OutputFormat is "table" or "json".
	OutputFormat string
	// Writer is the output destination.
	Writer io.Writer
}

// InstallerInfo represents an installer in list output.
type InstallerInfo struct {
	Distro        string `json:"distro"`
	Version       string `json:"version"`
	Type          string `json:"type"`
	InstallerType string `json:"installer_type"`
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Name          string `json:"name,omitempty"`
	URL           string `json:"url"`
}

// Run lists catalog installers in catalog order.
func Run(opts *Opts) error {
	entries := opts.Catalog.Filter(opts.Filter)

	switch opts.OutputFormat {
	case "json":
		return renderJSON(opts.Writer, entries)
	default:
		return renderTable(opts.Writer, entries)
	}
}

func renderTable(w io.Writer, entries []installer.Installer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "DISTRO\tVERSION\tTYPE\tPACKAGE\tOS\tARCH\tURL"); err != nil {
		return err
	}

	for i := range entries {
		e := &entries[i]

		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Distro, e.VersionString(), e.Type, e.InstallerType, e.OS, e.Arch, e.DownloadURL); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func renderJSON(w io.Writer, entries []installer.Installer) error {
	infos := make([]InstallerInfo, 0, len(entries))

	for i := range entries {
		e := &entries[i]
		infos = append(infos, InstallerInfo{
			Distro:        e.Distro,
			Version:       e.VersionString(),
			Type:          e.Type,
			InstallerType: e.InstallerType,
			OS:            e.OS,
			Arch:          e.Arch,
			Name:          e.Name,
			URL:           e.DownloadURL,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(infos)
}
