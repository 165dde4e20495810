// Package info explains how one target tuple resolves.
package info

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/donaldgifford/javamatrix/internal/catalog"
	"github.com/donaldgifford/javamatrix/internal/installer"
	"github.com/donaldgifford/javamatrix/internal/resolve"
)

// Opts configures the resolve command.
type Opts struct {
	// Catalog is the built catalog.
	Catalog *catalog.Catalog
	// Target is the tuple to explain.
	Target resolve.Target
	// Writer is the output destination.
	Writer io.Writer
	// OutputFormat is "text" or "json".
	OutputFormat string
}

// Candidate is a catalog record for the tuple's distro, major, os and arch.
type Candidate struct {
	Installer installer.Installer
	// Eligible means it is a jdk packaged as tar.gz.
	Eligible bool
	// Selected marks the resolved record.
	Selected bool
}

// Report is the explanation for one tuple.
type Report struct {
	Target     resolve.Target
	Found      bool
	Installer  installer.Installer
	Candidates []Candidate
}

// Explain resolves t and collects the records that were considered.
func Explain(cat *catalog.Catalog, t resolve.Target) *Report {
	inst, found := resolve.Resolve(cat, t)

	r := &Report{Target: t, Found: found, Installer: inst}

	related := cat.Filter(catalog.Filter{Distro: t.Distro, Major: t.Version, OS: t.OS, Arch: t.Arch})
	selected := false

	for i := range related {
		c := Candidate{Installer: related[i], Eligible: t.Eligible(&related[i])}

		// Ties resolve to the first record, so only mark one.
		if found && !selected && c.Eligible && c.Installer == inst {
			c.Selected = true
			selected = true
		}

		r.Candidates = append(r.Candidates, c)
	}

	return r
}

// Run explains a tuple.
func Run(opts *Opts) error {
	report := Explain(opts.Catalog, opts.Target)

	switch opts.OutputFormat {
	case "json":
		return renderJSON(opts.Writer, report)
	default:
		return renderText(opts.Writer, report)
	}
}

func renderText(w io.Writer, r *Report) error {
	if err := renderHeader(w, r); err != nil {
		return err
	}

	if len(r.Candidates) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w, "\nCandidates:"); err != nil {
		return err
	}

	return renderCandidates(w, r.Candidates)
}

func renderHeader(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "Target:\t%s\n", r.Target); err != nil {
		return err
	}

	if !r.Found {
		if _, err := fmt.Fprintf(tw, "Status:\t%s\n", "does not exist"); err != nil {
			return err
		}

		return tw.Flush()
	}

	rows := []struct {
		label string
		value string
	}{
		{"Status", "found"},
		{"Version", r.Installer.VersionString()},
		{"Name", r.Installer.Name},
		{"URL", r.Installer.DownloadURL},
	}

	for _, row := range rows {
		if row.value == "" {
			continue
		}

		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", row.label, row.value); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func renderCandidates(w io.Writer, candidates []Candidate) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "  \tVERSION\tTYPE\tPACKAGE\tELIGIBLE\tURL"); err != nil {
		return err
	}

	for i := range candidates {
		c := &candidates[i]

		mark := ""
		if c.Selected {
			mark = "*"
		}

		eligible := "no"
		if c.Eligible {
			eligible = "yes"
		}

		if _, err := fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\n",
			mark, c.Installer.VersionString(), c.Installer.Type, c.Installer.InstallerType, eligible, c.Installer.DownloadURL); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func renderJSON(w io.Writer, r *Report) error {
	out := jsonOutput{
		Target: r.Target,
		Found:  r.Found,
	}

	if r.Found {
		inst := r.Installer
		out.Installer = &inst
	}

	for i := range r.Candidates {
		c := &r.Candidates[i]
		out.Candidates = append(out.Candidates, jsonCandidate{
			Version:       c.Installer.VersionString(),
			Type:          c.Installer.Type,
			InstallerType: c.Installer.InstallerType,
			URL:           c.Installer.DownloadURL,
			Eligible:      c.Eligible,
			Selected:      c.Selected,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(out)
}

type jsonOutput struct {
	Target     resolve.Target       `json:"target"`
	Found      bool                 `json:"found"`
	Installer  *installer.Installer `json:"installer,omitempty"`
	Candidates []jsonCandidate      `json:"candidates,omitempty"`
}

type jsonCandidate struct {
	Version       string `json:"version"`
	Type          string `json:"type"`
	InstallerType string `json:"installer_type"`
	URL           string `json:"url"`
	Eligible      bool   `json:"eligible"`
	Selected      bool   `json:"selected"`
}
