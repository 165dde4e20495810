// Package render turns a resolved matrix into the shell fragment consumed by
// the bootstrap script.
package render

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"

	"github.com/donaldgifford/javamatrix/internal/resolve"
	"github.com/donaldgifford/javamatrix/internal/template"
)

// Formats accepted by Write.
const (
	FormatShell = "shell"
	FormatJSON  = "json"
)

// Formats lists the supported output formats.
var Formats = []string{FormatShell, FormatJSON}

//go:embed matrix.sh.tmpl
var shellTemplate string

// Data is what a matrix template is executed with.
type Data struct {
	Distros []resolve.DistroNode
	Axes    resolve.Axes
	Stats   resolve.Stats
}

func newData(m *resolve.Matrix) Data {
	return Data{
		Distros: m.Tree(),
		Axes:    m.Axes,
		Stats:   m.Stats(),
	}
}

// Shell writes the nested-conditional fragment for m. The output depends only
// on m: every tuple produces exactly one leaf, either an assignment of
// JAVA_URL or a ": # does not exist" placeholder.
func Shell(w io.Writer, m *resolve.Matrix) error {
	out, err := template.NewRenderer().Render("matrix.sh.tmpl", shellTemplate, newData(m))
	if err != nil {
		return fmt.Errorf("rendering matrix: %w", err)
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("writing matrix: %w", err)
	}

	return nil
}

// ShellFile renders m with a user-supplied template instead of the built-in one.
func ShellFile(w io.Writer, m *resolve.Matrix, tmplPath string) error {
	out, err := template.NewRenderer().RenderFile(tmplPath, newData(m))
	if err != nil {
		return fmt.Errorf("rendering matrix: %w", err)
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("writing matrix: %w", err)
	}

	return nil
}

// JSON writes m as indented JSON.
func JSON(w io.Writer, m *resolve.Matrix) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encoding matrix: %w", err)
	}

	return nil
}

// Write renders m in format. A non-empty tmplPath overrides the built-in
// shell template.
func Write(w io.Writer, m *resolve.Matrix, format, tmplPath string) error {
	switch format {
	case FormatShell, "":
		if tmplPath != "" {
			return ShellFile(w, m, tmplPath)
		}

		return Shell(w, m)
	case FormatJSON:
		return JSON(w, m)
	default:
		return fmt.Errorf("unsupported format %q, must be one of: %v", format, Formats)
	}
}
