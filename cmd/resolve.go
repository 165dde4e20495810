package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/javamatrix/internal/generate"
	"github.com/donaldgifford/javamatrix/internal/info"
	"github.com/donaldgifford/javamatrix/internal/installer"
	"github.com/donaldgifford/javamatrix/internal/platform"
	"github.com/donaldgifford/javamatrix/internal/resolve"
	"github.com/donaldgifford/javamatrix/internal/ui"
)

var resolveOutputFormat string

var resolveCmd = &cobra.Command{
	Use:   "resolve <distro> <version> [os] [arch]",
	Short: "Show which installer a single tuple resolves to",
	Long: `Fetch metadata for one distribution and major version and show the installer
generate would pick for the tuple, along with every catalog record that shares
its distribution, version, os and architecture.

os and arch default to the running host.`,
	Example: `  javamatrix resolve zulu 17
  javamatrix resolve zulu 17 linux x64
  javamatrix resolve nitro 21 linux riscv64 -o json`,
	Args: cobra.RangeArgs(2, 4),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveOutputFormat, "output", "o", "text", "output format (text, json)")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	target, err := parseTarget(args, platform.Detect())
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cat, _, err := generate.BuildCatalog(cmd.Context(), cfg.Scoped(target.Distro, target.Version), nil, slog.Default())
	if err != nil {
		return err
	}

	opts := &info.Opts{
		Catalog:      cat,
		Target:       target,
		Writer:       ui.NewWriter(noColor).Out(),
		OutputFormat: resolveOutputFormat,
	}

	return info.Run(opts)
}

// parseTarget builds a target from positional args. Missing os and arch
// come from host.
func parseTarget(args []string, host platform.Platform) (resolve.Target, error) {
	version, err := strconv.Atoi(args[1])
	if err != nil || version <= 0 {
		return resolve.Target{}, fmt.Errorf("invalid version %q, expected a major version such as 17", args[1])
	}

	t := resolve.Target{
		Distro:  strings.ToLower(args[0]),
		Version: version,
		OS:      host.OS,
		Arch:    host.Arch,
	}

	if len(args) > 2 {
		t.OS = args[2]
	}

	if len(args) > 3 {
		t.Arch = args[3]
	}

	checks := []struct {
		field string
		value string
		vocab []string
	}{
		{"distro", t.Distro, installer.Distros},
		{"os", t.OS, installer.OperatingSys},
		{"arch", t.Arch, installer.Arches},
	}

	for _, c := range checks {
		if !installer.IsValid(c.value, c.vocab) {
			return resolve.Target{}, fmt.Errorf("invalid %s %q, must be one of: %s", c.field, c.value, strings.Join(c.vocab, ", "))
		}
	}

	return t, nil
}
