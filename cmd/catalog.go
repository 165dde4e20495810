package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/javamatrix/internal/catalog"
	"github.com/donaldgifford/javamatrix/internal/generate"
	"github.com/donaldgifford/javamatrix/internal/list"
	"github.com/donaldgifford/javamatrix/internal/ui"
)

var (
	catalogOutputFormat string
	catalogFilter       catalog.Filter
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List every normalized installer",
	Long: `Fetch and normalize provider metadata and list the resulting installers,
including the built-in manual entries, in catalog order. Every type and
package is listed, not only the jdk tar.gz records generate selects from.

--distro and --version also narrow which endpoints are fetched.`,
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runCatalog,
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogOutputFormat, "output", "o", "table", "output format (table, json)")
	catalogCmd.Flags().StringVar(&catalogFilter.Distro, "distro", "", "filter by distribution (zulu, liberica, nitro)")
	catalogCmd.Flags().IntVar(&catalogFilter.Major, "version", 0, "filter by major version")
	catalogCmd.Flags().StringVar(&catalogFilter.OS, "os", "", "filter by operating system")
	catalogCmd.Flags().StringVar(&catalogFilter.Arch, "arch", "", "filter by architecture")
	catalogCmd.Flags().StringVar(&catalogFilter.Type, "type", "", "filter by type (jdk, jre, fx-jdk, ...)")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cat, _, err := generate.BuildCatalog(cmd.Context(), cfg.Scoped(catalogFilter.Distro, catalogFilter.Major), nil, slog.Default())
	if err != nil {
		return err
	}

	opts := &list.Opts{
		Catalog:      cat,
		Filter:       catalogFilter,
		OutputFormat: catalogOutputFormat,
		Writer:       ui.NewWriter(noColor).Out(),
	}

	return list.Run(opts)
}
