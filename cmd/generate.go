package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/javamatrix/internal/generate"
	"github.com/donaldgifford/javamatrix/internal/ui"
)

var (
	generateOutputFile string
	generateFormat     string
	generateTemplate   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build the URL matrix shell fragment",
	Long: `Fetch metadata for every configured provider and major version, resolve the
newest jdk tar.gz for every distribution, version, os and architecture, and
write the nested shell conditional. Tuples without an installer are written as
": # does not exist".

The fragment goes to stdout unless --output-file is given. Nothing is written
if any fetch or classification fails.`,
	Aliases: []string{"gen"},
	Args:    cobra.NoArgs,
	RunE:    runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutputFile, "output-file", "O", "", "write the fragment to a file instead of stdout")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "", "output format (shell, json)")
	generateCmd.Flags().StringVar(&generateTemplate, "template", "", "render with a custom text/template file")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	w := ui.NewWriter(noColor)

	// The spinner runs only without --verbose.
	spinning := !verbose

	opts := &generate.Opts{
		Config:     cfg,
		OutputPath: generateOutputFile,
		Writer:     w.Out(),
		Format:     generateFormat,
		Template:   generateTemplate,
		Logger:     fetchLogger(spinning),
	}

	spin := w.Spinner("fetching provider metadata")
	if spinning {
		spin.Start()
	}

	result, err := generate.Run(cmd.Context(), opts)
	spin.Stop()

	if err != nil {
		return err
	}

	w.Infof("%d installers from %d provider fetches", result.Installers, len(result.Diagnostics))

	if result.Stats.Missing > 0 {
		w.Warningf("%d of %d tuples resolved, %d do not exist", result.Stats.Found, result.Stats.Total, result.Stats.Missing)
	}

	if result.OutputPath != "" {
		w.Successf("wrote %s", w.Bold(result.OutputPath))
	}

	return nil
}

// fetchLogger returns the logger generate runs with. Info lines would tear
// the spinner line on stderr, so while it spins only warnings get through.
func fetchLogger(spinning bool) *slog.Logger {
	if !spinning {
		return slog.Default()
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}
