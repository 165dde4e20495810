// Package cmd defines the CLI commands for javamatrix.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/javamatrix/internal/config"
	"github.com/donaldgifford/javamatrix/internal/ui"
)

var (
	verbose bool
	noColor bool
	cfgFile string
)

// rootCmd is the base command for the javamatrix CLI.
var rootCmd = &cobra.Command{
	Use:   "javamatrix",
	Short: "Generate the Java download URL matrix for bootstrap scripts",
	Long: `Javamatrix fetches Java distribution metadata from vendor APIs (Azul Zulu,
BellSoft Liberica), normalizes every published installer, and picks the newest
jdk tar.gz for each distribution, major version, operating system and
architecture. The result is a shell fragment that sets JAVA_URL from
JAVA_DISTRIBUTION, JAVA_VERSION, JAVA_OS and JAVA_ARCH.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		initLogger()
	},
}

// Execute runs the root command and reports any error on stderr.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		ui.NewWriter(noColor).Error(err.Error())
	}

	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/javamatrix/config.yaml)")
}

func initLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// loadConfig reads --config, or the default path. A missing file yields the
// built-in defaults.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	slog.Debug("loaded config", "path", path, "providers", len(cfg.Providers), "manual", len(cfg.Manual))

	return cfg, nil
}
