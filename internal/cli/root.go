package cli

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"leadscout/internal/secrets"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		companyURL   string
		outputPrefix string
		format       string
		apiKey       string
		configPath   string
		dataDir      string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:          "leadscout",
		Short:        "Extract decision makers from a company directory API",
		Long:         "leadscout resolves a company page URL, fetches the company's employees from the directory API, filters them by decision-maker title keywords, and writes the result to timestamped CSV/JSON files.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(verbose)
			return runExtract(cmd.Context(), log, extractArgs{
				CompanyURL:   companyURL,
				OutputPrefix: outputPrefix,
				Format:       format,
				APIKey:       apiKey,
				ConfigPath:   configPath,
				DataDir:      dataDir,
			})
		},
	}

	cmd.Flags().StringVarP(&companyURL, "company", "c", "", "Company page URL (required)")
	cmd.Flags().StringVarP(&outputPrefix, "output", "o", "decision_makers", "Output file name prefix (without extension)")
	cmd.Flags().StringVarP(&format, "format", "f", "both", "Output format: csv|json|both")
	cmd.Flags().StringVarP(&apiKey, "api-key", "k", "", "API key (overrides "+secrets.EnvAPIKey+" and the keychain)")
	cmd.Flags().StringVar(&configPath, "config", "", "Config file path (default <data-dir>/config.yml)")
	cmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory for config, run ledger and lock file (default $LEADSCOUT_DATA_DIR or .)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	_ = cmd.MarkFlagRequired("company")

	cmd.AddCommand(authCmd())
	cmd.AddCommand(runsCmd(&dataDir))
	return cmd
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func ensureDataDir(flagVal string) (string, error) {
	dir := flagVal
	if dir == "" {
		dir = os.Getenv("LEADSCOUT_DATA_DIR")
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
