package cmd

import (
	"errors"
	"fmt"

	"github.com/fraserkalirai/fraser-2025-recap/internal/config"
	"github.com/fraserkalirai/fraser-2025-recap/internal/storage"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	jsonOutput bool
	darkMode   bool
	width      int

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:          "recap",
	Short:        "Training, strength and biometrics recap of a year of lifting",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
		log.SetLevel(log.InfoLevel)
		if verbose {
			log.SetLevel(log.DebugLevel)
		}

		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Flags win over the config file.
		if cmd.Flags().Changed("dark") {
			cfg.Display.Dark = darkMode
		}
		if cmd.Flags().Changed("width") && width > 0 {
			cfg.Display.Width = width
		}

		log.WithFields(log.Fields{
			"dark":  cfg.Display.Dark,
			"width": cfg.Display.Width,
		}).Debug("config loaded")
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// openStorage connects to the database named by the loaded config.
func openStorage() (*storage.Storage, error) {
	st, err := storage.Open(cfg.DB.ConnectionString)
	if errors.Is(err, storage.ErrNoDatabaseURL) {
		return nil, fmt.Errorf("%w: set RECAP_DATABASE_URL, DEV_MODE=true or database.connection_string in the config file", err)
	}
	return st, err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/recap/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print the computed series as JSON")
	rootCmd.PersistentFlags().BoolVar(&darkMode, "dark", false, "Use the dark colour palette")
	rootCmd.PersistentFlags().IntVar(&width, "width", config.DefaultWidth, "Screen width the chart styling is chosen for")
}
