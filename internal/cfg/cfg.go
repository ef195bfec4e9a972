// Package cfg provides configuration and command-line interface setup for Fetcharr.
package cfg

import (
	"strings"

	"fetcharr/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "fetcharr",
	Short: "Fetcharr serves a web frontend for fetching videos through yt-dlp.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Lookup("help").Changed {
			return nil // Stop further execution if help is invoked
		}
		viper.Set(keys.Execute, true)
		return nil
	},
}

// InitCommands initializes the root command and its flags.
func InitCommands() error {
	viper.SetEnvPrefix(keys.EnvPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_")) // Convert "ytdlp-path" to YTDLP_PATH

	if err := initProgramFlags(rootCmd); err != nil {
		return err
	}
	return nil
}

// Execute runs the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
