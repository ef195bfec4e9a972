package cfg

import (
	"fmt"

	"fetcharr/internal/domain/consts"
	"fetcharr/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initProgramFlags initializes root flags and binds them into Viper.
func initProgramFlags(rootCmd *cobra.Command) error {
	// Server
	rootCmd.PersistentFlags().IntP(keys.Port, "p", consts.DefaultPort, "Port to serve the web interface on")
	if err := viper.BindPFlag(keys.Port, rootCmd.PersistentFlags().Lookup(keys.Port)); err != nil {
		return fmt.Errorf("failed to bind flag %q: %w", keys.Port, err)
	}

	// yt-dlp binary
	rootCmd.PersistentFlags().String(keys.YtdlpPath, consts.DefaultYtdlp, "Path to the yt-dlp binary")
	if err := viper.BindPFlag(keys.YtdlpPath, rootCmd.PersistentFlags().Lookup(keys.YtdlpPath)); err != nil {
		return fmt.Errorf("failed to bind flag %q: %w", keys.YtdlpPath, err)
	}

	// Working directories and files
	rootCmd.PersistentFlags().StringP(keys.TempDir, "t", "", "Directory for in-progress downloads (default: system temp)")
	if err := viper.BindPFlag(keys.TempDir, rootCmd.PersistentFlags().Lookup(keys.TempDir)); err != nil {
		return fmt.Errorf("failed to bind flag %q: %w", keys.TempDir, err)
	}

	rootCmd.PersistentFlags().String(keys.DBFile, consts.DefaultDBFile, "SQLite database file for the request history")
	if err := viper.BindPFlag(keys.DBFile, rootCmd.PersistentFlags().Lookup(keys.DBFile)); err != nil {
		return fmt.Errorf("failed to bind flag %q: %w", keys.DBFile, err)
	}

	rootCmd.PersistentFlags().String(keys.LogDir, ".", "Directory to write the log file to")
	if err := viper.BindPFlag(keys.LogDir, rootCmd.PersistentFlags().Lookup(keys.LogDir)); err != nil {
		return fmt.Errorf("failed to bind flag %q: %w", keys.LogDir, err)
	}

	// Download behavior
	rootCmd.PersistentFlags().String(keys.MaxFilesize, "", "Maximum filesize to accept (e.g. 300m, 2g)")
	if err := viper.BindPFlag(keys.MaxFilesize, rootCmd.PersistentFlags().Lookup(keys.MaxFilesize)); err != nil {
		return fmt.Errorf("failed to bind flag %q: %w", keys.MaxFilesize, err)
	}

	rootCmd.PersistentFlags().Int(keys.DLRetries, 3, "Number of yt-dlp download retries")
	if err := viper.BindPFlag(keys.DLRetries, rootCmd.PersistentFlags().Lookup(keys.DLRetries)); err != nil {
		return fmt.Errorf("failed to bind flag %q: %w", keys.DLRetries, err)
	}

	rootCmd.PersistentFlags().Duration(keys.RequestTimeout, consts.DefaultTimeout, "Timeout for a single download request")
	if err := viper.BindPFlag(keys.RequestTimeout, rootCmd.PersistentFlags().Lookup(keys.RequestTimeout)); err != nil {
		return fmt.Errorf("failed to bind flag %q: %w", keys.RequestTimeout, err)
	}

	rootCmd.PersistentFlags().String(keys.CookieSource, "", "Browser to grab cookies from for sites requiring authentication (e.g. firefox)")
	if err := viper.BindPFlag(keys.CookieSource, rootCmd.PersistentFlags().Lookup(keys.CookieSource)); err != nil {
		return fmt.Errorf("failed to bind flag %q: %w", keys.CookieSource, err)
	}

	rootCmd.PersistentFlags().String(keys.OutputExt, "mp4", "Container to merge combined formats into")
	if err := viper.BindPFlag(keys.OutputExt, rootCmd.PersistentFlags().Lookup(keys.OutputExt)); err != nil {
		return fmt.Errorf("failed to bind flag %q: %w", keys.OutputExt, err)
	}

	// Debugging
	rootCmd.PersistentFlags().IntP(keys.DebugLevel, "d", 0, "Set the logging level (0-5)")
	if err := viper.BindPFlag(keys.DebugLevel, rootCmd.PersistentFlags().Lookup(keys.DebugLevel)); err != nil {
		return fmt.Errorf("failed to bind flag %q: %w", keys.DebugLevel, err)
	}

	return nil
}
