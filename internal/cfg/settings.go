package cfg

import (
	"fmt"
	"os"

	"fetcharr/internal/domain/keys"
	"fetcharr/internal/models"
	"fetcharr/internal/utils/logging"
	"fetcharr/internal/validation"

	"github.com/spf13/viper"
)

// GetSettings builds and validates the runtime settings from Viper.
func GetSettings() (*models.Settings, error) {
	if lvl := viper.GetInt(keys.DebugLevel); lvl > 0 {
		logging.Level = lvl
		logging.I("Debugging level: %d", logging.Level)
	}

	s := &models.Settings{
		Port:           viper.GetInt(keys.Port),
		YtdlpPath:      viper.GetString(keys.YtdlpPath),
		TempDir:        viper.GetString(keys.TempDir),
		DBFile:         viper.GetString(keys.DBFile),
		MaxFilesize:    viper.GetString(keys.MaxFilesize),
		Retries:        viper.GetInt(keys.DLRetries),
		RequestTimeout: viper.GetDuration(keys.RequestTimeout),
		CookieSource:   viper.GetString(keys.CookieSource),
		OutputExt:      viper.GetString(keys.OutputExt),
	}

	if s.Port < 1 || s.Port > 65535 {
		return nil, fmt.Errorf("port %d is out of range", s.Port)
	}

	if s.YtdlpPath == "" {
		return nil, fmt.Errorf("yt-dlp path cannot be empty")
	}

	if s.TempDir == "" {
		s.TempDir = os.TempDir()
	}
	if _, err := validation.ValidateDirectory(s.TempDir, true); err != nil {
		return nil, fmt.Errorf("invalid temp directory: %w", err)
	}

	if s.MaxFilesize != "" {
		normalized, err := validation.ValidateMaxFilesize(s.MaxFilesize)
		if err != nil {
			return nil, err
		}
		s.MaxFilesize = normalized
	}

	if s.Retries < 0 {
		return nil, fmt.Errorf("download retries cannot be negative")
	}

	if s.RequestTimeout <= 0 {
		return nil, fmt.Errorf("request timeout must be positive")
	}

	if s.OutputExt != "" {
		if err := validation.ValidateOutputExtension(s.OutputExt); err != nil {
			return nil, err
		}
	}

	return s, nil
}
