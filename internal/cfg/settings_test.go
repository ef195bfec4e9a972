package cfg

import (
	"testing"
	"time"

	"fetcharr/internal/domain/keys"

	"github.com/spf13/viper"
)

func setDefaults(t *testing.T) {
	t.Helper()
	viper.Reset()
	viper.Set(keys.Port, 8247)
	viper.Set(keys.YtdlpPath, "yt-dlp")
	viper.Set(keys.TempDir, t.TempDir())
	viper.Set(keys.DBFile, "fetcharr.db")
	viper.Set(keys.DLRetries, 3)
	viper.Set(keys.RequestTimeout, 10*time.Minute)
	viper.Set(keys.OutputExt, "mp4")
}

func TestGetSettings(t *testing.T) {
	setDefaults(t)
	viper.Set(keys.MaxFilesize, "300MB")

	s, err := GetSettings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Port != 8247 {
		t.Fatalf("expected port 8247, got %d", s.Port)
	}
	if s.MaxFilesize != "300m" {
		t.Fatalf("expected normalized max filesize '300m', got %q", s.MaxFilesize)
	}
}

func TestGetSettingsRejectsBadPort(t *testing.T) {
	setDefaults(t)
	viper.Set(keys.Port, 99999)

	if _, err := GetSettings(); err == nil {
		t.Fatal("expected an error for an out of range port")
	}
}

func TestGetSettingsRejectsBadOutputExt(t *testing.T) {
	setDefaults(t)
	viper.Set(keys.OutputExt, "exe")

	if _, err := GetSettings(); err == nil {
		t.Fatal("expected an error for an invalid output extension")
	}
}

func TestGetSettingsRejectsZeroTimeout(t *testing.T) {
	setDefaults(t)
	viper.Set(keys.RequestTimeout, time.Duration(0))

	if _, err := GetSettings(); err == nil {
		t.Fatal("expected an error for a zero request timeout")
	}
}
