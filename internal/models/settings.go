package models

import "time"

// Settings holds the runtime configuration snapshot built from flags,
// environment, and config files.
type Settings struct {
	Port           int           `json:"port"`
	YtdlpPath      string        `json:"ytdlp_path"`
	TempDir        string        `json:"temp_dir"`
	DBFile         string        `json:"db_file"`
	MaxFilesize    string        `json:"max_filesize"`
	Retries        int           `json:"download_retries"`
	RequestTimeout time.Duration `json:"request_timeout"`
	CookieSource   string        `json:"cookie_source"`
	OutputExt      string        `json:"output_ext"`
}
