// Package keys holds the flag and configuration key names.
package keys

// Terminal keys
const (
	Port           string = "port"
	YtdlpPath      string = "ytdlp-path"
	TempDir        string = "temp-dir"
	DBFile         string = "db-file"
	LogDir         string = "log-dir"
	MaxFilesize    string = "max-filesize"
	DLRetries      string = "dl-retries"
	RequestTimeout string = "request-timeout"
	CookieSource   string = "cookie-source"
	OutputExt      string = "output-ext"
)

// Logging
const (
	DebugLevel string = "debug"
)

// Primary program
const (
	Execute string = "execute"
)

// EnvPrefix is the prefix viper uses for environment variable lookups
// (e.g. FETCHARR_PORT).
const EnvPrefix = "FETCHARR"
