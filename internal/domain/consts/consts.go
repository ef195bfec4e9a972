// Package consts holds various global, unchanging values.
package consts

import "time"

// Program defaults.
const (
	DefaultPort     = 8247
	DefaultYtdlp    = "yt-dlp"
	DefaultDBFile   = "fetcharr.db"
	LogFilename     = "fetcharr.log"
	DefaultTimeout  = 10 * time.Minute
	ProbeTimeout    = 2 * time.Minute
	ShutdownTimeout = 5 * time.Second
)

// File permissions.
const (
	PermsGenericDir  = 0o755
	PermsGenericFile = 0o644
)

// AllVidExtensions is a list of video file extensions.
var AllVidExtensions = [...]string{".3gp", ".avi", ".f4v", ".flv", ".m4v", ".mkv",
	".mov", ".mp4", ".mpeg", ".mpg", ".ogm", ".ogv",
	".ts", ".vob", ".webm", ".wmv"}

// Container extension → response content type.
var ContentTypeMap = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/mp4",
	".webm": "video/webm",
	".mkv":  "video/x-matroska",
	".avi":  "video/x-msvideo",
	".mov":  "video/quicktime",
	".flv":  "video/x-flv",
	".mp3":  "audio/mpeg",
	".m4a":  "audio/mp4",
	".opus": "audio/opus",
	".ogg":  "audio/ogg",
}

// History statuses.
const (
	HistoryStatusCompleted = "completed"
	HistoryStatusFailed    = "failed"
)

// History operations.
const (
	HistoryOpFormats  = "formats"
	HistoryOpDownload = "download"
)

// Database tables.
const (
	DBHistory = "history"
)

// History table columns.
const (
	QHistID        = "id"
	QHistURL       = "url"
	QHistOperation = "operation"
	QHistFormatID  = "format_id"
	QHistTitle     = "title"
	QHistFilesize  = "filesize"
	QHistStatus    = "status"
	QHistCreatedAt = "created_at"
)
