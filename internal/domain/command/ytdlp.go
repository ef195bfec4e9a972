// Package command holds yt-dlp invocation constants.
package command

// General
const (
	CookiePath           = "--cookies"
	FilenameSyntax       = "%(title)s.%(ext)s"
	Format               = "-f"
	MaxFilesize          = "--max-filesize"
	NoPlaylist           = "--no-playlist"
	NoWarnings           = "--no-warnings"
	Output               = "-o"
	P                    = "-P"
	RestrictFilenames    = "--restrict-filenames"
	Retries              = "--retries"
	YtDLPOutputExtension = "--merge-output-format"
)

// JSON only
const (
	OutputJSON = "-J"
)

// DefaultFormatSort mirrors yt-dlp's preferred ordering for probe output:
// resolution first, then mp4/m4a containers, then size and bitrate.
const (
	FormatSort     = "--format-sort"
	FormatSortSpec = "res,ext:mp4:m4a,size,br"
)

// DefaultFormatSpec is used when the caller did not choose a format:
// best video plus best audio, falling back to the best combined format.
const DefaultFormatSpec = "bv*+ba/b"
