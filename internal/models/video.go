// Package models holds the data models passed between Fetcharr's layers.
package models

import "time"

// Format describes one downloadable rendition of a video.
//
// Produced from yt-dlp's info JSON and passed through to the client
// unmodified. Merged renditions (video-only paired with the best audio)
// carry yt-dlp's "videoID+audioID" identifier syntax.
type Format struct {
	FormatID   string `json:"format_id"`
	Ext        string `json:"ext"`
	Resolution string `json:"resolution"`
	Filesize   int64  `json:"filesize,omitempty"`
	Note       string `json:"note"`
	HasVideo   bool   `json:"has_video"`
	HasAudio   bool   `json:"has_audio"`
}

// VideoInfo holds the metadata returned by a format lookup.
//
// Ephemeral: lives only for the duration of one request/response exchange.
type VideoInfo struct {
	Title      string    `json:"title"`
	Thumbnail  string    `json:"thumbnail,omitempty"`
	Duration   float64   `json:"duration,omitempty"`
	UploadDate time.Time `json:"upload_date,omitempty"`
	Formats    []Format  `json:"formats"`
}

// Preview holds the lightweight OpenGraph metadata scraped from a page
// without invoking the extraction tool.
type Preview struct {
	Title     string `json:"title,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}
