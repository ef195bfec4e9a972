package extraction

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"fetcharr/internal/models"
	"fetcharr/internal/parsing"
	"fetcharr/internal/utils/logging"
)

// infoJSON matches the fields Fetcharr needs from yt-dlp's '-J' output.
type infoJSON struct {
	Title      string       `json:"title"`
	Thumbnail  string       `json:"thumbnail"`
	Duration   float64      `json:"duration"`
	UploadDate string       `json:"upload_date"`
	Formats    []formatJSON `json:"formats"`
}

type formatJSON struct {
	FormatID   string  `json:"format_id"`
	Ext        string  `json:"ext"`
	Resolution string  `json:"resolution"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	FPS        float64 `json:"fps"`
	Filesize   int64   `json:"filesize"`
	VCodec     string  `json:"vcodec"`
	ACodec     string  `json:"acodec"`
	FormatNote string  `json:"format_note"`
}

// rankedFormat pairs a response format with its sort keys.
type rankedFormat struct {
	format models.Format
	height int
	size   int64
}

// parseInfoJSON maps raw '-J' output to a VideoInfo.
//
// Complete formats (video and audio present) pass through; video-only
// formats are paired with the single best audio format as a merged
// "videoID+audioID" descriptor with summed filesize. Output is sorted by
// resolution height, then filesize, both descending.
func parseInfoJSON(data []byte) (*models.VideoInfo, error) {
	var raw infoJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid info JSON: %w", err)
	}

	info := &models.VideoInfo{
		Title:     raw.Title,
		Thumbnail: raw.Thumbnail,
		Duration:  raw.Duration,
	}
	if info.Title == "" {
		info.Title = "Unknown Title"
	}

	if raw.UploadDate != "" {
		t, err := parsing.ParseUploadDate(raw.UploadDate)
		if err != nil {
			logging.D(1, "Could not parse upload date %q: %v", raw.UploadDate, err)
		} else {
			info.UploadDate = t
		}
	}

	var (
		ranked    []rankedFormat
		bestAudio *formatJSON
	)

	for i := range raw.Formats {
		f := &raw.Formats[i]
		switch {
		case hasVideo(f) && hasAudio(f):
			ranked = append(ranked, completeFormat(f))
		case hasAudio(f):
			if bestAudio == nil || f.Filesize > bestAudio.Filesize {
				bestAudio = f
			}
		}
	}

	// Video-only formats need an audio track merged in.
	if bestAudio != nil {
		for i := range raw.Formats {
			f := &raw.Formats[i]
			if hasVideo(f) && !hasAudio(f) {
				ranked = append(ranked, mergedFormat(f, bestAudio))
			}
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].height != ranked[j].height {
			return ranked[i].height > ranked[j].height
		}
		return ranked[i].size > ranked[j].size
	})

	info.Formats = make([]models.Format, 0, len(ranked))
	for _, r := range ranked {
		info.Formats = append(info.Formats, r.format)
	}

	return info, nil
}

// completeFormat maps a format carrying both video and audio.
func completeFormat(f *formatJSON) rankedFormat {
	quality := qualityLabel(f)

	return rankedFormat{
		height: f.Height,
		size:   f.Filesize,
		format: models.Format{
			FormatID:   f.FormatID,
			Ext:        extOrDefault(f.Ext),
			Resolution: resolutionLabel(f),
			Filesize:   f.Filesize,
			Note:       formatNote(f.Filesize, quality, "Complete"),
			HasVideo:   true,
			HasAudio:   true,
		},
	}
}

// mergedFormat maps a video-only format paired with the best audio format.
func mergedFormat(video, audio *formatJSON) rankedFormat {
	quality := qualityLabel(video)

	var combined int64
	if video.Filesize > 0 {
		combined += video.Filesize
	}
	if audio.Filesize > 0 {
		combined += audio.Filesize
	}

	return rankedFormat{
		height: video.Height,
		size:   combined,
		format: models.Format{
			FormatID:   video.FormatID + "+" + audio.FormatID,
			Ext:        "mp4", // Merged output container
			Resolution: resolutionLabel(video),
			Filesize:   combined,
			Note:       formatNote(combined, quality, "Merged"),
			HasVideo:   true,
			HasAudio:   true,
		},
	}
}

func hasVideo(f *formatJSON) bool {
	return f.VCodec != "" && f.VCodec != "none"
}

func hasAudio(f *formatJSON) bool {
	return f.ACodec != "" && f.ACodec != "none"
}

// resolutionLabel prefers yt-dlp's own resolution string, falling back to
// width x height.
func resolutionLabel(f *formatJSON) string {
	if f.Resolution != "" && f.Resolution != "N/A" {
		return f.Resolution
	}
	if f.Height > 0 {
		return fmt.Sprintf("%dx%d", f.Width, f.Height)
	}
	return "N/A"
}

// qualityLabel joins the format note and fps into one display string.
func qualityLabel(f *formatJSON) string {
	parts := make([]string, 0, 2)
	if f.FormatNote != "" {
		parts = append(parts, f.FormatNote)
	}
	if f.FPS > 0 {
		parts = append(parts, fmt.Sprintf("%.0ffps", f.FPS))
	}
	return strings.Join(parts, " - ")
}

// formatNote builds the human display note, e.g. "5.0 MB - 720p (Complete)".
func formatNote(size int64, quality, tag string) string {
	var b strings.Builder
	b.WriteString(parsing.HumanReadableSize(size))
	if quality != "" {
		b.WriteString(" - ")
		b.WriteString(quality)
	}
	b.WriteString(" (")
	b.WriteString(tag)
	b.WriteString(")")
	return b.String()
}

func extOrDefault(ext string) string {
	if ext == "" {
		return "mp4"
	}
	return ext
}
