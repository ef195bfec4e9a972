package extraction

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"fetcharr/internal/contracts"
	"fetcharr/internal/domain/command"
	"fetcharr/internal/domain/consts"
	"fetcharr/internal/utils/logging"

	"github.com/google/uuid"
)

// Fetch downloads the chosen format into a per-request temp directory and
// returns a handle to the produced file. The caller owns Cleanup.
func (e *Extractor) Fetch(ctx context.Context, url, formatID string) (*contracts.FetchResult, error) {
	dlDir := filepath.Join(e.settings.TempDir, "fetcharr-"+uuid.NewString())
	if err := os.MkdirAll(dlDir, consts.PermsGenericDir); err != nil {
		return nil, fmt.Errorf("failed to create download directory %q: %w", dlDir, err)
	}

	cleanup := func() {
		if err := os.RemoveAll(dlDir); err != nil {
			logging.E("Failed to remove download directory %q: %v", dlDir, err)
		}
	}

	cmd := e.buildFetchCommand(ctx, url, formatID, dlDir)

	logging.I("Executing download for URL %q (format %q)", url, formatID)
	logging.D(2, "Download command: %s", cmd.String())

	if out, err := cmd.CombinedOutput(); err != nil {
		cleanup()
		logging.E("Download failed for %q: %v\n%s", url, err, tail(out))
		return nil, fmt.Errorf("extraction tool failed for %q: %w", url, err)
	}

	path, err := locateOutputFile(dlDir)
	if err != nil {
		cleanup()
		return nil, err
	}

	size, err := verifyVideoDownload(path)
	if err != nil {
		cleanup()
		return nil, err
	}

	logging.S("Successfully downloaded %q (%d bytes)", path, size)

	return &contracts.FetchResult{
		Path:     path,
		Filename: filepath.Base(path),
		Size:     size,
		Cleanup:  cleanup,
	}, nil
}

// buildFetchCommand builds the command to download one format using yt-dlp.
// An empty formatID falls back to best video plus best audio.
func (e *Extractor) buildFetchCommand(ctx context.Context, url, formatID, dlDir string) *exec.Cmd {
	if formatID == "" {
		formatID = command.DefaultFormatSpec
	}

	args := make([]string, 0, 20)

	args = append(args,
		command.NoPlaylist,
		command.RestrictFilenames,
		command.Format, formatID,
		command.P, dlDir,
		command.Output, command.FilenameSyntax)

	if e.settings.OutputExt != "" {
		args = append(args, command.YtDLPOutputExtension, e.settings.OutputExt)
	}

	if cookieFile := e.cookieFile(ctx, url); cookieFile != "" {
		args = append(args, command.CookiePath, cookieFile)
	}

	if e.settings.MaxFilesize != "" {
		args = append(args, command.MaxFilesize, e.settings.MaxFilesize)
	}

	if e.settings.Retries != 0 {
		args = append(args, command.Retries, strconv.Itoa(e.settings.Retries))
	}

	args = append(args, url)

	cmd := exec.CommandContext(ctx, e.settings.YtdlpPath, args...)
	logging.D(3, "Built download command for URL %q:\n%v", url, cmd.String())

	return cmd
}

// locateOutputFile finds the single media file yt-dlp produced in dir.
func locateOutputFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read download directory %q: %w", dir, err)
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		// Skip yt-dlp partials and sidecar files.
		if strings.HasSuffix(name, ".part") || strings.HasSuffix(name, ".ytdl") {
			continue
		}
		candidates = append(candidates, filepath.Join(dir, name))
	}

	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("download produced no file in %q", dir)
	case 1:
		return candidates[0], nil
	}

	// Merged downloads can briefly leave both tracks; prefer a known video
	// container if one exists.
	for _, c := range candidates {
		ext := filepath.Ext(c)
		for _, vidExt := range consts.AllVidExtensions {
			if ext == vidExt {
				return c, nil
			}
		}
	}
	return candidates[0], nil
}

// verifyVideoDownload checks the produced file exists and is not empty,
// returning its size.
func verifyVideoDownload(videoPath string) (int64, error) {
	videoInfo, err := os.Stat(videoPath)
	if err != nil {
		return 0, fmt.Errorf("video file verification failed: %w", err)
	}
	if videoInfo.IsDir() {
		return 0, fmt.Errorf("dev error: video path created is a directory")
	}
	if videoInfo.Size() == 0 {
		return 0, fmt.Errorf("video file is empty: %s", videoPath)
	}

	return videoInfo.Size(), nil
}

// tail trims subprocess output to its last few lines for error logs.
func tail(out []byte) string {
	const maxLines = 8

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return strings.Join(lines, "\n")
}
