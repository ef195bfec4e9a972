package extraction

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"

	"fetcharr/internal/domain/command"
	"fetcharr/internal/models"
	"fetcharr/internal/utils/logging"
)

// Probe lists formats for the given URL via 'yt-dlp -J --no-playlist'.
func (e *Extractor) Probe(ctx context.Context, url string) (*models.VideoInfo, error) {
	cmd := e.buildProbeCommand(ctx, url)

	logging.I("Executing format probe for URL %q", url)
	logging.D(2, "Probe command: %s", cmd.String())

	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			logging.E("Format probe failed for %q: %s", url, string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("extraction tool failed for %q: %w", url, err)
	}

	info, err := parseInfoJSON(out)
	if err != nil {
		return nil, fmt.Errorf("failed to parse extraction output for %q: %w", url, err)
	}

	logging.S("Probe for %q returned %d formats", url, len(info.Formats))
	return info, nil
}

// buildProbeCommand builds the metadata-only command for the given URL.
func (e *Extractor) buildProbeCommand(ctx context.Context, url string) *exec.Cmd {
	args := make([]string, 0, 12)

	args = append(args,
		command.OutputJSON,
		command.NoPlaylist,
		command.NoWarnings,
		command.FormatSort, command.FormatSortSpec)

	if cookieFile := e.cookieFile(ctx, url); cookieFile != "" {
		args = append(args, command.CookiePath, cookieFile)
	}

	if e.settings.Retries != 0 {
		args = append(args, command.Retries, strconv.Itoa(e.settings.Retries))
	}

	args = append(args, url)

	cmd := exec.CommandContext(ctx, e.settings.YtdlpPath, args...)
	logging.D(3, "Built probe command for URL %q:\n%v", url, cmd.String())

	return cmd
}
