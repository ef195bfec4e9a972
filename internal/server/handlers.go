package server

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/exec"
	"strconv"

	"fetcharr/internal/domain/consts"
	"fetcharr/internal/models"
	"fetcharr/internal/utils/logging"
	"fetcharr/internal/validation"
)

// handleFormats lists the available formats for a URL.
func (ss serverStore) handleFormats(w http.ResponseWriter, r *http.Request) {
	var req models.FormatsRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	targetURL, err := validation.ValidateRequestURL(req.URL)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), consts.ProbeTimeout)
	defer cancel()

	info, err := ss.ex.Probe(ctx, targetURL)
	if err != nil {
		logging.E("Format lookup failed for %q: %v", targetURL, err)
		ss.recordHistory(targetURL, consts.HistoryOpFormats, "", "", 0, consts.HistoryStatusFailed)
		respondError(w, http.StatusBadGateway, "failed to look up formats for the given URL")
		return
	}

	ss.recordHistory(targetURL, consts.HistoryOpFormats, "", info.Title, 0, consts.HistoryStatusCompleted)
	respondJSON(w, http.StatusOK, info)
}

// handleDownload fetches the chosen format and streams it back as an
// attachment.
func (ss serverStore) handleDownload(w http.ResponseWriter, r *http.Request) {
	var req models.DownloadRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	targetURL, err := validation.ValidateRequestURL(req.URL)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	// An omitted format ID lets the extraction tool pick its default.
	formatID := req.FormatID
	if formatID != "" {
		if formatID, err = validation.ValidateFormatID(formatID); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), ss.settings.RequestTimeout)
	defer cancel()

	result, err := ss.ex.Fetch(ctx, targetURL, formatID)
	if err != nil {
		logging.E("Download failed for %q (format %q): %v", targetURL, formatID, err)
		ss.recordHistory(targetURL, consts.HistoryOpDownload, formatID, "", 0, consts.HistoryStatusFailed)
		respondError(w, http.StatusBadGateway, "failed to download the requested format")
		return
	}
	defer result.Cleanup()

	f, err := os.Open(result.Path)
	if err != nil {
		logging.E("Failed to open downloaded file %q: %v", result.Path, err)
		ss.recordHistory(targetURL, consts.HistoryOpDownload, formatID, result.Filename, 0, consts.HistoryStatusFailed)
		respondError(w, http.StatusInternalServerError, "failed to read the downloaded file")
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.E("Failed to close downloaded file %q: %v", result.Path, err)
		}
	}()

	ss.recordHistory(targetURL, consts.HistoryOpDownload, formatID, result.Filename, result.Size, consts.HistoryStatusCompleted)

	w.Header().Set("Content-Type", contentTypeForFile(result.Filename))
	w.Header().Set("Content-Disposition", attachmentDisposition(result.Filename))
	w.Header().Set("Content-Length", strconv.FormatInt(result.Size, 10))

	if _, err := io.Copy(w, f); err != nil {
		// Headers are gone; nothing to do but log.
		logging.E("Error streaming %q to client: %v", result.Filename, err)
	}
}

// handlePreview scrapes lightweight page metadata for a URL.
func (ss serverStore) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req models.PreviewRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	targetURL, err := validation.ValidateRequestURL(req.URL)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	preview, err := ss.pv.Preview(r.Context(), targetURL)
	if err != nil {
		logging.E("Preview failed for %q: %v", targetURL, err)
		respondError(w, http.StatusBadGateway, "failed to preview the given URL")
		return
	}

	respondJSON(w, http.StatusOK, preview)
}

// handleListHistory returns the most recent history entries.
func (ss serverStore) handleListHistory(w http.ResponseWriter, r *http.Request) {
	limit := 25
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	entries, found, err := ss.hs.GetRecent(limit)
	if err != nil {
		logging.E("Failed to list history: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to list history")
		return
	}
	if !found {
		entries = []*models.HistoryEntry{}
	}

	respondJSON(w, http.StatusOK, entries)
}

// handleClearHistory clears the history table.
func (ss serverStore) handleClearHistory(w http.ResponseWriter, _ *http.Request) {
	if err := ss.hs.DeleteAll(); err != nil {
		logging.E("Failed to clear history: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to clear history")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleHealthz reports extraction tool and database reachability.
func (ss serverStore) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	health := map[string]string{
		"status":   "ok",
		"ytdlp":    "ok",
		"database": "ok",
	}
	status := http.StatusOK

	if _, err := exec.LookPath(ss.settings.YtdlpPath); err != nil {
		health["status"] = "degraded"
		health["ytdlp"] = "not found"
		status = http.StatusServiceUnavailable
	}

	if db := ss.hs.GetDB(); db != nil {
		if err := db.Ping(); err != nil {
			health["status"] = "degraded"
			health["database"] = "unreachable"
			status = http.StatusServiceUnavailable
		}
	}

	respondJSON(w, status, health)
}

// recordHistory stores one history entry. Failures log and never affect the
// proxied operation.
func (ss serverStore) recordHistory(url, operation, formatID, title string, filesize int64, status string) {
	if ss.hs == nil {
		return
	}

	entry := &models.HistoryEntry{
		URL:       url,
		Operation: operation,
		FormatID:  formatID,
		Title:     title,
		Filesize:  filesize,
		Status:    status,
	}
	if _, err := ss.hs.AddEntry(entry); err != nil {
		logging.E("Failed to record history for %q: %v", url, err)
	}
}
