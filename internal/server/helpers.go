package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"fetcharr/internal/domain/consts"
	"fetcharr/internal/utils/logging"
)

const maxRequestBody = 1 << 20 // 1 MiB

// decodeJSONBody decodes a JSON request body into dst, writing an error
// response and returning false on failure.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.E("Failed to encode response: %v", err)
	}
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// contentTypeForFile maps a filename's extension to a MIME type.
func contentTypeForFile(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ct, ok := consts.ContentTypeMap[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}

// attachmentDisposition builds a Content-Disposition header value for
// filename, quoting and escaping as needed.
func attachmentDisposition(filename string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(filename)
	return fmt.Sprintf(`attachment; filename="%s"`, escaped)
}
