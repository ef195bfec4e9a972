package models

// FormatsRequest is the body of a format lookup call.
type FormatsRequest struct {
	URL string `json:"url"`
}

// DownloadRequest is the body of a download call.
type DownloadRequest struct {
	URL      string `json:"url"`
	FormatID string `json:"format_id"`
}

// PreviewRequest is the body of a link preview call.
type PreviewRequest struct {
	URL string `json:"url"`
}
