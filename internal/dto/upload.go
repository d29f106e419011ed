package dto

// UploadResponse reports a completed media upload.
type UploadResponse struct {
	Message  string `json:"message"`
	ImageURL string `json:"imageUrl"`
	Key      string `json:"key"`
}
