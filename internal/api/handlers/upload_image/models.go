package upload_image

// UploadResponse HTTP response model
type UploadResponse struct {
	URL string `json:"url"`
}
