package api

// TokenResponse is returned by the auth endpoints.
type TokenResponse struct {
	Token string `json:"token"`
}

// SavedResponse acknowledges a successful create, update or delete.
type SavedResponse struct {
	Message string `json:"message"`
}

// ImageResponse carries the public URL of an uploaded image.
type ImageResponse struct {
	URL string `json:"url"`
}
