package asset

import "time"

type ModelListResponse struct {
	Models []string `json:"models"`
}

type ModelURLResponse struct {
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}
