package dto

type PhotoResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
