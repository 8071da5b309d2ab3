package dto

type CandidateResponse struct {
	ID          int64    `json:"id"`
	DisplayName string   `json:"display_name"`
	Gender      string   `json:"gender"`
	Age         int      `json:"age"`
	City        string   `json:"city"`
	Bio         string   `json:"bio"`
	PhotoURL    string   `json:"photo_url,omitempty"`
	Tags        []string `json:"tags"`
}

type FeedResponse struct {
	Items []CandidateResponse `json:"items"`
}
