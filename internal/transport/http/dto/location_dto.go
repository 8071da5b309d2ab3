package dto

type UpdateLocationRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type UpdateLocationResponse struct {
	City string `json:"city"`
}
