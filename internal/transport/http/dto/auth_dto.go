package dto

type SignUpRequest struct {
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	DisplayName string   `json:"display_name"`
	Gender      string   `json:"gender"`
	Orientation string   `json:"orientation"`
	Age         int      `json:"age"`
	City        string   `json:"city"`
	Bio         string   `json:"bio"`
	Tags        []string `json:"tags"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type AuthTokensResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	ExpiresInSec int64           `json:"expires_in_sec"`
	Profile      ProfileResponse `json:"profile"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}
