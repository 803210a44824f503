package auth

type (
	LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	LoginResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
)

func ToLoginResponse(token string) LoginResponse {
	return LoginResponse{AccessToken: token, TokenType: "Bearer"}
}
