package dto

// The login and register bodies carry the plaintext password in a field
// named passwordHash, matching what the frontend sends.

type LoginRequest struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}

type LoginResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	Message      string `json:"message"`
}

type RegisterRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type RefreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
