package dto

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@sponsorbase.app"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn" example:"43200"` // seconds
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
}
