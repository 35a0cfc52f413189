package dto

// LoginRequest carries the login form.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the token pair and the signed-in identity.
type LoginResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresIn    int       `json:"expires_in"`
	User         *UserInfo `json:"user"`
}

// UserInfo is the identity echoed after login and on /auth/me.
type UserInfo struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// RefreshTokenRequest exchanges a refresh token for a new pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ViewsResponse lists the menu entries the caller's role may open.
type ViewsResponse struct {
	Role  string   `json:"role"`
	Views []string `json:"views"`
}
