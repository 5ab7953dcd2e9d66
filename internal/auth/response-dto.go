package auth

// registration response, never includes credentials
type RegisterResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResult is the service-level outcome of a login. The refresh token is
// delivered only as an HTTP-only cookie and must not appear in a JSON body.
type LoginResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"-"`
	Role         string `json:"role"`
	ExpiresIn    int64  `json:"expires_in"`
}

// body of a successful refresh
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
