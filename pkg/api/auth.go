package api

// PasswordGrantRequest is the sign-in payload (grant_type=password).
type PasswordGrantRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshGrantRequest is the token refresh payload (grant_type=refresh_token).
type RefreshGrantRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// SignUpRequest is the registration payload.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RecoverRequest triggers a password-recovery email.
type RecoverRequest struct {
	Email string `json:"email"`
}

// User is the subset of the auth user object the client cares about.
type User struct {
	ID    string `json:"id"`    // UUID, matches the sub claim of the access token
	Email string `json:"email"` // login email
}

// TokenResponse is returned by sign-in, sign-up and refresh.
// Both tokens rotate on every refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`  // JWT access token
	TokenType    string `json:"token_type"`    // always "bearer"
	RefreshToken string `json:"refresh_token"` // opaque refresh token
	ExpiresIn    int64  `json:"expires_in"`    // access token lifetime in seconds
	User         User   `json:"user"`
}

// ErrorResponse is the error body the backend returns. The auth endpoints
// use error/error_description, the data endpoints use msg.
type ErrorResponse struct {
	Error            string `json:"error,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
	Message          string `json:"msg,omitempty"`
}
