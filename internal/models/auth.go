package models

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// example: admin
	Username string `json:"username" validate:"required"`

	// Password
	// required: true
	// example: Qwerty777$$
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Username of the authenticated user
	// example: admin
	User string `json:"user"`

	// Signed JWT token
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	JWTToken string `json:"jwt_token"`
}

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// example: logout
	Status string `json:"status"`
}

// ResetPasswordRequest represents the JSON body for password reset
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// required: true
	// example: admin
	Username string `json:"username" validate:"required"`

	// required: true
	OldPassword string `json:"old_password" validate:"required"`

	// New password, at least eight characters with a digit, upper and lower case letters and a special character
	// required: true
	NewPassword1 string `json:"new_password1" validate:"required,password"`

	// Confirmation of the new password
	// required: true
	NewPassword2 string `json:"new_password2" validate:"required,eqfield=NewPassword1"`
}

// ErrorResponse is the generic error body
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Human readable reason
	// example: Token has expired.
	Reason string `json:"reason"`
}
