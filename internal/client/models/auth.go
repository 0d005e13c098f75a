package models

// SendOTPRequest is the body of POST /auth/send-otp.
type SendOTPRequest struct {
	Phone string `json:"phone"`
}

// SendOTPResponse is the outcome of POST /auth/send-otp. OTP is only
// populated by development backends.
type SendOTPResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	OTP        string `json:"otp,omitempty"`
	UserExists bool   `json:"user_exists"`
}

// VerifyOTPRequest is the body of POST /auth/verify-otp.
type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

// AuthResponse is returned by POST /auth/verify-otp.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        *User  `json:"user"`
}

// ProfileUpdate carries the fields accepted by PUT /users/profile.
type ProfileUpdate struct {
	Name     *string
	Email    *string
	ColonyID *int64
}

// ProfileResponse is returned by PUT /users/profile.
type ProfileResponse struct {
	Success bool  `json:"success"`
	User    *User `json:"user"`
}
