package user

import "jibuCashAPI/internal/session"

type SignUpRequest struct {
	Username        string `json:"username" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	ReferralCode    string `json:"referralCode,omitempty" validate:"omitempty,len=8,alphanum"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// Profile is what the home screen renders in its header.
type Profile struct {
	User
	Session *session.State `json:"session"`
}
