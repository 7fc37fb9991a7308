package dto

import "github.com/Shohjahon77877/e-shop-florify/internal/apperr"

type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *SignInInput) Validate() error {
	if !validEmail(in.Email) {
		return apperr.Unprocessable("A valid email is required")
	}
	if in.Password == "" {
		return apperr.Unprocessable("Password is required")
	}
	return nil
}

type ConfirmSignInInput struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (in *ConfirmSignInInput) Validate() error {
	if !validEmail(in.Email) {
		return apperr.Unprocessable("A valid email is required")
	}
	if len(in.OTP) != 6 {
		return apperr.Unprocessable("OTP must be 6 characters long")
	}
	return nil
}
