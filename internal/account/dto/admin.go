package dto

import "github.com/Shohjahon77877/e-shop-florify/internal/apperr"

type CreateAdminInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (in *CreateAdminInput) Validate() error {
	if in.Username == "" {
		return apperr.Unprocessable("Username is required")
	}
	if !validEmail(in.Email) {
		return apperr.Unprocessable("A valid email is required")
	}
	if in.Phone == "" {
		return apperr.Unprocessable("Phone is required")
	}
	if !validPassword(in.Password) {
		return apperr.Unprocessable("Password must be 8-20 characters with upper, lower, digit and symbol")
	}
	return nil
}

type UpdateAdminInput struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
}

func (in *UpdateAdminInput) Validate() error {
	if in.Email != nil && !validEmail(*in.Email) {
		return apperr.Unprocessable("A valid email is required")
	}
	if in.Password != nil && !validPassword(*in.Password) {
		return apperr.Unprocessable("Password must be 8-20 characters with upper, lower, digit and symbol")
	}
	return nil
}
