package dto

import "github.com/Shohjahon77877/e-shop-florify/internal/apperr"

type ClientSignUpInput struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *ClientSignUpInput) Validate() error {
	switch {
	case in.Name == "":
		return apperr.Unprocessable("Name is required")
	case in.Phone == "":
		return apperr.Unprocessable("Phone is required")
	case in.Address == "":
		return apperr.Unprocessable("Address is required")
	case !validEmail(in.Email):
		return apperr.Unprocessable("A valid email is required")
	case !validPassword(in.Password):
		return apperr.Unprocessable("Password must be 8-20 characters with upper, lower, digit and symbol")
	}
	return nil
}

type UpdateClientInput struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (in *UpdateClientInput) Validate() error {
	if in.Email != nil && !validEmail(*in.Email) {
		return apperr.Unprocessable("A valid email is required")
	}
	if in.Password != nil && !validPassword(*in.Password) {
		return apperr.Unprocessable("Password must be 8-20 characters with upper, lower, digit and symbol")
	}
	return nil
}
