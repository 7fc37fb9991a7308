package dto

import "github.com/Shohjahon77877/e-shop-florify/internal/apperr"

type CreateSalesmanInput struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *CreateSalesmanInput) Validate() error {
	switch {
	case in.Username == "":
		return apperr.Unprocessable("Username is required")
	case in.FullName == "":
		return apperr.Unprocessable("Full name is required")
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

type UpdateSalesmanInput struct {
	Username *string `json:"username"`
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (in *UpdateSalesmanInput) Validate() error {
	if in.Email != nil && !validEmail(*in.Email) {
		return apperr.Unprocessable("A valid email is required")
	}
	if in.Password != nil && !validPassword(*in.Password) {
		return apperr.Unprocessable("Password must be 8-20 characters with upper, lower, digit and symbol")
	}
	return nil
}
