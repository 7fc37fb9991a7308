package dto

import "github.com/Shohjahon77877/e-shop-florify/internal/apperr"

type CreateCategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (in *CreateCategoryInput) Validate() error {
	if in.Name == "" {
		return apperr.Unprocessable("Name is required")
	}
	if in.Description == "" {
		return apperr.Unprocessable("Description is required")
	}
	return nil
}

type UpdateCategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type CreateProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Color       string  `json:"color"`
	CategoryID  string  `json:"category_id"`
	SalesmanID  string  `json:"salesman_id"`
}

func (in *CreateProductInput) Validate() error {
	switch {
	case in.Name == "":
		return apperr.Unprocessable("Name is required")
	case in.Description == "":
		return apperr.Unprocessable("Description is required")
	case in.Price <= 0:
		return apperr.Unprocessable("Price must be positive")
	case in.Quantity < 0:
		return apperr.Unprocessable("Quantity must not be negative")
	case in.Color == "":
		return apperr.Unprocessable("Color is required")
	case in.CategoryID == "":
		return apperr.Unprocessable("Category id is required")
	case in.SalesmanID == "":
		return apperr.Unprocessable("Salesman id is required")
	}
	return nil
}

type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	Color       *string  `json:"color"`
	CategoryID  *string  `json:"category_id"`
	SalesmanID  *string  `json:"salesman_id"`
}

func (in *UpdateProductInput) Validate() error {
	if in.Price != nil && *in.Price <= 0 {
		return apperr.Unprocessable("Price must be positive")
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return apperr.Unprocessable("Quantity must not be negative")
	}
	return nil
}

type CreateSoldProductInput struct {
	ProductID string `json:"product_id"`
	ClientID  string `json:"client_id"`
	Quantity  int    `json:"quantity"`
}

func (in *CreateSoldProductInput) Validate() error {
	switch {
	case in.ProductID == "":
		return apperr.Unprocessable("Product id is required")
	case in.ClientID == "":
		return apperr.Unprocessable("Client id is required")
	case in.Quantity <= 0:
		return apperr.Unprocessable("Quantity must be positive")
	}
	return nil
}

type UpdateSoldProductInput struct {
	ProductID string `json:"product_id"`
	ClientID  string `json:"client_id"`
	Quantity  int    `json:"quantity"`
}

func (in *UpdateSoldProductInput) Validate() error {
	switch {
	case in.ProductID == "":
		return apperr.Unprocessable("Product id is required")
	case in.ClientID == "":
		return apperr.Unprocessable("Client id is required")
	case in.Quantity <= 0:
		return apperr.Unprocessable("Quantity must be positive")
	}
	return nil
}
