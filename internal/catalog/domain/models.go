package domain

import "time"

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CategoryWithProducts struct {
	Category
	Products []Product `json:"products"`
}

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Color       string  `json:"color"`
	CategoryID  string  `json:"category_id,omitempty"`
	SalesmanID  string  `json:"salesman_id,omitempty"`
}

// ProductDetail carries the names of the related category and salesman so
// listings don't need follow-up requests.
type ProductDetail struct {
	Product
	CategoryName string `json:"category_name,omitempty"`
	SalesmanName string `json:"salesman_name,omitempty"`
}

type SoldProduct struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	ClientID   string    `json:"client_id"`
	Quantity   int       `json:"quantity"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ClientSummary is the slim buyer view attached to sale records.
type ClientSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type SoldProductDetail struct {
	SoldProduct
	Product *Product       `json:"product,omitempty"`
	Client  *ClientSummary `json:"client,omitempty"`
}
