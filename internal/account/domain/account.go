package domain

import "time"

const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
)

type Admin struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	HashedPassword string    `json:"-"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Salesman struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	FullName       string    `json:"full_name"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Client struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProductSummary is the slim product view attached to salesman listings.
type ProductSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Color    string  `json:"color"`
}

type SalesmanWithProducts struct {
	Salesman
	Products []ProductSummary `json:"products"`
}

func (a *Admin) AccountID() string           { return a.ID }
func (a *Admin) AccountEmail() string        { return a.Email }
func (a *Admin) AccountPasswordHash() string { return a.HashedPassword }
func (a *Admin) AccountRole() string         { return a.Role }

func (s *Salesman) AccountID() string           { return s.ID }
func (s *Salesman) AccountEmail() string        { return s.Email }
func (s *Salesman) AccountPasswordHash() string { return s.HashedPassword }
func (s *Salesman) AccountRole() string         { return "" }

func (c *Client) AccountID() string           { return c.ID }
func (c *Client) AccountEmail() string        { return c.Email }
func (c *Client) AccountPasswordHash() string { return c.HashedPassword }
func (c *Client) AccountRole() string         { return "" }
