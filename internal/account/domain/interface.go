package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_account_lookup.go -package=mocks github.com/Shohjahon77877/e-shop-florify/internal/account/domain AccountLookup
//go:generate mockgen -destination=../../mocks/mock_notifier.go -package=mocks github.com/Shohjahon77877/e-shop-florify/internal/account/domain Notifier
//go:generate mockgen -destination=../../mocks/mock_admin_store.go -package=mocks github.com/Shohjahon77877/e-shop-florify/internal/account/domain AdminStore
//go:generate mockgen -destination=../../mocks/mock_salesman_store.go -package=mocks github.com/Shohjahon77877/e-shop-florify/internal/account/domain SalesmanStore
//go:generate mockgen -destination=../../mocks/mock_client_store.go -package=mocks github.com/Shohjahon77877/e-shop-florify/internal/account/domain ClientStore

// AccountRecord is the role-independent view of a stored account that the
// session lifecycle works with. The concrete value behind it is the full
// role-specific record, so handlers can return it in a response body as-is.
type AccountRecord interface {
	AccountID() string
	AccountEmail() string
	AccountPasswordHash() string
	AccountRole() string
}

// AccountLookup resolves accounts for one role. Implementations return
// (nil, nil) when no account matches.
type AccountLookup interface {
	GetByEmail(ctx context.Context, email string) (AccountRecord, error)
	GetByID(ctx context.Context, id string) (AccountRecord, error)
}

// Notifier delivers a message to an account's registered email address.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

type AdminStore interface {
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	GetByID(ctx context.Context, id string) (*Admin, error)
	GetByUsername(ctx context.Context, username string) (*Admin, error)
	GetByRole(ctx context.Context, role string) (*Admin, error)
	Create(ctx context.Context, admin *Admin) error
	List(ctx context.Context) ([]Admin, error)
	Update(ctx context.Context, admin *Admin) error
	Delete(ctx context.Context, id string) error
}

type SalesmanStore interface {
	GetByEmail(ctx context.Context, email string) (*Salesman, error)
	GetByID(ctx context.Context, id string) (*Salesman, error)
	GetByUsername(ctx context.Context, username string) (*Salesman, error)
	Create(ctx context.Context, salesman *Salesman) error
	ListWithProducts(ctx context.Context) ([]SalesmanWithProducts, error)
	GetWithProducts(ctx context.Context, id string) (*SalesmanWithProducts, error)
	Update(ctx context.Context, salesman *Salesman) error
	Delete(ctx context.Context, id string) error
}

type ClientStore interface {
	GetByEmail(ctx context.Context, email string) (*Client, error)
	GetByID(ctx context.Context, id string) (*Client, error)
	GetByPhone(ctx context.Context, phone string) (*Client, error)
	Create(ctx context.Context, client *Client) error
	Update(ctx context.Context, client *Client) error
	Delete(ctx context.Context, id string) error
}
