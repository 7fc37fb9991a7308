package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_category_store.go -package=mocks github.com/Shohjahon77877/e-shop-florify/internal/catalog/domain CategoryStore
//go:generate mockgen -destination=../../mocks/mock_product_store.go -package=mocks github.com/Shohjahon77877/e-shop-florify/internal/catalog/domain ProductStore
//go:generate mockgen -destination=../../mocks/mock_sale_store.go -package=mocks github.com/Shohjahon77877/e-shop-florify/internal/catalog/domain SaleStore

type CategoryStore interface {
	GetByName(ctx context.Context, name string) (*Category, error)
	GetByID(ctx context.Context, id string) (*Category, error)
	Create(ctx context.Context, category *Category) error
	ListWithProducts(ctx context.Context) ([]CategoryWithProducts, error)
	GetWithProducts(ctx context.Context, id string) (*CategoryWithProducts, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id string) error
}

type ProductStore interface {
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, product *Product) error
	List(ctx context.Context) ([]ProductDetail, error)
	GetDetail(ctx context.Context, id string) (*ProductDetail, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id string) error
}

// SaleStore owns sale records. CreateSale runs the whole sale inside one
// transaction: existence checks, a conditional stock decrement that only
// succeeds when enough stock remains, and the insert.
type SaleStore interface {
	CreateSale(ctx context.Context, productID, clientID string, quantity int) (*SoldProduct, error)
	GetByID(ctx context.Context, id string) (*SoldProductDetail, error)
	List(ctx context.Context) ([]SoldProductDetail, error)
	Update(ctx context.Context, sale *SoldProduct) error
	Delete(ctx context.Context, id string) error
}
