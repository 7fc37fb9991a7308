package service

import (
	"context"

	"github.com/Shohjahon77877/e-shop-florify/internal/account/domain"
)

// The lookup adapters narrow a role-specific store to the AccountLookup view
// the session service needs. Absent accounts come back as a nil interface,
// never a typed nil.

type adminLookup struct {
	store domain.AdminStore
}

func AdminLookup(store domain.AdminStore) domain.AccountLookup {
	return adminLookup{store: store}
}

func (l adminLookup) GetByEmail(ctx context.Context, email string) (domain.AccountRecord, error) {
	admin, err := l.store.GetByEmail(ctx, email)
	if err != nil || admin == nil {
		return nil, err
	}
	return admin, nil
}

func (l adminLookup) GetByID(ctx context.Context, id string) (domain.AccountRecord, error) {
	admin, err := l.store.GetByID(ctx, id)
	if err != nil || admin == nil {
		return nil, err
	}
	return admin, nil
}

type salesmanLookup struct {
	store domain.SalesmanStore
}

func SalesmanLookup(store domain.SalesmanStore) domain.AccountLookup {
	return salesmanLookup{store: store}
}

func (l salesmanLookup) GetByEmail(ctx context.Context, email string) (domain.AccountRecord, error) {
	salesman, err := l.store.GetByEmail(ctx, email)
	if err != nil || salesman == nil {
		return nil, err
	}
	return salesman, nil
}

func (l salesmanLookup) GetByID(ctx context.Context, id string) (domain.AccountRecord, error) {
	salesman, err := l.store.GetByID(ctx, id)
	if err != nil || salesman == nil {
		return nil, err
	}
	return salesman, nil
}

type clientLookup struct {
	store domain.ClientStore
}

func ClientLookup(store domain.ClientStore) domain.AccountLookup {
	return clientLookup{store: store}
}

func (l clientLookup) GetByEmail(ctx context.Context, email string) (domain.AccountRecord, error) {
	client, err := l.store.GetByEmail(ctx, email)
	if err != nil || client == nil {
		return nil, err
	}
	return client, nil
}

func (l clientLookup) GetByID(ctx context.Context, id string) (domain.AccountRecord, error) {
	client, err := l.store.GetByID(ctx, id)
	if err != nil || client == nil {
		return nil, err
	}
	return client, nil
}
