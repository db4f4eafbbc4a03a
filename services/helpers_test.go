package services

import (
	"testing"

	"orderdesk-backend/repository"
	"orderdesk-backend/testutil"
	"orderdesk-backend/utils"

	"golang.org/x/crypto/bcrypt"
)

func init() {
	utils.PasswordCost = bcrypt.MinCost
}

type fixture struct {
	catalog   *repository.ServiceStore
	orders    *repository.OrderRepository
	admin     *CatalogAdmin
	lifecycle *OrderLifecycle
	lookup    *Lookup
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	catalog := repository.NewServiceStore(db, nil)
	orders := repository.NewOrderRepository(db, nil)
	return &fixture{
		catalog:   catalog,
		orders:    orders,
		admin:     NewCatalogAdmin(catalog),
		lifecycle: NewOrderLifecycle(orders, catalog),
		lookup:    NewLookup(orders),
	}
}

func ptr[T any](v T) *T { return &v }
