package models

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	// A pooled in-memory sqlite would open separate databases per
	// connection; pin it to one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&Customer{}, &Product{}, &Order{}))
	return db
}

func strPtr(s string) *string { return &s }

func TestCustomersRepository(t *testing.T) {
	t.Run("create then get by id returns the same name", func(t *testing.T) {
		repo := NewCustomersRepository(newTestDB(t))

		customer := &Customer{Name: strPtr("Alice")}
		require.NoError(t, repo.CreateCustomer(customer))
		require.NotZero(t, customer.ID, "store should assign an ID")

		got, err := repo.GetCustomerByID(customer.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice", *got.Name)
	})

	t.Run("client-supplied id is honored", func(t *testing.T) {
		repo := NewCustomersRepository(newTestDB(t))

		require.NoError(t, repo.CreateCustomer(&Customer{ID: 42, Name: strPtr("Bob")}))

		got, err := repo.GetCustomerByID(42)
		require.NoError(t, err)
		assert.Equal(t, uint(42), got.ID)
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		repo := NewCustomersRepository(newTestDB(t))

		require.NoError(t, repo.CreateCustomer(&Customer{ID: 7, Name: strPtr("Alice")}))

		err := repo.CreateCustomer(&Customer{ID: 7, Name: strPtr("Bob")})
		assert.ErrorIs(t, err, ErrDuplicateCustomerID)
	})

	t.Run("get by unknown id returns not found", func(t *testing.T) {
		repo := NewCustomersRepository(newTestDB(t))

		_, err := repo.GetCustomerByID(99999)
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})

	t.Run("empty table lists no customers", func(t *testing.T) {
		repo := NewCustomersRepository(newTestDB(t))

		customers, err := repo.GetAllCustomers()
		require.NoError(t, err)
		assert.Empty(t, customers)
	})
}

func TestProductsRepository(t *testing.T) {
	t.Run("duplicate name fails and leaves the table unchanged", func(t *testing.T) {
		repo := NewProductsRepository(newTestDB(t))

		require.NoError(t, repo.CreateProduct(&Product{
			Name:  "widget",
			Price: decimal.RequireFromString("9.99"),
		}))

		err := repo.CreateProduct(&Product{
			Name:  "widget",
			Price: decimal.RequireFromString("5.00"),
		})
		assert.ErrorIs(t, err, ErrDuplicateProductName)

		products, err := repo.GetAllProducts()
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("price survives the round trip exactly", func(t *testing.T) {
		repo := NewProductsRepository(newTestDB(t))

		product := &Product{Name: "gadget", Price: decimal.RequireFromString("19.99")}
		require.NoError(t, repo.CreateProduct(product))

		got, err := repo.GetProductByID(product.ID)
		require.NoError(t, err)
		assert.Equal(t, "19.99", got.Price.String())
	})

	t.Run("get by unknown id returns not found", func(t *testing.T) {
		repo := NewProductsRepository(newTestDB(t))

		_, err := repo.GetProductByID(99999)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestOrdersRepository(t *testing.T) {
	t.Run("create persists the exact subtotal and customer link", func(t *testing.T) {
		db := newTestDB(t)
		customersRepo := NewCustomersRepository(db)
		ordersRepo := NewOrdersRepository(db)

		customer := &Customer{Name: strPtr("Alice")}
		require.NoError(t, customersRepo.CreateCustomer(customer))

		order := &Order{
			Subtotal:   decimal.RequireFromString("19.99"),
			CustomerID: &customer.ID,
		}
		require.NoError(t, ordersRepo.CreateOrder(order))

		got, err := ordersRepo.GetOrderByID(order.ID)
		require.NoError(t, err)
		assert.Equal(t, "19.99", got.Subtotal.String())
		require.NotNil(t, got.CustomerID)
		assert.Equal(t, customer.ID, *got.CustomerID)
		assert.Nil(t, got.Customer, "association must not be loaded")
	})

	t.Run("get by unknown id returns not found", func(t *testing.T) {
		repo := NewOrdersRepository(newTestDB(t))

		_, err := repo.GetOrderByID(99999)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("empty table lists no orders", func(t *testing.T) {
		repo := NewOrdersRepository(newTestDB(t))

		orders, err := repo.GetAllOrders()
		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}
