package models

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// ErrDuplicateOrderID is returned when an order with the same ID already
// exists.
var ErrDuplicateOrderID = errors.New("order id already exists")

// ErrOrderCustomerMissing is returned when an order references a customer
// that does not exist.
var ErrOrderCustomerMissing = errors.New("order references a non-existent customer")

type OrdersRepository struct {
	db *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		db: db,
	}
}

func (r *OrdersRepository) GetAllOrders() ([]Order, error) {
	var orders []Order
	if err := r.db.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrdersRepository) GetOrderByID(id uint) (*Order, error) {
	var order Order
	if err := r.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err // Other DB error
	}
	return &order, nil
}

// CreateOrder inserts exactly one row. Associations are omitted so the
// foreign key on customer_id is checked by the store, not upserted around.
func (r *OrdersRepository) CreateOrder(order *Order) error {
	if err := r.db.Omit(clause.Associations).Create(order).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrOrderCustomerMissing
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateOrderID
		}
		return err
	}
	return nil
}
