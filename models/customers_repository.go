package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrCustomerNotFound is returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrDuplicateCustomerID is returned when a customer with the same ID
// already exists.
var ErrDuplicateCustomerID = errors.New("customer id already exists")

type CustomersRepository struct {
	db *gorm.DB
}

func NewCustomersRepository(db *gorm.DB) *CustomersRepository {
	return &CustomersRepository{
		db: db,
	}
}

func (r *CustomersRepository) GetAllCustomers() ([]Customer, error) {
	var customers []Customer
	if err := r.db.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *CustomersRepository) GetCustomerByID(id uint) (*Customer, error) {
	var customer Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err // Other DB error
	}
	return &customer, nil
}

// CreateCustomer inserts the customer. A zero ID lets the store assign one;
// a client-supplied ID is honored verbatim.
func (r *CustomersRepository) CreateCustomer(customer *Customer) error {
	if err := r.db.Create(customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateCustomerID
		}
		return err
	}
	return nil
}
