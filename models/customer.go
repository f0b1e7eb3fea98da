package models

// Customer represents a buyer in the company database.
// Name is optional; rows created without one keep a NULL name.
type Customer struct {
	ID   uint `gorm:"primaryKey"`
	Name *string
}

func (c *Customer) TableName() string {
	return "customers"
}
