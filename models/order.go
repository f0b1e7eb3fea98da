package models

import (
	"github.com/shopspring/decimal"
)

// Order represents a placed order with its running subtotal.
// The Customer field only declares the foreign key on customer_id;
// it is never preloaded and never written on insert.
type Order struct {
	ID         uint            `gorm:"primaryKey"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(18,2)"`
	CustomerID *uint
	Customer   *Customer `gorm:"foreignKey:CustomerID"`
}

func (o *Order) TableName() string {
	return "orders"
}
