package models

import (
	"github.com/shopspring/decimal"
)

// Product represents an item for sale.
// It includes a globally unique name and a fixed-point price.
type Product struct {
	ID    uint            `gorm:"primaryKey"`
	Name  string          `gorm:"uniqueIndex;not null"`
	Price decimal.Decimal `gorm:"type:decimal(18,2)"`
}

func (p *Product) TableName() string {
	return "products"
}
