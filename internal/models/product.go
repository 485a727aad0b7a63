package models

import "github.com/shopspring/decimal"

type Product struct {
	ID    uint            `gorm:"primaryKey" json:"id"`
	Name  string          `gorm:"not null" json:"name"`
	SKU   string          `gorm:"column:sku;uniqueIndex;not null" json:"sku"`
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock int             `gorm:"not null;default:0" json:"stock"`
}
