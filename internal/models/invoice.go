package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusCancelled = "cancelled"
)

type Invoice struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	CustomerID    uint            `gorm:"index;not null" json:"customerId"`
	Date          time.Time       `gorm:"not null" json:"date"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Status        string          `gorm:"index;not null;default:pending" json:"status"`
	InvoiceNumber string          `gorm:"uniqueIndex" json:"invoiceNumber"`
	// Snapshot of the issuing store at creation time, rendered on the
	// printable invoice.
	StoreName    string `json:"storeName"`
	StoreAddress string `json:"storeAddress"`
	StorePhone   string `json:"storePhone,omitempty"`
	StoreEmail   string `json:"storeEmail,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

type InvoiceItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	InvoiceID uint `gorm:"index;not null" json:"invoiceId"`
	ProductID uint `gorm:"index;not null" json:"productId"`
	Quantity  int  `gorm:"not null" json:"quantity"`
	// Price is captured from the product at invoice creation and never
	// re-read afterwards, so historical invoices survive price changes.
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}

type InvoiceItemWithProduct struct {
	InvoiceItem
	Product Product `json:"product"`
}

type InvoiceWithDetails struct {
	Invoice
	Items    []InvoiceItemWithProduct `json:"items"`
	Customer Customer                 `json:"customer"`
}
