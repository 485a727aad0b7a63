package store

import (
	"errors"

	"github.com/shopspring/decimal"

	"store-admin-backend/internal/models"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrInvoiceNotFound   = errors.New("invoice not found")
	ErrDuplicateSKU      = errors.New("sku already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type NewProduct struct {
	Name  string
	SKU   string
	Price decimal.Decimal
	Stock int
}

// ProductPatch carries a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name  *string
	SKU   *string
	Price *decimal.Decimal
	Stock *int
}

type NewCustomer struct {
	Name  string
	Email string
	Phone string
}

type NewInvoice struct {
	CustomerID    uint
	Total         decimal.Decimal
	Status        string
	InvoiceNumber string
	StoreName     string
	StoreAddress  string
	StorePhone    string
	StoreEmail    string
	Notes         string
}

type NewInvoiceItem struct {
	ProductID uint
	Quantity  int
	Price     decimal.Decimal
}

// Store is the entity store contract. Both backends (in-memory and
// Postgres) satisfy it identically, including the sentinel errors above.
//
// CreateInvoice is the one multi-entity write path: it persists the
// invoice header and its items and decrements each referenced product's
// stock as a single all-or-nothing operation. Stock can never go
// negative; a decrement that would do so fails the whole operation with
// ErrInsufficientStock.
type Store interface {
	ListProducts() ([]models.Product, error)
	GetProduct(id uint) (*models.Product, error)
	CreateProduct(data NewProduct) (*models.Product, error)
	UpdateProduct(id uint, patch ProductPatch) (*models.Product, error)

	ListCustomers() ([]models.Customer, error)
	GetCustomer(id uint) (*models.Customer, error)
	CreateCustomer(data NewCustomer) (*models.Customer, error)

	ListInvoices() ([]models.Invoice, error)
	GetInvoice(id uint) (*models.InvoiceWithDetails, error)
	CreateInvoice(inv NewInvoice, items []NewInvoiceItem) (*models.Invoice, error)
	UpdateInvoiceStatus(id uint, status string) (*models.Invoice, error)
}
