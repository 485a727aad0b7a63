package billing

import (
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"store-admin-backend/internal/models"
	"store-admin-backend/internal/store"
)

var (
	ErrNoItems           = errors.New("invoice requires at least one item")
	ErrInvalidQuantity   = errors.New("item quantity must be positive")
	ErrInvalidPrice      = errors.New("item price must not be negative")
	ErrTotalMismatch     = errors.New("invoice total does not match items")
	ErrUnknownStatus     = errors.New("unknown invoice status")
	ErrInvalidTransition = errors.New("invalid invoice status transition")
)

// BillingService fronts the entity store for the invoice write paths.
// It owns the request-level checks the store contract leaves to its
// caller: item sanity, referenced-entity existence, server-side total
// verification, and the status transition table.
type BillingService struct {
	store store.Store
}

func NewBillingService(st store.Store) *BillingService {
	return &BillingService{store: st}
}

func (s *BillingService) ListInvoices() ([]models.Invoice, error) {
	return s.store.ListInvoices()
}

func (s *BillingService) GetInvoice(id uint) (*models.InvoiceWithDetails, error) {
	return s.store.GetInvoice(id)
}

func recognizedStatus(status string) bool {
	switch status {
	case models.InvoiceStatusPending, models.InvoiceStatusPaid, models.InvoiceStatusCancelled:
		return true
	}
	return false
}

// CreateInvoice validates the request and runs the invoice transaction.
// The item prices are snapshots supplied by the client (copied from the
// product at submission time); the total is recomputed from them here
// and a mismatched client total is rejected.
func (s *BillingService) CreateInvoice(inv store.NewInvoice, items []store.NewInvoiceItem) (*models.Invoice, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if item.Price.IsNegative() {
			return nil, ErrInvalidPrice
		}
	}

	if inv.Status == "" {
		inv.Status = models.InvoiceStatusPending
	}
	if !recognizedStatus(inv.Status) {
		return nil, ErrUnknownStatus
	}

	if _, err := s.store.GetCustomer(inv.CustomerID); err != nil {
		return nil, err
	}
	for _, item := range items {
		if _, err := s.store.GetProduct(item.ProductID); err != nil {
			return nil, err
		}
	}

	computed := decimal.Zero
	for _, item := range items {
		computed = computed.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if !computed.Equal(inv.Total) {
		return nil, ErrTotalMismatch
	}

	if inv.InvoiceNumber == "" {
		inv.InvoiceNumber = uuid.New().String()
	}

	return s.store.CreateInvoice(inv, items)
}

// UpdateStatus applies a status change, limited to the transitions
// pending -> paid and pending -> cancelled.
func (s *BillingService) UpdateStatus(id uint, status string) (*models.Invoice, error) {
	if !recognizedStatus(status) {
		return nil, ErrUnknownStatus
	}

	current, err := s.store.GetInvoice(id)
	if err != nil {
		return nil, err
	}
	if current.Status != models.InvoiceStatusPending || status == models.InvoiceStatusPending {
		return nil, ErrInvalidTransition
	}

	return s.store.UpdateInvoiceStatus(id, status)
}

type MonthlyRevenue struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

type RevenueSummary struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	InvoiceCount int             `json:"invoiceCount"`

	PendingCount   int             `json:"pendingCount"`
	PendingRevenue decimal.Decimal `json:"pendingRevenue"`

	PaidCount   int             `json:"paidCount"`
	PaidRevenue decimal.Decimal `json:"paidRevenue"`

	CancelledCount   int             `json:"cancelledCount"`
	CancelledRevenue decimal.Decimal `json:"cancelledRevenue"`

	Monthly []MonthlyRevenue `json:"monthly"`
}

// RevenueSummary aggregates invoice totals overall, by status, and by
// calendar month (keyed YYYY-MM, ascending).
func (s *BillingService) RevenueSummary() (*RevenueSummary, error) {
	invoices, err := s.store.ListInvoices()
	if err != nil {
		return nil, err
	}

	summary := &RevenueSummary{
		TotalRevenue:     decimal.Zero,
		PendingRevenue:   decimal.Zero,
		PaidRevenue:      decimal.Zero,
		CancelledRevenue: decimal.Zero,
	}
	byMonth := make(map[string]decimal.Decimal)

	for _, inv := range invoices {
		summary.InvoiceCount++
		summary.TotalRevenue = summary.TotalRevenue.Add(inv.Total)

		switch inv.Status {
		case models.InvoiceStatusPending:
			summary.PendingCount++
			summary.PendingRevenue = summary.PendingRevenue.Add(inv.Total)
		case models.InvoiceStatusPaid:
			summary.PaidCount++
			summary.PaidRevenue = summary.PaidRevenue.Add(inv.Total)
		case models.InvoiceStatusCancelled:
			summary.CancelledCount++
			summary.CancelledRevenue = summary.CancelledRevenue.Add(inv.Total)
		}

		month := inv.Date.Format("2006-01")
		byMonth[month] = byMonth[month].Add(inv.Total)
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)
	summary.Monthly = make([]MonthlyRevenue, 0, len(months))
	for _, month := range months {
		summary.Monthly = append(summary.Monthly, MonthlyRevenue{Month: month, Total: byMonth[month]})
	}

	return summary, nil
}
