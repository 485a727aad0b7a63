package store

import (
	"sort"
	"sync"
	"time"

	"store-admin-backend/internal/models"
)

// MemoryStore is the volatile Store backend, used for local development
// and tests. One mutex guards every map, so the multi-entity invoice
// write is atomic by construction: all validation happens before the
// first mutation, under the same lock.
type MemoryStore struct {
	mu           sync.Mutex
	products     map[uint]models.Product
	customers    map[uint]models.Customer
	invoices     map[uint]models.Invoice
	invoiceItems map[uint]models.InvoiceItem

	nextProductID  uint
	nextCustomerID uint
	nextInvoiceID  uint
	nextItemID     uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products:       make(map[uint]models.Product),
		customers:      make(map[uint]models.Customer),
		invoices:       make(map[uint]models.Invoice),
		invoiceItems:   make(map[uint]models.InvoiceItem),
		nextProductID:  1,
		nextCustomerID: 1,
		nextInvoiceID:  1,
		nextItemID:     1,
	}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) ListProducts() ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (s *MemoryStore) GetProduct(id uint) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

func (s *MemoryStore) CreateProduct(data NewProduct) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.skuTaken(data.SKU, 0) {
		return nil, ErrDuplicateSKU
	}

	p := models.Product{
		ID:    s.nextProductID,
		Name:  data.Name,
		SKU:   data.SKU,
		Price: data.Price,
		Stock: data.Stock,
	}
	s.nextProductID++
	s.products[p.ID] = p
	return &p, nil
}

func (s *MemoryStore) UpdateProduct(id uint, patch ProductPatch) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	if patch.SKU != nil && s.skuTaken(*patch.SKU, id) {
		return nil, ErrDuplicateSKU
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	s.products[id] = p
	return &p, nil
}

// skuTaken reports whether sku belongs to a product other than excludeID.
// Caller must hold the lock.
func (s *MemoryStore) skuTaken(sku string, excludeID uint) bool {
	for _, p := range s.products {
		if p.SKU == sku && p.ID != excludeID {
			return true
		}
	}
	return false
}

func (s *MemoryStore) ListCustomers() ([]models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customers := make([]models.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		customers = append(customers, c)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].ID < customers[j].ID })
	return customers, nil
}

func (s *MemoryStore) GetCustomer(id uint) (*models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customers[id]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	return &c, nil
}

func (s *MemoryStore) CreateCustomer(data NewCustomer) (*models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := models.Customer{
		ID:    s.nextCustomerID,
		Name:  data.Name,
		Email: data.Email,
		Phone: data.Phone,
	}
	s.nextCustomerID++
	s.customers[c.ID] = c
	return &c, nil
}

func (s *MemoryStore) ListInvoices() ([]models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	invoices := make([]models.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		invoices = append(invoices, inv)
	}
	sort.Slice(invoices, func(i, j int) bool { return invoices[i].ID < invoices[j].ID })
	return invoices, nil
}

func (s *MemoryStore) GetInvoice(id uint) (*models.InvoiceWithDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoices[id]
	if !ok {
		return nil, ErrInvoiceNotFound
	}

	items := make([]models.InvoiceItemWithProduct, 0)
	for _, item := range s.invoiceItems {
		if item.InvoiceID != id {
			continue
		}
		items = append(items, models.InvoiceItemWithProduct{
			InvoiceItem: item,
			Product:     s.products[item.ProductID],
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	return &models.InvoiceWithDetails{
		Invoice:  inv,
		Items:    items,
		Customer: s.customers[inv.CustomerID],
	}, nil
}

func (s *MemoryStore) CreateInvoice(inv NewInvoice, items []NewInvoiceItem) (*models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[inv.CustomerID]; !ok {
		return nil, ErrCustomerNotFound
	}
	// Validate every item before mutating anything, so a failure leaves
	// no partial state behind. Per-product totals matter here: two items
	// for the same product must jointly fit in its stock.
	needed := make(map[uint]int)
	for _, item := range items {
		needed[item.ProductID] += item.Quantity
	}
	for productID, qty := range needed {
		p, ok := s.products[productID]
		if !ok {
			return nil, ErrProductNotFound
		}
		if p.Stock < qty {
			return nil, ErrInsufficientStock
		}
	}

	invoice := models.Invoice{
		ID:            s.nextInvoiceID,
		CustomerID:    inv.CustomerID,
		Date:          time.Now(),
		Total:         inv.Total,
		Status:        inv.Status,
		InvoiceNumber: inv.InvoiceNumber,
		StoreName:     inv.StoreName,
		StoreAddress:  inv.StoreAddress,
		StorePhone:    inv.StorePhone,
		StoreEmail:    inv.StoreEmail,
		Notes:         inv.Notes,
	}
	s.nextInvoiceID++
	s.invoices[invoice.ID] = invoice

	for _, item := range items {
		record := models.InvoiceItem{
			ID:        s.nextItemID,
			InvoiceID: invoice.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		s.nextItemID++
		s.invoiceItems[record.ID] = record

		p := s.products[item.ProductID]
		p.Stock -= item.Quantity
		s.products[item.ProductID] = p
	}

	return &invoice, nil
}

func (s *MemoryStore) UpdateInvoiceStatus(id uint, status string) (*models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoices[id]
	if !ok {
		return nil, ErrInvoiceNotFound
	}
	inv.Status = status
	s.invoices[id] = inv
	return &inv, nil
}
