package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"store-admin-backend/internal/models"
)

// GormStore is the persistent Store backend on Postgres. It relies on
// the connection being opened with TranslateError so unique-index
// violations surface as gorm.ErrDuplicatedKey.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var _ Store = (*GormStore)(nil)

func (s *GormStore) ListProducts() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Order("id ASC").Find(&products).Error
	return products, err
}

func (s *GormStore) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *GormStore) CreateProduct(data NewProduct) (*models.Product, error) {
	product := models.Product{
		Name:  data.Name,
		SKU:   data.SKU,
		Price: data.Price,
		Stock: data.Stock,
	}
	if err := s.db.Create(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSKU
		}
		return nil, err
	}
	return &product, nil
}

func (s *GormStore) UpdateProduct(id uint, patch ProductPatch) (*models.Product, error) {
	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.SKU != nil {
		updates["sku"] = *patch.SKU
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.Stock != nil {
		updates["stock"] = *patch.Stock
	}

	var product models.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&product).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateSKU
			}
			return err
		}
		return tx.First(&product, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *GormStore) ListCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	err := s.db.Order("id ASC").Find(&customers).Error
	return customers, err
}

func (s *GormStore) GetCustomer(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (s *GormStore) CreateCustomer(data NewCustomer) (*models.Customer, error) {
	customer := models.Customer{
		Name:  data.Name,
		Email: data.Email,
		Phone: data.Phone,
	}
	if err := s.db.Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *GormStore) ListInvoices() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := s.db.Order("id ASC").Find(&invoices).Error
	return invoices, err
}

func (s *GormStore) GetInvoice(id uint) (*models.InvoiceWithDetails, error) {
	var invoice models.Invoice
	if err := s.db.First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	var items []models.InvoiceItem
	if err := s.db.Where("invoice_id = ?", id).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}

	productIDs := make([]uint, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}
	productsByID := make(map[uint]models.Product, len(productIDs))
	if len(productIDs) > 0 {
		var products []models.Product
		if err := s.db.Find(&products, "id IN ?", productIDs).Error; err != nil {
			return nil, err
		}
		for _, p := range products {
			productsByID[p.ID] = p
		}
	}

	joined := make([]models.InvoiceItemWithProduct, 0, len(items))
	for _, item := range items {
		joined = append(joined, models.InvoiceItemWithProduct{
			InvoiceItem: item,
			Product:     productsByID[item.ProductID],
		})
	}

	var customer models.Customer
	if err := s.db.First(&customer, "id = ?", invoice.CustomerID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return &models.InvoiceWithDetails{
		Invoice:  invoice,
		Items:    joined,
		Customer: customer,
	}, nil
}

func (s *GormStore) CreateInvoice(inv NewInvoice, items []NewInvoiceItem) (*models.Invoice, error) {
	invoice := models.Invoice{
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

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Customer{}).Where("id = ?", inv.CustomerID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrCustomerNotFound
		}

		if err := tx.Create(&invoice).Error; err != nil {
			return err
		}

		for _, item := range items {
			// Conditional decrement: the WHERE guard makes the update a
			// no-op when stock would go negative, which keeps concurrent
			// invoice creations from both draining the same units.
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				var n int64
				if err := tx.Model(&models.Product{}).Where("id = ?", item.ProductID).Count(&n).Error; err != nil {
					return err
				}
				if n == 0 {
					return ErrProductNotFound
				}
				return ErrInsufficientStock
			}

			record := models.InvoiceItem{
				InvoiceID: invoice.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (s *GormStore) UpdateInvoiceStatus(id uint, status string) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := s.db.First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	invoice.Status = status
	if err := s.db.Save(&invoice).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}
