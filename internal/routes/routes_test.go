package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store-admin-backend/internal/routes"
	"store-admin-backend/internal/store"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, store.NewMemoryStore())
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

type productResponse struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	SKU   string          `json:"sku"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

func createProduct(t *testing.T, r *gin.Engine, sku string, price string, stock int) productResponse {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/products", gin.H{
		"name":  "Product " + sku,
		"sku":   sku,
		"price": price,
		"stock": stock,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var p productResponse
	decode(t, w, &p)
	return p
}

func createCustomer(t *testing.T, r *gin.Engine) uint {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/customers", gin.H{
		"name":  "Ada Lovelace",
		"email": "ada@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var c struct {
		ID uint `json:"id"`
	}
	decode(t, w, &c)
	return c.ID
}

func TestHealth(t *testing.T) {
	r := newTestRouter()
	w := do(t, r, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProductEndpoints(t *testing.T) {
	r := newTestRouter()

	p := createProduct(t, r, "SKU-1", "19.99", 5)
	assert.Equal(t, "SKU-1", p.SKU)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("19.99")))

	w := do(t, r, http.MethodGet, fmt.Sprintf("/api/products/%d", p.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/api/products/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/api/products/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// missing required fields
	w = do(t, r, http.MethodPost, "/api/products", gin.H{"name": "nameless"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// duplicate sku
	w = do(t, r, http.MethodPost, "/api/products", gin.H{
		"name": "Dup", "sku": "SKU-1", "price": "1.00",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// partial update
	w = do(t, r, http.MethodPatch, fmt.Sprintf("/api/products/%d", p.ID), gin.H{"stock": 42})
	require.Equal(t, http.StatusOK, w.Code)
	var updated productResponse
	decode(t, w, &updated)
	assert.Equal(t, 42, updated.Stock)
	assert.Equal(t, "SKU-1", updated.SKU)

	w = do(t, r, http.MethodPatch, "/api/products/999", gin.H{"stock": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []productResponse
	decode(t, w, &list)
	assert.Len(t, list, 1)
}

func TestCustomerEndpoints(t *testing.T) {
	r := newTestRouter()

	id := createCustomer(t, r)

	w := do(t, r, http.MethodGet, fmt.Sprintf("/api/customers/%d", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/api/customers/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodPost, "/api/customers", gin.H{"name": "No Email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/customers", gin.H{"name": "Bad Email", "email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvoiceLifecycle(t *testing.T) {
	r := newTestRouter()
	p := createProduct(t, r, "SKU-1", "10.00", 10)
	customerID := createCustomer(t, r)

	w := do(t, r, http.MethodPost, "/api/invoices", gin.H{
		"invoice": gin.H{
			"customerId":    customerID,
			"invoiceNumber": "INV-001",
			"total":         "30.00",
			"status":        "pending",
			"storeName":     "Main Street Store",
			"storeAddress":  "1 Main St",
		},
		"items": []gin.H{
			{"productId": p.ID, "quantity": 3, "price": "10.00"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID            uint   `json:"id"`
		Status        string `json:"status"`
		InvoiceNumber string `json:"invoiceNumber"`
		StoreName     string `json:"storeName"`
	}
	decode(t, w, &created)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, "INV-001", created.InvoiceNumber)
	assert.Equal(t, "Main Street Store", created.StoreName)

	// stock was decremented
	w = do(t, r, http.MethodGet, fmt.Sprintf("/api/products/%d", p.ID), nil)
	var after productResponse
	decode(t, w, &after)
	assert.Equal(t, 7, after.Stock)

	// detail view joins items, products, and customer
	w = do(t, r, http.MethodGet, fmt.Sprintf("/api/invoices/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var details struct {
		Items []struct {
			Quantity int             `json:"quantity"`
			Price    decimal.Decimal `json:"price"`
			Product  productResponse `json:"product"`
		} `json:"items"`
		Customer struct {
			ID uint `json:"id"`
		} `json:"customer"`
	}
	decode(t, w, &details)
	require.Len(t, details.Items, 1)
	assert.Equal(t, 3, details.Items[0].Quantity)
	assert.True(t, details.Items[0].Price.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, p.ID, details.Items[0].Product.ID)
	assert.Equal(t, customerID, details.Customer.ID)

	// status transition
	w = do(t, r, http.MethodPatch, fmt.Sprintf("/api/invoices/%d/status", created.ID), gin.H{"status": "paid"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodPatch, fmt.Sprintf("/api/invoices/%d/status", created.ID), gin.H{"status": "cancelled"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodPatch, "/api/invoices/999/status", gin.H{"status": "paid"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvoiceCreateRejections(t *testing.T) {
	r := newTestRouter()
	p := createProduct(t, r, "SKU-1", "10.00", 4)
	customerID := createCustomer(t, r)

	invoice := func(total string) gin.H {
		return gin.H{"customerId": customerID, "total": total}
	}

	// empty items
	w := do(t, r, http.MethodPost, "/api/invoices", gin.H{
		"invoice": invoice("0"),
		"items":   []gin.H{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// mismatched client total
	w = do(t, r, http.MethodPost, "/api/invoices", gin.H{
		"invoice": invoice("99.00"),
		"items":   []gin.H{{"productId": p.ID, "quantity": 1, "price": "10.00"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown customer
	w = do(t, r, http.MethodPost, "/api/invoices", gin.H{
		"invoice": gin.H{"customerId": 999, "total": "10.00"},
		"items":   []gin.H{{"productId": p.ID, "quantity": 1, "price": "10.00"}},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// more than available stock
	w = do(t, r, http.MethodPost, "/api/invoices", gin.H{
		"invoice": invoice("50.00"),
		"items":   []gin.H{{"productId": p.ID, "quantity": 5, "price": "10.00"}},
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// nothing committed
	w = do(t, r, http.MethodGet, "/api/invoices", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var invoices []json.RawMessage
	decode(t, w, &invoices)
	assert.Empty(t, invoices)
}

func TestReportSummary(t *testing.T) {
	r := newTestRouter()
	p := createProduct(t, r, "SKU-1", "10.00", 100)
	customerID := createCustomer(t, r)

	for i := 0; i < 2; i++ {
		w := do(t, r, http.MethodPost, "/api/invoices", gin.H{
			"invoice": gin.H{"customerId": customerID, "total": "20.00"},
			"items":   []gin.H{{"productId": p.ID, "quantity": 2, "price": "10.00"}},
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := do(t, r, http.MethodPatch, "/api/invoices/1/status", gin.H{"status": "paid"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/api/reports/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary struct {
		TotalRevenue decimal.Decimal `json:"totalRevenue"`
		InvoiceCount int             `json:"invoiceCount"`
		PaidCount    int             `json:"paidCount"`
		PendingCount int             `json:"pendingCount"`
		Monthly      []struct {
			Month string          `json:"month"`
			Total decimal.Decimal `json:"total"`
		} `json:"monthly"`
	}
	decode(t, w, &summary)
	assert.Equal(t, 2, summary.InvoiceCount)
	assert.Equal(t, 1, summary.PaidCount)
	assert.Equal(t, 1, summary.PendingCount)
	assert.True(t, summary.TotalRevenue.Equal(decimal.RequireFromString("40.00")))
	require.Len(t, summary.Monthly, 1)
	assert.True(t, summary.Monthly[0].Total.Equal(decimal.RequireFromString("40.00")))
}
