package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"store-admin-backend/internal/services/billing"
	"store-admin-backend/internal/store"
)

type InvoiceHandler struct {
	service *billing.BillingService
}

func NewInvoiceHandler(s *billing.BillingService) *InvoiceHandler {
	return &InvoiceHandler{service: s}
}

func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.service.ListInvoices()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	invoice, err := h.service.GetInvoice(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

type invoiceItemPayload struct {
	ProductID uint            `json:"productId" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	Price     decimal.Decimal `json:"price"`
}

type createInvoicePayload struct {
	Invoice struct {
		CustomerID    uint            `json:"customerId" binding:"required"`
		InvoiceNumber string          `json:"invoiceNumber"`
		Total         decimal.Decimal `json:"total"`
		Status        string          `json:"status" binding:"omitempty,oneof=pending paid cancelled"`
		StoreName     string          `json:"storeName"`
		StoreAddress  string          `json:"storeAddress"`
		StorePhone    string          `json:"storePhone"`
		StoreEmail    string          `json:"storeEmail"`
		Notes         string          `json:"notes"`
	} `json:"invoice" binding:"required"`
	Items []invoiceItemPayload `json:"items" binding:"required,min=1,dive"`
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var payload createInvoicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice data"})
		return
	}

	items := make([]store.NewInvoiceItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, store.NewInvoiceItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	invoice, err := h.service.CreateInvoice(store.NewInvoice{
		CustomerID:    payload.Invoice.CustomerID,
		Total:         payload.Invoice.Total,
		Status:        payload.Invoice.Status,
		InvoiceNumber: payload.Invoice.InvoiceNumber,
		StoreName:     payload.Invoice.StoreName,
		StoreAddress:  payload.Invoice.StoreAddress,
		StorePhone:    payload.Invoice.StorePhone,
		StoreEmail:    payload.Invoice.StoreEmail,
		Notes:         payload.Invoice.Notes,
	}, items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	invoice, err := h.service.UpdateStatus(id, payload.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}
