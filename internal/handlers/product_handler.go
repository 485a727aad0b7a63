package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"store-admin-backend/internal/store"
)

type ProductHandler struct {
	store store.Store
}

func NewProductHandler(st store.Store) *ProductHandler {
	return &ProductHandler{store: st}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.store.ListProducts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := h.store.GetProduct(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var payload struct {
		Name  string          `json:"name" binding:"required"`
		SKU   string          `json:"sku" binding:"required"`
		Price decimal.Decimal `json:"price"`
		Stock int             `json:"stock" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product data"})
		return
	}
	if payload.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
		return
	}

	product, err := h.store.CreateProduct(store.NewProduct{
		Name:  payload.Name,
		SKU:   payload.SKU,
		Price: payload.Price,
		Stock: payload.Stock,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload struct {
		Name  *string          `json:"name"`
		SKU   *string          `json:"sku"`
		Price *decimal.Decimal `json:"price"`
		Stock *int             `json:"stock"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product data"})
		return
	}
	if payload.Price != nil && payload.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
		return
	}
	if payload.Stock != nil && *payload.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "stock must not be negative"})
		return
	}

	product, err := h.store.UpdateProduct(id, store.ProductPatch{
		Name:  payload.Name,
		SKU:   payload.SKU,
		Price: payload.Price,
		Stock: payload.Stock,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}
