package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"store-admin-backend/internal/store"
)

type CustomerHandler struct {
	store store.Store
}

func NewCustomerHandler(st store.Store) *CustomerHandler {
	return &CustomerHandler{store: st}
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.store.ListCustomers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	customer, err := h.store.GetCustomer(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var payload struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer data"})
		return
	}

	customer, err := h.store.CreateCustomer(store.NewCustomer{
		Name:  payload.Name,
		Email: payload.Email,
		Phone: payload.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}
