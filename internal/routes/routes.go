package routes

import (
	"github.com/gin-gonic/gin"

	handler "store-admin-backend/internal/handlers"
	service "store-admin-backend/internal/services/billing"
	"store-admin-backend/internal/store"
)

func RegisterRoutes(r *gin.Engine, st store.Store) {
	billingService := service.NewBillingService(st)

	productHandler := handler.NewProductHandler(st)
	customerHandler := handler.NewCustomerHandler(st)
	invoiceHandler := handler.NewInvoiceHandler(billingService)
	reportHandler := handler.NewReportHandler(billingService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	products := api.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create)
	products.PATCH("/:id", productHandler.Update)

	customers := api.Group("/customers")
	customers.GET("", customerHandler.List)
	customers.GET("/:id", customerHandler.Get)
	customers.POST("", customerHandler.Create)

	invoices := api.Group("/invoices")
	invoices.GET("", invoiceHandler.List)
	invoices.GET("/:id", invoiceHandler.Get)
	invoices.POST("", invoiceHandler.Create)
	invoices.PATCH("/:id/status", invoiceHandler.UpdateStatus)

	reports := api.Group("/reports")
	reports.GET("/summary", reportHandler.Summary)
}
