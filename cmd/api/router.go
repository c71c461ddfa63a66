package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"libreria-backend/internal/shared/middleware"
	"libreria-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupBookRoutes(v1, c)
		setupInventoryRoutes(v1, c)
		setupClientRoutes(v1, c)
		setupLedgerRoutes(v1, c)
		setupSaleRoutes(v1, c)
		setupReservationRoutes(v1, c)
		setupReturnRoutes(v1, c)
	}

	return router
}

func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.POST("", c.CatalogHandler.Upsert)
		books.GET("/search", c.CatalogHandler.Search)
		books.GET("/:identifier", c.CatalogHandler.Get)
		books.GET("/:identifier/metadata", c.CatalogHandler.Metadata)
		books.DELETE("/:identifier", c.CatalogHandler.Purge)
	}
}

func setupInventoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	inventory := v1.Group("/inventory")
	{
		inventory.POST("/add", c.InventoryHandler.AddOne)
		inventory.POST("/remove", c.InventoryHandler.RemoveOne)
		inventory.POST("/move", c.InventoryHandler.Move)
		inventory.GET("/:identifier", c.InventoryHandler.ListFor)
	}
}

func setupClientRoutes(v1 *gin.RouterGroup, c *container.Container) {
	clients := v1.Group("/clients")
	{
		clients.POST("/find-or-create", c.ClientHandler.FindOrCreate)
		clients.GET("/:id", c.ClientHandler.Get)
	}
}

func setupLedgerRoutes(v1 *gin.RouterGroup, c *container.Container) {
	ledger := v1.Group("/ledger")
	{
		ledger.POST("/incomes", c.LedgerHandler.PostIncome)
		ledger.POST("/expenses", c.LedgerHandler.PostExpense)
		ledger.GET("/statement/:date", c.LedgerHandler.Statement)
	}
}

func setupSaleRoutes(v1 *gin.RouterGroup, c *container.Container) {
	sales := v1.Group("/sales")
	{
		sales.POST("", c.SaleHandler.Create)
		sales.GET("", c.SaleHandler.ListByDate)
		sales.GET("/:id", c.SaleHandler.Get)
	}
}

func setupReservationRoutes(v1 *gin.RouterGroup, c *container.Container) {
	reservations := v1.Group("/reservations")
	{
		reservations.POST("", c.ReservationHandler.Create)
		reservations.GET("/active", c.ReservationHandler.ListActive)
		reservations.GET("/:id", c.ReservationHandler.Details)
		reservations.POST("/:id/deposit", c.ReservationHandler.AddDeposit)
		reservations.POST("/:id/convert", c.ReservationHandler.ConvertToSale)
		reservations.POST("/:id/cancel", c.ReservationHandler.Cancel)
	}
}

func setupReturnRoutes(v1 *gin.RouterGroup, c *container.Container) {
	returns := v1.Group("/returns")
	{
		returns.POST("", c.ReturnsHandler.Process)
		returns.GET("/:id", c.ReturnsHandler.Get)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "ok"
		code := http.StatusOK

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.DB.PingContext(ctx); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
