package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mds03339-alt/Update-Feed-Inventory/config"
	"github.com/mds03339-alt/Update-Feed-Inventory/internal/handler"
	"github.com/mds03339-alt/Update-Feed-Inventory/internal/ledger"
	"github.com/mds03339-alt/Update-Feed-Inventory/internal/middleware"
	"github.com/mds03339-alt/Update-Feed-Inventory/internal/models"
	"github.com/mds03339-alt/Update-Feed-Inventory/pkg/kvstore"
	"github.com/mds03339-alt/Update-Feed-Inventory/pkg/logger"
)

func main() {
	// 1. Load Configuration
	config.LoadConfig()

	log := logger.Must(logger.New())
	defer log.Sync()

	// 2. Open the ledger document store
	kv, err := kvstore.Open(config.AppConfig.Data.Path)
	if err != nil {
		log.Fatal("failed to open data file", zap.Error(err))
	}
	defer kv.Close()

	// 3. Load (or seed) the ledger
	store := ledger.New(kv, logger.Named(log, "ledger"))
	err = store.Load(ledger.Defaults{
		ShopName:      config.AppConfig.Defaults.ShopName,
		ShopLogo:      config.AppConfig.Defaults.ShopLogo,
		LowThreshold:  config.AppConfig.Defaults.LowThreshold,
		OwnerPassword: config.AppConfig.Defaults.OwnerPassword,
		StaffPassword: config.AppConfig.Defaults.StaffPassword,
	})
	if err != nil {
		log.Fatal("failed to load ledger", zap.Error(err))
	}

	// The store only mutates; interested parties subscribe for refreshes.
	store.Subscribe(func() {
		log.Debug("ledger committed")
	})

	// 4. Initialize Router
	if config.AppConfig.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 5. Setup Routes
	authHandler := &handler.AuthHandler{Store: store}
	authRoutes := r.Group("/api/v1/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
	}

	anyUser := middleware.AuthMiddleware()
	ownerOnly := middleware.AuthMiddleware(models.RoleOwner)

	userRoutes := r.Group("/api/v1/users")
	{
		userRoutes.POST("", ownerOnly, authHandler.CreateUser)
		userRoutes.GET("", anyUser, authHandler.ListUsers)
	}

	inventoryHandler := &handler.InventoryHandler{Store: store}
	invRoutes := r.Group("/api/v1/products")
	{
		invRoutes.GET("", anyUser, inventoryHandler.ListProducts)
		invRoutes.GET("/companies", anyUser, inventoryHandler.ListCompanies)
		invRoutes.GET("/low-stock", anyUser, inventoryHandler.LowStockItems)
		invRoutes.GET("/export.csv", anyUser, inventoryHandler.ExportProductsCSV)
		invRoutes.POST("", ownerOnly, inventoryHandler.CreateProduct)
		invRoutes.PATCH("/:id", ownerOnly, inventoryHandler.UpdateProduct)
		invRoutes.DELETE("/:id", ownerOnly, inventoryHandler.DeleteProduct)
		invRoutes.POST("/:id/stock", ownerOnly, inventoryHandler.AddStock)
	}

	billingHandler := &handler.BillingHandler{Store: store}
	saleRoutes := r.Group("/api/v1/sales")
	saleRoutes.Use(anyUser)
	{
		saleRoutes.POST("", billingHandler.RecordSale)
		saleRoutes.GET("", billingHandler.ListSales)
		saleRoutes.GET("/export.csv", billingHandler.ExportSalesCSV)
	}

	customerRoutes := r.Group("/api/v1/customers")
	customerRoutes.Use(anyUser)
	{
		customerRoutes.GET("", billingHandler.ListCustomers)
		customerRoutes.POST("", billingHandler.CreateCustomer)
		customerRoutes.PATCH("/:id", billingHandler.UpdateCustomer)
		customerRoutes.POST("/:id/payments", billingHandler.ReceivePayment)
	}

	reportHandler := &handler.ReportHandler{Store: store}
	reportRoutes := r.Group("/api/v1/reports")
	reportRoutes.Use(anyUser)
	{
		reportRoutes.GET("/daily", reportHandler.Daily)
		reportRoutes.GET("/daily/export.xlsx", reportHandler.DailyXLSX)
		reportRoutes.GET("/monthly", reportHandler.Monthly)
		reportRoutes.GET("/monthly/export.xlsx", reportHandler.MonthlyXLSX)
		reportRoutes.GET("/profit-loss", reportHandler.ProfitLoss)
		reportRoutes.GET("/profit-loss/export.xlsx", reportHandler.ProfitLossXLSX)
	}

	adminHandler := &handler.AdminHandler{Store: store}
	r.GET("/api/v1/dashboard", anyUser, adminHandler.Dashboard)
	r.GET("/api/v1/settings", anyUser, adminHandler.GetSettings)
	r.PATCH("/api/v1/settings", ownerOnly, adminHandler.UpdateSettings)
	r.POST("/api/v1/sample-data", ownerOnly, adminHandler.SeedSampleData)
	r.GET("/api/v1/backup", ownerOnly, adminHandler.ExportBackup)
	r.POST("/api/v1/backup/import", ownerOnly, adminHandler.ImportBackup)
	r.GET("/api/v1/backup/sample", anyUser, adminHandler.SampleBackup)

	log.Info("server starting", zap.String("port", config.AppConfig.Server.Port))
	if err := r.Run(":" + config.AppConfig.Server.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
