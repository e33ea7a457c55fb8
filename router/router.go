package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/LarzzCode/LarGarage/controllers"
	"github.com/LarzzCode/LarGarage/middlewares"
	"github.com/LarzzCode/LarGarage/models"
)

// Login dibatasi 5 percobaan, isi ulang satu tiap 12 detik per IP.
// Request lain dibatasi 100 per detik per IP.
const (
	loginEvery = 12 * time.Second
	loginBurst = 5

	requestsPerWindow = 100
	windowSeconds     = 1
)

func SetupRouter(w *controllers.Workshop) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Apply security middlewares
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(w.Config.CORSOrigin))
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.MetricsMiddleware())
	r.Use(middlewares.NewRateLimiter(requestsPerWindow, windowSeconds).RateLimit())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(w)
	serviceCtrl := controllers.NewServiceController(w)
	cartCtrl := controllers.NewCartController(w)
	boardCtrl := controllers.NewBoardController(w)
	inventoryCtrl := controllers.NewInventoryController(w)
	customerCtrl := controllers.NewCustomerController(w)
	settingsCtrl := controllers.NewSettingsController(w)
	dashboardCtrl := controllers.NewDashboardController(w)
	realtimeCtrl := controllers.NewRealtimeController(w)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Rate limiter untuk login
	r.POST("/login", middlewares.NewStrictRateLimiter(loginEvery, loginBurst), userCtrl.Login)

	// Realtime board/service events, token lewat query string
	r.GET("/ws", middlewares.WebSocketAuthMiddleware(), realtimeCtrl.Connect)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/profile", userCtrl.GetProfile)
		api.POST("/logout", userCtrl.Logout)

		// -- SERVICES --
		api.GET("/services", serviceCtrl.GetServices)
		api.POST("/services", serviceCtrl.CreateService)
		api.GET("/services/:service_id", serviceCtrl.GetService)
		api.PUT("/services/:service_id", serviceCtrl.UpdateService)
		api.DELETE("/services/:service_id", serviceCtrl.DeleteService)
		api.PATCH("/services/:service_id/status", serviceCtrl.UpdateStatus)
		api.GET("/services/:service_id/invoice", middlewares.InvoiceLoggerMiddleware(), serviceCtrl.GetInvoice)
		api.GET("/services/:service_id/whatsapp", serviceCtrl.GetWhatsAppLink)

		// -- CART (stateless) --
		cart := api.Group("/cart")
		{
			cart.POST("/items", cartCtrl.AddItem)
			cart.POST("/fees", cartCtrl.AddFee)
			cart.POST("/remove", cartCtrl.RemoveItem)
		}

		// -- BOARD --
		api.GET("/board", boardCtrl.GetBoard)
		api.POST("/board/move", boardCtrl.MoveCard)
		api.POST("/board/reload", boardCtrl.ReloadBoard)

		// -- INVENTORY --
		inventory := api.Group("/inventory")
		{
			inventory.GET("", inventoryCtrl.GetInventory)
			inventory.GET("/available", inventoryCtrl.GetAvailable)
			inventory.GET("/stats", inventoryCtrl.GetStats)
			inventory.GET("/export", inventoryCtrl.ExportExcel)
			inventory.POST("/import", inventoryCtrl.ImportExcel)
			inventory.POST("", inventoryCtrl.CreateItem)
			inventory.GET("/:item_id", inventoryCtrl.GetItem)
			inventory.PUT("/:item_id", inventoryCtrl.UpdateItem)
			inventory.DELETE("/:item_id", inventoryCtrl.DeleteItem)
			inventory.GET("/:item_id/qr.png", inventoryCtrl.GetQRCode)
			inventory.GET("/:item_id/label", middlewares.PrintableCSP(), inventoryCtrl.GetLabel)
		}

		// -- CUSTOMERS --
		api.GET("/customers", customerCtrl.GetAllCustomers)
		api.GET("/customers/:customer_key", customerCtrl.GetCustomer)

		// -- SETTINGS --
		api.GET("/settings", settingsCtrl.GetSettings)
		api.PUT("/settings", middlewares.RequireRole(models.RoleAdmin), settingsCtrl.UpdateSettings)

		// -- DASHBOARD --
		api.GET("/dashboard/stats", dashboardCtrl.GetDashboardStats)
		api.GET("/dashboard/chart.png", dashboardCtrl.GetWeeklyChart)
	}

	return r
}
