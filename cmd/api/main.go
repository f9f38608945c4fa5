package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-pos-kasir/internal/catalog"
	"go-pos-kasir/internal/config"
	"go-pos-kasir/internal/handler"
	"go-pos-kasir/internal/ledger"
	"go-pos-kasir/internal/receipt"
	"go-pos-kasir/internal/service"
	"go-pos-kasir/internal/store"
	"go-pos-kasir/internal/ws"
	"go-pos-kasir/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Load Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	// 3. Setup Persistence (key-value document store)
	st, err := openStore(cfg)
	if err != nil {
		log.Fatal("Failed to open store: ", err)
	}
	defer st.Close()

	// 4. Load state: katalog (seed default kalau kosong) dan riwayat penjualan
	ctx := context.Background()
	cat, err := catalog.Load(ctx, st)
	if err != nil {
		log.Fatal("Failed to load catalog: ", err)
	}
	led, err := ledger.Load(ctx, st)
	if err != nil {
		log.Fatal("Failed to load ledger: ", err)
	}

	// 5. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 6. Dependency Injection (Wiring Layers)
	invService := service.NewInventoryService(cat, wsHub)
	checkoutService := service.NewCheckoutService(cat, led, wsHub, cfg.POS.AllowOversell)
	dashService := service.NewDashboardService(cat, led)

	storeInfo := receipt.StoreInfo{
		Name:    cfg.POS.StoreName,
		Address: cfg.POS.StoreAddress,
		Phone:   cfg.POS.StorePhone,
	}

	invHandler := handler.NewInventoryHandler(invService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	historyHandler := handler.NewHistoryHandler(led, storeInfo)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Kasir POS v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 8. Routes
	api := app.Group("/api/v1")

	// Product Routes
	api.Get("/products", invHandler.GetProducts)
	api.Get("/products/categories", invHandler.GetCategories)
	api.Get("/products/low-stock", invHandler.GetLowStock)
	api.Post("/products", invHandler.CreateProduct)
	api.Put("/products/:id", invHandler.UpdateProduct)
	api.Post("/products/:id/restock", invHandler.RestockProduct)

	// Checkout Routes (single till session)
	api.Get("/checkout", checkoutHandler.GetSession)
	api.Post("/checkout/items", checkoutHandler.AddItem)
	api.Put("/checkout/items/:id", checkoutHandler.SetQuantity)
	api.Post("/checkout/proceed", checkoutHandler.Proceed)
	api.Post("/checkout/payment", checkoutHandler.SetPayment)
	api.Post("/checkout/commit", checkoutHandler.Commit)
	api.Post("/checkout/cancel", checkoutHandler.Cancel)

	// History Routes
	api.Get("/transactions", historyHandler.GetTransactions)
	api.Get("/transactions/export", historyHandler.ExportCSV)
	api.Get("/transactions/:id", historyHandler.GetTransaction)
	api.Get("/transactions/:id/receipt", historyHandler.GetReceipt)

	// Dashboard Routes
	api.Get("/dashboard/stats", dashHandler.GetDashboardStats)
	api.Get("/dashboard/sales-movement", dashHandler.GetSalesMovement)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 9. Graceful Shutdown
	go func() {
		port := cfg.Server.Port
		if envPort := os.Getenv("PORT"); envPort != "" {
			port = envPort
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// openStore picks the persistence backend from config.
func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Driver {
	case "redis":
		return store.NewRedisStore(cfg.Store.RedisAddr)
	case "postgres":
		db, err := database.Connect(cfg.Store.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return store.NewGormStore(db)
	case "memory":
		log.Println("Warning: memory store keeps nothing across restarts")
		return store.NewMemoryStore(), nil
	default:
		return store.NewFileStore(cfg.Store.DataDir)
	}
}
