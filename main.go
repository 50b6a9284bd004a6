package main

import (
	"log"
	"os"

	"github.com/vansh9528/dealstash/config"
	"github.com/vansh9528/dealstash/handlers"
	"github.com/vansh9528/dealstash/internal/mailer"
	"github.com/vansh9528/dealstash/internal/service"
	"github.com/vansh9528/dealstash/middleware"
	"github.com/vansh9528/dealstash/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()

	db, cleanup, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer cleanup()

	if len(os.Args) > 1 && os.Args[1] == "reset" {
		if err := config.ResetAndMigrate(db); err != nil {
			log.Fatal("Failed to reset database:", err)
		}
	} else if err := config.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	smtpMailer := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.FromEmail)
	notifier := mailer.NewOrderNotifier(smtpMailer, cfg.AdminEmails, cfg.PublicBaseURL)

	app := buildApp(cfg, db, notifier)

	log.Printf("🚀 Server starting on host %s in port %s mode", cfg.HOST, cfg.AppPort)

	if err := app.Listen(cfg.HOST + ":" + cfg.AppPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func buildApp(cfg *config.Config, db *gorm.DB, notifier mailer.Notifier) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Dealstash Marketplace",
		ServerHeader: "Dealstash Server/1.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default 500 statuscode
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			// Retrieve the custom statuscode if it's a *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": msg,
			})
		},
	})

	middleware.SetupMiddleware(app)

	accounts := service.NewAccountService(db)
	orders := service.NewOrderService(db, notifier, func() decimal.Decimal {
		return cfg.CommissionRate
	})

	authHandler := handlers.NewAuthHandler(db, accounts)
	productHandler := handlers.NewProductHandler(db, accounts)
	orderHandler := handlers.NewOrderHandler(orders, accounts)
	staffHandler := handlers.NewStaffHandler(db, orders)
	uploadHandler := handlers.NewUploadHandler(cfg.UploadDir)

	// Health Check Endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "success",
			"message": "API is healthy",
		})
	})

	// Product images
	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")

	// Public
	api.Post("/auth/signup", authHandler.Signup)
	api.Post("/auth/login", authHandler.Login)
	api.Get("/products", productHandler.GetAllProducts)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Post("/products/:id/orders", orderHandler.PlaceOrder)

	// Seller (authenticated)
	api.Post("/products", utils.AuthMiddleware, productHandler.CreateProduct)
	api.Put("/products/:id", utils.AuthMiddleware, productHandler.UpdateProduct)
	api.Delete("/products/:id", utils.AuthMiddleware, productHandler.DeleteProduct)
	api.Get("/seller/products", utils.AuthMiddleware, productHandler.GetMyProducts)
	api.Get("/seller/orders", utils.AuthMiddleware, orderHandler.GetSellerOrders)
	api.Post("/uploads", utils.AuthMiddleware, uploadHandler.UploadImage)

	// Staff back office (role check is independent of ownership)
	staff := api.Group("/staff", utils.AuthMiddleware, utils.StaffMiddleware)
	staff.Get("/orders", staffHandler.ListOrders)
	staff.Put("/orders/:id/status", staffHandler.UpdateOrderStatus)
	staff.Delete("/products/:id", staffHandler.DeleteProduct)
	staff.Delete("/companies/:id", staffHandler.DeleteCompany)

	middleware.SetupErrorHandler(app)

	return app
}
