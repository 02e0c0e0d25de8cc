package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"stylehub/internal/handlers"
	"stylehub/internal/middleware"
	"stylehub/internal/models"
	"stylehub/internal/repositories"
	"stylehub/internal/services"
	"stylehub/pkg/mailer"
	"stylehub/pkg/payments"
	"stylehub/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	// Set up Viper to read configuration from environment variables
	viper.SetDefault("APP_PORT", ":3000")
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("JWT_SECRET", "change-me")
	viper.SetDefault("STRIPE_SECRET_KEY", "")
	viper.SetDefault("SMTP_HOST", "localhost")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("MAIL_FROM", "noreply@stylehub.local")
	viper.SetDefault("CONTACT_RECIPIENT", "support@stylehub.local")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv() // Load environment variables

	appPort := viper.GetString("APP_PORT")

	// --- Initialize Repositories ---
	// An unreachable database is logged but does not halt the process;
	// affected requests fail with a 500 until it comes back.
	var (
		userRepo     repositories.UserRepository
		productRepo  repositories.ProductRepository
		orderRepo    repositories.OrderRepository
		contactRepo  repositories.ContactRepository
		loginLogRepo repositories.LoginLogRepository
	)
	if dsn := viper.GetString("DATABASE_DSN"); dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{DisableAutomaticPing: true})
		if err != nil {
			log.Printf("Database connection error: %v", err)
		}
		if db != nil {
			if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.Contact{}, &models.LoginLog{}); err != nil {
				log.Printf("Database migration error: %v", err)
			}
			userRepo = repositories.NewGORMUserRepository(db)
			productRepo = repositories.NewGORMProductRepository(db)
			orderRepo = repositories.NewGORMOrderRepository(db)
			contactRepo = repositories.NewGORMContactRepository(db)
			loginLogRepo = repositories.NewGORMLoginLogRepository(db)
		}
	}
	if userRepo == nil {
		log.Println("No database configured; using in-memory repositories")
		userRepo = repositories.NewMockUserRepository()
		productRepo = repositories.NewMockProductRepository()
		orderRepo = repositories.NewMockOrderRepository()
		contactRepo = repositories.NewMockContactRepository()
		loginLogRepo = repositories.NewMockLoginLogRepository()
	}

	// --- Initialize External Clients ---
	mail := mailer.NewSMTPMailer(mailer.Config{
		Host:     viper.GetString("SMTP_HOST"),
		Port:     viper.GetInt("SMTP_PORT"),
		Username: viper.GetString("SMTP_USERNAME"),
		Password: viper.GetString("SMTP_PASSWORD"),
		From:     viper.GetString("MAIL_FROM"),
	})

	gateway := payments.NewStripeGateway(viper.GetString("STRIPE_SECRET_KEY"))

	// The order event publisher is optional; a missing or unreachable
	// broker only disables event publication.
	var publisher services.EventPublisher
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Printf("Failed to initialize RabbitMQ client: %v", err)
		} else {
			defer mqClient.Close()
			publisher = mqClient
		}
	}

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, loginLogRepo, viper.GetString("JWT_SECRET"))
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo, userRepo, mail, publisher)
	contactService := services.NewContactService(contactRepo, mail, viper.GetString("CONTACT_RECIPIENT"))
	paymentService := services.NewPaymentService(gateway)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	contactHandler := handlers.NewContactHandler(contactService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger
	app.Use(cors.New())   // Permissive cross-origin policy

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to Style Hub!")
	})

	// --- API Routes ---
	api := app.Group("/api")
	authGuard := middleware.AuthRequired(authService)

	authHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api, authGuard)
	orderHandler.RegisterRoutes(api, authGuard)
	paymentHandler.RegisterRoutes(api)
	contactHandler.RegisterRoutes(api)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
