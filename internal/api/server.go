package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/messageapps/message_service/config"
	"github.com/messageapps/message_service/infra/queue"
	"github.com/messageapps/message_service/internal/api/rest/handlers"
	"github.com/messageapps/message_service/internal/domain"
	"github.com/messageapps/message_service/internal/helper"
	"github.com/messageapps/message_service/internal/repository"
	"github.com/messageapps/message_service/internal/services"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.BaseURL,
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260901

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.FriendRequest{},
		&domain.Message{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUser,
		cfg.KafkaPass,
	)

	authHelper := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	friendRepo := repository.NewFriendRequestRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// ---------- Services ----------
	authSvc := services.NewAuthService(userRepo, authHelper, kafkaProducer)
	friendSvc := services.NewFriendRequestService(friendRepo)
	messageSvc := services.NewMessageService(messageRepo, userRepo, kafkaProducer)
	userSvc := services.NewUserService(userRepo, kafkaProducer)

	// ---------- Handlers ----------
	handlers.NewAuthHandler(authSvc).SetupRoutes(app)
	handlers.NewFriendRequestHandler(friendSvc).SetupRoutes(app)
	handlers.NewMessageHandler(messageSvc, friendSvc).SetupRoutes(app)
	handlers.NewUserHandler(userSvc).SetupRoutes(app)
	handlers.NewPageHandler(authSvc, "./web").SetupRoutes(app)

	// ---------- Health ----------
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	log.Println("listening on", cfg.ServerPort)
	log.Fatal(app.Listen(cfg.ServerPort))
}
