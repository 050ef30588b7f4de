// @title Verse Journal API
// @version 1.0
// @description Bible journal with verse memorization quizzes.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"verse-journal/internal/adapter"
	"verse-journal/internal/adapter/bible"
	"verse-journal/internal/cache"
	"verse-journal/internal/config"
	"verse-journal/internal/database"
	"verse-journal/internal/handler"
	"verse-journal/internal/logger"
	"verse-journal/internal/middleware"
	"verse-journal/internal/repository"
	"verse-journal/internal/service"

	_ "verse-journal/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewDB(cfg.DB, cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.String("driver", cfg.DB.Driver), zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(context.Background(), db); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// Repositories
	userRepository := repository.NewSQLXUserRepository(db)
	verseRepository := repository.NewSQLXVerseRepository(db)
	sermonNoteRepository := repository.NewSQLXSermonNoteRepository(db)
	quietTimeRepository := repository.NewSQLXQuietTimeRepository(db)
	attemptRepository := repository.NewSQLXQuizAttemptRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	bibleClient, err := bible.NewClient(cfg.Bible, &http.Client{Timeout: cfg.Bible.Timeout})
	if err != nil {
		appLogger.Fatal("Failed to create Bible client", zap.Error(err))
	}

	// Services
	authService, err := service.NewAuthService(userRepository, cfg.JWT, txManager)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	userService := service.NewUserService(userRepository, attemptRepository)
	verseService := service.NewVerseService(verseRepository)
	journalService := service.NewJournalService(verseService, sermonNoteRepository, quietTimeRepository)
	quizService := service.NewQuizService(verseRepository, userService, cacheAdapter, cfg.Quiz)
	bibleService := service.NewBibleService(bibleClient, cacheAdapter, cfg.Bible)

	handlers := handler.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		User:    handler.NewUserHandler(userService),
		Verse:   handler.NewVerseHandler(verseService),
		Journal: handler.NewJournalHandler(journalService),
		Quiz:    handler.NewQuizHandler(quizService),
		Bible:   handler.NewBibleHandler(bibleService),
		Health: handler.NewHealthHandler(map[string]handler.Pinger{
			"database": db,
			"redis":    handler.PingFunc(cacheAdapter.Ping),
		}),
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestid.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.SetupRoutes(app, handlers, authService)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("db_driver", cfg.DB.Driver))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
