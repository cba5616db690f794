package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/robfig/cron"

	config "github.com/ankitdas13/contentdesk/configs"
	"github.com/ankitdas13/contentdesk/internal/api/handlers"
	"github.com/ankitdas13/contentdesk/internal/api/middleware"
	job "github.com/ankitdas13/contentdesk/internal/jobs"
	"github.com/ankitdas13/contentdesk/internal/queue"
	"github.com/ankitdas13/contentdesk/internal/repository"
	"github.com/ankitdas13/contentdesk/internal/scraper"
	"github.com/ankitdas13/contentdesk/internal/service"
	"github.com/ankitdas13/contentdesk/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := storage.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := storage.InitSchema(db); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-API-Key",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	pipelineRepo := repository.NewPipelineRepository(db)
	calendarRepo := repository.NewCalendarRepository(db)
	linkedinRepo := repository.NewLinkedInPostRepository(db)
	twitterRepo := repository.NewTwitterPostRepository(db)
	followerRepo := repository.NewFollowerRepository(db)
	impressionsRepo := repository.NewImpressionsRepository(db)
	apiKeyRepository := repository.NewApiKeyRepository(db)

	authService := service.NewAuthService(*cfg)
	pipelineService := service.NewPipelineService(pipelineRepo)
	calendarService := service.NewCalendarService(calendarRepo)
	analyticsService := service.NewAnalyticsService(linkedinRepo, twitterRepo, followerRepo, impressionsRepo)
	draftService := service.NewDraftService(*cfg)
	apiKeyService := service.NewApiKeyService(apiKeyRepository)

	apifyClient := scraper.NewApifyClient(cfg.ApifyToken)
	linkedinScraper := scraper.NewLinkedInScraper(*cfg, apifyClient, analyticsService)
	twitterScraper := scraper.NewTwitterScraper(*cfg, apifyClient, analyticsService)

	authMiddleware := middleware.NewAuthMiddleware(*cfg, apiKeyService)

	auth := handlers.NewAuthHandler(*cfg, authService)
	app.Post("/login", auth.Login)
	app.Post("/logout", auth.Logout)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	apiKeys := handlers.NewApiKeyHandler(apiKeyService)
	api.Post("/api_key/new", apiKeys.CreateApiKey)
	api.Get("/api_key/list", apiKeys.ListKeys)
	api.Post("/api_key/remove", apiKeys.RemoveAPIKey)

	pipeline := handlers.NewPipelineHandler(pipelineService)
	api.Post("/pipeline/create", pipeline.CreateItem)
	api.Get("/pipeline", pipeline.ListItems)
	api.Get("/pipeline/:id", pipeline.GetItem)
	api.Post("/pipeline/status", pipeline.UpdateStatus)
	api.Post("/pipeline/draft", pipeline.UpdateDraft)
	api.Post("/pipeline/remove", pipeline.RemoveItem)

	calendar := handlers.NewCalendarHandler(calendarService, client)
	api.Post("/calendar/create", calendar.CreateItem)
	api.Get("/calendar", calendar.ListItems)
	api.Get("/calendar/:id", calendar.GetItem)
	api.Post("/calendar/status", calendar.UpdateStatus)
	api.Post("/calendar/draft", calendar.UpdateDraft)
	api.Post("/calendar/schedule", calendar.Schedule)
	api.Post("/calendar/generate", calendar.GenerateDraft)
	api.Post("/calendar/remove", calendar.RemoveItem)

	analytics := handlers.NewAnalyticsHandler(analyticsService, client)
	api.Get("/analytics/summary", analytics.GetSummary)
	api.Get("/analytics/recent", analytics.GetRecentPosts)
	api.Get("/analytics/top", analytics.GetTopPosts)
	api.Get("/analytics/followers", analytics.GetFollowerHistory)
	api.Get("/analytics/impressions", analytics.GetImpressionsHistory)
	api.Post("/analytics/impressions", analytics.AddImpressions)
	api.Post("/analytics/refresh", analytics.Refresh)

	// cron jobs
	metricsRefreshJob := job.NewMetricsRefreshJob(client)

	// queue
	queueW := queue.NewQueue(calendarService, draftService, linkedinScraper, twitterScraper)

	c := cron.New()
	c.AddFunc("@every 06h00m00s", metricsRefreshJob.RefreshMetrics)
	c.Start()

	go func() {
		server := asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 5,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypeGenerateDraft, queueW.HandleGenerateDraftTask)
		mux.HandleFunc(queue.TaskTypeScrapeMetrics, queueW.HandleScrapeMetricsTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":3000"); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on http://localhost:3000")

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
