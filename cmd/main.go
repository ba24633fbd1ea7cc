package main

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"
	"github.com/minio/minio-go/v7"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"

	"realestate-service/internal/config"
	"realestate-service/internal/handlers"
	"realestate-service/internal/idgen"
	"realestate-service/internal/metrics"
	"realestate-service/internal/repository"
	"realestate-service/internal/services"
	"realestate-service/internal/storage"
)

func main() {
	cfg := InitConfig()
	db := ConnectMongo(cfg)
	minioClient := InitMinIOClient(cfg)

	ids := idgen.NewRandom()
	m := metrics.NewMetrics()

	ownerRepo := repository.NewOwnerRepository(db)
	traceRepo := repository.NewTraceRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)

	uploader := services.NewMinioUploader(minioClient, cfg.MinioBucket, cfg.MinioPublicURL)
	ownerService := services.NewOwnerService(ownerRepo, ids)
	traceService := services.NewTraceService(traceRepo, ids)
	propertyService := services.NewPropertyService(propertyRepo, ownerService, traceService, uploader, ids, m)

	app := fiber.New(fiber.Config{
		AppName: "RealEstate Catalog",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"
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

	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${method} ${path} - ${ip} - ${latency}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.AllowOrigins, ","),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Register Prometheus metrics endpoint
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	ph := handlers.NewPropertyHandler(propertyService)
	oh := handlers.NewOwnerHandler(ownerService)
	th := handlers.NewTraceHandler(traceService)

	api := app.Group("/api")
	api.Get("/properties", ph.ListProperties)
	api.Get("/properties/nearby", ph.ListNearbyProperties)
	api.Get("/properties/:id", ph.GetProperty)
	api.Get("/properties/:id/detail", ph.GetPropertyDetail)
	api.Post("/properties", ph.CreateProperty)
	api.Post("/properties/:id/cover", ph.UploadCover)
	api.Post("/properties/:id/gallery", ph.UploadGallery)

	api.Get("/owners", oh.ListOwners)
	api.Post("/owners", oh.CreateOwner)

	api.Get("/propertytraces", th.ListTraces)
	api.Get("/propertytraces/:id", th.GetTrace)
	api.Post("/propertytraces", th.CreateTrace)

	api.Get("/swagger/*", swagger.HandlerDefault)

	// Add Health check endpoint
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
		log.Printf("Defaulting to port %s", port)
	}
	log.Printf("Server listening on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

func InitConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	return cfg
}

func ConnectMongo(cfg *config.Config) *mongo.Database {
	db, err := storage.NewMongoDatabase(cfg)
	if err != nil {
		log.Fatalf("MongoDB connection failed: %v", err)
	}
	return db
}

func InitMinIOClient(cfg *config.Config) *minio.Client {
	minioClient, err := storage.NewMinioClient(cfg)
	if err != nil {
		log.Fatalf("MinIO client initialization failed: %v", err)
	}
	return minioClient
}
