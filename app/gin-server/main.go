package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jobport/jobport/config"
	"github.com/jobport/jobport/internal/api/handlers"
	"github.com/jobport/jobport/internal/api/middleware"
	"github.com/jobport/jobport/internal/api/routes"
	"github.com/jobport/jobport/internal/cache"
	"github.com/jobport/jobport/internal/events"
	"github.com/jobport/jobport/internal/logger"
	"github.com/jobport/jobport/internal/providers/extract"
	mongorepo "github.com/jobport/jobport/internal/repositories/mongo"
	pgrepo "github.com/jobport/jobport/internal/repositories/postgres"
	"github.com/jobport/jobport/internal/services"
	"github.com/jobport/jobport/internal/storage"
	"github.com/jobport/jobport/internal/workers"
)

func main() {
	_ = godotenv.Load()

	l := logger.New()

	if err := config.InitMongo(); err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	if err := config.EnsureMongoIndexes(); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}
	l.Info("MongoDB connected")

	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	if err := config.MigratePostgres(); err != nil {
		log.Fatalf("PostgreSQL migrate error: %v", err)
	}
	l.Info("PostgreSQL connected")

	if err := config.InitRedis(); err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	l.Info("Redis connected")

	ctx := context.Background()

	// Repositories
	mongoDB := config.MongoDatabase()
	userRepo := pgrepo.NewUserRepo(config.PostgresDB)
	profileRepo := pgrepo.NewProfileRepo(config.PostgresDB)
	jobRepo := pgrepo.NewJobRepo(config.PostgresDB)
	historyRepo := pgrepo.NewHistoryRepo(config.PostgresDB)
	cvDocRepo := pgrepo.NewCVDocumentRepo(config.PostgresDB)
	employerAppRepo := mongorepo.NewEmployerApplicationRepo(mongoDB)

	// Collaborators
	extractor := extract.NewTikaExtractor(os.Getenv("TIKA_URL"))
	defer extractor.Close()

	var uploader storage.Uploader
	if bucket := os.Getenv("GCS_BUCKET"); bucket != "" {
		gcs, err := storage.NewGCSUploader(ctx, bucket)
		if err != nil {
			log.Fatalf("GCS init error: %v", err)
		}
		defer gcs.Close()
		uploader = gcs
	}

	redisCache := cache.NewRedisCache(config.RedisClient)
	bus := events.NewRedisPublisher(config.RedisClient)

	// Services
	verificationSvc := services.NewVerificationService(extractor)
	registrationSvc := services.NewRegistrationService(userRepo, profileRepo, verificationSvc)
	profileSvc := services.NewProfileService(profileRepo)
	jobSvc := services.NewJobService(jobRepo, redisCache)
	listingSvc := services.NewListingService(jobRepo, historyRepo, profileRepo, redisCache)
	applicationSvc := services.NewApplicationService(jobRepo, historyRepo, employerAppRepo, bus, l)
	cvDocSvc := services.NewCVDocumentService(cvDocRepo, profileRepo, verificationSvc, uploader)

	// Background consistency auditor
	auditor := &workers.ConsistencyAuditorPool{
		Redis:    config.RedisClient,
		History:  historyRepo,
		Employer: employerAppRepo,
		Logger:   l,
	}
	if err := auditor.Start(ctx); err != nil {
		log.Fatalf("auditor start error: %v", err)
	}

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))

	routes.RegisterRoutes(r, routes.Deps{
		Auth:         handlers.NewAuthHandler(registrationSvc),
		Job:          handlers.NewJobHandler(jobSvc, listingSvc),
		Application:  handlers.NewApplicationHandler(applicationSvc, profileSvc),
		Verification: handlers.NewVerificationHandler(verificationSvc, cvDocSvc),
		Profile:      handlers.NewProfileHandler(profileSvc),
		WS:           handlers.NewWSHandler(config.RedisClient, l),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
