package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"followupplan-service/internal/app/config"
	"followupplan-service/internal/app/delivery/http/routers"
	"followupplan-service/internal/app/drivers/database"
	"followupplan-service/internal/app/drivers/logger"
	"followupplan-service/internal/app/drivers/messaging"
	"followupplan-service/internal/app/drivers/storage"
	"followupplan-service/internal/app/services/clients"
	"followupplan-service/internal/app/services/core/dispatch"
	"followupplan-service/internal/app/services/core/extractor"
	"followupplan-service/internal/app/services/core/ingest"
	"followupplan-service/internal/app/services/shared/docstore"
	"followupplan-service/internal/app/services/shared/journal"
	"followupplan-service/internal/app/services/shared/jwtmanager"
	"followupplan-service/internal/app/services/shared/orgcache"
	"followupplan-service/internal/app/services/shared/planqueue"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogger(internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinioClient(driverConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	var ready atomic.Bool
	chiRouter := chi.NewRouter()
	routers.SetupRoutes(chiRouter, internalConfig, ready.Load)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		MongoDB:        mongoDB,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	worker := buildPipeline(&bootstrap, minioClient)
	bootstrap.WorkerStop = worker.Start(ctx)
	ready.Store(true)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for the in-flight submissions to finish..")
	ready.Store(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Shutdown did not complete cleanly: %v", err)
	}

	log.Println("Worker exiting")
}

func buildPipeline(bootstrap *config.Bootstrap, minioClient *minio.Client) *ingest.Worker {
	cfg := bootstrap.InternalConfig
	zapLogger := bootstrap.Logger

	jwtManager, err := jwtmanager.NewJWTManager(cfg)
	if err != nil {
		logrus.Fatalf("Failed to build JWT manager: %v", err)
	}

	// Queues
	queueService, err := planqueue.NewService(bootstrap.RabbitMQ, zapLogger, cfg.Queues)
	if err != nil {
		logrus.Fatalf("Failed to set up queues: %v", err)
	}
	benefitsChannel := planqueue.NewBenefitsChannel(queueService)
	physicianChannel := planqueue.NewPhysicianChannel(queueService)

	// Registries
	redisRepository := orgcache.NewRedisRepository(bootstrap.Redis)
	organizationRegistry := orgcache.NewCachedOrganizationRegistry(
		clients.NewOrganizationRegistryClient(cfg, zapLogger, jwtManager),
		redisRepository,
		zapLogger,
		cfg,
	)
	physicianRegistry := clients.NewPhysicianRegistryClient(cfg, zapLogger, jwtManager)
	addressRegistry := clients.NewAddressRegistryClient(cfg, zapLogger, jwtManager)
	partnerRegistry := clients.NewPartnerRegistryClient(cfg, zapLogger, jwtManager)

	// Delivery services
	archiveClient := clients.NewArchiveClient(cfg, zapLogger, jwtManager)
	pdfRenderer := clients.NewPdfRenderClient(cfg, zapLogger, jwtManager)
	documentProduction := clients.NewDocumentProductionClient(cfg, zapLogger, jwtManager)
	documentStore := docstore.NewMinioDocumentStore(minioClient, bootstrap.DriverConfig.Minio.BucketName)

	// Dispatchers
	letterDispatcher := dispatch.NewLetterDispatcher(
		organizationRegistry,
		physicianRegistry,
		documentProduction,
		benefitsChannel,
		cfg.Letter.ContentPlaceholder,
		zapLogger,
	)
	dispatchers := dispatch.NewSet(
		dispatch.NewArchiveDispatcher(archiveClient, pdfRenderer, documentStore, zapLogger),
		dispatch.NewBenefitsDispatcher(benefitsChannel, zapLogger),
		dispatch.NewPhysicianDispatcher(physicianRegistry, addressRegistry, partnerRegistry, physicianChannel, letterDispatcher, zapLogger),
		letterDispatcher,
	)

	dispatchJournal := journal.NewJournalMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)

	return ingest.NewWorker(
		zapLogger,
		cfg,
		queueService,
		organizationRegistry,
		extractor.NewSet(),
		dispatchers,
		dispatchJournal,
	)
}
