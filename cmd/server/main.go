package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"gardenbook/config"
	"gardenbook/database"
	"gardenbook/pkg/logger"
	"gardenbook/router"

	// Auth
	authCtrlImp "gardenbook/pkg/auth/controllerImp"
	authRepoImp "gardenbook/pkg/auth/repositoryImp"
	authSvcImp "gardenbook/pkg/auth/serviceImp"

	// Catalog
	"gardenbook/pkg/catalog"
	catalogCtrlImp "gardenbook/pkg/catalog/controllerImp"
	catalogRepoImp "gardenbook/pkg/catalog/repositoryImp"

	// Garden
	gardenCtrlImp "gardenbook/pkg/garden/controllerImp"
	gardenRepoImp "gardenbook/pkg/garden/repositoryImp"
	gardenSvcImp "gardenbook/pkg/garden/serviceImp"

	// Sensor + watering
	sensorCtrlImp "gardenbook/pkg/sensor/controllerImp"
	sensorRepoImp "gardenbook/pkg/sensor/repositoryImp"
	wateringCtrlImp "gardenbook/pkg/watering/controllerImp"
	wateringRepoImp "gardenbook/pkg/watering/repositoryImp"

	// Export / import
	eiCtrlImp "gardenbook/pkg/exportimport/controllerImp"
	eiRepoImp "gardenbook/pkg/exportimport/repositoryImp"
	eiSvcImp "gardenbook/pkg/exportimport/serviceImp"

	// Health
	healthCtrlImp "gardenbook/pkg/health/controllerImp"
)

func main() {
	// 1) Config + logging
	cfg, err := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogPretty)
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	log.Info().Interface("config", cfg.Redacted()).Msg("starting")

	// 2) DB (sqlite) + automigrate
	db, err := database.OpenSQLite(cfg.DBPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("database")
	}

	// 3) Plant catalog seed
	if cfg.CatalogCSV != "" || cfg.CatalogXLSX != "" {
		plants, err := catalog.LoadFromFiles(cfg.CatalogCSV, cfg.CatalogXLSX)
		if err != nil {
			log.Warn().Err(err).Msg("catalog load")
		} else if n, err := database.SeedCatalog(db, plants); err != nil {
			log.Warn().Err(err).Msg("catalog seed")
		} else {
			log.Info().Int("added", n).Int("rows", len(plants)).Msg("catalog seeded")
		}
	}

	// 4) Services
	secret := []byte(cfg.JWTSecret)
	authSvc := authSvcImp.NewAuthService(authRepoImp.New(db), secret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	store := eiRepoImp.New(db)
	exportSvc := eiSvcImp.NewExportService(store, cfg.AppVersion, cfg.ExportBatchSize, log)
	importSvc := eiSvcImp.NewImportService(store, log)

	// 5) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(logger.RequestLogger(log))

	router.New(e, router.Auth{
		JWTSecret: secret,
		LIFF:      cfg.EnableLIFF,
		DevLogin:  cfg.EnableDevLogin,
	}, cfg.ImportMaxBody, router.Controllers{
		Auth:         authCtrlImp.NewAuthController(authSvc, cfg.EnableDevLogin),
		Catalog:      catalogCtrlImp.New(catalogRepoImp.New(db)),
		Garden:       gardenCtrlImp.New(gardenSvcImp.NewGardenService(gardenRepoImp.New(db))),
		Sensor:       sensorCtrlImp.New(sensorRepoImp.New(db)),
		Watering:     wateringCtrlImp.New(wateringRepoImp.New(db)),
		ExportImport: eiCtrlImp.New(exportSvc, importSvc, log),
		Health:       healthCtrlImp.NewHealthCtrl(db, cfg.AppVersion),
	})

	// 6) Start, stop on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		log.Info().Str("port", cfg.Port).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server")
		}
	}()
	<-ctx.Done()

	shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdown); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
