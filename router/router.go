package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	authCtrl "gardenbook/pkg/auth/controller"
	catalogCtrl "gardenbook/pkg/catalog/controller"
	eiCtrl "gardenbook/pkg/exportimport/controller"
	gardenCtrl "gardenbook/pkg/garden/controller"
	"gardenbook/pkg/middleware"
	sensorCtrl "gardenbook/pkg/sensor/controller"
	wateringCtrl "gardenbook/pkg/watering/controller"
)

// Auth selects which user-resolving middlewares run, in order: bearer
// token, LIFF header, dev cookie.
type Auth struct {
	JWTSecret []byte
	LIFF      bool
	DevLogin  bool
}

type Controllers struct {
	Auth         authCtrl.AuthController
	Catalog      catalogCtrl.CatalogController
	Garden       gardenCtrl.GardenController
	Sensor       sensorCtrl.SensorController
	Watering     wateringCtrl.WateringController
	ExportImport eiCtrl.ExportImportController
	Health       interface{ Health(echo.Context) error }
}

func New(e *echo.Echo, auth Auth, importBodyLimit string, ctl Controllers) *echo.Echo {
	e.GET("/health", ctl.Health.Health)
	e.POST("/auth/register", ctl.Auth.Register)
	e.POST("/auth/login", ctl.Auth.Login)

	resolve := []echo.MiddlewareFunc{middleware.JWT(auth.JWTSecret), middleware.LIFF(auth.LIFF)}
	if auth.DevLogin {
		resolve = append(resolve, middleware.DevLogin())
	}
	api := e.Group("", resolve...)
	api.GET("/devlogin", ctl.Auth.DevLogin)

	authed := api.Group("", middleware.RequireUID())
	authed.GET("/whoami", ctl.Auth.WhoAmI)

	authed.GET("/plants", ctl.Catalog.List)
	authed.GET("/plants/:id", ctl.Catalog.Get)

	authed.POST("/lands", ctl.Garden.CreateLand)
	authed.GET("/lands", ctl.Garden.ListLands)
	authed.POST("/gardens", ctl.Garden.Create)
	authed.GET("/gardens", ctl.Garden.List)
	authed.GET("/gardens/:id", ctl.Garden.Get)

	authed.POST("/gardens/:id/readings", ctl.Sensor.Create)
	authed.GET("/gardens/:id/readings", ctl.Sensor.List)

	authed.POST("/irrigation/sources", ctl.Watering.CreateSource)
	authed.GET("/irrigation/sources", ctl.Watering.ListSources)
	authed.POST("/irrigation/zones", ctl.Watering.CreateZone)
	authed.GET("/irrigation/zones", ctl.Watering.ListZones)
	authed.POST("/irrigation/zones/:id/events", ctl.Watering.CreateEvent)
	authed.GET("/irrigation/zones/:id/events", ctl.Watering.ListEvents)

	ei := authed.Group("/export-import")
	ei.GET("/export", ctl.ExportImport.Export)
	imp := ei.Group("/import", echoMiddleware.BodyLimit(importBodyLimit))
	imp.POST("/preview", ctl.ExportImport.Preview)
	imp.POST("", ctl.ExportImport.Import)
	return e
}
