package controller

import "github.com/labstack/echo/v4"

type WateringController interface {
	CreateSource(c echo.Context) error
	ListSources(c echo.Context) error
	CreateZone(c echo.Context) error
	ListZones(c echo.Context) error
	CreateEvent(c echo.Context) error
	ListEvents(c echo.Context) error
}
