package controller

import "github.com/labstack/echo/v4"

type GardenController interface {
	CreateLand(c echo.Context) error
	ListLands(c echo.Context) error
	Create(c echo.Context) error
	Get(c echo.Context) error
	List(c echo.Context) error
}
