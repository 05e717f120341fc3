package controller

import "github.com/labstack/echo/v4"

type ExportImportController interface {
	Export(c echo.Context) error
	Preview(c echo.Context) error
	Import(c echo.Context) error
}
