package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runOrdenRouter(g *echo.Group, ctrl *controllers.OrdenController) {
	g.GET("/ordenes", ctrl.GetOrdenes)
	g.GET("/ordenes/export", ctrl.ExportOrdenes)
	g.GET("/ordenes/print", ctrl.PrintOrdenes)
	g.GET("/ordenes/:id", ctrl.FindOrden)
	g.PUT("/ordenes/:id", ctrl.UpdateOrden)
	g.DELETE("/ordenes", ctrl.DeleteOrdenes)
}
