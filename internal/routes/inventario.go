package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runInventarioRouter(g *echo.Group, ctrl *controllers.InventarioController) {
	g.GET("/inventarios", ctrl.GetInventarios)
	g.GET("/inventarios/export", ctrl.ExportInventarios)
	g.GET("/inventarios/:id", ctrl.FindInventario)
	g.POST("/inventarios", ctrl.CreateInventario)
	g.PUT("/inventarios/:id", ctrl.UpdateInventario)
	g.DELETE("/inventarios", ctrl.DeleteInventarios)
}
