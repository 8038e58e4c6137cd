package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runSedeRouter(g *echo.Group, ctrl *controllers.SedeController) {
	g.GET("/sedes", ctrl.GetSedes)
	g.GET("/sedes/export", ctrl.ExportSedes)
	g.GET("/sedes/:id", ctrl.FindSede)
	g.POST("/sedes", ctrl.CreateSede)
	g.PUT("/sedes/:id", ctrl.UpdateSede)
	g.DELETE("/sedes", ctrl.DeleteSedes)
	g.POST("/sedes/reactivar", ctrl.ReactivateSedes)
}
