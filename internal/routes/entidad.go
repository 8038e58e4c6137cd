package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runEntidadRouter(g *echo.Group, ctrl *controllers.EntidadController) {
	g.GET("/entidades", ctrl.GetEntidades)
	g.GET("/entidades/export", ctrl.ExportEntidades)
	g.GET("/entidades/:id", ctrl.FindEntidad)
	g.POST("/entidades", ctrl.CreateEntidad)
	g.PUT("/entidades/:id", ctrl.UpdateEntidad)
	g.DELETE("/entidades", ctrl.DeleteEntidades)
	g.POST("/entidades/reactivar", ctrl.ReactivateEntidades)
	g.DELETE("/entidades/:id/documentos/:documentoId", ctrl.DeleteDocumento)
}
