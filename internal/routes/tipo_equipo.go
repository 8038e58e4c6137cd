package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runTipoEquipoRouter(g *echo.Group, ctrl *controllers.TipoEquipoController) {
	g.GET("/tipos-equipos", ctrl.GetTiposEquipos)
	g.GET("/tipos-equipos/export", ctrl.ExportTiposEquipos)
	g.GET("/tipos-equipos/:id", ctrl.FindTipoEquipo)
	g.POST("/tipos-equipos", ctrl.CreateTipoEquipo)
	g.PUT("/tipos-equipos/:id", ctrl.UpdateTipoEquipo)
	g.DELETE("/tipos-equipos", ctrl.DeleteTiposEquipos)

	// Sublistas adjuntas de la ficha.
	g.GET("/tipos-equipos/:id/archivos", ctrl.GetArchivos)
	g.POST("/tipos-equipos/:id/imagenes", ctrl.AddImage)
	g.DELETE("/tipos-equipos/:id/imagenes/:itemId", ctrl.RemoveImage)
	g.POST("/tipos-equipos/:id/documentos", ctrl.AddDoc)
	g.DELETE("/tipos-equipos/:id/documentos/:itemId", ctrl.RemoveDoc)
	g.POST("/tipos-equipos/:id/parametros", ctrl.AddParametro)
	g.DELETE("/tipos-equipos/:id/parametros/:itemId", ctrl.RemoveParametro)
	g.POST("/tipos-equipos/:id/accesorios", ctrl.AddAccesorio)
	g.DELETE("/tipos-equipos/:id/accesorios/:itemId", ctrl.RemoveAccesorio)
	g.POST("/tipos-equipos/:id/instructivos", ctrl.AddInstructivo)
	g.DELETE("/tipos-equipos/:id/instructivos/:itemId", ctrl.RemoveInstructivo)
}
