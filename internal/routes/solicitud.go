package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runSolicitudRouter(g *echo.Group, ctrl *controllers.SolicitudController) {
	g.GET("/solicitudes", ctrl.GetSolicitudes)
	g.GET("/solicitudes/export", ctrl.ExportSolicitudes)
	g.GET("/solicitudes/:id", ctrl.FindSolicitud)
	g.POST("/solicitudes", ctrl.CreateSolicitud)
	g.PUT("/solicitudes/:id", ctrl.UpdateSolicitud)
	g.DELETE("/solicitudes", ctrl.DeleteSolicitudes)
	g.POST("/solicitudes/:id/ordenes", ctrl.GenerateOrden)

	g.GET("/equipos", ctrl.GetEquiposCatalogo)
}
