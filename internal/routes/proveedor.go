package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runProveedorRouter(g *echo.Group, ctrl *controllers.ProveedorController) {
	g.GET("/proveedores", ctrl.GetProveedores)
	g.GET("/proveedores/export", ctrl.ExportProveedores)
	g.GET("/proveedores/:id", ctrl.FindProveedor)
	g.POST("/proveedores", ctrl.CreateProveedor)
	g.PUT("/proveedores/:id", ctrl.UpdateProveedor)
	g.DELETE("/proveedores", ctrl.DeleteProveedores)
}
