package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runCronogramaRouter(g *echo.Group, ctrl *controllers.CronogramaController) {
	g.GET("/cronogramas", ctrl.GetCronogramas)
	g.GET("/cronogramas/:id", ctrl.FindCronograma)
	g.POST("/cronogramas", ctrl.CreateCronograma)
	g.PUT("/cronogramas/:id", ctrl.UpdateCronograma)
	g.DELETE("/cronogramas", ctrl.DeleteCronogramas)
	g.POST("/cronogramas/:id/ordenes", ctrl.GenerateOrdenes)
}
