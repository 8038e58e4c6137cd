package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/services"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/utils"
)

type OrdenController struct {
	ordenService *services.OrdenService
	logger       *zap.Logger
}

func NewOrdenController(ordenService *services.OrdenService, logger *zap.Logger) *OrdenController {
	return &OrdenController{
		ordenService: ordenService,
		logger:       logger,
	}
}

// GetOrdenes lista las pendientes; con estado=Terminada devuelve el
// histórico.
func (c *OrdenController) GetOrdenes(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	if filter.Estado == constants.OrdenTerminada {
		list, total := c.ordenService.GetOrdenesTerminadas(reqCtx, filter.Search)
		return utils.SuccessResponse(ctx, list, "Órdenes terminadas obtenidas", http.StatusOK, total)
	}

	list, total := c.ordenService.GetOrdenesPendientes(reqCtx, filter.Search)
	return utils.SuccessResponse(ctx, list, "Órdenes obtenidas", http.StatusOK, total)
}

func (c *OrdenController) FindOrden(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	orden, err := c.ordenService.FindOrden(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, orden, "Orden encontrada", http.StatusOK)
}

func (c *OrdenController) UpdateOrden(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateOrdenDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	orden, err := c.ordenService.UpdateOrden(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, orden, "Orden actualizada", http.StatusOK)
}

func (c *OrdenController) DeleteOrdenes(ctx echo.Context) error {
	if err := requireConfirm(ctx); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	ids, err := parseIDs(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	removed, err := c.ordenService.DeleteOrdenes(ctx.Request().Context(), ids)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]int{"eliminadas": removed}, "Órdenes eliminadas", http.StatusOK)
}

// PrintOrdenes devuelve el documento imprimible de las órdenes
// seleccionadas (ids=1,2,3): HTML con disparo de impresión al cargar.
func (c *OrdenController) PrintOrdenes(ctx echo.Context) error {
	ids, err := parseIDs(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	html, err := c.ordenService.BuildPrintHTML(ctx.Request().Context(), ids)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.HTML(http.StatusOK, html)
}

func (c *OrdenController) ExportOrdenes(ctx echo.Context) error {
	table := c.ordenService.ExportTable(ctx.Request().Context(), ctx.QueryParam("search"))
	return respondWithExport(ctx, table)
}
