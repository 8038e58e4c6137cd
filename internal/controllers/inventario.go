package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/services"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/utils"
)

type InventarioController struct {
	inventarioService *services.InventarioService
	logger            *zap.Logger
}

func NewInventarioController(inventarioService *services.InventarioService, logger *zap.Logger) *InventarioController {
	return &InventarioController{
		inventarioService: inventarioService,
		logger:            logger,
	}
}

func (c *InventarioController) GetInventarios(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())
	list, total := c.inventarioService.GetInventarios(ctx.Request().Context(), filter.Search)
	return utils.SuccessResponse(ctx, list, "Inventario obtenido", http.StatusOK, total)
}

func (c *InventarioController) FindInventario(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	item, err := c.inventarioService.FindInventario(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, item, "Repuesto encontrado", http.StatusOK)
}

func (c *InventarioController) CreateInventario(ctx echo.Context) error {
	var payload dto.CreateInventarioDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	item, err := c.inventarioService.CreateInventario(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, item, "Repuesto creado", http.StatusCreated)
}

func (c *InventarioController) UpdateInventario(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateInventarioDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	item, err := c.inventarioService.UpdateInventario(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, item, "Repuesto actualizado", http.StatusOK)
}

func (c *InventarioController) DeleteInventarios(ctx echo.Context) error {
	if err := requireConfirm(ctx); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	ids, err := parseIDs(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	removed, err := c.inventarioService.DeleteInventarios(ctx.Request().Context(), ids)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]int{"eliminados": removed}, "Repuestos eliminados", http.StatusOK)
}

func (c *InventarioController) ExportInventarios(ctx echo.Context) error {
	table := c.inventarioService.ExportTable(ctx.Request().Context(), ctx.QueryParam("search"))
	return respondWithExport(ctx, table)
}
