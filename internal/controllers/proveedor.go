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

type ProveedorController struct {
	proveedorService *services.ProveedorService
	logger           *zap.Logger
}

func NewProveedorController(proveedorService *services.ProveedorService, logger *zap.Logger) *ProveedorController {
	return &ProveedorController{
		proveedorService: proveedorService,
		logger:           logger,
	}
}

func (c *ProveedorController) GetProveedores(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())
	list, total := c.proveedorService.GetProveedores(ctx.Request().Context(), filter.Search)
	return utils.SuccessResponse(ctx, list, "Proveedores obtenidos", http.StatusOK, total)
}

func (c *ProveedorController) FindProveedor(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	proveedor, err := c.proveedorService.FindProveedor(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, proveedor, "Proveedor encontrado", http.StatusOK)
}

func (c *ProveedorController) CreateProveedor(ctx echo.Context) error {
	var payload dto.CreateProveedorDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	proveedor, err := c.proveedorService.CreateProveedor(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, proveedor, "Proveedor creado", http.StatusCreated)
}

func (c *ProveedorController) UpdateProveedor(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateProveedorDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	proveedor, err := c.proveedorService.UpdateProveedor(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, proveedor, "Proveedor actualizado", http.StatusOK)
}

// DeleteProveedores elimina definitivamente; exige confirm=true.
func (c *ProveedorController) DeleteProveedores(ctx echo.Context) error {
	if err := requireConfirm(ctx); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	ids, err := parseIDs(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	removed, err := c.proveedorService.DeleteProveedores(ctx.Request().Context(), ids)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]int{"eliminados": removed}, "Proveedores eliminados", http.StatusOK)
}

func (c *ProveedorController) ExportProveedores(ctx echo.Context) error {
	table := c.proveedorService.ExportTable(ctx.Request().Context(), ctx.QueryParam("search"))
	return respondWithExport(ctx, table)
}
