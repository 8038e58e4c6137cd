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

type EntidadController struct {
	entidadService *services.EntidadService
	logger         *zap.Logger
}

func NewEntidadController(entidadService *services.EntidadService, logger *zap.Logger) *EntidadController {
	return &EntidadController{
		entidadService: entidadService,
		logger:         logger,
	}
}

// GetEntidades lista las activas; con estado=Inactivo devuelve la papelera.
func (c *EntidadController) GetEntidades(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	if filter.Estado == constants.EstadoInactivo {
		list, total := c.entidadService.GetEntidadesInactivas(reqCtx, filter.Search)
		return utils.SuccessResponse(ctx, list, "Entidades inactivas obtenidas", http.StatusOK, total)
	}

	list, total := c.entidadService.GetEntidadesActivas(reqCtx, filter.Search)
	return utils.SuccessResponse(ctx, list, "Entidades obtenidas", http.StatusOK, total)
}

func (c *EntidadController) FindEntidad(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	entidad, err := c.entidadService.FindEntidad(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, entidad, "Entidad encontrada", http.StatusOK)
}

func (c *EntidadController) CreateEntidad(ctx echo.Context) error {
	var payload dto.CreateEntidadDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	entidad, err := c.entidadService.CreateEntidad(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, entidad, "Entidad creada", http.StatusCreated)
}

func (c *EntidadController) UpdateEntidad(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateEntidadDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	entidad, err := c.entidadService.UpdateEntidad(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, entidad, "Entidad actualizada", http.StatusOK)
}

// DeleteEntidades es baja lógica masiva via ids=1,2,3.
func (c *EntidadController) DeleteEntidades(ctx echo.Context) error {
	ids, err := parseIDs(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	changed, err := c.entidadService.DeleteEntidades(ctx.Request().Context(), ids)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]int{"desactivadas": changed}, "Entidades desactivadas", http.StatusOK)
}

func (c *EntidadController) ReactivateEntidades(ctx echo.Context) error {
	ids, err := parseIDs(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	changed, err := c.entidadService.ReactivateEntidades(ctx.Request().Context(), ids)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]int{"reactivadas": changed}, "Entidades reactivadas", http.StatusOK)
}

func (c *EntidadController) DeleteDocumento(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	entidad, err := c.entidadService.DeleteDocumento(ctx.Request().Context(), id, ctx.Param("documentoId"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, entidad, "Documento eliminado", http.StatusOK)
}

func (c *EntidadController) ExportEntidades(ctx echo.Context) error {
	table := c.entidadService.ExportTable(ctx.Request().Context(), ctx.QueryParam("search"))
	return respondWithExport(ctx, table)
}
