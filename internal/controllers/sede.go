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

type SedeController struct {
	sedeService *services.SedeService
	logger      *zap.Logger
}

func NewSedeController(sedeService *services.SedeService, logger *zap.Logger) *SedeController {
	return &SedeController{
		sedeService: sedeService,
		logger:      logger,
	}
}

func (c *SedeController) GetSedes(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	if filter.Estado == constants.EstadoInactivo {
		list, total := c.sedeService.GetSedesInactivas(reqCtx, filter.Search)
		return utils.SuccessResponse(ctx, list, "Sedes inactivas obtenidas", http.StatusOK, total)
	}

	list, total := c.sedeService.GetSedesActivas(reqCtx, filter.Search)
	return utils.SuccessResponse(ctx, list, "Sedes obtenidas", http.StatusOK, total)
}

func (c *SedeController) FindSede(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	sede, err := c.sedeService.FindSede(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, sede, "Sede encontrada", http.StatusOK)
}

func (c *SedeController) CreateSede(ctx echo.Context) error {
	var payload dto.CreateSedeDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	sede, err := c.sedeService.CreateSede(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, sede, "Sede creada", http.StatusCreated)
}

func (c *SedeController) UpdateSede(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateSedeDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	sede, err := c.sedeService.UpdateSede(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, sede, "Sede actualizada", http.StatusOK)
}

func (c *SedeController) DeleteSedes(ctx echo.Context) error {
	ids, err := parseIDs(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	changed, err := c.sedeService.DeleteSedes(ctx.Request().Context(), ids)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]int{"desactivadas": changed}, "Sedes desactivadas", http.StatusOK)
}

func (c *SedeController) ReactivateSedes(ctx echo.Context) error {
	ids, err := parseIDs(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	changed, err := c.sedeService.ReactivateSedes(ctx.Request().Context(), ids)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]int{"reactivadas": changed}, "Sedes reactivadas", http.StatusOK)
}

func (c *SedeController) ExportSedes(ctx echo.Context) error {
	table := c.sedeService.ExportTable(ctx.Request().Context(), ctx.QueryParam("search"))
	return respondWithExport(ctx, table)
}
