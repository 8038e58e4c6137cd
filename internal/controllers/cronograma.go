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

type CronogramaController struct {
	cronogramaService *services.CronogramaService
	logger            *zap.Logger
}

func NewCronogramaController(cronogramaService *services.CronogramaService, logger *zap.Logger) *CronogramaController {
	return &CronogramaController{
		cronogramaService: cronogramaService,
		logger:            logger,
	}
}

// GetCronogramas lista todos; con fecha=yyyy-MM-dd devuelve solo los de esa
// celda del calendario.
func (c *CronogramaController) GetCronogramas(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	if fecha := ctx.QueryParam("fecha"); fecha != "" {
		list := c.cronogramaService.GetCronogramasPorFecha(reqCtx, fecha)
		return utils.SuccessResponse(ctx, list, "Cronogramas del día obtenidos", http.StatusOK, uint64(len(list)))
	}

	filter := utils.ParseFilterFromQuery(ctx.QueryParams())
	list, total := c.cronogramaService.GetCronogramas(reqCtx, filter.Search)
	return utils.SuccessResponse(ctx, list, "Cronogramas obtenidos", http.StatusOK, total)
}

func (c *CronogramaController) FindCronograma(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	cronograma, err := c.cronogramaService.FindCronograma(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, cronograma, "Cronograma encontrado", http.StatusOK)
}

func (c *CronogramaController) CreateCronograma(ctx echo.Context) error {
	var payload dto.CreateCronogramaDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	cronograma, err := c.cronogramaService.CreateCronograma(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, cronograma, "Cronograma creado", http.StatusCreated)
}

func (c *CronogramaController) UpdateCronograma(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateCronogramaDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	cronograma, err := c.cronogramaService.UpdateCronograma(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, cronograma, "Cronograma actualizado", http.StatusOK)
}

func (c *CronogramaController) DeleteCronogramas(ctx echo.Context) error {
	if err := requireConfirm(ctx); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	ids, err := parseIDs(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	removed, err := c.cronogramaService.DeleteCronogramas(ctx.Request().Context(), ids)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]int{"eliminados": removed}, "Cronogramas eliminados", http.StatusOK)
}

// GenerateOrdenes emite las órdenes de servicio del cronograma.
func (c *CronogramaController) GenerateOrdenes(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.GenerateOrdersDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}

	ordenes, err := c.cronogramaService.GenerateOrdenes(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, ordenes, "Órdenes generadas", http.StatusCreated)
}
