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

type SolicitudController struct {
	solicitudService *services.SolicitudService
	logger           *zap.Logger
}

func NewSolicitudController(solicitudService *services.SolicitudService, logger *zap.Logger) *SolicitudController {
	return &SolicitudController{
		solicitudService: solicitudService,
		logger:           logger,
	}
}

func (c *SolicitudController) GetSolicitudes(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())
	list, total := c.solicitudService.GetSolicitudes(ctx.Request().Context(), filter.Search, filter.Estado)
	return utils.SuccessResponse(ctx, list, "Solicitudes obtenidas", http.StatusOK, total)
}

func (c *SolicitudController) FindSolicitud(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	solicitud, err := c.solicitudService.FindSolicitud(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, solicitud, "Solicitud encontrada", http.StatusOK)
}

func (c *SolicitudController) CreateSolicitud(ctx echo.Context) error {
	var payload dto.CreateSolicitudDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	solicitud, err := c.solicitudService.CreateSolicitud(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, solicitud, "Solicitud creada", http.StatusCreated)
}

func (c *SolicitudController) UpdateSolicitud(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateSolicitudDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	solicitud, err := c.solicitudService.UpdateSolicitud(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, solicitud, "Solicitud actualizada", http.StatusOK)
}

func (c *SolicitudController) DeleteSolicitudes(ctx echo.Context) error {
	if err := requireConfirm(ctx); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	ids, err := parseIDs(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	removed, err := c.solicitudService.DeleteSolicitudes(ctx.Request().Context(), ids)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]int{"eliminadas": removed}, "Solicitudes eliminadas", http.StatusOK)
}

// GenerateOrden emite una orden de servicio desde la solicitud.
func (c *SolicitudController) GenerateOrden(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.GenerateOrderFromSolicitudDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}

	orden, err := c.solicitudService.GenerateOrden(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, orden, "Orden generada", http.StatusCreated)
}

// GetEquiposCatalogo sirve el catálogo estático del selector de equipos.
func (c *SolicitudController) GetEquiposCatalogo(ctx echo.Context) error {
	list := c.solicitudService.GetEquiposCatalogo(ctx.Request().Context())
	return utils.SuccessResponse(ctx, list, "Catálogo de equipos obtenido", http.StatusOK, uint64(len(list)))
}

func (c *SolicitudController) ExportSolicitudes(ctx echo.Context) error {
	table := c.solicitudService.ExportTable(ctx.Request().Context(), ctx.QueryParam("search"))
	return respondWithExport(ctx, table)
}
