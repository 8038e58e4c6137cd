package controllers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/services"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/utils"
)

type TipoEquipoController struct {
	tipoEquipoService *services.TipoEquipoService
	logger            *zap.Logger
}

func NewTipoEquipoController(tipoEquipoService *services.TipoEquipoService, logger *zap.Logger) *TipoEquipoController {
	return &TipoEquipoController{
		tipoEquipoService: tipoEquipoService,
		logger:            logger,
	}
}

func (c *TipoEquipoController) GetTiposEquipos(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())
	list, total := c.tipoEquipoService.GetTiposEquipos(ctx.Request().Context(), filter.Search)
	return utils.SuccessResponse(ctx, list, "Tipos de equipos obtenidos", http.StatusOK, total)
}

func (c *TipoEquipoController) FindTipoEquipo(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	tipo, err := c.tipoEquipoService.FindTipoEquipo(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, tipo, "Tipo de equipo encontrado", http.StatusOK)
}

func (c *TipoEquipoController) CreateTipoEquipo(ctx echo.Context) error {
	var payload dto.CreateTipoEquipoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	tipo, err := c.tipoEquipoService.CreateTipoEquipo(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, tipo, "Tipo de equipo creado", http.StatusCreated)
}

func (c *TipoEquipoController) UpdateTipoEquipo(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateTipoEquipoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	tipo, err := c.tipoEquipoService.UpdateTipoEquipo(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, tipo, "Tipo de equipo actualizado", http.StatusOK)
}

func (c *TipoEquipoController) DeleteTiposEquipos(ctx echo.Context) error {
	if err := requireConfirm(ctx); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	ids, err := parseIDs(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	removed, err := c.tipoEquipoService.DeleteTiposEquipos(ctx.Request().Context(), ids)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]int{"eliminados": removed}, "Tipos de equipos eliminados", http.StatusOK)
}

func (c *TipoEquipoController) GetArchivos(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	archivos, err := c.tipoEquipoService.GetArchivos(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, archivos, "Adjuntos obtenidos", http.StatusOK)
}

func (c *TipoEquipoController) AddImage(ctx echo.Context) error {
	return c.addArchivo(ctx, c.tipoEquipoService.AddImage, "Imagen agregada")
}

func (c *TipoEquipoController) AddDoc(ctx echo.Context) error {
	return c.addArchivo(ctx, c.tipoEquipoService.AddDoc, "Documento agregado")
}

func (c *TipoEquipoController) RemoveImage(ctx echo.Context) error {
	return c.removeItem(ctx, c.tipoEquipoService.RemoveImage, "Imagen eliminada")
}

func (c *TipoEquipoController) RemoveDoc(ctx echo.Context) error {
	return c.removeItem(ctx, c.tipoEquipoService.RemoveDoc, "Documento eliminado")
}

func (c *TipoEquipoController) AddParametro(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.ParametroDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	archivos, err := c.tipoEquipoService.AddParametro(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, archivos, "Parámetro agregado", http.StatusCreated)
}

func (c *TipoEquipoController) RemoveParametro(ctx echo.Context) error {
	return c.removeItem(ctx, c.tipoEquipoService.RemoveParametro, "Parámetro eliminado")
}

func (c *TipoEquipoController) AddAccesorio(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.AccesorioDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	archivos, err := c.tipoEquipoService.AddAccesorio(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, archivos, "Accesorio agregado", http.StatusCreated)
}

func (c *TipoEquipoController) RemoveAccesorio(ctx echo.Context) error {
	return c.removeItem(ctx, c.tipoEquipoService.RemoveAccesorio, "Accesorio eliminado")
}

func (c *TipoEquipoController) AddInstructivo(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.InstructivoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	archivos, err := c.tipoEquipoService.AddInstructivo(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, archivos, "Instructivo agregado", http.StatusCreated)
}

func (c *TipoEquipoController) RemoveInstructivo(ctx echo.Context) error {
	return c.removeItem(ctx, c.tipoEquipoService.RemoveInstructivo, "Instructivo eliminado")
}

func (c *TipoEquipoController) ExportTiposEquipos(ctx echo.Context) error {
	table := c.tipoEquipoService.ExportTable(ctx.Request().Context(), ctx.QueryParam("search"))
	return respondWithExport(ctx, table)
}

func (c *TipoEquipoController) addArchivo(
	ctx echo.Context,
	add func(context.Context, uint64, dto.ArchivoUploadDTO) (*entities.TipoEquipoArchivos, error),
	message string,
) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.ArchivoUploadDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	archivos, err := add(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, archivos, message, http.StatusCreated)
}

// removeItem quita un elemento de una sublista por su id sintético
// (parámetro de ruta :itemId).
func (c *TipoEquipoController) removeItem(
	ctx echo.Context,
	remove func(context.Context, uint64, string) (*entities.TipoEquipoArchivos, error),
	message string,
) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	archivos, err := remove(ctx.Request().Context(), id, ctx.Param("itemId"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, archivos, message, http.StatusOK)
}
