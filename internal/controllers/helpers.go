package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/utils"
)

func parseID(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewHttpError(http.StatusBadRequest, "ID inválido", err, nil)
	}
	return id, nil
}

func parseIDs(ctx echo.Context) (map[uint64]struct{}, error) {
	ids, err := utils.ParseIDSet(ctx.QueryParams())
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Lista de IDs inválida", err, nil)
	}
	return ids, nil
}

// requireConfirm reemplaza el diálogo de confirmación del panel: las
// eliminaciones definitivas exigen confirm=true en la cadena de consulta.
func requireConfirm(ctx echo.Context) error {
	if ctx.QueryParam("confirm") != "true" {
		return apperrors.ErrConfirmationRequired
	}
	return nil
}
