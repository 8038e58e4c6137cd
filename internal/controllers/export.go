package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"maintenance-system/internal/services"
)

// respondWithExport sirve el cuadro de exportación de una pantalla en el
// formato pedido por la cadena de consulta: csv por defecto, xlsx con
// format=xlsx.
func respondWithExport(ctx echo.Context, table services.ExportTable) error {
	if strings.ToLower(ctx.QueryParam("format")) == "xlsx" {
		return respondWithXLSX(ctx, table)
	}
	return respondWithCSV(ctx, table)
}

func respondWithCSV(ctx echo.Context, table services.ExportTable) error {
	fileName := exportFileName(table.Name, "csv")
	ctx.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	return ctx.String(http.StatusOK, table.CSV())
}

func respondWithXLSX(ctx echo.Context, table services.ExportTable) error {
	f := excelize.NewFile()
	sheet := table.Name
	f.SetSheetName("Sheet1", sheet)

	headers := make([]interface{}, len(table.Headers))
	for i, h := range table.Headers {
		headers[i] = h
	}
	f.SetSheetRow(sheet, "A1", &headers)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	lastCol, _ := excelize.CoordinatesToCellName(len(table.Headers), 1)
	f.SetCellStyle(sheet, "A1", lastCol, style)

	for i, row := range table.Rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		start, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow(sheet, start, &cells)
	}

	fileName := exportFileName(table.Name, "xlsx")
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

func exportFileName(name, ext string) string {
	slug := strings.ToLower(strings.ReplaceAll(name, " ", "_"))
	return fmt.Sprintf("%s_%s.%s", slug, time.Now().Format("2006-01-02"), ext)
}
