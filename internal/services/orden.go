package services

import (
	"context"
	"fmt"
	"html"
	"strings"

	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/store"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
)

type OrdenService struct {
	ordenes *store.Collection[entities.OrdenServicio]
	logger  *zap.Logger
}

func NewOrdenService(ordenes *store.Collection[entities.OrdenServicio], logger *zap.Logger) *OrdenService {
	return &OrdenService{
		ordenes: ordenes,
		logger:  logger,
	}
}

// GetOrdenesPendientes alimenta la pantalla principal de órdenes.
func (s *OrdenService) GetOrdenesPendientes(ctx context.Context, search string) ([]entities.OrdenServicio, uint64) {
	list := s.ordenes.View(search, func(o entities.OrdenServicio) bool {
		return o.Estado != constants.OrdenTerminada
	})
	return list, uint64(len(list))
}

// GetOrdenesTerminadas alimenta el histórico.
func (s *OrdenService) GetOrdenesTerminadas(ctx context.Context, search string) ([]entities.OrdenServicio, uint64) {
	list := s.ordenes.View(search, func(o entities.OrdenServicio) bool {
		return o.Estado == constants.OrdenTerminada
	})
	return list, uint64(len(list))
}

func (s *OrdenService) FindOrden(ctx context.Context, id uint64) (*entities.OrdenServicio, error) {
	orden, ok := s.ordenes.Find(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &orden, nil
}

func (s *OrdenService) UpdateOrden(ctx context.Context, id uint64, payload dto.UpdateOrdenDTO) (*entities.OrdenServicio, error) {
	updated, ok := s.ordenes.Update(id, func(o entities.OrdenServicio) entities.OrdenServicio {
		if payload.Equipo.Valid {
			o.Equipo = payload.Equipo.String
		}
		if payload.Estado.Valid {
			o.Estado = payload.Estado.String
		}
		if payload.Tipo.Valid {
			o.Tipo = payload.Tipo.String
		}
		if payload.Responsable.Valid {
			o.Responsable = payload.Responsable.String
		}
		if payload.Prioridad.Valid {
			o.Prioridad = payload.Prioridad.String
		}
		if payload.Descripcion.Valid {
			o.Descripcion = payload.Descripcion.String
		}
		if payload.TrabajosRealizados.Valid {
			o.TrabajosRealizados = payload.TrabajosRealizados.String
		}
		return o
	})
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &updated, nil
}

// DeleteOrdenes es eliminación definitiva, previa confirmación del llamador.
func (s *OrdenService) DeleteOrdenes(ctx context.Context, ids map[uint64]struct{}) (int, error) {
	if len(ids) == 0 {
		return 0, apperrors.ErrEmptySelection
	}
	return s.ordenes.HardDelete(ids), nil
}

func (s *OrdenService) ExportTable(ctx context.Context, search string) ExportTable {
	list, _ := s.GetOrdenesPendientes(ctx, search)
	table := ExportTable{
		Name:    "Órdenes de servicio",
		Headers: []string{"ID", "Número", "Equipo", "Estado", "Tipo", "Responsable", "Prioridad", "Fecha de generación"},
	}
	for _, o := range list {
		table.Rows = append(table.Rows, []string{
			formatID(o.ID), o.Numero, o.Equipo, o.Estado, o.Tipo, o.Responsable, o.Prioridad, o.FechaGeneracion,
		})
	}
	return table
}

// BuildPrintHTML arma el documento imprimible de las órdenes seleccionadas:
// una página por orden y disparo de impresión al cargar, como la ventana
// emergente del panel original.
func (s *OrdenService) BuildPrintHTML(ctx context.Context, ids map[uint64]struct{}) (string, error) {
	if len(ids) == 0 {
		return "", apperrors.ErrEmptySelection
	}

	var seleccionadas []entities.OrdenServicio
	for _, o := range s.ordenes.All() {
		if _, ok := ids[o.ID]; ok {
			seleccionadas = append(seleccionadas, o)
		}
	}
	if len(seleccionadas) == 0 {
		return "", apperrors.ErrNotFound
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"es\">\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>Órdenes de servicio</title>\n")
	b.WriteString("<style>\n")
	b.WriteString("body { font-family: Arial, sans-serif; margin: 24px; }\n")
	b.WriteString(".orden { page-break-after: always; border: 1px solid #333; padding: 16px; margin-bottom: 16px; }\n")
	b.WriteString(".orden h2 { margin-top: 0; }\n")
	b.WriteString("table { width: 100%; border-collapse: collapse; }\n")
	b.WriteString("td { border: 1px solid #999; padding: 6px 8px; vertical-align: top; }\n")
	b.WriteString("td.label { width: 30%; font-weight: bold; background: #f2f2f2; }\n")
	b.WriteString("</style>\n</head>\n<body onload=\"window.print()\">\n")

	for _, o := range seleccionadas {
		b.WriteString("<div class=\"orden\">\n")
		fmt.Fprintf(&b, "<h2>Orden de servicio %s</h2>\n", html.EscapeString(o.Numero))
		b.WriteString("<table>\n")
		writePrintRow(&b, "Equipo", o.Equipo)
		writePrintRow(&b, "Estado", o.Estado)
		writePrintRow(&b, "Tipo", o.Tipo)
		writePrintRow(&b, "Responsable", o.Responsable)
		writePrintRow(&b, "Prioridad", o.Prioridad)
		writePrintRow(&b, "Fecha de generación", o.FechaGeneracion)
		writePrintRow(&b, "Cronograma", o.CronogramaNombre)
		writePrintRow(&b, "Entidad", o.CronogramaEntidad)
		writePrintRow(&b, "Sede", o.CronogramaSede)
		writePrintRow(&b, "Descripción", o.Descripcion)
		writePrintRow(&b, "Trabajos realizados", o.TrabajosRealizados)
		b.WriteString("</table>\n</div>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

func writePrintRow(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "<tr><td class=\"label\">%s</td><td>%s</td></tr>\n",
		html.EscapeString(label), html.EscapeString(value))
}
