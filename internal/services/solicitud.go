package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/store"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/seeders"
)

type SolicitudService struct {
	solicitudes *store.Collection[entities.Solicitud]
	ordenes     *store.Collection[entities.OrdenServicio]
	logger      *zap.Logger
}

func NewSolicitudService(solicitudes *store.Collection[entities.Solicitud], ordenes *store.Collection[entities.OrdenServicio], logger *zap.Logger) *SolicitudService {
	return &SolicitudService{
		solicitudes: solicitudes,
		ordenes:     ordenes,
		logger:      logger,
	}
}

// GetSolicitudes lista todas; con estado no vacío devuelve solo las de ese
// estado (p. ej. las abiertas).
func (s *SolicitudService) GetSolicitudes(ctx context.Context, search, estado string) ([]entities.Solicitud, uint64) {
	var pred func(entities.Solicitud) bool
	if estado != "" {
		pred = func(sol entities.Solicitud) bool { return sol.Estado == estado }
	}
	list := s.solicitudes.View(search, pred)
	return list, uint64(len(list))
}

func (s *SolicitudService) FindSolicitud(ctx context.Context, id uint64) (*entities.Solicitud, error) {
	solicitud, ok := s.solicitudes.Find(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &solicitud, nil
}

func (s *SolicitudService) CreateSolicitud(ctx context.Context, payload dto.CreateSolicitudDTO) (*entities.Solicitud, error) {
	estado := payload.Estado
	if estado == "" {
		estado = constants.SolicitudAbierta
	}
	prioridad := payload.Prioridad
	if prioridad == "" {
		prioridad = "Media"
	}

	created := s.solicitudes.Add(entities.Solicitud{
		Numero:       payload.Numero,
		Prioridad:    prioridad,
		Estado:       estado,
		Ordenes:      "0",
		Descripcion:  payload.Descripcion,
		Area:         payload.Area,
		Ciudad:       payload.Ciudad,
		Fecha:        time.Now().Format("2006-01-02"),
		EquipoID:     payload.EquipoID,
		EquipoNombre: resolveEquipoNombre(payload.EquipoID),
	})
	s.logger.Info("solicitud creada", zap.Uint64("id", created.ID), zap.String("numero", created.Numero))
	return &created, nil
}

func (s *SolicitudService) UpdateSolicitud(ctx context.Context, id uint64, payload dto.UpdateSolicitudDTO) (*entities.Solicitud, error) {
	updated, ok := s.solicitudes.Update(id, func(sol entities.Solicitud) entities.Solicitud {
		if payload.Numero.Valid {
			sol.Numero = payload.Numero.String
		}
		if payload.Prioridad.Valid {
			sol.Prioridad = payload.Prioridad.String
		}
		if payload.Estado.Valid {
			sol.Estado = payload.Estado.String
		}
		if payload.Descripcion.Valid {
			sol.Descripcion = payload.Descripcion.String
		}
		if payload.Area.Valid {
			sol.Area = payload.Area.String
		}
		if payload.Ciudad.Valid {
			sol.Ciudad = payload.Ciudad.String
		}
		if payload.EquipoID.Valid {
			sol.EquipoID = payload.EquipoID.String
			sol.EquipoNombre = resolveEquipoNombre(payload.EquipoID.String)
		}
		return sol
	})
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &updated, nil
}

// DeleteSolicitudes es eliminación definitiva, previa confirmación.
func (s *SolicitudService) DeleteSolicitudes(ctx context.Context, ids map[uint64]struct{}) (int, error) {
	if len(ids) == 0 {
		return 0, apperrors.ErrEmptySelection
	}
	return s.solicitudes.HardDelete(ids), nil
}

// GenerateOrden emite una orden de servicio desde una solicitud: el nombre
// del equipo y la descripción se copian por valor y el contador de órdenes
// de la solicitud se incrementa.
func (s *SolicitudService) GenerateOrden(ctx context.Context, solicitudID uint64, payload dto.GenerateOrderFromSolicitudDTO) (*entities.OrdenServicio, error) {
	solicitud, ok := s.solicitudes.Find(solicitudID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	prioridad := payload.Prioridad
	if prioridad == "" {
		prioridad = solicitud.Prioridad
	}
	tipo := payload.Tipo
	if tipo == "" {
		tipo = "Correctivo"
	}

	created := s.ordenes.AddWith(func(id uint64) entities.OrdenServicio {
		return entities.OrdenServicio{
			ID:              id,
			Numero:          fmt.Sprintf("ORD-%04d", id),
			Equipo:          solicitud.EquipoNombre,
			Estado:          constants.OrdenPendiente,
			Tipo:            tipo,
			Responsable:     payload.Responsable,
			Prioridad:       prioridad,
			Descripcion:     solicitud.Descripcion,
			FechaGeneracion: time.Now().Format("2006-01-02"),
		}
	})

	s.solicitudes.Update(solicitudID, func(sol entities.Solicitud) entities.Solicitud {
		sol.Ordenes = incrementCounter(sol.Ordenes)
		return sol
	})

	s.logger.Info("orden generada desde solicitud",
		zap.Uint64("solicitudId", solicitudID),
		zap.String("numero", created.Numero),
	)
	return &created, nil
}

// GetEquiposCatalogo expone el catálogo estático de equipos activos que
// alimenta el selector del formulario.
func (s *SolicitudService) GetEquiposCatalogo(ctx context.Context) []entities.Equipo {
	return seeders.EquiposCatalogo()
}

func (s *SolicitudService) ExportTable(ctx context.Context, search string) ExportTable {
	list, _ := s.GetSolicitudes(ctx, search, "")
	table := ExportTable{
		Name:    "Solicitudes",
		Headers: []string{"ID", "Número", "Prioridad", "Estado", "Órdenes", "Descripción", "Área", "Ciudad", "Fecha", "Equipo"},
	}
	for _, sol := range list {
		table.Rows = append(table.Rows, []string{
			formatID(sol.ID), sol.Numero, sol.Prioridad, sol.Estado, sol.Ordenes,
			sol.Descripcion, sol.Area, sol.Ciudad, sol.Fecha, sol.EquipoNombre,
		})
	}
	return table
}

func resolveEquipoNombre(equipoID string) string {
	if equipoID == "" {
		return ""
	}
	for _, eq := range seeders.EquiposCatalogo() {
		if eq.ID == equipoID {
			return eq.Nombre
		}
	}
	return ""
}

// incrementCounter suma uno al contador textual de órdenes; un valor no
// numérico se trata como cero.
func incrementCounter(counter string) string {
	n, err := strconv.Atoi(counter)
	if err != nil {
		n = 0
	}
	return strconv.Itoa(n + 1)
}
