package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/store"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
)

type CronogramaService struct {
	cronogramas *store.Collection[entities.Cronograma]
	ordenes     *store.Collection[entities.OrdenServicio]
	logger      *zap.Logger
}

func NewCronogramaService(cronogramas *store.Collection[entities.Cronograma], ordenes *store.Collection[entities.OrdenServicio], logger *zap.Logger) *CronogramaService {
	return &CronogramaService{
		cronogramas: cronogramas,
		ordenes:     ordenes,
		logger:      logger,
	}
}

func (s *CronogramaService) GetCronogramas(ctx context.Context, search string) ([]entities.Cronograma, uint64) {
	list := s.cronogramas.View(search, nil)
	return list, uint64(len(list))
}

// GetCronogramasPorFecha alimenta la celda del calendario: todos los
// cronogramas anclados a esa fecha (yyyy-MM-dd).
func (s *CronogramaService) GetCronogramasPorFecha(ctx context.Context, fecha string) []entities.Cronograma {
	return s.cronogramas.View("", func(c entities.Cronograma) bool {
		return c.Fecha == fecha
	})
}

func (s *CronogramaService) FindCronograma(ctx context.Context, id uint64) (*entities.Cronograma, error) {
	cronograma, ok := s.cronogramas.Find(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &cronograma, nil
}

func (s *CronogramaService) CreateCronograma(ctx context.Context, payload dto.CreateCronogramaDTO) (*entities.Cronograma, error) {
	created := s.cronogramas.Add(entities.Cronograma{
		Nombre:        payload.Nombre,
		Entidad:       payload.Entidad,
		Sede:          payload.Sede,
		TipoServicio:  payload.TipoServicio,
		Tipo:          payload.Tipo,
		TipoEjecucion: payload.TipoEjecucion,
		Responsable:   payload.Responsable,
		Fecha:         payload.Fecha,
		Descripcion:   payload.Descripcion,
		Estado:        constants.CronogramaAbierto,
		Equipos:       buildEquipoRefs(payload.Equipos),
	})
	s.logger.Info("cronograma creado",
		zap.Uint64("id", created.ID),
		zap.String("fecha", created.Fecha),
		zap.Int("equipos", len(created.Equipos)),
	)
	return &created, nil
}

func (s *CronogramaService) UpdateCronograma(ctx context.Context, id uint64, payload dto.UpdateCronogramaDTO) (*entities.Cronograma, error) {
	updated, ok := s.cronogramas.Update(id, func(c entities.Cronograma) entities.Cronograma {
		if payload.Nombre.Valid {
			c.Nombre = payload.Nombre.String
		}
		if payload.Entidad.Valid {
			c.Entidad = payload.Entidad.String
		}
		if payload.Sede.Valid {
			c.Sede = payload.Sede.String
		}
		if payload.TipoServicio.Valid {
			c.TipoServicio = payload.TipoServicio.String
		}
		if payload.Tipo.Valid {
			c.Tipo = payload.Tipo.String
		}
		if payload.TipoEjecucion.Valid {
			c.TipoEjecucion = payload.TipoEjecucion.String
		}
		if payload.Responsable.Valid {
			c.Responsable = payload.Responsable.String
		}
		if payload.Descripcion.Valid {
			c.Descripcion = payload.Descripcion.String
		}
		if payload.Equipos != nil {
			c.Equipos = buildEquipoRefs(payload.Equipos)
		}
		return c
	})
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &updated, nil
}

// DeleteCronogramas elimina definitivamente; las órdenes ya generadas
// conservan sus copias cronograma* y no se tocan.
func (s *CronogramaService) DeleteCronogramas(ctx context.Context, ids map[uint64]struct{}) (int, error) {
	if len(ids) == 0 {
		return 0, apperrors.ErrEmptySelection
	}
	return s.cronogramas.HardDelete(ids), nil
}

// GenerateOrdenes emite órdenes de servicio desde un cronograma: una orden
// única para todos los equipos o una por equipo, según el payload. Los datos
// del cronograma se copian por valor a cada orden y el cronograma pasa a
// estado generado.
func (s *CronogramaService) GenerateOrdenes(ctx context.Context, cronogramaID uint64, payload dto.GenerateOrdersDTO) ([]entities.OrdenServicio, error) {
	cronograma, ok := s.cronogramas.Find(cronogramaID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if len(cronograma.Equipos) == 0 {
		return nil, apperrors.NewInvalidInputError("el cronograma %d no tiene equipos asignados", cronogramaID)
	}

	responsable := payload.Responsable
	if responsable == "" {
		responsable = cronograma.Responsable
	}
	tipo := payload.TipoGeneracion
	if tipo == "" {
		tipo = cronograma.TipoServicio
	}
	base := entities.OrdenServicio{
		CronogramaID:      cronograma.ID,
		Estado:            constants.OrdenPendiente,
		Tipo:              tipo,
		Responsable:       responsable,
		Prioridad:         "Alta",
		Descripcion:       cronograma.Descripcion,
		FechaGeneracion:   cronograma.Fecha,
		CronogramaNombre:  cronograma.Nombre,
		CronogramaEntidad: cronograma.Entidad,
		CronogramaSede:    cronograma.Sede,
	}

	var generadas []entities.OrdenServicio
	if payload.GenerarUnicaOrden {
		orden := base
		orden.Equipo = joinEquipoNombres(cronograma.Equipos)
		orden.CronogramaEquipos = append([]entities.EquipoRef(nil), cronograma.Equipos...)
		created := s.ordenes.AddWith(func(id uint64) entities.OrdenServicio {
			orden.ID = id
			orden.Numero = fmt.Sprintf("ORD-%06d", id)
			return orden
		})
		generadas = append(generadas, created)
	} else {
		for _, equipo := range cronograma.Equipos {
			orden := base
			orden.Equipo = equipo.Nombre
			orden.CronogramaEquipos = []entities.EquipoRef{equipo}
			created := s.ordenes.AddWith(func(id uint64) entities.OrdenServicio {
				orden.ID = id
				orden.Numero = fmt.Sprintf("ORD-%06d", id)
				return orden
			})
			generadas = append(generadas, created)
		}
	}

	s.cronogramas.Update(cronogramaID, func(c entities.Cronograma) entities.Cronograma {
		c.Estado = constants.CronogramaGenerado
		return c
	})
	s.logger.Info("órdenes generadas desde cronograma",
		zap.Uint64("cronogramaId", cronogramaID),
		zap.Int("ordenes", len(generadas)),
	)
	return generadas, nil
}

func buildEquipoRefs(refs []dto.EquipoRefDTO) []entities.EquipoRef {
	if len(refs) == 0 {
		return nil
	}
	out := make([]entities.EquipoRef, 0, len(refs))
	for _, r := range refs {
		out = append(out, entities.EquipoRef{
			ID:     r.ID,
			Nombre: r.Nombre,
			Alias:  r.Alias,
			Marca:  r.Marca,
			Serial: r.Serial,
		})
	}
	return out
}

func joinEquipoNombres(refs []entities.EquipoRef) string {
	nombres := make([]string, 0, len(refs))
	for _, r := range refs {
		nombres = append(nombres, r.Nombre)
	}
	return strings.Join(nombres, ", ")
}
