package services

import (
	"context"

	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/store"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
)

type SedeService struct {
	sedes     *store.Collection[entities.Sede]
	entidades *store.Collection[entities.Entidad]
	logger    *zap.Logger
}

func NewSedeService(sedes *store.Collection[entities.Sede], entidades *store.Collection[entities.Entidad], logger *zap.Logger) *SedeService {
	return &SedeService{
		sedes:     sedes,
		entidades: entidades,
		logger:    logger,
	}
}

func (s *SedeService) GetSedesActivas(ctx context.Context, search string) ([]entities.Sede, uint64) {
	list := s.sedes.View(search, func(sede entities.Sede) bool {
		return sede.Estado == constants.EstadoActivo
	})
	return list, uint64(len(list))
}

func (s *SedeService) GetSedesInactivas(ctx context.Context, search string) ([]entities.Sede, uint64) {
	list := s.sedes.View(search, func(sede entities.Sede) bool {
		return sede.Estado == constants.EstadoInactivo
	})
	return list, uint64(len(list))
}

func (s *SedeService) FindSede(ctx context.Context, id uint64) (*entities.Sede, error) {
	sede, ok := s.sedes.Find(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &sede, nil
}

func (s *SedeService) CreateSede(ctx context.Context, payload dto.CreateSedeDTO) (*entities.Sede, error) {
	estado := payload.Estado
	if estado == "" {
		estado = constants.EstadoActivo
	}

	created := s.sedes.Add(entities.Sede{
		Sede:          payload.Sede,
		EntidadID:     payload.EntidadID,
		EntidadNombre: s.resolveEntidadNombre(payload.EntidadID),
		Regional:      payload.Regional,
		Ciudad:        payload.Ciudad,
		Pais:          payload.Pais,
		Direccion:     payload.Direccion,
		Telefono:      payload.Telefono,
		AreaM2:        payload.AreaM2,
		Estado:        estado,
	})
	s.logger.Info("sede creada", zap.Uint64("id", created.ID), zap.String("sede", created.Sede))
	return &created, nil
}

func (s *SedeService) UpdateSede(ctx context.Context, id uint64, payload dto.UpdateSedeDTO) (*entities.Sede, error) {
	updated, ok := s.sedes.Update(id, func(sede entities.Sede) entities.Sede {
		if payload.Sede.Valid {
			sede.Sede = payload.Sede.String
		}
		if payload.EntidadID.Valid {
			sede.EntidadID = payload.EntidadID.Uint64
			sede.EntidadNombre = s.resolveEntidadNombre(payload.EntidadID.Uint64)
		}
		if payload.Regional.Valid {
			sede.Regional = payload.Regional.String
		}
		if payload.Ciudad.Valid {
			sede.Ciudad = payload.Ciudad.String
		}
		if payload.Pais.Valid {
			sede.Pais = payload.Pais.String
		}
		if payload.Direccion.Valid {
			sede.Direccion = payload.Direccion.String
		}
		if payload.Telefono.Valid {
			sede.Telefono = payload.Telefono.String
		}
		if payload.AreaM2.Valid {
			sede.AreaM2 = payload.AreaM2.String
		}
		if payload.Estado.Valid {
			sede.Estado = payload.Estado.String
		}
		return sede
	})
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &updated, nil
}

func (s *SedeService) DeleteSedes(ctx context.Context, ids map[uint64]struct{}) (int, error) {
	if len(ids) == 0 {
		return 0, apperrors.ErrEmptySelection
	}
	return s.sedes.SoftDelete(ids, constants.EstadoInactivo), nil
}

func (s *SedeService) ReactivateSedes(ctx context.Context, ids map[uint64]struct{}) (int, error) {
	if len(ids) == 0 {
		return 0, apperrors.ErrEmptySelection
	}
	return s.sedes.SoftDelete(ids, constants.EstadoActivo), nil
}

func (s *SedeService) ExportTable(ctx context.Context, search string) ExportTable {
	list, _ := s.GetSedesActivas(ctx, search)
	table := ExportTable{
		Name:    "Sedes",
		Headers: []string{"ID", "Sede", "Entidad", "Regional", "Ciudad", "País", "Dirección", "Teléfono", "Área m²", "Estado"},
	}
	for _, sede := range list {
		table.Rows = append(table.Rows, []string{
			formatID(sede.ID), sede.Sede, sede.EntidadNombre, sede.Regional, sede.Ciudad,
			sede.Pais, sede.Direccion, sede.Telefono, sede.AreaM2, sede.Estado,
		})
	}
	return table
}

// resolveEntidadNombre copia por valor el nombre de la entidad al momento de
// guardar. Si la entidad no existe, la sede queda con el nombre vacío;
// renombrarla después no refresca las copias ya hechas.
func (s *SedeService) resolveEntidadNombre(entidadID uint64) string {
	entidad, ok := s.entidades.Find(entidadID)
	if !ok {
		return ""
	}
	return entidad.Nombre
}
