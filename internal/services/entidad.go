package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	"maintenance-system/internal/store"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
)

type EntidadService struct {
	entidades *store.Collection[entities.Entidad]
	logger    *zap.Logger
}

func NewEntidadService(entidades *store.Collection[entities.Entidad], logger *zap.Logger) *EntidadService {
	return &EntidadService{
		entidades: entidades,
		logger:    logger,
	}
}

// GetEntidadesActivas es la vista principal: solo registros activos, con
// búsqueda por nombre, NIT y correo.
func (s *EntidadService) GetEntidadesActivas(ctx context.Context, search string) ([]entities.Entidad, uint64) {
	list := s.entidades.View(search, func(e entities.Entidad) bool {
		return e.Estado == constants.EstadoActivo
	})
	return list, uint64(len(list))
}

// GetEntidadesInactivas alimenta la pantalla de papelera.
func (s *EntidadService) GetEntidadesInactivas(ctx context.Context, search string) ([]entities.Entidad, uint64) {
	list := s.entidades.View(search, func(e entities.Entidad) bool {
		return e.Estado == constants.EstadoInactivo
	})
	return list, uint64(len(list))
}

func (s *EntidadService) FindEntidad(ctx context.Context, id uint64) (*entities.Entidad, error) {
	entidad, ok := s.entidades.Find(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &entidad, nil
}

func (s *EntidadService) CreateEntidad(ctx context.Context, payload dto.CreateEntidadDTO) (*entities.Entidad, error) {
	estado := payload.Estado
	if estado == "" {
		estado = constants.EstadoActivo
	}
	tipo := payload.Tipo
	if tipo == "" {
		tipo = constants.TipoInterno
	}

	created := s.entidades.Add(entities.Entidad{
		Nombre:     payload.Nombre,
		NIT:        payload.NIT,
		Tipo:       tipo,
		Estado:     estado,
		Email:      payload.Email,
		Documentos: buildDocumentos(payload.Documentos),
	})
	s.logger.Info("entidad creada", zap.Uint64("id", created.ID), zap.String("nombre", created.Nombre))
	return &created, nil
}

func (s *EntidadService) UpdateEntidad(ctx context.Context, id uint64, payload dto.UpdateEntidadDTO) (*entities.Entidad, error) {
	updated, ok := s.entidades.Update(id, func(e entities.Entidad) entities.Entidad {
		if payload.Nombre.Valid {
			e.Nombre = payload.Nombre.String
		}
		if payload.NIT.Valid {
			e.NIT = payload.NIT.String
		}
		if payload.Tipo.Valid {
			e.Tipo = payload.Tipo.String
		}
		if payload.Estado.Valid {
			e.Estado = payload.Estado.String
		}
		if payload.Email.Valid {
			e.Email = payload.Email.String
		}
		if len(payload.Documentos) > 0 {
			e.Documentos = append(e.Documentos, buildDocumentos(payload.Documentos)...)
		}
		return e
	})
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &updated, nil
}

// DeleteEntidades es la baja lógica masiva: los registros pasan a estado
// inactivo y desaparecen de la vista principal, pero siguen en el arreglo.
func (s *EntidadService) DeleteEntidades(ctx context.Context, ids map[uint64]struct{}) (int, error) {
	if len(ids) == 0 {
		return 0, apperrors.ErrEmptySelection
	}
	return s.entidades.SoftDelete(ids, constants.EstadoInactivo), nil
}

// ReactivateEntidades deshace la baja lógica desde la papelera.
func (s *EntidadService) ReactivateEntidades(ctx context.Context, ids map[uint64]struct{}) (int, error) {
	if len(ids) == 0 {
		return 0, apperrors.ErrEmptySelection
	}
	return s.entidades.SoftDelete(ids, constants.EstadoActivo), nil
}

// DeleteDocumento quita un adjunto de la entidad por su id sintético.
func (s *EntidadService) DeleteDocumento(ctx context.Context, entidadID uint64, documentoID string) (*entities.Entidad, error) {
	removed := false
	updated, ok := s.entidades.Update(entidadID, func(e entities.Entidad) entities.Entidad {
		kept := make([]entities.Documento, 0, len(e.Documentos))
		for _, doc := range e.Documentos {
			if doc.ID == documentoID {
				removed = true
				continue
			}
			kept = append(kept, doc)
		}
		e.Documentos = kept
		return e
	})
	if !ok || !removed {
		return nil, apperrors.ErrNotFound
	}
	return &updated, nil
}

func (s *EntidadService) ExportTable(ctx context.Context, search string) ExportTable {
	list, _ := s.GetEntidadesActivas(ctx, search)
	table := ExportTable{
		Name:    "Entidades",
		Headers: []string{"ID", "Nombre", "NIT", "Tipo", "Estado", "Email"},
	}
	for _, e := range list {
		table.Rows = append(table.Rows, []string{
			formatID(e.ID), e.Nombre, e.NIT, e.Tipo, e.Estado, e.Email,
		})
	}
	return table
}

// buildDocumentos materializa los adjuntos subidos; el id es la marca de
// tiempo de subida y la fecha la del día.
func buildDocumentos(uploads []dto.DocumentoUploadDTO) []entities.Documento {
	if len(uploads) == 0 {
		return nil
	}
	now := time.Now()
	docs := make([]entities.Documento, 0, len(uploads))
	for i, up := range uploads {
		docs = append(docs, entities.Documento{
			ID:        repositories.SyntheticID(now.UnixMilli() + int64(i)),
			Nombre:    up.Nombre,
			Tipo:      up.Tipo,
			Tamano:    up.Tamano,
			Contenido: up.Contenido,
			Fecha:     now.Format("2006-01-02"),
		})
	}
	return docs
}
