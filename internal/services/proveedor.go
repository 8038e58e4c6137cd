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

type ProveedorService struct {
	proveedores *store.Collection[entities.Proveedor]
	logger      *zap.Logger
}

func NewProveedorService(proveedores *store.Collection[entities.Proveedor], logger *zap.Logger) *ProveedorService {
	return &ProveedorService{
		proveedores: proveedores,
		logger:      logger,
	}
}

func (s *ProveedorService) GetProveedores(ctx context.Context, search string) ([]entities.Proveedor, uint64) {
	list := s.proveedores.View(search, nil)
	return list, uint64(len(list))
}

func (s *ProveedorService) FindProveedor(ctx context.Context, id uint64) (*entities.Proveedor, error) {
	proveedor, ok := s.proveedores.Find(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &proveedor, nil
}

func (s *ProveedorService) CreateProveedor(ctx context.Context, payload dto.CreateProveedorDTO) (*entities.Proveedor, error) {
	estado := payload.Estado
	if estado == "" {
		estado = constants.ProveedorActivo
	}

	created := s.proveedores.Add(entities.Proveedor{
		Numero:       payload.Numero,
		NIT:          payload.NIT,
		Estado:       estado,
		Nombre:       payload.Nombre,
		TipoServicio: payload.TipoServicio,
	})
	s.logger.Info("proveedor creado", zap.Uint64("id", created.ID), zap.String("nombre", created.Nombre))
	return &created, nil
}

func (s *ProveedorService) UpdateProveedor(ctx context.Context, id uint64, payload dto.UpdateProveedorDTO) (*entities.Proveedor, error) {
	updated, ok := s.proveedores.Update(id, func(p entities.Proveedor) entities.Proveedor {
		if payload.Numero.Valid {
			p.Numero = payload.Numero.String
		}
		if payload.NIT.Valid {
			p.NIT = payload.NIT.String
		}
		if payload.Estado.Valid {
			p.Estado = payload.Estado.String
		}
		if payload.Nombre.Valid {
			p.Nombre = payload.Nombre.String
		}
		if payload.TipoServicio.Valid {
			p.TipoServicio = payload.TipoServicio.String
		}
		return p
	})
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &updated, nil
}

// DeleteProveedores es eliminación definitiva; el llamador debe haber
// confirmado la acción antes de llegar aquí.
func (s *ProveedorService) DeleteProveedores(ctx context.Context, ids map[uint64]struct{}) (int, error) {
	if len(ids) == 0 {
		return 0, apperrors.ErrEmptySelection
	}
	return s.proveedores.HardDelete(ids), nil
}

func (s *ProveedorService) ExportTable(ctx context.Context, search string) ExportTable {
	list, _ := s.GetProveedores(ctx, search)
	table := ExportTable{
		Name:    "Proveedores",
		Headers: []string{"ID", "Número", "NIT", "Nombre", "Tipo de servicio", "Estado"},
	}
	for _, p := range list {
		table.Rows = append(table.Rows, []string{
			formatID(p.ID), p.Numero, p.NIT, p.Nombre, p.TipoServicio, p.Estado,
		})
	}
	return table
}
