package services

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/store"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
)

type InventarioService struct {
	inventarios *store.Collection[entities.InventarioItem]
	logger      *zap.Logger
}

func NewInventarioService(inventarios *store.Collection[entities.InventarioItem], logger *zap.Logger) *InventarioService {
	return &InventarioService{
		inventarios: inventarios,
		logger:      logger,
	}
}

func (s *InventarioService) GetInventarios(ctx context.Context, search string) ([]entities.InventarioItem, uint64) {
	list := s.inventarios.View(search, nil)
	return list, uint64(len(list))
}

func (s *InventarioService) FindInventario(ctx context.Context, id uint64) (*entities.InventarioItem, error) {
	item, ok := s.inventarios.Find(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &item, nil
}

func (s *InventarioService) CreateInventario(ctx context.Context, payload dto.CreateInventarioDTO) (*entities.InventarioItem, error) {
	estado := payload.Estado
	if estado == "" {
		estado = constants.EstadoActivo
	}

	created := s.inventarios.Add(entities.InventarioItem{
		Codigo:    payload.Codigo,
		Nombre:    payload.Nombre,
		Categoria: payload.Categoria,
		Cantidad:  payload.Cantidad,
		Ubicacion: payload.Ubicacion,
		Estado:    estado,
	})
	s.logger.Info("repuesto creado", zap.Uint64("id", created.ID), zap.String("codigo", created.Codigo))
	return &created, nil
}

func (s *InventarioService) UpdateInventario(ctx context.Context, id uint64, payload dto.UpdateInventarioDTO) (*entities.InventarioItem, error) {
	updated, ok := s.inventarios.Update(id, func(item entities.InventarioItem) entities.InventarioItem {
		if payload.Codigo.Valid {
			item.Codigo = payload.Codigo.String
		}
		if payload.Nombre.Valid {
			item.Nombre = payload.Nombre.String
		}
		if payload.Categoria.Valid {
			item.Categoria = payload.Categoria.String
		}
		if payload.Cantidad.Valid {
			item.Cantidad = payload.Cantidad.Int
		}
		if payload.Ubicacion.Valid {
			item.Ubicacion = payload.Ubicacion.String
		}
		if payload.Estado.Valid {
			item.Estado = payload.Estado.String
		}
		return item
	})
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &updated, nil
}

// DeleteInventarios es eliminación definitiva, previa confirmación.
func (s *InventarioService) DeleteInventarios(ctx context.Context, ids map[uint64]struct{}) (int, error) {
	if len(ids) == 0 {
		return 0, apperrors.ErrEmptySelection
	}
	return s.inventarios.HardDelete(ids), nil
}

func (s *InventarioService) ExportTable(ctx context.Context, search string) ExportTable {
	list, _ := s.GetInventarios(ctx, search)
	table := ExportTable{
		Name:    "Inventario",
		Headers: []string{"ID", "Código", "Nombre", "Categoría", "Cantidad", "Ubicación", "Estado"},
	}
	for _, item := range list {
		table.Rows = append(table.Rows, []string{
			formatID(item.ID), item.Codigo, item.Nombre, item.Categoria,
			strconv.Itoa(item.Cantidad), item.Ubicacion, item.Estado,
		})
	}
	return table
}
