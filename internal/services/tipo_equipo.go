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

type TipoEquipoService struct {
	tipos  *store.Collection[entities.TipoEquipo]
	files  *repositories.TipoEquipoFilesRepository
	logger *zap.Logger
}

func NewTipoEquipoService(tipos *store.Collection[entities.TipoEquipo], files *repositories.TipoEquipoFilesRepository, logger *zap.Logger) *TipoEquipoService {
	return &TipoEquipoService{
		tipos:  tipos,
		files:  files,
		logger: logger,
	}
}

func (s *TipoEquipoService) GetTiposEquipos(ctx context.Context, search string) ([]entities.TipoEquipo, uint64) {
	list := s.tipos.View(search, nil)
	return list, uint64(len(list))
}

func (s *TipoEquipoService) FindTipoEquipo(ctx context.Context, id uint64) (*entities.TipoEquipo, error) {
	tipo, ok := s.tipos.Find(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &tipo, nil
}

func (s *TipoEquipoService) CreateTipoEquipo(ctx context.Context, payload dto.CreateTipoEquipoDTO) (*entities.TipoEquipo, error) {
	created := s.tipos.Add(entities.TipoEquipo{
		Clase:                           payload.Clase,
		Nombre:                          payload.Nombre,
		Alias:                           payload.Alias,
		Marca:                           payload.Marca,
		Modelo:                          payload.Modelo,
		Tipo:                            payload.Tipo,
		Estado:                          constants.EstadoActivo,
		CantidadEquipos:                 payload.CantidadEquipos,
		EquiposActivos:                  payload.EquiposActivos,
		FrecuenciaMantenimientoMeses:    payload.FrecuenciaMantenimientoMeses,
		FrecuenciaCalibracionMeses:      payload.FrecuenciaCalibracionMeses,
		FrecuenciaCambioAccesoriosMeses: payload.FrecuenciaCambioAccesoriosMeses,
		FrecuenciaCalificacionesMeses:   payload.FrecuenciaCalificacionesMeses,
		FrecuenciaValidacion:            payload.FrecuenciaValidacion,
		FrecuenciaVerificacion:          payload.FrecuenciaVerificacion,
		FrecuenciaControlCalidad:        payload.FrecuenciaControlCalidad,
		ProcesoProduccion:               payload.ProcesoProduccion,
		LlevaGas:                        payload.LlevaGas,
		LlevaAceite:                     payload.LlevaAceite,
		Invima:                          payload.Invima,
		Ecri:                            payload.Ecri,
		RegistroSanitario:               payload.RegistroSanitario,
		VencimientoRegistro:             payload.VencimientoRegistro,
		VidaUtilAnual:                   payload.VidaUtilAnual,
		Fabricante:                      payload.Fabricante,
		ValorSalvamento:                 payload.ValorSalvamento,
		TasaRetorno:                     payload.TasaRetorno,
		ClasificacionBiomedica:          payload.ClasificacionBiomedica,
		CodigoReferencia:                payload.CodigoReferencia,
		SeguridadElectricaClase:         payload.SeguridadElectricaClase,
		SeguridadElectricaTipo:          payload.SeguridadElectricaTipo,
	})
	s.logger.Info("tipo de equipo creado", zap.Uint64("id", created.ID), zap.String("nombre", created.Nombre))
	return &created, nil
}

func (s *TipoEquipoService) UpdateTipoEquipo(ctx context.Context, id uint64, payload dto.UpdateTipoEquipoDTO) (*entities.TipoEquipo, error) {
	updated, ok := s.tipos.Update(id, func(t entities.TipoEquipo) entities.TipoEquipo {
		if payload.Clase.Valid {
			t.Clase = payload.Clase.String
		}
		if payload.Nombre.Valid {
			t.Nombre = payload.Nombre.String
		}
		if payload.Alias.Valid {
			t.Alias = payload.Alias.String
		}
		if payload.Marca.Valid {
			t.Marca = payload.Marca.String
		}
		if payload.Modelo.Valid {
			t.Modelo = payload.Modelo.String
		}
		if payload.Tipo.Valid {
			t.Tipo = payload.Tipo.String
		}
		if payload.CantidadEquipos.Valid {
			t.CantidadEquipos = payload.CantidadEquipos.Int
		}
		if payload.EquiposActivos.Valid {
			t.EquiposActivos = payload.EquiposActivos.Int
		}
		if payload.FrecuenciaMantenimientoMeses.Valid {
			t.FrecuenciaMantenimientoMeses = payload.FrecuenciaMantenimientoMeses.String
		}
		if payload.FrecuenciaCalibracionMeses.Valid {
			t.FrecuenciaCalibracionMeses = payload.FrecuenciaCalibracionMeses.String
		}
		if payload.FrecuenciaCambioAccesoriosMeses.Valid {
			t.FrecuenciaCambioAccesoriosMeses = payload.FrecuenciaCambioAccesoriosMeses.String
		}
		if payload.FrecuenciaCalificacionesMeses.Valid {
			t.FrecuenciaCalificacionesMeses = payload.FrecuenciaCalificacionesMeses.String
		}
		if payload.FrecuenciaValidacion.Valid {
			t.FrecuenciaValidacion = payload.FrecuenciaValidacion.String
		}
		if payload.FrecuenciaVerificacion.Valid {
			t.FrecuenciaVerificacion = payload.FrecuenciaVerificacion.String
		}
		if payload.FrecuenciaControlCalidad.Valid {
			t.FrecuenciaControlCalidad = payload.FrecuenciaControlCalidad.String
		}
		if payload.ProcesoProduccion.Valid {
			t.ProcesoProduccion = payload.ProcesoProduccion.Bool
		}
		if payload.LlevaGas.Valid {
			t.LlevaGas = payload.LlevaGas.Bool
		}
		if payload.LlevaAceite.Valid {
			t.LlevaAceite = payload.LlevaAceite.Bool
		}
		if payload.Invima.Valid {
			t.Invima = payload.Invima.String
		}
		if payload.Ecri.Valid {
			t.Ecri = payload.Ecri.String
		}
		if payload.RegistroSanitario.Valid {
			t.RegistroSanitario = payload.RegistroSanitario.String
		}
		if payload.VencimientoRegistro.Valid {
			t.VencimientoRegistro = payload.VencimientoRegistro.String
		}
		if payload.VidaUtilAnual.Valid {
			t.VidaUtilAnual = payload.VidaUtilAnual.String
		}
		if payload.Fabricante.Valid {
			t.Fabricante = payload.Fabricante.String
		}
		if payload.ValorSalvamento.Valid {
			t.ValorSalvamento = payload.ValorSalvamento.String
		}
		if payload.TasaRetorno.Valid {
			t.TasaRetorno = payload.TasaRetorno.String
		}
		if payload.ClasificacionBiomedica.Valid {
			t.ClasificacionBiomedica = payload.ClasificacionBiomedica.String
		}
		if payload.CodigoReferencia.Valid {
			t.CodigoReferencia = payload.CodigoReferencia.String
		}
		if payload.SeguridadElectricaClase.Valid {
			t.SeguridadElectricaClase = payload.SeguridadElectricaClase.String
		}
		if payload.SeguridadElectricaTipo.Valid {
			t.SeguridadElectricaTipo = payload.SeguridadElectricaTipo.String
		}
		return t
	})
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &updated, nil
}

// DeleteTiposEquipos elimina las fichas y sus sublistas adjuntas.
func (s *TipoEquipoService) DeleteTiposEquipos(ctx context.Context, ids map[uint64]struct{}) (int, error) {
	if len(ids) == 0 {
		return 0, apperrors.ErrEmptySelection
	}
	removed := s.tipos.HardDelete(ids)
	for id := range ids {
		s.files.Remove(id)
	}
	return removed, nil
}

// GetArchivos devuelve las sublistas adjuntas de la ficha. Un tipo sin
// adjuntos devuelve listas vacías.
func (s *TipoEquipoService) GetArchivos(ctx context.Context, tipoID uint64) (*entities.TipoEquipoArchivos, error) {
	if _, ok := s.tipos.Find(tipoID); !ok {
		return nil, apperrors.ErrNotFound
	}
	archivos := s.files.Get(tipoID)
	return &archivos, nil
}

func (s *TipoEquipoService) AddImage(ctx context.Context, tipoID uint64, payload dto.ArchivoUploadDTO) (*entities.TipoEquipoArchivos, error) {
	return s.mutateArchivos(tipoID, func(a entities.TipoEquipoArchivos) entities.TipoEquipoArchivos {
		a.Images = append(a.Images, buildArchivo(payload))
		return a
	})
}

func (s *TipoEquipoService) AddDoc(ctx context.Context, tipoID uint64, payload dto.ArchivoUploadDTO) (*entities.TipoEquipoArchivos, error) {
	return s.mutateArchivos(tipoID, func(a entities.TipoEquipoArchivos) entities.TipoEquipoArchivos {
		a.Docs = append(a.Docs, buildArchivo(payload))
		return a
	})
}

func (s *TipoEquipoService) RemoveImage(ctx context.Context, tipoID uint64, archivoID string) (*entities.TipoEquipoArchivos, error) {
	return s.mutateArchivos(tipoID, func(a entities.TipoEquipoArchivos) entities.TipoEquipoArchivos {
		a.Images = removeArchivo(a.Images, archivoID)
		return a
	})
}

func (s *TipoEquipoService) RemoveDoc(ctx context.Context, tipoID uint64, archivoID string) (*entities.TipoEquipoArchivos, error) {
	return s.mutateArchivos(tipoID, func(a entities.TipoEquipoArchivos) entities.TipoEquipoArchivos {
		a.Docs = removeArchivo(a.Docs, archivoID)
		return a
	})
}

func (s *TipoEquipoService) AddParametro(ctx context.Context, tipoID uint64, payload dto.ParametroDTO) (*entities.TipoEquipoArchivos, error) {
	return s.mutateArchivos(tipoID, func(a entities.TipoEquipoArchivos) entities.TipoEquipoArchivos {
		a.Parametros = append(a.Parametros, entities.Parametro{
			ID:     repositories.SyntheticID(time.Now().UnixMilli()),
			Nombre: payload.Nombre,
			Valor:  payload.Valor,
		})
		return a
	})
}

func (s *TipoEquipoService) RemoveParametro(ctx context.Context, tipoID uint64, parametroID string) (*entities.TipoEquipoArchivos, error) {
	return s.mutateArchivos(tipoID, func(a entities.TipoEquipoArchivos) entities.TipoEquipoArchivos {
		kept := a.Parametros[:0]
		for _, p := range a.Parametros {
			if p.ID != parametroID {
				kept = append(kept, p)
			}
		}
		a.Parametros = kept
		return a
	})
}

func (s *TipoEquipoService) AddAccesorio(ctx context.Context, tipoID uint64, payload dto.AccesorioDTO) (*entities.TipoEquipoArchivos, error) {
	return s.mutateArchivos(tipoID, func(a entities.TipoEquipoArchivos) entities.TipoEquipoArchivos {
		a.Accesorios = append(a.Accesorios, entities.Accesorio{
			ID:          repositories.SyntheticID(time.Now().UnixMilli()),
			Nombre:      payload.Nombre,
			Descripcion: payload.Descripcion,
		})
		return a
	})
}

func (s *TipoEquipoService) RemoveAccesorio(ctx context.Context, tipoID uint64, accesorioID string) (*entities.TipoEquipoArchivos, error) {
	return s.mutateArchivos(tipoID, func(a entities.TipoEquipoArchivos) entities.TipoEquipoArchivos {
		kept := a.Accesorios[:0]
		for _, acc := range a.Accesorios {
			if acc.ID != accesorioID {
				kept = append(kept, acc)
			}
		}
		a.Accesorios = kept
		return a
	})
}

func (s *TipoEquipoService) AddInstructivo(ctx context.Context, tipoID uint64, payload dto.InstructivoDTO) (*entities.TipoEquipoArchivos, error) {
	return s.mutateArchivos(tipoID, func(a entities.TipoEquipoArchivos) entities.TipoEquipoArchivos {
		a.Instructivos = append(a.Instructivos, entities.Instructivo{
			ID:        repositories.SyntheticID(time.Now().UnixMilli()),
			Nombre:    payload.Nombre,
			Contenido: payload.Contenido,
		})
		return a
	})
}

func (s *TipoEquipoService) RemoveInstructivo(ctx context.Context, tipoID uint64, instructivoID string) (*entities.TipoEquipoArchivos, error) {
	return s.mutateArchivos(tipoID, func(a entities.TipoEquipoArchivos) entities.TipoEquipoArchivos {
		kept := a.Instructivos[:0]
		for _, ins := range a.Instructivos {
			if ins.ID != instructivoID {
				kept = append(kept, ins)
			}
		}
		a.Instructivos = kept
		return a
	})
}

func (s *TipoEquipoService) ExportTable(ctx context.Context, search string) ExportTable {
	list, _ := s.GetTiposEquipos(ctx, search)
	table := ExportTable{
		Name:    "Tipos de equipos",
		Headers: []string{"ID", "Nombre", "Alias", "Marca", "Modelo", "Tipo", "Estado"},
	}
	for _, t := range list {
		table.Rows = append(table.Rows, []string{
			formatID(t.ID), t.Nombre, t.Alias, t.Marca, t.Modelo, t.Tipo, t.Estado,
		})
	}
	return table
}

func (s *TipoEquipoService) mutateArchivos(tipoID uint64, change func(entities.TipoEquipoArchivos) entities.TipoEquipoArchivos) (*entities.TipoEquipoArchivos, error) {
	if _, ok := s.tipos.Find(tipoID); !ok {
		return nil, apperrors.ErrNotFound
	}
	updated := s.files.Mutate(tipoID, change)
	return &updated, nil
}

func buildArchivo(payload dto.ArchivoUploadDTO) entities.Archivo {
	return entities.Archivo{
		ID:     repositories.SyntheticID(time.Now().UnixMilli()),
		Nombre: payload.Nombre,
		Tipo:   payload.Tipo,
		Data:   payload.Data,
	}
}

func removeArchivo(list []entities.Archivo, id string) []entities.Archivo {
	kept := list[:0]
	for _, a := range list {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	return kept
}
