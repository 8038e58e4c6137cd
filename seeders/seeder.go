package seeders

import (
	"maintenance-system/pkg/constants"
	"maintenance-system/pkg/kvstore"

	"go.uber.org/zap"
)

// SeedAll escribe las colecciones iniciales en el almacenamiento. No
// sobrescribe claves que ya existen.
func SeedAll(kv *kvstore.FileStore, logger *zap.Logger) error {
	writes := []struct {
		key   string
		value interface{}
	}{
		{constants.KeyEntidades, Entidades()},
		{constants.KeyProveedores, Proveedores()},
		{constants.KeyTiposEquipos, TiposEquipos()},
		{constants.KeySolicitudes, Solicitudes()},
		{constants.KeyInventarios, Inventarios()},
	}

	for _, w := range writes {
		var existing interface{}
		if err := kv.Load(w.key, &existing); err == nil {
			logger.Info("clave ya poblada, se omite", zap.String("key", w.key))
			continue
		}
		if err := kv.Save(w.key, w.value); err != nil {
			return err
		}
		logger.Info("semilla escrita", zap.String("key", w.key))
	}
	return nil
}
