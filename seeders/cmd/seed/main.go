package main

import (
	"maintenance-system/pkg/config"
	"maintenance-system/pkg/kvstore"
	applogger "maintenance-system/pkg/logger"
	"maintenance-system/seeders"

	"go.uber.org/zap"
)

func main() {
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	kv, err := kvstore.NewFileStore(cfg.Storage.Dir)
	if err != nil {
		logger.Fatal("no se pudo abrir el almacenamiento", zap.Error(err))
	}

	if err := seeders.SeedAll(kv, logger); err != nil {
		logger.Fatal("fallo al escribir las semillas", zap.Error(err))
	}

	logger.Info("semillas completas", zap.String("dir", cfg.Storage.Dir))
}
