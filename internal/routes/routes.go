package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"maintenance-system/internal/controllers"
	"maintenance-system/internal/repositories"
	"maintenance-system/internal/services"
	"maintenance-system/pkg/config"
	"maintenance-system/pkg/eventbus"
	"maintenance-system/pkg/kvstore"
	"maintenance-system/pkg/service"
)

// InitRouter arma toda la cadena: colecciones sobre el almacén
// clave-valor, servicios, controladores y rutas bajo /api.
func InitRouter(e *echo.Echo, kv kvstore.Store, bus *eventbus.Bus, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")

	// --- colecciones ---
	entidades := repositories.NewEntidadCollection(kv, bus, logger)
	sedes := repositories.NewSedeCollection(kv, bus, logger)
	proveedores := repositories.NewProveedorCollection(kv, bus, logger)
	tiposEquipos := repositories.NewTipoEquipoCollection(kv, bus, logger)
	tiposEquiposFiles := repositories.NewTipoEquipoFilesRepository(kv, bus, logger)
	cronogramas := repositories.NewCronogramaCollection(kv, bus, logger)
	ordenes := repositories.NewOrdenCollection(kv, bus, logger)
	solicitudes := repositories.NewSolicitudCollection(kv, bus, logger)
	inventarios := repositories.NewInventarioCollection(kv, bus, logger)

	// --- servicios ---
	entidadService := services.NewEntidadService(entidades, logger)
	sedeService := services.NewSedeService(sedes, entidades, logger)
	proveedorService := services.NewProveedorService(proveedores, logger)
	tipoEquipoService := services.NewTipoEquipoService(tiposEquipos, tiposEquiposFiles, logger)
	cronogramaService := services.NewCronogramaService(cronogramas, ordenes, logger)
	ordenService := services.NewOrdenService(ordenes, logger)
	solicitudService := services.NewSolicitudService(solicitudes, ordenes, logger)
	inventarioService := services.NewInventarioService(inventarios, logger)
	authService := services.NewAuthService(jwtSvc, cfg.Auth.LoginDelay, logger)

	// --- controladores y rutas ---
	runAuthRouter(api, controllers.NewAuthController(authService, logger))
	runEntidadRouter(api, controllers.NewEntidadController(entidadService, logger))
	runSedeRouter(api, controllers.NewSedeController(sedeService, logger))
	runProveedorRouter(api, controllers.NewProveedorController(proveedorService, logger))
	runTipoEquipoRouter(api, controllers.NewTipoEquipoController(tipoEquipoService, logger))
	runCronogramaRouter(api, controllers.NewCronogramaController(cronogramaService, logger))
	runOrdenRouter(api, controllers.NewOrdenController(ordenService, logger))
	runSolicitudRouter(api, controllers.NewSolicitudController(solicitudService, logger))
	runInventarioRouter(api, controllers.NewInventarioController(inventarioService, logger))
}
