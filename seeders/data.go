package seeders

import (
	"maintenance-system/internal/entities"
	"maintenance-system/pkg/constants"
)

// Semillas de cada colección. Son el respaldo cuando el almacenamiento está
// vacío o corrupto, y lo que escribe el comando seed.

func Entidades() []entities.Entidad {
	return []entities.Entidad{
		{ID: 1191, Nombre: "Ambulancias SAI", NIT: "9009668247", Tipo: constants.TipoExterno, Estado: constants.EstadoActivo, Email: "ambulanciassai@hotmail.com"},
		{ID: 1190, Nombre: "Ambulancias San Jose", NIT: "9003823197", Tipo: constants.TipoExterno, Estado: constants.EstadoActivo, Email: "ambulanciassaniosepasto@hot..."},
		{ID: 17992, Nombre: "BBC Solutions SAS", NIT: "901139486", Tipo: constants.TipoExterno, Estado: constants.EstadoActivo, Email: "dir.tecnica@bbcholding.co"},
		{ID: 20146, Nombre: "Binn SAS", NIT: "901866515", Tipo: constants.TipoInterno, Estado: constants.EstadoActivo, Email: "binnsas@gmail.com"},
		{ID: 9969, Nombre: "Biofardix Suministros Medicos S.A.S", NIT: "901.4138141", Tipo: constants.TipoExterno, Estado: constants.EstadoActivo, Email: "biofardix@gmail.com"},
		{ID: 18266, Nombre: "BREM SAS", NIT: "301608985", Tipo: constants.TipoExterno, Estado: constants.EstadoActivo, Email: "bremsascomercial@gmail.com"},
		{ID: 9834, Nombre: "Carlos Julio Arellano", NIT: "0000000000", Tipo: constants.TipoExterno, Estado: constants.EstadoActivo, Email: "carlosarellano@example.com"},
		{ID: 14678, Nombre: "Celery Group SAS", NIT: "9012431776", Tipo: constants.TipoExterno, Estado: constants.EstadoActivo, Email: "celerygroupsas@example.com"},
	}
}

func Proveedores() []entities.Proveedor {
	return []entities.Proveedor{
		{ID: 1, Numero: "1670", NIT: "860.002.134", Estado: constants.ProveedorActivo, Nombre: "Abbott", TipoServicio: "Equipos Biomédicos"},
		{ID: 2, Numero: "1675", NIT: "900.514.524-9", Estado: constants.ProveedorActivo, Nombre: "Abbvie s.a.s", TipoServicio: "Equipos Biomédicos"},
		{ID: 3, Numero: "2632", NIT: "8300104845", Estado: constants.ProveedorActivo, Nombre: "Aldir", TipoServicio: "Equipos Biomédicos"},
	}
}

func TiposEquipos() []entities.TipoEquipo {
	return []entities.TipoEquipo{
		{ID: 1, Nombre: "ABPI MD", Marca: "MESI", Modelo: "ABPIMDD", CantidadEquipos: 2, EquiposActivos: 2},
		{ID: 2, Nombre: "Agitador / incubador", Marca: "Awareness", Modelo: "Stat Fax - 2200", CantidadEquipos: 1, EquiposActivos: 0},
	}
}

func Solicitudes() []entities.Solicitud {
	equipos := EquiposCatalogo()
	return []entities.Solicitud{
		{ID: 1, Numero: "REQ-001", Prioridad: "Alta", Estado: constants.SolicitudAbierta, Ordenes: "0", Descripcion: "Fallo en motor principal", Area: "Mantenimiento", Ciudad: "Pasto", Fecha: "2025-11-20", EquipoID: equipos[0].ID, EquipoNombre: equipos[0].Nombre},
		{ID: 2, Numero: "REQ-002", Prioridad: "Media", Estado: constants.SolicitudAbierta, Ordenes: "1", Descripcion: "Revisión preventiva equipo A", Area: "Operaciones", Ciudad: "Pasto", Fecha: "2025-11-21", EquipoID: equipos[1].ID, EquipoNombre: equipos[1].Nombre},
	}
}

func Inventarios() []entities.InventarioItem {
	return []entities.InventarioItem{
		{ID: 1, Codigo: "REP-001", Nombre: "Filtro HEPA", Categoria: "Repuestos", Cantidad: 25, Ubicacion: "Almacén Principal", Estado: "Disponible"},
		{ID: 2, Codigo: "REP-002", Nombre: "Sensor de Temperatura", Categoria: "Componentes", Cantidad: 15, Ubicacion: "Almacén Principal", Estado: "Disponible"},
		{ID: 3, Codigo: "REP-003", Nombre: "Cable de Alimentación", Categoria: "Accesorios", Cantidad: 8, Ubicacion: "Almacén Secundario", Estado: "Stock Bajo"},
	}
}

// EquiposCatalogo es el catálogo estático de equipos activos. No es una
// colección editable: solicitudes y cronogramas lo consumen como referencia.
func EquiposCatalogo() []entities.Equipo {
	return []entities.Equipo{
		{ID: "249177", Nombre: "Analizador de Biomarcadores", Marca: "Vitro Group", Modelo: "HybriSpot 12", Serie: "100227", Placa: "GLI-C-BM-001", Codigo: "001", Ubicacion: "Lab Centro", Estado: "Operativo"},
		{ID: "249186", Nombre: "Incubadora", Marca: "Thermolyne", Modelo: "Dri-Bath", Serie: "5352", Placa: "GLI-C-BM-002", Codigo: "002", Ubicacion: "Lab Centro", Estado: "Operativo"},
		{ID: "249188", Nombre: "Nevera", Marca: "Haceb", Modelo: "N 272 SE 2P DA T/BI", Serie: "D181095750", Placa: "GLI-C-APP-001", Codigo: "003", Ubicacion: "Área de almacén", Estado: "Operativo"},
		{ID: "249191", Nombre: "Pipeta Variable", Marca: "Boeco", Modelo: "5-50 UL", Serie: "ME906572", Placa: "GLI-C-ES-005", Codigo: "004", Ubicacion: "Lab Centro", Estado: "Operativo"},
		{ID: "249193", Nombre: "Termómetro Digital", Marca: "Digital Thermometer", Modelo: "NT", Serie: "NTI", Placa: "GLI-C-MB-001", Codigo: "005", Ubicacion: "Lab Centro", Estado: "Operativo"},
		{ID: "249194", Nombre: "Cabina de Bioseguridad", Marca: "Lumes", Modelo: "BA206", Serie: "14092302", Placa: "GLI-C-BM-003", Codigo: "006", Ubicacion: "Lab Centro", Estado: "Operativo"},
		{ID: "249195", Nombre: "Incubadora", Marca: "WTC Binder", Modelo: "7B532", Serie: "3002807000100", Placa: "GLI-C-MB-002", Codigo: "007", Ubicacion: "Lab Centro", Estado: "Operativo"},
		{ID: "249201", Nombre: "Termómetro de Nevera", Marca: "Alla France", Modelo: "91000-009/A", Serie: "NTI", Placa: "GLI-C-APP-021", Codigo: "008", Ubicacion: "Área de almacén", Estado: "Operativo"},
		{ID: "249205", Nombre: "Centrífuga", Marca: "Indulab", Modelo: "04 Special", Serie: "16200", Placa: "GLI-C-APP-003", Codigo: "009", Ubicacion: "Lab Centro", Estado: "Operativo"},
		{ID: "249206", Nombre: "Congelador Vertical", Marca: "Mabe", Modelo: "ALASKAV30550", Serie: "NTI", Placa: "GLI-C-APP-004", Codigo: "010", Ubicacion: "Área de almacén", Estado: "Operativo"},
	}
}
