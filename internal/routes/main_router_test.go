package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"maintenance-system/pkg/config"
	"maintenance-system/pkg/customvalidator"
	"maintenance-system/pkg/eventbus"
	"maintenance-system/pkg/kvstore"
	"maintenance-system/pkg/service"
	"maintenance-system/pkg/utils"
)

type APITestSuite struct {
	suite.Suite
	Echo *echo.Echo
}

func (s *APITestSuite) SetupTest() {
	e := echo.New()
	nopLogger := zap.NewNop()

	v := validator.New()
	s.Require().NoError(customvalidator.RegisterCustomValidations(v))
	e.Validator = utils.NewValidator(v)

	kv, err := kvstore.NewFileStore(s.T().TempDir())
	s.Require().NoError(err)

	cfg := &config.Config{
		Server:  config.ServerConfig{Port: "0"},
		Storage: config.StorageConfig{Dir: "ignorado"},
		Auth:    config.AuthConfig{LoginDelay: 0},
		JWT:     config.JWTConfig{SecretKey: "secreto-de-prueba", SessionTTL: time.Hour},
	}
	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.SessionTTL)

	InitRouter(e, kv, eventbus.New(nopLogger), jwtSvc, nopLogger, cfg)
	s.Echo = e
}

func (s *APITestSuite) request(method, target string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func (s *APITestSuite) decodeBody(rec *httptest.ResponseRecorder) map[string]interface{} {
	var envelope struct {
		Status  bool                   `json:"status"`
		Body    map[string]interface{} `json:"body"`
		Message string                 `json:"message"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Body
}

func (s *APITestSuite) TestLoginSimulado() {
	rec := s.request(http.MethodPost, "/api/auth/login", map[string]string{
		"usuario":  "admin@demo.com",
		"password": "cualquiera",
	})
	s.Equal(http.StatusOK, rec.Code)

	body := s.decodeBody(rec)
	s.NotEmpty(body["token"])
	s.Equal("admin@demo.com", body["usuario"])
}

func (s *APITestSuite) TestLoginSinCredenciales() {
	rec := s.request(http.MethodPost, "/api/auth/login", map[string]string{})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *APITestSuite) TestCicloDeVidaDeEntidad() {
	// Alta
	rec := s.request(http.MethodPost, "/api/entidades", map[string]interface{}{
		"nombre": "Clínica de Prueba",
		"nit":    "900100200",
		"email":  "prueba@clinica.com",
	})
	s.Require().Equal(http.StatusCreated, rec.Code)
	created := s.decodeBody(rec)
	id := uint64(created["id"].(float64))
	s.Equal("Activo", created["estado"])

	// Aparece en la vista de activas, incluso con búsqueda
	rec = s.request(http.MethodGet, "/api/entidades?search=prueba", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Clínica de Prueba")

	// Edición parcial: solo el nombre
	rec = s.request(http.MethodPut, fmt.Sprintf("/api/entidades/%d", id), map[string]interface{}{
		"nombre": "Clínica Renombrada",
	})
	s.Require().Equal(http.StatusOK, rec.Code)
	updated := s.decodeBody(rec)
	s.Equal("Clínica Renombrada", updated["nombre"])
	s.Equal("900100200", updated["nit"])

	// Baja lógica
	rec = s.request(http.MethodDelete, fmt.Sprintf("/api/entidades?ids=%d", id), nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodGet, "/api/entidades", nil)
	s.NotContains(rec.Body.String(), "Clínica Renombrada")
	rec = s.request(http.MethodGet, "/api/entidades?estado=Inactivo", nil)
	s.Contains(rec.Body.String(), "Clínica Renombrada")

	// Reactivación desde la papelera
	rec = s.request(http.MethodPost, fmt.Sprintf("/api/entidades/reactivar?ids=%d", id), nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	rec = s.request(http.MethodGet, "/api/entidades", nil)
	s.Contains(rec.Body.String(), "Clínica Renombrada")
}

func (s *APITestSuite) TestCrearEntidadSinCamposObligatorios() {
	rec := s.request(http.MethodPost, "/api/entidades", map[string]interface{}{
		"nombre": "Sin NIT ni correo",
	})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *APITestSuite) TestEliminacionDefinitivaExigeConfirmacion() {
	rec := s.request(http.MethodPost, "/api/proveedores", map[string]interface{}{
		"numero": "PRV-100",
		"nombre": "Proveedor de Prueba",
	})
	s.Require().Equal(http.StatusCreated, rec.Code)
	created := s.decodeBody(rec)
	id := uint64(created["id"].(float64))

	// Sin confirm=true la acción se rechaza.
	rec = s.request(http.MethodDelete, fmt.Sprintf("/api/proveedores?ids=%d", id), nil)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.request(http.MethodDelete, fmt.Sprintf("/api/proveedores?ids=%d&confirm=true", id), nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodGet, fmt.Sprintf("/api/proveedores/%d", id), nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *APITestSuite) TestGeneracionDeOrdenesDesdeCronograma() {
	rec := s.request(http.MethodPost, "/api/cronogramas", map[string]interface{}{
		"nombre":       "Preventivo de Septiembre",
		"entidad":      "Clínica Central",
		"sede":         "Sede Norte",
		"tipoServicio": "Preventivo",
		"fecha":        "2026-09-15",
		"equipos": []map[string]string{
			{"id": "249177", "nombre": "Centrífuga"},
			{"id": "249178", "nombre": "Balanza"},
		},
	})
	s.Require().Equal(http.StatusCreated, rec.Code)
	created := s.decodeBody(rec)
	id := uint64(created["id"].(float64))
	s.Equal("ABIERTO", created["estado"])

	rec = s.request(http.MethodPost, fmt.Sprintf("/api/cronogramas/%d/ordenes", id), map[string]interface{}{})
	s.Require().Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), "ORD-")

	// El cronograma quedó en GENERADO y las órdenes en la vista de pendientes.
	rec = s.request(http.MethodGet, fmt.Sprintf("/api/cronogramas/%d", id), nil)
	s.Contains(rec.Body.String(), "GENERADO")
	rec = s.request(http.MethodGet, "/api/ordenes", nil)
	s.Contains(rec.Body.String(), "Centrífuga")
	s.Contains(rec.Body.String(), "Balanza")
}

func (s *APITestSuite) TestFechaDeCronogramaInvalida() {
	rec := s.request(http.MethodPost, "/api/cronogramas", map[string]interface{}{
		"nombre": "Mal formado",
		"fecha":  "15/09/2026",
	})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *APITestSuite) TestExportCSV() {
	rec := s.request(http.MethodGet, "/api/entidades/export", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentType), "text/csv")
	s.Contains(rec.Header().Get("Content-Disposition"), "attachment")
	s.Contains(rec.Body.String(), "\"Nombre\"")
}

func (s *APITestSuite) TestExportXLSX() {
	rec := s.request(http.MethodGet, "/api/entidades/export?format=xlsx", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentType), "spreadsheetml")
	s.NotZero(rec.Body.Len())
}

func (s *APITestSuite) TestImpresionDeOrdenes() {
	// Genera una orden primero.
	rec := s.request(http.MethodPost, "/api/cronogramas", map[string]interface{}{
		"nombre": "Para imprimir",
		"fecha":  "2026-09-20",
		"equipos": []map[string]string{
			{"id": "249177", "nombre": "Centrífuga"},
		},
	})
	s.Require().Equal(http.StatusCreated, rec.Code)
	created := s.decodeBody(rec)
	id := uint64(created["id"].(float64))

	rec = s.request(http.MethodPost, fmt.Sprintf("/api/cronogramas/%d/ordenes", id), map[string]interface{}{})
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec = s.request(http.MethodGet, "/api/ordenes/print?ids=1", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "window.print()")
	s.Contains(rec.Body.String(), "ORD-000001")
}

func (s *APITestSuite) TestCatalogoDeEquipos() {
	rec := s.request(http.MethodGet, "/api/equipos", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "249177")
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
