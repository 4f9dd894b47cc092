package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"integraservicios/internal/auth"
	"integraservicios/internal/config"
	"integraservicios/internal/handler"
	"integraservicios/internal/model"
	"integraservicios/internal/router"
	service_mocks "integraservicios/internal/service/mocks"
)

type services struct {
	auth         *service_mocks.MockAuthService
	users        *service_mocks.MockUserService
	reservations *service_mocks.MockReservationService
	resources    *service_mocks.MockResourceService
	loans        *service_mocks.MockLoanService
}

func newServer(t *testing.T, apiKey string) (*echo.Echo, *services, *auth.TokenService) {
	c := gomock.NewController(t)
	svc := &services{
		auth:         service_mocks.NewMockAuthService(c),
		users:        service_mocks.NewMockUserService(c),
		reservations: service_mocks.NewMockReservationService(c),
		resources:    service_mocks.NewMockResourceService(c),
		loans:        service_mocks.NewMockLoanService(c),
	}
	tokens := auth.NewTokenService("router-secret", 0, zap.NewNop())
	cfg := &config.Config{
		CORSOrigins: []string{"http://localhost:4200"},
		Auth:        config.Auth{APIKey: apiKey},
	}

	e := echo.New()
	router.Register(e, cfg, zap.NewNop(), tokens,
		handler.NewAuthHandler(svc.auth),
		handler.NewUserHandler(svc.users),
		handler.NewReservationHandler(svc.reservations),
		handler.NewResourceHandler(svc.resources),
		handler.NewLoanHandler(svc.loans),
	)
	return e, svc, tokens
}

func TestRouter_Healthz(t *testing.T) {
	e, _, _ := newServer(t, "")

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ok", w.Body.String())
}

func TestRouter_RegisterLoanRequiresBearer(t *testing.T) {
	const body = `{"id_reserva":3,"id_empleado":8,"fecha_prestamo":"2024-03-04","hora_prestamo":"10:30"}`

	expired := auth.NewTokenService("router-secret", -time.Minute, zap.NewNop())
	expiredToken, err := expired.IssueToken(1)
	require.NoError(t, err)

	tests := []struct {
		name         string
		header       func(tokens *auth.TokenService) string
		expectLoan   bool
		expectedCode int
	}{
		{
			name:         "missing token",
			header:       func(*auth.TokenService) string { return "" },
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "malformed token",
			header:       func(*auth.TokenService) string { return "Bearer not-a-jwt" },
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "expired token",
			header:       func(*auth.TokenService) string { return "Bearer " + expiredToken },
			expectedCode: http.StatusForbidden,
		},
		{
			name: "valid token",
			header: func(tokens *auth.TokenService) string {
				token, _ := tokens.IssueToken(1)
				return "Bearer " + token
			},
			expectLoan:   true,
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, svc, tokens := newServer(t, "")
			if tt.expectLoan {
				svc.loans.EXPECT().
					RegisterLoan(gomock.Any(), uint(3), uint(8), model.NewDate(2024, 3, 4), "10:30").
					Return(&model.Loan{ID: 21}, nil)
			}

			r := httptest.NewRequest(http.MethodPost, "/registrarPrestamo", strings.NewReader(body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if h := tt.header(tokens); h != "" {
				r.Header.Set(echo.HeaderAuthorization, h)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestRouter_AvailableResourcesRequireAPIKey(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		expectCall   bool
		expectedCode int
		expectedBody string
	}{
		{
			name:         "missing key",
			expectedCode: http.StatusForbidden,
			expectedBody: `{"error":"unauthorized access, invalid api key","code":"INVALID_API_KEY"}`,
		},
		{
			name:         "wrong key",
			key:          "nope",
			expectedCode: http.StatusForbidden,
			expectedBody: `{"error":"unauthorized access, invalid api key","code":"INVALID_API_KEY"}`,
		},
		{
			name:         "matching key",
			key:          "super_secret_token",
			expectCall:   true,
			expectedCode: http.StatusOK,
			expectedBody: `{"recursos_disponibles":[{"id_recurso":1,"nombre":"Sala 101","tipo_recurso":"Sala","horario_disponibilidad":["Lunes 08:00-12:00"]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, svc, _ := newServer(t, "super_secret_token")
			if tt.expectCall {
				svc.resources.EXPECT().ListAvailableResources(gomock.Any()).Return([]model.AvailableResource{
					{ID: 1, Name: "Sala 101", ResourceType: "Sala", Schedule: []string{"Lunes 08:00-12:00"}},
				}, nil)
			}

			r := httptest.NewRequest(http.MethodGet, "/api/recursosDisponibles", http.NoBody)
			if tt.key != "" {
				r.Header.Set("api-key", tt.key)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	e, _, _ := newServer(t, "")

	r := httptest.NewRequest(http.MethodOptions, "/agregarReserva", http.NoBody)
	r.Header.Set(echo.HeaderOrigin, "http://localhost:4200")
	r.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "http://localhost:4200", w.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
