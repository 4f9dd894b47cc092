package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"integraservicios/docs"
	"integraservicios/internal/auth"
	"integraservicios/internal/config"
	"integraservicios/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *zap.Logger,
	tokens *auth.TokenService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	reservationHandler *handler.ReservationHandler,
	resourceHandler *handler.ResourceHandler,
	loanHandler *handler.LoanHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.Use(middleware.RequestLoggerWithConfig(requestLoggerConfig(log.Named("http"))))
	if cfg.RateLimitRPS > 0 {
		e.Use(newRateLimiterMW(cfg.RateLimitRPS))
	}

	e.Validator = NewValidator()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Authentication and users
	e.POST("/validate", authHandler.Validate)
	e.POST("/registrarUsuario", authHandler.Register)
	e.GET("/consultarUsuarios", userHandler.ListUsers)
	e.PUT("/actualizarUsuario/:id_usuario", userHandler.UpdateUser)
	e.DELETE("/eliminarUsuario/:id_usuario", userHandler.DeleteUser)

	// Reservations
	e.POST("/agregarReserva", reservationHandler.AddReservation)
	e.POST("/cancelarReserva", reservationHandler.CancelReservation)
	e.POST("/terminarReserva", reservationHandler.FinishReservation)
	e.GET("/reservas/:id_reserva", reservationHandler.GetReservation)
	e.DELETE("/reservas/:id_reserva", reservationHandler.DeleteReservation)
	e.GET("/consultarReservaUsuario", reservationHandler.ListReservations)
	e.GET("/reservasVigentes/:id_usuario", reservationHandler.ListActiveReservations)

	// Resources
	e.GET("/consultarRecursos", resourceHandler.ListResources)

	// Loans and returns
	e.POST("/registrarPrestamo", loanHandler.RegisterLoan, bearerAuth(tokens))
	e.GET("/prestamosVigentes/:id_usuario", loanHandler.ListActiveLoans)
	e.POST("/registrarDevolucion", loanHandler.RegisterReturn)

	// External services
	external := e.Group("/api")
	if cfg.Auth.APIKey != "" {
		external.Use(apiKeyAuth(cfg.Auth.APIKey))
	} else {
		log.Warn("API_KEY is empty, /api routes are open")
	}
	external.GET("/recursosDisponibles", resourceHandler.ListAvailableResources)
}
