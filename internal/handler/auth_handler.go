package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"integraservicios/internal/errors"
	"integraservicios/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"correo" validate:"required"`
	Password string `json:"contrasena" validate:"required"`
}

// LoginResponse carries the bearer token of an authenticated user.
type LoginResponse struct {
	Message string `json:"message"`
	Code    int    `json:"codigo"`
	Token   string `json:"token"`
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"telefono" validate:"required"`
	Password string `json:"contrasena" validate:"required"`
}

// Validate godoc
// @Summary Authenticate a user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /validate [post]
func (h *AuthHandler) Validate(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.authService.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if stderrors.Is(err, errors.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
				Error: "El correo o la contraseña son incorrectos",
				Code:  errors.CodeOf(err),
			})
		}
		return httpError(err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Message: "Logeado correctamente",
		Code:    http.StatusAccepted,
		Token:   token,
	})
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /registrarUsuario [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Phone, req.Password); err != nil {
		return businessError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Usuario registrado exitosamente"})
}
