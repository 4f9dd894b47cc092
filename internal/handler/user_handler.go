package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"integraservicios/internal/model"
	"integraservicios/internal/service"
)

// UserHandler bundles user administration handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// UsersResponse wraps a user listing.
type UsersResponse struct {
	Users []model.User `json:"usuarios"`
}

// UpdateUserRequest carries the fields to change. Absent fields are kept.
type UpdateUserRequest struct {
	Name     *string `json:"nombre" validate:"omitempty,min=1"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"telefono"`
	Password *string `json:"contrasena" validate:"omitempty,min=1"`
}

// ListUsers godoc
// @Summary List users, or one user by id
// @Tags users
// @Produce json
// @Param id_usuario query int false "User ID"
// @Success 200 {object} UsersResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /consultarUsuarios [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	if raw := c.QueryParam("id_usuario"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return badRequest("invalid id_usuario", "INVALID_ID")
		}
		user, err := h.svc.GetUser(ctx, uint(id))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, UsersResponse{Users: []model.User{*user}})
	}

	users, err := h.svc.ListUsers(ctx)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, UsersResponse{Users: users})
}

// UpdateUser godoc
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id_usuario path int true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /actualizarUsuario/{id_usuario} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c, "id_usuario")
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	update := model.UserUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}
	if err := h.svc.UpdateUser(c.Request().Context(), id, update); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Usuario actualizado exitosamente"})
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id_usuario path int true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /eliminarUsuario/{id_usuario} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c, "id_usuario")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteUser(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Usuario eliminado exitosamente"})
}
