package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"integraservicios/internal/model"
	"integraservicios/internal/service"
)

// ResourceHandler serves the resource catalogue.
type ResourceHandler struct {
	svc service.ResourceService
}

// NewResourceHandler creates a handler layer.
func NewResourceHandler(svc service.ResourceService) *ResourceHandler {
	return &ResourceHandler{svc: svc}
}

// ResourcesResponse wraps a resource listing.
type ResourcesResponse struct {
	Data []model.ResourceView `json:"data"`
}

// AvailableResourcesResponse wraps the available resources with per-day schedules.
type AvailableResourcesResponse struct {
	Resources []model.AvailableResource `json:"recursos_disponibles"`
}

// ListResources godoc
// @Summary List resources with filters and ordering
// @Tags resources
// @Produce json
// @Param tipo_recurso query string false "Resource type name"
// @Param estado query string false "Status"
// @Param nombre_recurso query string false "Name substring"
// @Param horario_disponibilidad query string false "Schedule substring"
// @Param orden query string false "Sort key, prefix with - for descending" Enums(id_recurso, nombre, tipo_recurso, horario_disponibilidad, estado)
// @Success 200 {object} ResourcesResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /consultarRecursos [get]
func (h *ResourceHandler) ListResources(c echo.Context) error {
	filter := model.ResourceFilter{
		TypeName:         c.QueryParam("tipo_recurso"),
		Status:           c.QueryParam("estado"),
		NameContains:     c.QueryParam("nombre_recurso"),
		ScheduleContains: c.QueryParam("horario_disponibilidad"),
		Sort:             c.QueryParam("orden"),
	}

	views, err := h.svc.ListResources(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ResourcesResponse{Data: views})
}

// ListAvailableResources godoc
// @Summary List available resources for external services
// @Tags resources
// @Produce json
// @Param api-key header string true "API key"
// @Success 200 {object} AvailableResourcesResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/recursosDisponibles [get]
func (h *ResourceHandler) ListAvailableResources(c echo.Context) error {
	resources, err := h.svc.ListAvailableResources(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, AvailableResourcesResponse{Resources: resources})
}
