package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"integraservicios/internal/model"
	"integraservicios/internal/service"
)

// ReservationHandler handles reservation endpoints.
type ReservationHandler struct {
	svc service.ReservationService
}

// NewReservationHandler creates a new reservation handler.
func NewReservationHandler(svc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

// AddReservationRequest asks for any available resource of a type at a slot.
// Estado is accepted for compatibility and ignored: new reservations start Vigente.
type AddReservationRequest struct {
	UserID         uint       `json:"id_usuario" validate:"required"`
	ResourceTypeID uint       `json:"id_tipo_recurso" validate:"required"`
	Date           model.Date `json:"fecha_reserva"`
	Time           string     `json:"hora_reserva" validate:"required"`
	Status         string     `json:"estado"`
}

// AddReservationResponse reports the allocated resource.
type AddReservationResponse struct {
	Message    string `json:"message"`
	ResourceID uint   `json:"id_recurso"`
}

// ReservationIDRequest identifies a reservation in a status change.
type ReservationIDRequest struct {
	ReservationID uint `json:"id_reserva" validate:"required"`
}

// ReservationsResponse wraps a reservation listing.
type ReservationsResponse struct {
	Data []model.ReservationView `json:"data"`
}

// ActiveReservationsResponse wraps a user's vigent reservations.
type ActiveReservationsResponse struct {
	Reservations []model.Reservation `json:"reservas_vigentes"`
}

// AddReservation godoc
// @Summary Book any available resource of a type
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body AddReservationRequest true "Reservation request"
// @Success 200 {object} AddReservationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /agregarReserva [post]
func (h *ReservationHandler) AddReservation(c echo.Context) error {
	var req AddReservationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Date.IsZero() {
		return badRequest("fecha_reserva is required", "VALIDATION_FAILED")
	}

	resourceID, err := h.svc.Allocate(c.Request().Context(), req.UserID, req.ResourceTypeID, req.Date, req.Time)
	if err != nil {
		return businessError(err)
	}

	return c.JSON(http.StatusOK, AddReservationResponse{
		Message:    "Reserva creada exitosamente",
		ResourceID: resourceID,
	})
}

// CancelReservation godoc
// @Summary Cancel a reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body ReservationIDRequest true "Reservation"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cancelarReserva [post]
func (h *ReservationHandler) CancelReservation(c echo.Context) error {
	return h.changeStatus(c, model.ReservationStatusCancelled, "Reserva cancelada exitosamente")
}

// FinishReservation godoc
// @Summary Finish a reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body ReservationIDRequest true "Reservation"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /terminarReserva [post]
func (h *ReservationHandler) FinishReservation(c echo.Context) error {
	return h.changeStatus(c, model.ReservationStatusFinished, "Reserva finalizada exitosamente")
}

func (h *ReservationHandler) changeStatus(c echo.Context, status model.ReservationStatus, message string) error {
	var req ReservationIDRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.svc.ChangeStatus(c.Request().Context(), req.ReservationID, status); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// GetReservation godoc
// @Summary Get a reservation by id
// @Tags reservations
// @Produce json
// @Param id_reserva path int true "Reservation ID"
// @Success 200 {object} model.Reservation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reservas/{id_reserva} [get]
func (h *ReservationHandler) GetReservation(c echo.Context) error {
	id, err := parseID(c, "id_reserva")
	if err != nil {
		return err
	}
	reservation, err := h.svc.GetReservation(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, reservation)
}

// DeleteReservation godoc
// @Summary Delete a reservation
// @Tags reservations
// @Produce json
// @Param id_reserva path int true "Reservation ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /reservas/{id_reserva} [delete]
func (h *ReservationHandler) DeleteReservation(c echo.Context) error {
	id, err := parseID(c, "id_reserva")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteReservation(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Reserva eliminada exitosamente"})
}

// ListReservations godoc
// @Summary List reservations with filters, newest first
// @Tags reservations
// @Produce json
// @Param nombre_usuario query string false "User name substring"
// @Param estado query string false "Accepted and ignored"
// @Param tipo_filtro query string false "Period" Enums(Vigentes, Pasadas, Futuras)
// @Param fecha_inicio query string false "From date (YYYY-MM-DD)"
// @Param fecha_fin query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} ReservationsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /consultarReservaUsuario [get]
func (h *ReservationHandler) ListReservations(c echo.Context) error {
	var (
		filter   model.ReservationFilter
		from, to model.Date
	)
	err := echo.QueryParamsBinder(c).
		String("nombre_usuario", &filter.UserNameContains).
		String("tipo_filtro", (*string)(&filter.Kind)).
		BindUnmarshaler("fecha_inicio", &from).
		BindUnmarshaler("fecha_fin", &to).
		BindError()
	if err != nil {
		return badRequest("invalid query parameters", "INVALID_QUERY")
	}
	if !from.IsZero() {
		filter.From = &from
	}
	if !to.IsZero() {
		filter.To = &to
	}

	views, err := h.svc.ListReservations(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ReservationsResponse{Data: views})
}

// ListActiveReservations godoc
// @Summary List a user's vigent reservations
// @Tags reservations
// @Produce json
// @Param id_usuario path int true "User ID"
// @Success 200 {object} ActiveReservationsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reservasVigentes/{id_usuario} [get]
func (h *ReservationHandler) ListActiveReservations(c echo.Context) error {
	id, err := parseID(c, "id_usuario")
	if err != nil {
		return err
	}
	reservations, err := h.svc.ListActiveReservations(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ActiveReservationsResponse{Reservations: reservations})
}
