package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"integraservicios/internal/model"
	"integraservicios/internal/service"
)

// LoanHandler handles loan and return endpoints.
type LoanHandler struct {
	svc service.LoanService
}

// NewLoanHandler creates a new loan handler.
func NewLoanHandler(svc service.LoanService) *LoanHandler {
	return &LoanHandler{svc: svc}
}

// RegisterLoanRequest records a resource handed out against a reservation.
type RegisterLoanRequest struct {
	ReservationID uint       `json:"id_reserva" validate:"required"`
	EmployeeID    uint       `json:"id_empleado" validate:"required"`
	Date          model.Date `json:"fecha_prestamo"`
	Time          string     `json:"hora_prestamo" validate:"required"`
}

// RegisterLoanResponse reports the new loan.
type RegisterLoanResponse struct {
	Message string `json:"message"`
	LoanID  uint   `json:"id_prestamo"`
}

// RegisterReturnRequest records a loaned resource coming back.
type RegisterReturnRequest struct {
	LoanID     uint       `json:"id_prestamo" validate:"required"`
	Date       model.Date `json:"fecha_devolucion"`
	Time       string     `json:"hora_devolucion" validate:"required"`
	EmployeeID uint       `json:"id_empleado" validate:"required"`
}

// ActiveLoansResponse wraps a user's loans.
type ActiveLoansResponse struct {
	Loans []model.LoanView `json:"prestamos_vigentes"`
}

// RegisterLoan godoc
// @Summary Register a loan against a vigent reservation
// @Tags loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RegisterLoanRequest true "Loan"
// @Success 200 {object} RegisterLoanResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /registrarPrestamo [post]
func (h *LoanHandler) RegisterLoan(c echo.Context) error {
	var req RegisterLoanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Date.IsZero() {
		return badRequest("fecha_prestamo is required", "VALIDATION_FAILED")
	}

	loan, err := h.svc.RegisterLoan(c.Request().Context(), req.ReservationID, req.EmployeeID, req.Date, req.Time)
	if err != nil {
		return businessError(err)
	}
	return c.JSON(http.StatusOK, RegisterLoanResponse{
		Message: "Préstamo registrado exitosamente",
		LoanID:  loan.ID,
	})
}

// RegisterReturn godoc
// @Summary Register the return of a loan
// @Tags loans
// @Accept json
// @Produce json
// @Param request body RegisterReturnRequest true "Return"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /registrarDevolucion [post]
func (h *LoanHandler) RegisterReturn(c echo.Context) error {
	var req RegisterReturnRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Date.IsZero() {
		return badRequest("fecha_devolucion is required", "VALIDATION_FAILED")
	}

	if _, err := h.svc.RegisterReturn(c.Request().Context(), req.LoanID, req.Date, req.Time, req.EmployeeID); err != nil {
		return businessError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Devolución registrada exitosamente"})
}

// ListActiveLoans godoc
// @Summary List the loans of a user's reservations
// @Tags loans
// @Produce json
// @Param id_usuario path int true "User ID"
// @Success 200 {object} ActiveLoansResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /prestamosVigentes/{id_usuario} [get]
func (h *LoanHandler) ListActiveLoans(c echo.Context) error {
	id, err := parseID(c, "id_usuario")
	if err != nil {
		return err
	}
	loans, err := h.svc.ListActiveLoans(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ActiveLoansResponse{Loans: loans})
}
