package handlers

import (
	request "crm_ventas/internal/adapter/http/dto/request"
	response "crm_ventas/internal/adapter/http/dto/response"
	"crm_ventas/internal/usecase"
	"crm_ventas/pkg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAppointmentPayload = pkg.NewDomainErrorSimple("INVALID_APPOINTMENT_INPUT", "Invalid appointment payload", http.StatusBadRequest)
)

// AppointmentHandler handles HTTP requests for appointment records.

type AppointmentHandler struct {
	usecase usecase.IAppointmentUseCase
}

func NewAppointmentHandler(uc usecase.IAppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{usecase: uc}
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var payload request.AppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAppointment(created))
}

func (h *AppointmentHandler) List(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointments(list))
}

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointment(found))
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	var payload request.AppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	entity := payload.ToEntity()
	entity.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), entity)
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointment(updated))
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapAppointmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAppointmentID),
		errors.Is(err, usecase.ErrInvalidAdvisor),
		errors.Is(err, usecase.ErrInvalidProspectName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
