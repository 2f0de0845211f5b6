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
	errInvalidProspectPayload = pkg.NewDomainErrorSimple("INVALID_PROSPECT_INPUT", "Invalid prospect payload", http.StatusBadRequest)
)

// ProspectHandler handles HTTP requests for prospecting-activity records.

type ProspectHandler struct {
	usecase usecase.IProspectUseCase
}

func NewProspectHandler(uc usecase.IProspectUseCase) *ProspectHandler {
	return &ProspectHandler{usecase: uc}
}

func (h *ProspectHandler) Create(c *gin.Context) {
	var payload request.ProspectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProspectPayload.HTTPStatus, errInvalidProspectPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapProspectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProspect(created))
}

func (h *ProspectHandler) List(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProspectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProspects(list))
}

func (h *ProspectHandler) GetByID(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProspectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProspect(found))
}

func (h *ProspectHandler) Update(c *gin.Context) {
	var payload request.ProspectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProspectPayload.HTTPStatus, errInvalidProspectPayload.ToHTTPError())
		return
	}

	entity := payload.ToEntity()
	entity.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), entity)
	if err != nil {
		appErr := mapProspectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProspect(updated))
}

func (h *ProspectHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapProspectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapProspectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProspectID),
		errors.Is(err, usecase.ErrInvalidAdvisor),
		errors.Is(err, usecase.ErrInvalidProspectName),
		errors.Is(err, usecase.ErrInvalidDealType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProspectNotFound):
		return pkg.NewDomainErrorSimple("PROSPECT_NOT_FOUND", "Prospect not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
