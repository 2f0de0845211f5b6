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
	errInvalidTargetPayload = pkg.NewDomainErrorSimple("INVALID_TARGET_INPUT", "Invalid target payload", http.StatusBadRequest)
)

// TargetHandler handles HTTP requests for monthly quota records.

type TargetHandler struct {
	usecase usecase.ITargetUseCase
}

func NewTargetHandler(uc usecase.ITargetUseCase) *TargetHandler {
	return &TargetHandler{usecase: uc}
}

func (h *TargetHandler) Create(c *gin.Context) {
	var payload request.TargetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTargetPayload.HTTPStatus, errInvalidTargetPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapTargetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTarget(created))
}

func (h *TargetHandler) List(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapTargetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTargets(list))
}

func (h *TargetHandler) GetByID(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTargetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTarget(found))
}

func (h *TargetHandler) Update(c *gin.Context) {
	var payload request.TargetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTargetPayload.HTTPStatus, errInvalidTargetPayload.ToHTTPError())
		return
	}

	entity := payload.ToEntity()
	entity.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), entity)
	if err != nil {
		appErr := mapTargetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTarget(updated))
}

func (h *TargetHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapTargetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapTargetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTargetID),
		errors.Is(err, usecase.ErrInvalidAdvisor),
		errors.Is(err, usecase.ErrInvalidMonth),
		errors.Is(err, usecase.ErrInvalidYear),
		errors.Is(err, usecase.ErrInvalidQuota):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTargetNotFound):
		return pkg.NewDomainErrorSimple("TARGET_NOT_FOUND", "Target not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
