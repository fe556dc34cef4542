package handler

import (
	"net/http"

	"ministerios/internal/ministerio/model"
	"ministerios/internal/ministerio/service"

	"github.com/labstack/echo/v4"
)

type MinisterioHandler struct {
	Service service.MinisterioService
}

func NewMinisterioHandler(s service.MinisterioService) *MinisterioHandler {
	return &MinisterioHandler{Service: s}
}

// PostMinisterio handles POST /ministerios
func (h *MinisterioHandler) PostMinisterio(c echo.Context) error {
	var req model.CreateMinisterioReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, badRequest(c, "Invalid body"))
	}

	m, err := h.Service.CreateMinisterio(c.Request().Context(), req.Fields())
	if err != nil {
		code, body := httpError(c, err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusCreated, m)
}

// GetMinisterio handles GET /ministerios/:id
func (h *MinisterioHandler) GetMinisterio(c echo.Context) error {
	m, err := h.Service.GetMinisterio(c.Request().Context(), c.Param("id"))
	if err != nil {
		code, body := httpError(c, err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, m)
}

// PatchMinisterio handles PATCH /ministerios/:id
func (h *MinisterioHandler) PatchMinisterio(c echo.Context) error {
	var req model.UpdateMinisterioReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, badRequest(c, "Invalid body"))
	}

	m, err := h.Service.UpdateMinisterio(c.Request().Context(), c.Param("id"), req.Patch())
	if err != nil {
		code, body := httpError(c, err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, m)
}

// DeleteMinisterio handles DELETE /ministerios/:id
func (h *MinisterioHandler) DeleteMinisterio(c echo.Context) error {
	if err := h.Service.DeleteMinisterio(c.Request().Context(), c.Param("id")); err != nil {
		code, body := httpError(c, err)
		return c.JSON(code, body)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetMinisterios handles GET /ministerios
func (h *MinisterioHandler) GetMinisterios(c echo.Context) error {
	var req model.ListMinisteriosReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, badRequest(c, "Invalid parameters"))
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(c, err))
	}

	list, err := h.Service.ListMinisterios(c.Request().Context(), req.Filter())
	if err != nil {
		code, body := httpError(c, err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.ListMinisteriosResponse{Items: list, Count: len(list)})
}

// HealthCheck handles GET /health. It reports 503 when the storage backend does not answer.
func (h *MinisterioHandler) HealthCheck(connection string) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := h.Service.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, model.HealthResponse{Status: "unavailable", Connection: connection})
		}
		return c.JSON(http.StatusOK, model.HealthResponse{Status: "ok", Connection: connection})
	}
}
