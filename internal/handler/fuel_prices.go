package handler

import (
	"net/http"

	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/dto"
	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/service"

	"github.com/gin-gonic/gin"
)

type FuelPricesHandler struct{ svc service.FuelPriceService }

func NewFuelPricesHandler(svc service.FuelPriceService) *FuelPricesHandler {
	return &FuelPricesHandler{svc: svc}
}

// SetPrice registers a new active price, retiring the previous one.
func (h *FuelPricesHandler) SetPrice(c *gin.Context) {
	var req dto.SetFuelPriceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.SetPrice(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *FuelPricesHandler) Current(c *gin.Context) {
	resp, err := h.svc.Current(c.Request.Context(), c.Param("fuelType"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FuelPricesHandler) CurrentAll(c *gin.Context) {
	resp, err := h.svc.CurrentAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FuelPricesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FuelPricesHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateFuelPriceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FuelPricesHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
