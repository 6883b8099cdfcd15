package handler

import (
	"net/http"

	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/dto"
	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/service"

	"github.com/gin-gonic/gin"
)

type GamesHandler struct{ svc service.GameService }

func NewGamesHandler(svc service.GameService) *GamesHandler {
	return &GamesHandler{svc: svc}
}

func (h *GamesHandler) Create(c *gin.Context) {
	var req dto.CreateGameRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *GamesHandler) List(c *gin.Context) {
	filter := dto.GameFilter{
		Active:    c.Query("active"),
		ToyTypeID: c.Query("toy_type_id"),
		Available: c.Query("available"),
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GamesHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GamesHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateGameRequest
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

// UpdateCounters replaces both unit-count sets of the game.
func (h *GamesHandler) UpdateCounters(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UnitCountersRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateCounters(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GamesHandler) AssignClauses(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AssignClausesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AssignClauses(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GamesHandler) Delete(c *gin.Context) {
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
