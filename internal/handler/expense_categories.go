package handler

import (
	"net/http"

	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/dto"
	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/service"

	"github.com/gin-gonic/gin"
)

type ExpenseCategoriesHandler struct{ svc service.ExpenseCategoryService }

func NewExpenseCategoriesHandler(svc service.ExpenseCategoryService) *ExpenseCategoriesHandler {
	return &ExpenseCategoriesHandler{svc: svc}
}

func (h *ExpenseCategoriesHandler) Create(c *gin.Context) {
	var req dto.CreateExpenseCategoryRequest
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

func (h *ExpenseCategoriesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ExpenseCategoriesHandler) Get(c *gin.Context) {
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

func (h *ExpenseCategoriesHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateExpenseCategoryRequest
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

func (h *ExpenseCategoriesHandler) Delete(c *gin.Context) {
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
