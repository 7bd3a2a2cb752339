package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutridash/backend/internal/middleware"
	"github.com/nutridash/backend/internal/models"
	"github.com/nutridash/backend/internal/service"
	"github.com/nutridash/backend/internal/validation"
)

type ServingUnitHandler struct {
	servingUnitService *service.ServingUnitService
}

func NewServingUnitHandler(servingUnitService *service.ServingUnitService) *ServingUnitHandler {
	return &ServingUnitHandler{servingUnitService: servingUnitService}
}

func (h *ServingUnitHandler) RegisterRoutes(router *gin.RouterGroup) {
	units := router.Group("/serving-units")
	{
		units.GET("", h.List)
		units.GET("/:id", h.Get)
		units.POST("", middleware.RequireRole(models.RoleAdmin), h.Save)
		units.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), h.Delete)
	}
}

func (h *ServingUnitHandler) List(c *gin.Context) {
	units, err := h.servingUnitService.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"servingUnits": units})
}

func (h *ServingUnitHandler) Get(c *gin.Context) {
	id := validation.ToIDSafe(c.Param("id"))
	payload, err := h.servingUnitService.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if payload == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Serving unit not found"})
		return
	}
	c.JSON(http.StatusOK, payload)
}

func (h *ServingUnitHandler) Save(c *gin.Context) {
	var payload validation.ServingUnitPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.servingUnitService.Save(c.Request.Context(), payload); err != nil {
		_ = c.Error(err)
		return
	}

	status := http.StatusOK
	if payload.Action == validation.ActionCreate {
		status = http.StatusCreated
	}
	c.JSON(status, SavedResponse{Message: "Serving unit saved"})
}

func (h *ServingUnitHandler) Delete(c *gin.Context) {
	id := validation.ToIDSafe(c.Param("id"))
	if err := h.servingUnitService.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, SavedResponse{Message: "Serving unit deleted"})
}
