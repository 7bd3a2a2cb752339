package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutridash/backend/internal/middleware"
	"github.com/nutridash/backend/internal/models"
	"github.com/nutridash/backend/internal/service"
	"github.com/nutridash/backend/internal/validation"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	categories := router.Group("/categories")
	{
		categories.GET("", h.List)
		categories.GET("/:id", h.Get)
		categories.POST("", middleware.RequireRole(models.RoleAdmin), h.Save)
		categories.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), h.Delete)
	}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id := validation.ToIDSafe(c.Param("id"))
	payload, err := h.categoryService.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if payload == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, payload)
}

func (h *CategoryHandler) Save(c *gin.Context) {
	var payload validation.CategoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.categoryService.Save(c.Request.Context(), payload); err != nil {
		_ = c.Error(err)
		return
	}

	status := http.StatusOK
	if payload.Action == validation.ActionCreate {
		status = http.StatusCreated
	}
	c.JSON(status, SavedResponse{Message: "Category saved"})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id := validation.ToIDSafe(c.Param("id"))
	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, SavedResponse{Message: "Category deleted"})
}
