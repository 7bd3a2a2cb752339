package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nutridash/backend/internal/middleware"
	"github.com/nutridash/backend/internal/service"
	"github.com/nutridash/backend/internal/types"
	"github.com/nutridash/backend/internal/validation"
)

type MealHandler struct {
	mealService *service.MealService
}

func NewMealHandler(mealService *service.MealService) *MealHandler {
	return &MealHandler{mealService: mealService}
}

func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	meals := router.Group("/meals")
	{
		meals.GET("", h.List)
		meals.GET("/:id", h.Get)
		meals.POST("", h.Save)
		meals.DELETE("/:id", h.Delete)
	}
}

func (h *MealHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	filters := types.DefaultMealFilters()
	if v, ok := c.GetQuery("day"); ok {
		day, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid day, expected YYYY-MM-DD"})
			return
		}
		filters.Day = day
	}

	meals, err := h.mealService.List(c.Request.Context(), userID, filters)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (h *MealHandler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id := validation.ToIDSafe(c.Param("id"))
	payload, err := h.mealService.Get(c.Request.Context(), id, userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if payload == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}
	c.JSON(http.StatusOK, payload)
}

func (h *MealHandler) Save(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var payload validation.MealPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.mealService.Save(c.Request.Context(), userID, payload); err != nil {
		_ = c.Error(err)
		return
	}

	status := http.StatusOK
	if payload.Action == validation.ActionCreate {
		status = http.StatusCreated
	}
	c.JSON(status, SavedResponse{Message: "Meal saved"})
}

func (h *MealHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id := validation.ToIDSafe(c.Param("id"))
	if err := h.mealService.Delete(c.Request.Context(), id, userID); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, SavedResponse{Message: "Meal deleted"})
}
