package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nutridash/backend/internal/middleware"
	"github.com/nutridash/backend/internal/models"
	"github.com/nutridash/backend/internal/service"
	"github.com/nutridash/backend/internal/types"
	"github.com/nutridash/backend/internal/validation"
)

type FoodHandler struct {
	foodService  *service.FoodService
	imageService *service.ImageService
}

func NewFoodHandler(foodService *service.FoodService, imageService *service.ImageService) *FoodHandler {
	return &FoodHandler{foodService: foodService, imageService: imageService}
}

func (h *FoodHandler) RegisterRoutes(router *gin.RouterGroup) {
	// Reads are open to any signed-in user: the meal form browses the
	// catalog. Writes stay behind the admin role.
	foods := router.Group("/foods")
	{
		foods.GET("", h.List)
		foods.GET("/:id", h.Get)
		foods.POST("", middleware.RequireRole(models.RoleAdmin), h.Save)
		foods.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), h.Delete)
		foods.POST("/:id/image", middleware.RequireRole(models.RoleAdmin), h.UploadImage)
	}
}

// filtersFromQuery fills a filter object from the query string, starting
// from the defaults so omitted parameters keep their default values.
func filtersFromQuery(c *gin.Context) types.FoodFilters {
	filters := types.DefaultFoodFilters()

	if v, ok := c.GetQuery("searchTerm"); ok {
		filters.SearchTerm = v
	}
	if v, ok := c.GetQuery("caloriesMin"); ok {
		filters.CaloriesRange[0] = v
	}
	if v, ok := c.GetQuery("caloriesMax"); ok {
		filters.CaloriesRange[1] = v
	}
	if v, ok := c.GetQuery("proteinMin"); ok {
		filters.ProteinRange[0] = v
	}
	if v, ok := c.GetQuery("proteinMax"); ok {
		filters.ProteinRange[1] = v
	}
	if v, ok := c.GetQuery("categoryId"); ok {
		filters.CategoryID = v
	}
	if v, ok := c.GetQuery("sortBy"); ok {
		filters.SortBy = v
	}
	if v, ok := c.GetQuery("sortOrder"); ok {
		filters.SortOrder = v
	}
	if v, ok := c.GetQuery("page"); ok {
		filters.Page, _ = strconv.Atoi(v)
	}
	if v, ok := c.GetQuery("pageSize"); ok {
		filters.PageSize, _ = strconv.Atoi(v)
	}

	return filters
}

func (h *FoodHandler) List(c *gin.Context) {
	result, err := h.foodService.List(c.Request.Context(), filtersFromQuery(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *FoodHandler) Get(c *gin.Context) {
	id := validation.ToIDSafe(c.Param("id"))
	payload, err := h.foodService.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if payload == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
		return
	}
	c.JSON(http.StatusOK, payload)
}

func (h *FoodHandler) Save(c *gin.Context) {
	var payload validation.FoodPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.foodService.Save(c.Request.Context(), payload); err != nil {
		_ = c.Error(err)
		return
	}

	status := http.StatusOK
	if payload.Action == validation.ActionCreate {
		status = http.StatusCreated
	}
	c.JSON(status, SavedResponse{Message: "Food saved"})
}

func (h *FoodHandler) Delete(c *gin.Context) {
	id := validation.ToIDSafe(c.Param("id"))
	if err := h.foodService.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, SavedResponse{Message: "Food deleted"})
}

func (h *FoodHandler) UploadImage(c *gin.Context) {
	if h.imageService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image storage is not configured"})
		return
	}

	id := validation.ToIDSafe(c.Param("id"))

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image file"})
		return
	}
	defer file.Close()

	url, err := h.imageService.UploadFoodImage(c.Request.Context(), id, file, header.Header.Get("Content-Type"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.foodService.SetImageURL(c.Request.Context(), id, url); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ImageResponse{URL: url})
}
