package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fergood-2703/SIA-FCP/internal/app/models/dto"
	"github.com/fergood-2703/SIA-FCP/internal/app/services"
	"github.com/fergood-2703/SIA-FCP/internal/middleware"
)

// AreaController handles academic area catalog operations
type AreaController struct {
	areaService services.AreaService
}

// NewAreaController creates a new AreaController
func NewAreaController(areaService services.AreaService) *AreaController {
	return &AreaController{
		areaService: areaService,
	}
}

// ListAreas retrieves the areas catalog, filtered by the search query
func (c *AreaController) ListAreas(ctx *gin.Context) {
	query := services.AreaListQuery{
		Search: ctx.Query("search"),
	}

	areas, total, err := c.areaService.List(ctx, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ListResponse{
		Rows: areas,
		Meta: dto.ListMeta{Total: total, Filtered: len(areas)},
	}))
}

// GetAreaByID retrieves an area by ID
func (c *AreaController) GetAreaByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid area ID")
		errorDetail = errorDetail.WithDetails("Area ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	area, err := c.areaService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(area))
}

// GetAreaForm returns the edit-mode form values of an area
func (c *AreaController) GetAreaForm(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid area ID")
		errorDetail = errorDetail.WithDetails("Area ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	form, err := c.areaService.GetForm(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(form))
}

// GetNewAreaForm returns the create-mode form defaults
func (c *AreaController) GetNewAreaForm(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.EmptyAreaForm()))
}

// CreateArea handles area creation
func (c *AreaController) CreateArea(ctx *gin.Context) {
	var form dto.AreaForm
	if !middleware.BindJSON(ctx, &form) {
		return
	}

	area, err := c.areaService.Create(ctx, form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      area,
		Timestamp: time.Now(),
	})
}

// UpdateArea updates an existing area
func (c *AreaController) UpdateArea(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid area ID")
		errorDetail = errorDetail.WithDetails("Area ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var form dto.AreaForm
	if !middleware.BindJSON(ctx, &form) {
		return
	}

	area, err := c.areaService.Update(ctx, id, form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(area))
}

// DeleteArea deletes an area with no dependent records
func (c *AreaController) DeleteArea(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid area ID")
		errorDetail = errorDetail.WithDetails("Area ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.areaService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      nil,
		Timestamp: time.Now(),
	})
}
