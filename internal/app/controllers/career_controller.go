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

// CareerController handles career catalog operations
type CareerController struct {
	careerService services.CareerService
}

// NewCareerController creates a new CareerController
func NewCareerController(careerService services.CareerService) *CareerController {
	return &CareerController{
		careerService: careerService,
	}
}

// ListCareers retrieves the careers catalog, filtered by search, level
// and status
func (c *CareerController) ListCareers(ctx *gin.Context) {
	query := services.CareerListQuery{
		Search: ctx.Query("search"),
		Level:  ctx.Query("level"),
		Status: ctx.Query("status"),
	}

	careers, total, err := c.careerService.List(ctx, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ListResponse{
		Rows: careers,
		Meta: dto.ListMeta{Total: total, Filtered: len(careers)},
	}))
}

// GetCareerByID retrieves a career by ID
func (c *CareerController) GetCareerByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid career ID")
		errorDetail = errorDetail.WithDetails("Career ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	career, err := c.careerService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(career))
}

// GetCareerForm returns the edit-mode form values of a career
func (c *CareerController) GetCareerForm(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid career ID")
		errorDetail = errorDetail.WithDetails("Career ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	form, err := c.careerService.GetForm(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(form))
}

// GetNewCareerForm returns the create-mode form defaults
func (c *CareerController) GetNewCareerForm(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.EmptyCareerForm()))
}

// CreateCareer handles career creation
func (c *CareerController) CreateCareer(ctx *gin.Context) {
	var form dto.CareerForm
	if !middleware.BindJSON(ctx, &form) {
		return
	}

	career, err := c.careerService.Create(ctx, form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      career,
		Timestamp: time.Now(),
	})
}

// UpdateCareer updates an existing career
func (c *CareerController) UpdateCareer(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid career ID")
		errorDetail = errorDetail.WithDetails("Career ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var form dto.CareerForm
	if !middleware.BindJSON(ctx, &form) {
		return
	}

	career, err := c.careerService.Update(ctx, id, form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(career))
}

// DeleteCareer deletes a career with no enrolled students
func (c *CareerController) DeleteCareer(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid career ID")
		errorDetail = errorDetail.WithDetails("Career ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.careerService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      nil,
		Timestamp: time.Now(),
	})
}
