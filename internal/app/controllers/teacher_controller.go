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

// TeacherController handles teacher catalog operations
type TeacherController struct {
	teacherService services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
	}
}

// ListTeachers retrieves the teachers catalog, filtered by search and area
func (c *TeacherController) ListTeachers(ctx *gin.Context) {
	query := services.TeacherListQuery{
		Search: ctx.Query("search"),
		AreaID: ctx.Query("areaId"),
	}

	teachers, total, err := c.teacherService.List(ctx, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ListResponse{
		Rows: teachers,
		Meta: dto.ListMeta{Total: total, Filtered: len(teachers)},
	}))
}

// GetTeacherByID retrieves a teacher by ID
func (c *TeacherController) GetTeacherByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid teacher ID")
		errorDetail = errorDetail.WithDetails("Teacher ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	teacher, err := c.teacherService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(teacher))
}

// GetTeacherForm returns the edit-mode form values of a teacher
func (c *TeacherController) GetTeacherForm(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid teacher ID")
		errorDetail = errorDetail.WithDetails("Teacher ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	form, err := c.teacherService.GetForm(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(form))
}

// GetNewTeacherForm returns the create-mode form defaults
func (c *TeacherController) GetNewTeacherForm(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.EmptyTeacherForm()))
}

// CreateTeacher handles teacher creation
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var form dto.TeacherForm
	if !middleware.BindJSON(ctx, &form) {
		return
	}

	teacher, err := c.teacherService.Create(ctx, form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      teacher,
		Timestamp: time.Now(),
	})
}

// UpdateTeacher updates an existing teacher
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid teacher ID")
		errorDetail = errorDetail.WithDetails("Teacher ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var form dto.TeacherForm
	if !middleware.BindJSON(ctx, &form) {
		return
	}

	teacher, err := c.teacherService.Update(ctx, id, form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(teacher))
}

// DeleteTeacher deletes a teacher with no assigned courses
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid teacher ID")
		errorDetail = errorDetail.WithDetails("Teacher ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.teacherService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      nil,
		Timestamp: time.Now(),
	})
}
