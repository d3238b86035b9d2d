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

// CourseController handles course catalog operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// ListCourses retrieves the courses catalog, filtered by search, level,
// modality and status
func (c *CourseController) ListCourses(ctx *gin.Context) {
	query := services.CourseListQuery{
		Search:   ctx.Query("search"),
		Level:    ctx.Query("level"),
		Modality: ctx.Query("modality"),
		Status:   ctx.Query("status"),
	}

	courses, total, err := c.courseService.List(ctx, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ListResponse{
		Rows: courses,
		Meta: dto.ListMeta{Total: total, Filtered: len(courses)},
	}))
}

// GetCourseByID retrieves a course by ID
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		errorDetail = errorDetail.WithDetails("Course ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course, err := c.courseService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(course))
}

// GetCourseForm returns the edit-mode form values of a course
func (c *CourseController) GetCourseForm(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		errorDetail = errorDetail.WithDetails("Course ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	form, err := c.courseService.GetForm(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(form))
}

// GetNewCourseForm returns the create-mode form defaults
func (c *CourseController) GetNewCourseForm(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.EmptyCourseForm()))
}

// CreateCourse handles course creation
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var form dto.CourseForm
	if !middleware.BindJSON(ctx, &form) {
		return
	}

	course, err := c.courseService.Create(ctx, form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// UpdateCourse updates an existing course
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		errorDetail = errorDetail.WithDetails("Course ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var form dto.CourseForm
	if !middleware.BindJSON(ctx, &form) {
		return
	}

	course, err := c.courseService.Update(ctx, id, form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(course))
}

// DeleteCourse deletes a course with no enrolled students
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		errorDetail = errorDetail.WithDetails("Course ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.courseService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      nil,
		Timestamp: time.Now(),
	})
}
