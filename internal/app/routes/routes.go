package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fergood-2703/SIA-FCP/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	areaController *controllers.AreaController,
	careerController *controllers.CareerController,
	courseController *controllers.CourseController,
	teacherController *controllers.TeacherController,
	studentController *controllers.StudentController,
	dashboardController *controllers.DashboardController,
	assistantController *controllers.AssistantController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	areas := v1.Group("/areas")
	{
		areas.GET("", areaController.ListAreas)
		areas.GET("/form/new", areaController.GetNewAreaForm)
		areas.GET("/:id", areaController.GetAreaByID)
		areas.GET("/:id/form", areaController.GetAreaForm)
		areas.POST("", areaController.CreateArea)
		areas.PUT("/:id", areaController.UpdateArea)
		areas.DELETE("/:id", areaController.DeleteArea)
	}

	careers := v1.Group("/careers")
	{
		careers.GET("", careerController.ListCareers)
		careers.GET("/form/new", careerController.GetNewCareerForm)
		careers.GET("/:id", careerController.GetCareerByID)
		careers.GET("/:id/form", careerController.GetCareerForm)
		careers.POST("", careerController.CreateCareer)
		careers.PUT("/:id", careerController.UpdateCareer)
		careers.DELETE("/:id", careerController.DeleteCareer)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/form/new", courseController.GetNewCourseForm)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.GET("/:id/form", courseController.GetCourseForm)
		courses.POST("", courseController.CreateCourse)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	teachers := v1.Group("/teachers")
	{
		teachers.GET("", teacherController.ListTeachers)
		teachers.GET("/form/new", teacherController.GetNewTeacherForm)
		teachers.GET("/:id", teacherController.GetTeacherByID)
		teachers.GET("/:id/form", teacherController.GetTeacherForm)
		teachers.POST("", teacherController.CreateTeacher)
		teachers.PUT("/:id", teacherController.UpdateTeacher)
		teachers.DELETE("/:id", teacherController.DeleteTeacher)
	}

	students := v1.Group("/students")
	{
		students.GET("", studentController.ListStudents)
		students.GET("/form/new", studentController.GetNewStudentForm)
		students.GET("/:id", studentController.GetStudentByID)
		students.GET("/:id/form", studentController.GetStudentForm)
		students.POST("", studentController.CreateStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	dashboard := v1.Group("/dashboard")
	{
		dashboard.GET("/metrics", dashboardController.GetMetrics)
		dashboard.GET("/recent-courses", dashboardController.GetRecentCourses)
		dashboard.GET("/charts", dashboardController.GetCharts)
	}

	assistant := v1.Group("/assistant")
	{
		assistant.POST("/ask", assistantController.Ask)
	}
}
