package services

import (
	"time"

	"github.com/fergood-2703/SIA-FCP/internal/app/repositories"
)

// Services defined in this package:
// - AreaService: academic area catalog operations
// - CareerService: career catalog operations
// - CourseService: course catalog operations
// - TeacherService: teacher catalog operations
// - StudentService: student catalog operations
// - DashboardService: dashboard counts and chart aggregations
// - AssistantService: assistant webhook proxy

// Services aggregates every service instance for wiring.
type Services struct {
	Area      AreaService
	Career    CareerService
	Course    CourseService
	Teacher   TeacherService
	Student   StudentService
	Dashboard DashboardService
	Assistant AssistantService
}

// NewServices builds the service layer on top of the repository container.
func NewServices(repos *repositories.Repositories, webhookURL string, webhookTimeout time.Duration) *Services {
	return &Services{
		Area:      NewAreaService(repos.AreaRepository),
		Career:    NewCareerService(repos.CareerRepository),
		Course:    NewCourseService(repos.CourseRepository),
		Teacher:   NewTeacherService(repos.TeacherRepository),
		Student:   NewStudentService(repos.StudentRepository),
		Dashboard: NewDashboardService(repos.DashboardRepository, repos.CourseRepository),
		Assistant: NewAssistantService(webhookURL, webhookTimeout),
	}
}
