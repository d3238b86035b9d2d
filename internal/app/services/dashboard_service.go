package services

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/fergood-2703/SIA-FCP/internal/app/models"
	"github.com/fergood-2703/SIA-FCP/internal/app/models/dto"
	"github.com/fergood-2703/SIA-FCP/internal/app/repositories"
)

const (
	recentCoursesLimit = 5
	topCoursesLimit    = 5

	// careerGroupLimit is the number of distinct careers shown before the
	// distribution collapses the tail into a single "Other" bucket.
	careerGroupLimit = 5
	careerTopGroups  = 4

	// unknownStatusLabel and noCareerLabel bucket rows whose grouping
	// value is missing, per distribution.
	unknownStatusLabel = "Unknown"
	noCareerLabel      = "No career"
	otherGroupLabel    = "Other"
)

// DashboardStore is the aggregate data access the dashboard depends on.
type DashboardStore interface {
	CountCourses(ctx context.Context) (int64, error)
	CountActiveCourses(ctx context.Context) (int64, error)
	CountTeachers(ctx context.Context) (int64, error)
	CountAreas(ctx context.Context) (int64, error)
	CountStudents(ctx context.Context) (int64, error)
	CountCareers(ctx context.Context) (int64, error)
	GetStudentChartRows(ctx context.Context) ([]repositories.StudentChartRow, error)
}

// CourseLookupStore resolves the course data the dashboard renders.
type CourseLookupStore interface {
	GetRecent(ctx context.Context, limit uint64) ([]*models.Course, error)
	GetNamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
}

// DashboardService defines the interface for dashboard aggregations
type DashboardService interface {
	GetMetrics(ctx context.Context) (dto.Metrics, error)
	GetRecentCourses(ctx context.Context) ([]dto.RecentCourse, error)
	GetCharts(ctx context.Context) (dto.DashboardCharts, error)
}

type dashboardServiceImpl struct {
	dashboard DashboardStore
	courses   CourseLookupStore
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(dashboard DashboardStore, courses CourseLookupStore) DashboardService {
	return &dashboardServiceImpl{dashboard: dashboard, courses: courses}
}

func (s *dashboardServiceImpl) GetMetrics(ctx context.Context) (dto.Metrics, error) {
	var metrics dto.Metrics
	var err error

	if metrics.Courses, err = s.dashboard.CountCourses(ctx); err != nil {
		return dto.Metrics{}, fmt.Errorf("error counting courses: %w", err)
	}
	if metrics.ActiveCourses, err = s.dashboard.CountActiveCourses(ctx); err != nil {
		return dto.Metrics{}, fmt.Errorf("error counting active courses: %w", err)
	}
	if metrics.Teachers, err = s.dashboard.CountTeachers(ctx); err != nil {
		return dto.Metrics{}, fmt.Errorf("error counting teachers: %w", err)
	}
	if metrics.Areas, err = s.dashboard.CountAreas(ctx); err != nil {
		return dto.Metrics{}, fmt.Errorf("error counting areas: %w", err)
	}
	if metrics.Students, err = s.dashboard.CountStudents(ctx); err != nil {
		return dto.Metrics{}, fmt.Errorf("error counting students: %w", err)
	}
	if metrics.Careers, err = s.dashboard.CountCareers(ctx); err != nil {
		return dto.Metrics{}, fmt.Errorf("error counting careers: %w", err)
	}

	return metrics, nil
}

func (s *dashboardServiceImpl) GetRecentCourses(ctx context.Context) ([]dto.RecentCourse, error) {
	courses, err := s.courses.GetRecent(ctx, recentCoursesLimit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving recent courses: %w", err)
	}

	recent := make([]dto.RecentCourse, 0, len(courses))
	for _, course := range courses {
		recent = append(recent, dto.RecentCourse{
			ID:       course.ID,
			Name:     course.Name,
			Level:    course.Level,
			Modality: course.Modality,
			Status:   course.Status,
			AreaName: course.AreaName(),
		})
	}
	return recent, nil
}

func (s *dashboardServiceImpl) GetCharts(ctx context.Context) (dto.DashboardCharts, error) {
	rows, err := s.dashboard.GetStudentChartRows(ctx)
	if err != nil {
		return dto.DashboardCharts{}, fmt.Errorf("error retrieving chart rows: %w", err)
	}

	counts := courseStudentCounts(rows)
	ids := make([]int64, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	names, err := s.courses.GetNamesByIDs(ctx, ids)
	if err != nil {
		return dto.DashboardCharts{}, fmt.Errorf("error resolving course names: %w", err)
	}

	return dto.DashboardCharts{
		StatusDistribution: BuildStatusDistribution(rows),
		CareerDistribution: BuildCareerDistribution(rows),
		TopCourses:         BuildCourseRanking(rows, names),
	}, nil
}

// group is one ordered bucket of a distribution before rendering.
type group struct {
	label string
	count int
}

// groupRows buckets the rows by key in first-seen order, mapping the empty
// key to the absentLabel bucket.
func groupRows(rows []repositories.StudentChartRow, key func(repositories.StudentChartRow) string, absentLabel string) []group {
	index := map[string]int{}
	groups := []group{}
	for _, row := range rows {
		label := key(row)
		if label == "" {
			label = absentLabel
		}
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, group{label: label})
		}
		groups[i].count++
	}
	return groups
}

// buildDistribution turns ordered buckets into legend items and cumulative
// donut segments. Legend percentages are rounded per item and need not sum
// to 100; segment boundaries cover [0,100) exactly.
func buildDistribution(groups []group) dto.Distribution {
	total := 0
	for _, g := range groups {
		total += g.count
	}

	dist := dto.Distribution{
		Items:    []dto.ChartItem{},
		Segments: []dto.DonutSegment{},
		Total:    total,
	}
	if total == 0 {
		return dist
	}

	cumulative := 0
	for _, g := range groups {
		share := float64(g.count) / float64(total) * 100
		dist.Items = append(dist.Items, dto.ChartItem{
			Label:   g.label,
			Value:   g.count,
			Percent: int(math.Round(share)),
		})
		start := float64(cumulative) / float64(total) * 100
		cumulative += g.count
		end := float64(cumulative) / float64(total) * 100
		dist.Segments = append(dist.Segments, dto.DonutSegment{
			Label: g.label,
			Start: start,
			End:   end,
		})
	}
	return dist
}

// BuildStatusDistribution groups the student rows by status in first-seen
// order. Pure function over its input.
func BuildStatusDistribution(rows []repositories.StudentChartRow) dto.Distribution {
	groups := groupRows(rows, func(r repositories.StudentChartRow) string { return r.Status }, unknownStatusLabel)
	return buildDistribution(groups)
}

// BuildCareerDistribution groups the student rows by career name, ordered
// descending by student count. When more than five careers have students,
// the four largest are kept and the tail collapses into an "Other" bucket
// rendered last.
func BuildCareerDistribution(rows []repositories.StudentChartRow) dto.Distribution {
	groups := groupRows(rows, func(r repositories.StudentChartRow) string { return r.CareerName }, noCareerLabel)

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].count > groups[j].count
	})

	if len(groups) > careerGroupLimit {
		other := group{label: otherGroupLabel}
		for _, g := range groups[careerTopGroups:] {
			other.count += g.count
		}
		groups = append(groups[:careerTopGroups:careerTopGroups], other)
	}

	return buildDistribution(groups)
}

// courseStudentCounts tallies students per referenced course, skipping rows
// with no course assigned.
func courseStudentCounts(rows []repositories.StudentChartRow) map[int64]int {
	counts := map[int64]int{}
	for _, row := range rows {
		if row.CourseID > 0 {
			counts[row.CourseID]++
		}
	}
	return counts
}

// BuildCourseRanking produces the top enrolled courses by student count,
// at most five bars, largest first. Courses with no students never appear.
func BuildCourseRanking(rows []repositories.StudentChartRow, names map[int64]string) []dto.CourseRank {
	counts := courseStudentCounts(rows)

	ranking := make([]dto.CourseRank, 0, len(counts))
	for id, count := range counts {
		name, ok := names[id]
		if !ok {
			name = fmt.Sprintf("Course %d", id)
		}
		ranking = append(ranking, dto.CourseRank{
			CourseID: id,
			Name:     name,
			Students: count,
		})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Students != ranking[j].Students {
			return ranking[i].Students > ranking[j].Students
		}
		return ranking[i].CourseID < ranking[j].CourseID
	})

	if len(ranking) > topCoursesLimit {
		ranking = ranking[:topCoursesLimit]
	}
	return ranking
}
