package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fergood-2703/SIA-FCP/internal/app/models"
	"github.com/fergood-2703/SIA-FCP/internal/app/repositories"
)

func statusRows(counts map[string]int, order []string) []repositories.StudentChartRow {
	rows := []repositories.StudentChartRow{}
	id := int64(1)
	for _, status := range order {
		for i := 0; i < counts[status]; i++ {
			rows = append(rows, repositories.StudentChartRow{ID: id, Status: status})
			id++
		}
	}
	return rows
}

func TestBuildStatusDistribution(t *testing.T) {
	t.Run("first-seen order", func(t *testing.T) {
		rows := statusRows(map[string]int{
			models.StudentStatusGraduated: 2,
			models.StudentStatusActive:    3,
		}, []string{models.StudentStatusGraduated, models.StudentStatusActive})

		dist := BuildStatusDistribution(rows)
		require.Len(t, dist.Items, 2)
		assert.Equal(t, models.StudentStatusGraduated, dist.Items[0].Label)
		assert.Equal(t, 2, dist.Items[0].Value)
		assert.Equal(t, models.StudentStatusActive, dist.Items[1].Label)
		assert.Equal(t, 3, dist.Items[1].Value)
		assert.Equal(t, 5, dist.Total)
	})

	t.Run("missing status buckets as Unknown", func(t *testing.T) {
		rows := []repositories.StudentChartRow{
			{ID: 1, Status: ""},
			{ID: 2, Status: models.StudentStatusActive},
			{ID: 3, Status: ""},
		}
		dist := BuildStatusDistribution(rows)
		require.Len(t, dist.Items, 2)
		assert.Equal(t, "Unknown", dist.Items[0].Label)
		assert.Equal(t, 2, dist.Items[0].Value)
	})

	t.Run("no rows", func(t *testing.T) {
		dist := BuildStatusDistribution(nil)
		assert.Empty(t, dist.Items)
		assert.Empty(t, dist.Segments)
		assert.Zero(t, dist.Total)
	})
}

func TestBuildStatusDistributionPercentages(t *testing.T) {
	// 1/3 and 2/3 round independently: 33 and 67 sum to 100 here, but
	// three equal thirds would give 33+33+33=99. Both are correct.
	rows := statusRows(map[string]int{"A": 1, "B": 1, "C": 1}, []string{"A", "B", "C"})
	dist := BuildStatusDistribution(rows)
	require.Len(t, dist.Items, 3)
	for _, item := range dist.Items {
		assert.Equal(t, 33, item.Percent)
	}
}

func TestDistributionSegments(t *testing.T) {
	rows := statusRows(map[string]int{"A": 1, "B": 3}, []string{"A", "B"})
	dist := BuildStatusDistribution(rows)

	require.Len(t, dist.Segments, 2)
	assert.Equal(t, 0.0, dist.Segments[0].Start)
	assert.Equal(t, 25.0, dist.Segments[0].End)
	assert.Equal(t, 25.0, dist.Segments[1].Start)
	assert.Equal(t, 100.0, dist.Segments[1].End)

	// Segments tile [0,100] with no gaps
	for i := 1; i < len(dist.Segments); i++ {
		assert.Equal(t, dist.Segments[i-1].End, dist.Segments[i].Start)
	}
}

func careerRows(counts map[string]int, order []string) []repositories.StudentChartRow {
	rows := []repositories.StudentChartRow{}
	id := int64(1)
	for _, career := range order {
		for i := 0; i < counts[career]; i++ {
			rows = append(rows, repositories.StudentChartRow{ID: id, Status: "Active", CareerName: career})
			id++
		}
	}
	return rows
}

func TestBuildCareerDistribution(t *testing.T) {
	t.Run("groups order descending by student count", func(t *testing.T) {
		rows := careerRows(map[string]int{"B": 2, "A": 5}, []string{"B", "A"})
		dist := BuildCareerDistribution(rows)
		require.Len(t, dist.Items, 2)
		assert.Equal(t, "A", dist.Items[0].Label)
		assert.Equal(t, 5, dist.Items[0].Value)
		assert.Equal(t, "B", dist.Items[1].Label)
	})

	t.Run("equal counts keep first-seen order", func(t *testing.T) {
		rows := careerRows(map[string]int{"B": 2, "A": 2}, []string{"B", "A"})
		dist := BuildCareerDistribution(rows)
		require.Len(t, dist.Items, 2)
		assert.Equal(t, "B", dist.Items[0].Label)
		assert.Equal(t, "A", dist.Items[1].Label)
	})

	t.Run("more than five groups collapse into top four plus Other", func(t *testing.T) {
		counts := map[string]int{"A": 10, "B": 7, "C": 5, "D": 3, "E": 2, "F": 1}
		rows := careerRows(counts, []string{"F", "E", "D", "C", "B", "A"})
		dist := BuildCareerDistribution(rows)

		require.Len(t, dist.Items, 5)
		assert.Equal(t, "A", dist.Items[0].Label)
		assert.Equal(t, 10, dist.Items[0].Value)
		assert.Equal(t, "B", dist.Items[1].Label)
		assert.Equal(t, "C", dist.Items[2].Label)
		assert.Equal(t, "D", dist.Items[3].Label)
		assert.Equal(t, "Other", dist.Items[4].Label)
		assert.Equal(t, 3, dist.Items[4].Value)
		assert.Equal(t, 28, dist.Total)
	})

	t.Run("missing career name buckets as No career", func(t *testing.T) {
		rows := []repositories.StudentChartRow{{ID: 1, Status: "Active"}}
		dist := BuildCareerDistribution(rows)
		require.Len(t, dist.Items, 1)
		assert.Equal(t, "No career", dist.Items[0].Label)
	})
}

func TestBuildCourseRanking(t *testing.T) {
	rows := []repositories.StudentChartRow{
		{ID: 1, CourseID: 10}, {ID: 2, CourseID: 10}, {ID: 3, CourseID: 10},
		{ID: 4, CourseID: 20}, {ID: 5, CourseID: 20},
		{ID: 6, CourseID: 30},
		{ID: 7, CourseID: 40}, {ID: 8, CourseID: 40}, {ID: 9, CourseID: 40}, {ID: 10, CourseID: 40},
		{ID: 11, CourseID: 50},
		{ID: 12, CourseID: 60},
		{ID: 13}, // no course assigned
	}
	names := map[int64]string{10: "Algorithms", 20: "Databases", 30: "Networks", 40: "Calculus", 50: "Physics"}

	ranking := BuildCourseRanking(rows, names)

	require.Len(t, ranking, 5)
	assert.Equal(t, "Calculus", ranking[0].Name)
	assert.Equal(t, 4, ranking[0].Students)
	assert.Equal(t, "Algorithms", ranking[1].Name)
	assert.Equal(t, "Databases", ranking[2].Name)

	// Ties resolve by course id
	assert.Equal(t, int64(30), ranking[3].CourseID)
	assert.Equal(t, int64(50), ranking[4].CourseID)

	// Unassigned students never produce a bar
	for _, rank := range ranking {
		assert.NotZero(t, rank.CourseID)
		assert.Positive(t, rank.Students)
	}
}

func TestBuildCourseRankingUnknownName(t *testing.T) {
	rows := []repositories.StudentChartRow{{ID: 1, CourseID: 77}}
	ranking := BuildCourseRanking(rows, map[int64]string{})
	require.Len(t, ranking, 1)
	assert.Equal(t, "Course 77", ranking[0].Name)
}

type fakeDashboardStore struct {
	counts map[string]int64
	rows   []repositories.StudentChartRow
	err    error
}

func (f *fakeDashboardStore) CountCourses(context.Context) (int64, error) {
	return f.counts["courses"], f.err
}
func (f *fakeDashboardStore) CountActiveCourses(context.Context) (int64, error) {
	return f.counts["activeCourses"], f.err
}
func (f *fakeDashboardStore) CountTeachers(context.Context) (int64, error) {
	return f.counts["teachers"], f.err
}
func (f *fakeDashboardStore) CountAreas(context.Context) (int64, error) {
	return f.counts["areas"], f.err
}
func (f *fakeDashboardStore) CountStudents(context.Context) (int64, error) {
	return f.counts["students"], f.err
}
func (f *fakeDashboardStore) CountCareers(context.Context) (int64, error) {
	return f.counts["careers"], f.err
}
func (f *fakeDashboardStore) GetStudentChartRows(context.Context) ([]repositories.StudentChartRow, error) {
	return f.rows, f.err
}

type fakeCourseLookup struct {
	recent []*models.Course
	names  map[int64]string
}

func (f *fakeCourseLookup) GetRecent(_ context.Context, limit uint64) ([]*models.Course, error) {
	if uint64(len(f.recent)) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

func (f *fakeCourseLookup) GetNamesByIDs(_ context.Context, ids []int64) (map[int64]string, error) {
	out := map[int64]string{}
	for _, id := range ids {
		if name, ok := f.names[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

func TestDashboardServiceGetMetrics(t *testing.T) {
	store := &fakeDashboardStore{counts: map[string]int64{
		"courses": 12, "activeCourses": 8, "teachers": 5, "areas": 3, "students": 140, "careers": 6,
	}}
	svc := NewDashboardService(store, &fakeCourseLookup{})

	metrics, err := svc.GetMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), metrics.Courses)
	assert.Equal(t, int64(8), metrics.ActiveCourses)
	assert.Equal(t, int64(5), metrics.Teachers)
	assert.Equal(t, int64(3), metrics.Areas)
	assert.Equal(t, int64(140), metrics.Students)
	assert.Equal(t, int64(6), metrics.Careers)
}

func TestDashboardServiceGetRecentCourses(t *testing.T) {
	area := &models.AcademicArea{ID: 1, Name: "Engineering and Technology"}
	lookup := &fakeCourseLookup{recent: []*models.Course{
		{ID: 9, Name: "Compilers", Level: models.CourseLevelBachelor, Modality: models.CourseModalityInPerson, Status: models.CourseStatusActive, Area: area},
		{ID: 8, Name: "Networks", Level: models.CourseLevelDiploma, Modality: models.CourseModalityOnline, Status: models.CourseStatusPaused},
	}}
	svc := NewDashboardService(&fakeDashboardStore{}, lookup)

	recent, err := svc.GetRecentCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, int64(9), recent[0].ID)
	assert.Equal(t, "Engineering and Technology", recent[0].AreaName)
	assert.Empty(t, recent[1].AreaName)
}

func TestDashboardServiceGetCharts(t *testing.T) {
	store := &fakeDashboardStore{rows: []repositories.StudentChartRow{
		{ID: 1, Status: models.StudentStatusActive, CourseID: 10, CareerName: "Software Engineering"},
		{ID: 2, Status: models.StudentStatusActive, CourseID: 10, CareerName: "Software Engineering"},
		{ID: 3, Status: models.StudentStatusGraduated, CourseID: 20, CareerName: "Nursing"},
	}}
	lookup := &fakeCourseLookup{names: map[int64]string{10: "Algorithms", 20: "Anatomy"}}
	svc := NewDashboardService(store, lookup)

	charts, err := svc.GetCharts(context.Background())
	require.NoError(t, err)

	require.Len(t, charts.StatusDistribution.Items, 2)
	assert.Equal(t, models.StudentStatusActive, charts.StatusDistribution.Items[0].Label)

	require.Len(t, charts.CareerDistribution.Items, 2)
	assert.Equal(t, "Software Engineering", charts.CareerDistribution.Items[0].Label)

	require.Len(t, charts.TopCourses, 2)
	assert.Equal(t, "Algorithms", charts.TopCourses[0].Name)
	assert.Equal(t, 2, charts.TopCourses[0].Students)
}
