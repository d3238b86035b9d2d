package dto

// Metrics carries the headline entity counts for the dashboard cards.
type Metrics struct {
	Courses       int64 `json:"courses"`
	ActiveCourses int64 `json:"activeCourses"`
	Teachers      int64 `json:"teachers"`
	Areas         int64 `json:"areas"`
	Students      int64 `json:"students"`
	Careers       int64 `json:"careers"`
}

// ChartItem is one legend entry of a distribution. Percent is rounded
// independently per item, so legend percentages need not sum to exactly
// 100; that is expected, not a bug.
type ChartItem struct {
	Label   string `json:"label"`
	Value   int    `json:"value"`
	Percent int    `json:"percent"`
}

// DonutSegment is one proportional segment of the donut rendering,
// expressed as cumulative boundaries over [0,100).
type DonutSegment struct {
	Label string  `json:"label"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Distribution is a grouped breakdown plus its donut segment mapping.
type Distribution struct {
	Items    []ChartItem    `json:"items"`
	Segments []DonutSegment `json:"segments"`
	Total    int            `json:"total"`
}

// CourseRank is one bar of the top-courses ranking.
type CourseRank struct {
	CourseID int64  `json:"courseId"`
	Name     string `json:"name"`
	Students int    `json:"students"`
}

// DashboardCharts bundles the visualizations of the dashboard page.
type DashboardCharts struct {
	StatusDistribution Distribution `json:"statusDistribution"`
	CareerDistribution Distribution `json:"careerDistribution"`
	TopCourses         []CourseRank `json:"topCourses"`
}

// RecentCourse is one row of the dashboard's latest-courses strip.
type RecentCourse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Level    string `json:"level"`
	Modality string `json:"modality"`
	Status   string `json:"status"`
	AreaName string `json:"areaName,omitempty"`
}
