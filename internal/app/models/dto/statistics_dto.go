package dto

// StatisticItem is one grouped count: the distinct field value and how many
// applications carry it.
type StatisticItem struct {
	ID    string `json:"id" example:"PENDING"`
	Count int64  `json:"count" example:"42"`
}

// SchoolStatisticItem is a grouped count enriched with the school's display
// name. Name falls back to the raw school code when the school record is
// missing.
type SchoolStatisticItem struct {
	ID    string `json:"id" example:"BKHN"`
	Name  string `json:"name" example:"Đại học Bách khoa Hà Nội"`
	Count int64  `json:"count" example:"17"`
}

// OverviewStatisticsResponse is the admin statistics view. All facets are
// computed from the same filtered snapshot, so the byStatus counts sum to
// TotalApplications.
type OverviewStatisticsResponse struct {
	TotalApplications int64                 `json:"totalApplications"`
	ByStatus          []StatisticItem       `json:"byStatus"`
	BySchool          []SchoolStatisticItem `json:"bySchool"`
	ByMajor           []StatisticItem       `json:"byMajor"`
	BySubjectGroup    []StatisticItem       `json:"bySubjectGroup"`
}
