package models

// FacetCount is one grouped count over a single application field.
type FacetCount struct {
	ID    string
	Count int64
}

// SchoolFacetCount is a grouped count over the school code, enriched with
// the school's display name (or the raw code when the school record is
// missing).
type SchoolFacetCount struct {
	ID    string
	Name  string
	Count int64
}

// OverviewStatistics holds the five facets of the admin statistics view,
// all computed against one snapshot of the filtered application set.
type OverviewStatistics struct {
	TotalApplications int64
	ByStatus          []FacetCount
	BySchool          []SchoolFacetCount
	ByMajor           []FacetCount
	BySubjectGroup    []FacetCount
}
