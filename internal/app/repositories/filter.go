package repositories

import (
	"time"

	"github.com/Masterminds/squirrel"
)

// TimestampField selects which timestamp column a date range binds to.
// Listings filter on the last-update time, statistics on the creation time.
type TimestampField string

const (
	FilterByUpdatedAt TimestampField = "a.updated_at"
	FilterByCreatedAt TimestampField = "a.created_at"
)

// ApplicationFilter is the compiled set of optional criteria for querying
// the applications table. The zero value matches every record. All supplied
// criteria combine with logical AND; the free-text search is itself an OR
// across the code and, when SearchInName is set, the applicant name.
type ApplicationFilter struct {
	// OwnerID restricts results to one candidate's own applications.
	// Nil for admin-wide queries.
	OwnerID *int64

	// Search is a case-insensitive substring matched against the
	// application code, and against the full name when SearchInName is set.
	Search       string
	SearchInName bool

	Status           string
	SchoolCode       string
	MajorCode        string
	SubjectGroupCode string

	// DateField names the timestamp column the inclusive range below binds
	// to. Defaults to the last-update timestamp.
	DateField TimestampField
	DateFrom  *time.Time
	DateTo    *time.Time

	// RequireSchool excludes records without an assigned school; used by
	// the statistics view.
	RequireSchool bool
}

// Condition compiles the filter into a predicate usable by both the count
// query and the windowed fetch. An empty filter compiles to an empty
// conjunction, which squirrel renders as an always-true predicate
// (match-all).
func (f ApplicationFilter) Condition() squirrel.And {
	cond := squirrel.And{}

	if f.OwnerID != nil {
		cond = append(cond, squirrel.Eq{"a.user_id": *f.OwnerID})
	}

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		if f.SearchInName {
			cond = append(cond, squirrel.Or{
				squirrel.ILike{"a.application_code": pattern},
				squirrel.ILike{"a.fullname": pattern},
			})
		} else {
			cond = append(cond, squirrel.ILike{"a.application_code": pattern})
		}
	}

	if f.Status != "" {
		cond = append(cond, squirrel.Eq{"a.status": f.Status})
	}
	if f.SchoolCode != "" {
		cond = append(cond, squirrel.Eq{"a.school_code": f.SchoolCode})
	}
	if f.MajorCode != "" {
		cond = append(cond, squirrel.Eq{"a.major_code": f.MajorCode})
	}
	if f.SubjectGroupCode != "" {
		cond = append(cond, squirrel.Eq{"a.subject_group_code": f.SubjectGroupCode})
	}

	dateField := f.DateField
	if dateField == "" {
		dateField = FilterByUpdatedAt
	}
	if f.DateFrom != nil {
		cond = append(cond, squirrel.GtOrEq{string(dateField): *f.DateFrom})
	}
	if f.DateTo != nil {
		cond = append(cond, squirrel.LtOrEq{string(dateField): *f.DateTo})
	}

	if f.RequireSchool {
		cond = append(cond, squirrel.NotEq{"a.school_code": ""})
	}

	return cond
}
