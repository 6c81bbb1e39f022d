package repositories

import (
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildWhere(t *testing.T, f ApplicationFilter) (string, []interface{}) {
	t.Helper()
	sql, args, err := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("a.id").From("applications a").Where(f.Condition()).ToSql()
	require.NoError(t, err)
	return sql, args
}

func TestEmptyFilterMatchesAll(t *testing.T) {
	sql, args := buildWhere(t, ApplicationFilter{})
	// An empty conjunction renders as a trivially true predicate.
	assert.Equal(t, "SELECT a.id FROM applications a WHERE (1=1)", sql)
	assert.Empty(t, args)
}

func TestFilterCriteriaCombineWithAnd(t *testing.T) {
	owner := int64(7)
	sql, args := buildWhere(t, ApplicationFilter{
		OwnerID: &owner,
		Status:  "PENDING",
	})
	assert.Contains(t, sql, "a.user_id = $1")
	assert.Contains(t, sql, "AND")
	assert.Contains(t, sql, "a.status = $2")
	assert.Equal(t, []interface{}{int64(7), "PENDING"}, args)
}

func TestFilterSearchIsCaseInsensitiveSubstring(t *testing.T) {
	sql, args := buildWhere(t, ApplicationFilter{Search: "hs-a1b2c3d4"})
	assert.Contains(t, sql, "a.application_code ILIKE $1")
	assert.Equal(t, []interface{}{"%hs-a1b2c3d4%"}, args)
}

func TestFilterSearchSpansCodeAndName(t *testing.T) {
	sql, args := buildWhere(t, ApplicationFilter{Search: "nguyen", SearchInName: true})
	assert.Contains(t, sql, "a.application_code ILIKE $1 OR a.fullname ILIKE $2")
	assert.Equal(t, []interface{}{"%nguyen%", "%nguyen%"}, args)
}

func TestFilterExactMatchCodes(t *testing.T) {
	sql, args := buildWhere(t, ApplicationFilter{
		SchoolCode:       "BKHN",
		MajorCode:        "CS01",
		SubjectGroupCode: "A00",
	})
	assert.Contains(t, sql, "a.school_code = $1")
	assert.Contains(t, sql, "a.major_code = $2")
	assert.Contains(t, sql, "a.subject_group_code = $3")
	assert.Equal(t, []interface{}{"BKHN", "CS01", "A00"}, args)
}

func TestFilterDateRangeDefaultsToUpdatedAt(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	sql, args := buildWhere(t, ApplicationFilter{DateFrom: &from, DateTo: &to})
	assert.Contains(t, sql, "a.updated_at >= $1")
	assert.Contains(t, sql, "a.updated_at <= $2")
	assert.Equal(t, []interface{}{from, to}, args)
}

func TestFilterDateRangeOnCreatedAt(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sql, _ := buildWhere(t, ApplicationFilter{DateField: FilterByCreatedAt, DateFrom: &from})
	assert.Contains(t, sql, "a.created_at >= $1")
}

func TestFilterRequireSchool(t *testing.T) {
	sql, args := buildWhere(t, ApplicationFilter{RequireSchool: true})
	assert.Contains(t, sql, "a.school_code <> $1")
	assert.Equal(t, []interface{}{""}, args)
}
