package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/longvh/admissions/internal/app/models"
	"github.com/longvh/admissions/internal/pkg/apperrors"
	"github.com/longvh/admissions/internal/pkg/dberrors"
	"github.com/longvh/admissions/internal/pkg/helpers"
	"github.com/longvh/admissions/internal/pkg/logger"
)

// applicationColumns is the full select list of an enriched application row.
// The two LEFT JOINs attach display names from reference data; a missing
// school or major yields NULL names, never a dropped row.
var applicationColumns = []string{
	"a.id", "a.user_id", "a.application_code", "a.status",
	"a.fullname", "a.gender", "a.dob", "a.id_number",
	"a.province", "a.district", "a.ward", "a.address_detail",
	"a.math_score", "a.literature_score", "a.english_score",
	"a.physics_score", "a.chemistry_score", "a.biology_score",
	"a.history_score", "a.geography_score", "a.civic_education_score",
	"a.school_code", "a.major_code", "a.subject_group_code", "a.total_score",
	"a.cccd_front", "a.cccd_back", "a.transcript",
	"a.priority", "a.priority_proof", "a.extra_documents",
	"a.created_at", "a.updated_at",
	"s.name AS school_name",
	"m.name AS major_name",
}

// ApplicationRepository handles application database operations
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// enrichedSelect builds the base select with the reference-data joins.
func (r *ApplicationRepository) enrichedSelect() squirrel.SelectBuilder {
	return r.sb.Select(applicationColumns...).
		From("applications a").
		LeftJoin("schools s ON s.code = a.school_code").
		LeftJoin("school_majors m ON m.school_code = a.school_code AND m.code = a.major_code")
}

// scanApplication reads one enriched row into a model.
func scanApplication(row pgx.Row) (*models.Application, error) {
	var app models.Application
	var physics, chemistry, biology, history, geography, civic sql.NullFloat64
	var priority, priorityProof, schoolName, majorName sql.NullString
	var extraDocs []byte

	err := row.Scan(
		&app.ID, &app.UserID, &app.ApplicationCode, &app.Status,
		&app.Fullname, &app.Gender, &app.DOB, &app.IDNumber,
		&app.Province, &app.District, &app.Ward, &app.AddressDetail,
		&app.MathScore, &app.LiteratureScore, &app.EnglishScore,
		&physics, &chemistry, &biology, &history, &geography, &civic,
		&app.SchoolCode, &app.MajorCode, &app.SubjectGroupCode, &app.TotalScore,
		&app.CCCDFront, &app.CCCDBack, &app.Transcript,
		&priority, &priorityProof, &extraDocs,
		&app.CreatedAt, &app.UpdatedAt,
		&schoolName, &majorName,
	)
	if err != nil {
		return nil, err
	}

	app.PhysicsScore = helpers.NullFloatPtr(physics)
	app.ChemistryScore = helpers.NullFloatPtr(chemistry)
	app.BiologyScore = helpers.NullFloatPtr(biology)
	app.HistoryScore = helpers.NullFloatPtr(history)
	app.GeographyScore = helpers.NullFloatPtr(geography)
	app.CivicEducationScore = helpers.NullFloatPtr(civic)
	app.Priority = helpers.NullStringPtr(priority)
	app.PriorityProof = helpers.NullStringPtr(priorityProof)
	app.SchoolName = helpers.NullStringPtr(schoolName)
	app.MajorName = helpers.NullStringPtr(majorName)

	if len(extraDocs) > 0 {
		if err := json.Unmarshal(extraDocs, &app.ExtraDocuments); err != nil {
			return nil, fmt.Errorf("failed to decode extra documents: %w", err)
		}
	}

	return &app, nil
}

// Create inserts a new application and returns its store-assigned id.
// A unique violation on the application code surfaces as
// apperrors.ErrApplicationCodeTaken so the caller can retry with a fresh
// code.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) (int64, error) {
	var extraDocs interface{}
	if len(app.ExtraDocuments) > 0 {
		encoded, err := json.Marshal(app.ExtraDocuments)
		if err != nil {
			return 0, fmt.Errorf("failed to encode extra documents: %w", err)
		}
		extraDocs = encoded
	}

	sqlQuery, args, err := r.sb.Insert("applications").
		Columns(
			"user_id", "application_code", "status",
			"fullname", "gender", "dob", "id_number",
			"province", "district", "ward", "address_detail",
			"math_score", "literature_score", "english_score",
			"physics_score", "chemistry_score", "biology_score",
			"history_score", "geography_score", "civic_education_score",
			"school_code", "major_code", "subject_group_code", "total_score",
			"cccd_front", "cccd_back", "transcript",
			"priority", "priority_proof", "extra_documents",
			"created_at", "updated_at",
		).
		Values(
			app.UserID, app.ApplicationCode, app.Status.Code(),
			app.Fullname, app.Gender, app.DOB, app.IDNumber,
			app.Province, app.District, app.Ward, app.AddressDetail,
			app.MathScore, app.LiteratureScore, app.EnglishScore,
			app.PhysicsScore, app.ChemistryScore, app.BiologyScore,
			app.HistoryScore, app.GeographyScore, app.CivicEducationScore,
			app.SchoolCode, app.MajorCode, app.SubjectGroupCode, app.TotalScore,
			app.CCCDFront, app.CCCDBack, app.Transcript,
			helpers.GetNullString(app.Priority), helpers.GetNullString(app.PriorityProof), extraDocs,
			app.CreatedAt, app.UpdatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create application query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlQuery, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "applications_application_code_key") {
			logger.Warn().Str("applicationCode", app.ApplicationCode).Msg("Application code collision on insert")
			return 0, apperrors.ErrApplicationCodeTaken
		}
		logger.Error().Err(err).Msg("Error executing create application query")
		return 0, fmt.Errorf("error inserting application: %w", err)
	}

	logger.Info().Int64("applicationID", id).Str("applicationCode", app.ApplicationCode).Msg("Application created successfully")
	return id, nil
}

// List returns one page of enriched applications matching the filter plus
// the total match count. Count and window are built from the same compiled
// predicate; they run as two statements without a shared transaction, so
// under concurrent writes the total and the window may reflect slightly
// different instants.
func (r *ApplicationRepository) List(ctx context.Context, filter ApplicationFilter, page, limit int) ([]models.Application, int64, error) {
	cond := filter.Condition()
	offset, limit := helpers.CalculateOffsetLimit(page, limit)

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").
		From("applications a").
		Where(cond).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count applications query: %w", err)
	}

	var totalRecords int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&totalRecords); err != nil {
		logger.Error().Err(err).Msg("Error executing count applications query")
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	if totalRecords == 0 {
		return []models.Application{}, 0, nil
	}

	querySQL, queryArgs, err := r.enrichedSelect().
		Where(cond).
		OrderBy("a.updated_at DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySQL, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list applications query")
		return nil, 0, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	var apps []models.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning application row")
			return nil, 0, fmt.Errorf("failed to scan application row: %w", err)
		}
		apps = append(apps, *app)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating application rows: %w", err)
	}

	logger.Debug().Int("page", page).Int("limit", limit).Int64("totalRecords", totalRecords).Int("returned", len(apps)).Msg("Fetched applications page")
	return apps, totalRecords, nil
}

// GetByCode retrieves one enriched application by its code. When ownerID is
// non-nil the record must also belong to that user; a mismatch reads the
// same as a missing record.
func (r *ApplicationRepository) GetByCode(ctx context.Context, code string, ownerID *int64) (*models.Application, error) {
	builder := r.enrichedSelect().
		Where(squirrel.Eq{"a.application_code": code}).
		Limit(1)
	if ownerID != nil {
		builder = builder.Where(squirrel.Eq{"a.user_id": *ownerID})
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get application query: %w", err)
	}

	app, err := scanApplication(r.db.QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Warn().Str("applicationCode", code).Msg("Application not found by code")
			return nil, apperrors.ErrApplicationNotFound
		}
		logger.Error().Err(err).Str("applicationCode", code).Msg("Error scanning application row by code")
		return nil, fmt.Errorf("error querying application %s: %w", code, err)
	}

	return app, nil
}

// UpdateStatus rewrites the status and last-update timestamp of the record
// with the given code, guarded so a write only happens when the status
// actually differs. It returns the number of modified rows: zero means the
// record either does not exist or already carried the target status, which
// the caller disambiguates with a prior existence check.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, code string, status models.ApplicationStatus, now time.Time) (int64, error) {
	sqlQuery, args, err := r.sb.Update("applications").
		Set("status", status.Code()).
		Set("updated_at", now).
		Where(squirrel.Eq{"application_code": code}).
		Where(squirrel.NotEq{"status": status.Code()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build update status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Str("applicationCode", code).Msg("Error executing update status query")
		return 0, fmt.Errorf("error updating status of application %s: %w", code, err)
	}

	return cmdTag.RowsAffected(), nil
}

// GetOverviewStatistics computes the five statistics facets over the
// filtered application set. All facet queries run inside one repeatable-read
// read-only transaction so they observe a single snapshot: the byStatus
// counts always sum to the total.
func (r *ApplicationRepository) GetOverviewStatistics(ctx context.Context, filter ApplicationFilter) (*models.OverviewStatistics, error) {
	cond := filter.Condition()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to begin statistics snapshot: %w", err)
	}
	defer tx.Rollback(ctx)

	stats := &models.OverviewStatistics{
		ByStatus:       []models.FacetCount{},
		BySchool:       []models.SchoolFacetCount{},
		ByMajor:        []models.FacetCount{},
		BySubjectGroup: []models.FacetCount{},
	}

	totalSQL, totalArgs, err := r.sb.Select("COUNT(*)").From("applications a").Where(cond).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build total count query: %w", err)
	}
	if err := tx.QueryRow(ctx, totalSQL, totalArgs...).Scan(&stats.TotalApplications); err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}

	stats.ByStatus, err = r.facetCounts(ctx, tx, cond, "a.status", 0)
	if err != nil {
		return nil, fmt.Errorf("failed to group by status: %w", err)
	}

	stats.BySchool, err = r.schoolFacetCounts(ctx, tx, cond)
	if err != nil {
		return nil, fmt.Errorf("failed to group by school: %w", err)
	}

	// Majors are truncated to the ten most popular.
	stats.ByMajor, err = r.facetCounts(ctx, tx, cond, "a.major_code", 10)
	if err != nil {
		return nil, fmt.Errorf("failed to group by major: %w", err)
	}

	stats.BySubjectGroup, err = r.facetCounts(ctx, tx, cond, "a.subject_group_code", 0)
	if err != nil {
		return nil, fmt.Errorf("failed to group by subject group: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to close statistics snapshot: %w", err)
	}

	return stats, nil
}

// facetCounts groups the filtered set by one column, ordered by descending
// count. A zero limit means no truncation. Equal counts keep the store's
// order, which is implementation-defined.
func (r *ApplicationRepository) facetCounts(ctx context.Context, tx pgx.Tx, cond squirrel.And, column string, limit uint64) ([]models.FacetCount, error) {
	builder := r.sb.Select(column, "COUNT(*) AS cnt").
		From("applications a").
		Where(cond).
		GroupBy(column).
		OrderBy("cnt DESC")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []models.FacetCount{}
	for rows.Next() {
		var fc models.FacetCount
		if err := rows.Scan(&fc.ID, &fc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, fc)
	}
	return counts, rows.Err()
}

// schoolFacetCounts groups by school code and joins the school name,
// falling back to the raw code for schools that no longer exist.
func (r *ApplicationRepository) schoolFacetCounts(ctx context.Context, tx pgx.Tx, cond squirrel.And) ([]models.SchoolFacetCount, error) {
	sqlQuery, args, err := r.sb.Select(
		"a.school_code",
		"COALESCE(s.name, a.school_code) AS school_name",
		"COUNT(*) AS cnt",
	).
		From("applications a").
		LeftJoin("schools s ON s.code = a.school_code").
		Where(cond).
		GroupBy("a.school_code", "s.name").
		OrderBy("cnt DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []models.SchoolFacetCount{}
	for rows.Next() {
		var fc models.SchoolFacetCount
		if err := rows.Scan(&fc.ID, &fc.Name, &fc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, fc)
	}
	return counts, rows.Err()
}
