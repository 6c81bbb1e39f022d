package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/longvh/admissions/internal/app/models"
	"github.com/longvh/admissions/internal/pkg/apperrors"
	"github.com/longvh/admissions/internal/pkg/logger"
)

// SchoolRepository handles school and major database operations
type SchoolRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSchoolRepository creates a new SchoolRepository
func NewSchoolRepository(db *pgxpool.Pool) *SchoolRepository {
	return &SchoolRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll returns every school ordered by code.
func (r *SchoolRepository) GetAll(ctx context.Context) ([]models.School, error) {
	sqlQuery, args, err := r.sb.Select("code", "name").
		From("schools").
		OrderBy("code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list schools query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list schools query")
		return nil, fmt.Errorf("failed to query schools: %w", err)
	}
	defer rows.Close()

	schools := []models.School{}
	for rows.Next() {
		var school models.School
		if err := rows.Scan(&school.Code, &school.Name); err != nil {
			return nil, fmt.Errorf("failed to scan school row: %w", err)
		}
		schools = append(schools, school)
	}
	return schools, rows.Err()
}

// GetByCode retrieves one school by code.
func (r *SchoolRepository) GetByCode(ctx context.Context, code string) (*models.School, error) {
	sqlQuery, args, err := r.sb.Select("code", "name").
		From("schools").
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get school query: %w", err)
	}

	var school models.School
	if err := r.db.QueryRow(ctx, sqlQuery, args...).Scan(&school.Code, &school.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSchoolNotFound
		}
		logger.Error().Err(err).Str("schoolCode", code).Msg("Error querying school by code")
		return nil, fmt.Errorf("error querying school %s: %w", code, err)
	}
	return &school, nil
}

// GetMajors returns the majors offered by one school, ordered by code.
func (r *SchoolRepository) GetMajors(ctx context.Context, schoolCode string) ([]models.Major, error) {
	sqlQuery, args, err := r.sb.Select("school_code", "code", "name", "subject_group_codes").
		From("school_majors").
		Where(squirrel.Eq{"school_code": schoolCode}).
		OrderBy("code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list majors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Str("schoolCode", schoolCode).Msg("Error executing list majors query")
		return nil, fmt.Errorf("failed to query majors: %w", err)
	}
	defer rows.Close()

	majors := []models.Major{}
	for rows.Next() {
		var major models.Major
		if err := rows.Scan(&major.SchoolCode, &major.Code, &major.Name, &major.SubjectGroupCodes); err != nil {
			return nil, fmt.Errorf("failed to scan major row: %w", err)
		}
		majors = append(majors, major)
	}
	return majors, rows.Err()
}
