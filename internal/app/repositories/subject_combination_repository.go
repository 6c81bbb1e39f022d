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

// SubjectCombinationRepository handles subject combination lookups
type SubjectCombinationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSubjectCombinationRepository creates a new SubjectCombinationRepository
func NewSubjectCombinationRepository(db *pgxpool.Pool) *SubjectCombinationRepository {
	return &SubjectCombinationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByCode retrieves one subject combination by its code.
func (r *SubjectCombinationRepository) GetByCode(ctx context.Context, code string) (*models.SubjectCombination, error) {
	sqlQuery, args, err := r.sb.Select("code", "name", "subject_codes").
		From("subject_combinations").
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get subject combination query: %w", err)
	}

	var combination models.SubjectCombination
	if err := r.db.QueryRow(ctx, sqlQuery, args...).Scan(&combination.Code, &combination.Name, &combination.SubjectCodes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectCombinationNotFound
		}
		logger.Error().Err(err).Str("combinationCode", code).Msg("Error querying subject combination by code")
		return nil, fmt.Errorf("error querying subject combination %s: %w", code, err)
	}
	return &combination, nil
}
