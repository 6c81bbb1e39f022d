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

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByID retrieves one user by id.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	sqlQuery, args, err := r.sb.Select("id", "email", "full_name", "role", "created_at").
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	var user models.User
	if err := r.db.QueryRow(ctx, sqlQuery, args...).Scan(&user.ID, &user.Email, &user.FullName, &user.Role, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error querying user by id")
		return nil, fmt.Errorf("error querying user %d: %w", id, err)
	}
	return &user, nil
}
