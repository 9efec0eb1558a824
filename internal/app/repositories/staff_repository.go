package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wkalungi/sponsorbase/internal/app/models"
	"github.com/wkalungi/sponsorbase/internal/pkg/apperrors"
	"github.com/wkalungi/sponsorbase/internal/pkg/logger"
)

// StaffRepository handles staff database operations
type StaffRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateStaff creates a new staff member
func (r *StaffRepository) CreateStaff(ctx context.Context, staff *models.Staff) (int64, error) {
	sql, args, err := r.sb.Insert("staff").
		Columns("first_name", "last_name", "gender", "telephone", "position").
		Values(staff.FirstName, staff.LastName, staff.Gender, staff.Telephone, staff.Position).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create staff SQL")
		return 0, fmt.Errorf("failed to build create staff query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create staff query")
		return 0, fmt.Errorf("error creating staff member: %w", err)
	}
	return id, nil
}

// GetStaffByID retrieves a staff member by ID
func (r *StaffRepository) GetStaffByID(ctx context.Context, id int64) (*models.Staff, error) {
	sql, args, err := r.sb.Select("id", "first_name", "last_name", "gender", "telephone", "position", "created_at", "updated_at").
		From("staff").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get staff by ID SQL")
		return nil, fmt.Errorf("failed to build get staff query: %w", err)
	}

	s := &models.Staff{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.FirstName, &s.LastName, &s.Gender, &s.Telephone, &s.Position, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffNotFound
		}
		logger.Error().Err(err).Int64("staffID", id).Msg("Error scanning staff row")
		return nil, fmt.Errorf("error getting staff member by ID: %w", err)
	}
	return s, nil
}

// ListStaff retrieves all staff members ordered by name.
func (r *StaffRepository) ListStaff(ctx context.Context) ([]*models.Staff, error) {
	sql, args, err := r.sb.Select("id", "first_name", "last_name", "gender", "telephone", "position", "created_at", "updated_at").
		From("staff").
		OrderBy("last_name ASC", "first_name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list staff SQL")
		return nil, fmt.Errorf("failed to build list staff query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list staff query")
		return nil, fmt.Errorf("error querying staff: %w", err)
	}
	defer rows.Close()

	staff := []*models.Staff{}
	for rows.Next() {
		s := &models.Staff{}
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Gender, &s.Telephone, &s.Position, &s.CreatedAt, &s.UpdatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning staff row during list")
			return nil, fmt.Errorf("error scanning staff row: %w", err)
		}
		staff = append(staff, s)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating staff rows")
		return nil, fmt.Errorf("error iterating staff rows: %w", err)
	}

	return staff, nil
}

// CountStaff counts all staff members.
func (r *StaffRepository) CountStaff(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM staff").Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error executing count staff query")
		return 0, fmt.Errorf("error counting staff: %w", err)
	}
	return count, nil
}

// UpdateStaff updates an existing staff member
func (r *StaffRepository) UpdateStaff(ctx context.Context, staff *models.Staff) error {
	sql, args, err := r.sb.Update("staff").
		SetMap(map[string]interface{}{
			"first_name": staff.FirstName,
			"last_name":  staff.LastName,
			"gender":     staff.Gender,
			"telephone":  staff.Telephone,
			"position":   staff.Position,
			"updated_at": squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": staff.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update staff SQL")
		return fmt.Errorf("failed to build update staff query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("staffID", staff.ID).Msg("Error executing update staff query")
		return fmt.Errorf("error updating staff member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStaffNotFound
	}
	return nil
}

// DeleteStaff deletes a staff member by ID. Sponsorship rows cascade.
func (r *StaffRepository) DeleteStaff(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("staff").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete staff SQL")
		return fmt.Errorf("failed to build delete staff query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("staffID", id).Msg("Error executing delete staff query")
		return fmt.Errorf("error deleting staff member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStaffNotFound
	}
	return nil
}
