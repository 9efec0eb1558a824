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
	"github.com/wkalungi/sponsorbase/internal/pkg/dberrors"
	"github.com/wkalungi/sponsorbase/internal/pkg/logger"
)

// Constraint names from migrations/001_init.sql. The uniqueness of a
// (sponsor, beneficiary) pair is enforced here, at the store level.
const (
	childPairConstraint = "child_sponsorships_sponsor_id_child_id_key"
	staffPairConstraint = "staff_sponsorships_sponsor_id_staff_id_key"
	childSponsorFKName  = "child_sponsorships_sponsor_id_fkey"
	childChildFKName    = "child_sponsorships_child_id_fkey"
	staffSponsorFKName  = "staff_sponsorships_sponsor_id_fkey"
	staffStaffFKName    = "staff_sponsorships_staff_id_fkey"
)

var childSponsorshipColumns = []string{
	"id", "sponsor_id", "child_id", "sponsorship_type",
	"start_date", "end_date", "is_active", "created_at", "updated_at",
}

var staffSponsorshipColumns = []string{
	"id", "sponsor_id", "staff_id", "sponsorship_type",
	"start_date", "end_date", "is_active", "created_at", "updated_at",
}

func scanChildSponsorship(row pgx.Row) (*models.ChildSponsorship, error) {
	s := &models.ChildSponsorship{}
	err := row.Scan(&s.ID, &s.SponsorID, &s.ChildID, &s.Type,
		&s.StartDate, &s.EndDate, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func scanStaffSponsorship(row pgx.Row) (*models.StaffSponsorship, error) {
	s := &models.StaffSponsorship{}
	err := row.Scan(&s.ID, &s.SponsorID, &s.StaffID, &s.Type,
		&s.StartDate, &s.EndDate, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// SponsorshipRepository handles child and staff sponsorship database operations
type SponsorshipRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSponsorshipRepository creates a new SponsorshipRepository
func NewSponsorshipRepository(db *pgxpool.Pool) *SponsorshipRepository {
	return &SponsorshipRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateChildSponsorship inserts a new (sponsor, child) relationship row.
// A second row for the same pair violates the unique constraint and maps
// to apperrors.ErrSponsorshipExists.
func (r *SponsorshipRepository) CreateChildSponsorship(ctx context.Context, s *models.ChildSponsorship) (int64, error) {
	sql, args, err := r.sb.Insert("child_sponsorships").
		Columns("sponsor_id", "child_id", "sponsorship_type", "start_date", "end_date", "is_active").
		Values(s.SponsorID, s.ChildID, s.Type, s.StartDate, s.EndDate, s.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create child sponsorship SQL")
		return 0, fmt.Errorf("failed to build create child sponsorship query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, childPairConstraint):
			return 0, apperrors.ErrSponsorshipExists
		case dberrors.IsForeignKeyConstraintError(err, childSponsorFKName):
			return 0, apperrors.ErrSponsorNotFound
		case dberrors.IsForeignKeyConstraintError(err, childChildFKName):
			return 0, apperrors.ErrChildNotFound
		}
		logger.Error().Err(err).Msg("Error executing create child sponsorship query")
		return 0, fmt.Errorf("error creating child sponsorship: %w", err)
	}
	return id, nil
}

// CreateStaffSponsorship inserts a new (sponsor, staff) relationship row.
func (r *SponsorshipRepository) CreateStaffSponsorship(ctx context.Context, s *models.StaffSponsorship) (int64, error) {
	sql, args, err := r.sb.Insert("staff_sponsorships").
		Columns("sponsor_id", "staff_id", "sponsorship_type", "start_date", "end_date", "is_active").
		Values(s.SponsorID, s.StaffID, s.Type, s.StartDate, s.EndDate, s.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create staff sponsorship SQL")
		return 0, fmt.Errorf("failed to build create staff sponsorship query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, staffPairConstraint):
			return 0, apperrors.ErrSponsorshipExists
		case dberrors.IsForeignKeyConstraintError(err, staffSponsorFKName):
			return 0, apperrors.ErrSponsorNotFound
		case dberrors.IsForeignKeyConstraintError(err, staffStaffFKName):
			return 0, apperrors.ErrStaffNotFound
		}
		logger.Error().Err(err).Msg("Error executing create staff sponsorship query")
		return 0, fmt.Errorf("error creating staff sponsorship: %w", err)
	}
	return id, nil
}

// GetChildSponsorshipByPair retrieves the single relationship row for a
// (sponsor, child) pair, active or not.
func (r *SponsorshipRepository) GetChildSponsorshipByPair(ctx context.Context, sponsorID, childID int64) (*models.ChildSponsorship, error) {
	sql, args, err := r.sb.Select(childSponsorshipColumns...).
		From("child_sponsorships").
		Where(squirrel.Eq{"sponsor_id": sponsorID, "child_id": childID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get child sponsorship SQL")
		return nil, fmt.Errorf("failed to build get child sponsorship query: %w", err)
	}

	s, err := scanChildSponsorship(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSponsorshipNotFound
		}
		logger.Error().Err(err).Int64("sponsorID", sponsorID).Int64("childID", childID).Msg("Error scanning child sponsorship row")
		return nil, fmt.Errorf("error getting child sponsorship: %w", err)
	}
	return s, nil
}

// GetStaffSponsorshipByPair retrieves the single relationship row for a
// (sponsor, staff) pair, active or not.
func (r *SponsorshipRepository) GetStaffSponsorshipByPair(ctx context.Context, sponsorID, staffID int64) (*models.StaffSponsorship, error) {
	sql, args, err := r.sb.Select(staffSponsorshipColumns...).
		From("staff_sponsorships").
		Where(squirrel.Eq{"sponsor_id": sponsorID, "staff_id": staffID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get staff sponsorship SQL")
		return nil, fmt.Errorf("failed to build get staff sponsorship query: %w", err)
	}

	s, err := scanStaffSponsorship(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSponsorshipNotFound
		}
		logger.Error().Err(err).Int64("sponsorID", sponsorID).Int64("staffID", staffID).Msg("Error scanning staff sponsorship row")
		return nil, fmt.Errorf("error getting staff sponsorship: %w", err)
	}
	return s, nil
}

// GetChildSponsorshipByID retrieves a child sponsorship row by primary key.
func (r *SponsorshipRepository) GetChildSponsorshipByID(ctx context.Context, id int64) (*models.ChildSponsorship, error) {
	sql, args, err := r.sb.Select(childSponsorshipColumns...).
		From("child_sponsorships").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get child sponsorship by ID SQL")
		return nil, fmt.Errorf("failed to build get child sponsorship query: %w", err)
	}

	s, err := scanChildSponsorship(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSponsorshipNotFound
		}
		logger.Error().Err(err).Int64("sponsorshipID", id).Msg("Error scanning child sponsorship row")
		return nil, fmt.Errorf("error getting child sponsorship by ID: %w", err)
	}
	return s, nil
}

// GetStaffSponsorshipByID retrieves a staff sponsorship row by primary key.
func (r *SponsorshipRepository) GetStaffSponsorshipByID(ctx context.Context, id int64) (*models.StaffSponsorship, error) {
	sql, args, err := r.sb.Select(staffSponsorshipColumns...).
		From("staff_sponsorships").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get staff sponsorship by ID SQL")
		return nil, fmt.Errorf("failed to build get staff sponsorship query: %w", err)
	}

	s, err := scanStaffSponsorship(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSponsorshipNotFound
		}
		logger.Error().Err(err).Int64("sponsorshipID", id).Msg("Error scanning staff sponsorship row")
		return nil, fmt.Errorf("error getting staff sponsorship by ID: %w", err)
	}
	return s, nil
}

// UpdateChildSponsorship rewrites the mutable fields of a child sponsorship row.
func (r *SponsorshipRepository) UpdateChildSponsorship(ctx context.Context, s *models.ChildSponsorship) error {
	sql, args, err := r.sb.Update("child_sponsorships").
		SetMap(map[string]interface{}{
			"sponsorship_type": s.Type,
			"start_date":       s.StartDate,
			"end_date":         s.EndDate,
			"is_active":        s.IsActive,
			"updated_at":       squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update child sponsorship SQL")
		return fmt.Errorf("failed to build update child sponsorship query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("sponsorshipID", s.ID).Msg("Error executing update child sponsorship query")
		return fmt.Errorf("error updating child sponsorship: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSponsorshipNotFound
	}
	return nil
}

// UpdateStaffSponsorship rewrites the mutable fields of a staff sponsorship row.
func (r *SponsorshipRepository) UpdateStaffSponsorship(ctx context.Context, s *models.StaffSponsorship) error {
	sql, args, err := r.sb.Update("staff_sponsorships").
		SetMap(map[string]interface{}{
			"sponsorship_type": s.Type,
			"start_date":       s.StartDate,
			"end_date":         s.EndDate,
			"is_active":        s.IsActive,
			"updated_at":       squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update staff sponsorship SQL")
		return fmt.Errorf("failed to build update staff sponsorship query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("sponsorshipID", s.ID).Msg("Error executing update staff sponsorship query")
		return fmt.Errorf("error updating staff sponsorship: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSponsorshipNotFound
	}
	return nil
}

// ListActiveChildSponsorshipsBySponsor returns a sponsor's active child
// sponsorships ordered by start date ascending.
func (r *SponsorshipRepository) ListActiveChildSponsorshipsBySponsor(ctx context.Context, sponsorID int64) ([]*models.ChildSponsorship, error) {
	return r.listChildSponsorships(ctx, squirrel.Eq{"sponsor_id": sponsorID, "is_active": true})
}

// ListActiveChildSponsorshipsByChild returns a child's active sponsorships
// ordered by start date ascending.
func (r *SponsorshipRepository) ListActiveChildSponsorshipsByChild(ctx context.Context, childID int64) ([]*models.ChildSponsorship, error) {
	return r.listChildSponsorships(ctx, squirrel.Eq{"child_id": childID, "is_active": true})
}

func (r *SponsorshipRepository) listChildSponsorships(ctx context.Context, pred squirrel.Eq) ([]*models.ChildSponsorship, error) {
	sql, args, err := r.sb.Select(childSponsorshipColumns...).
		From("child_sponsorships").
		Where(pred).
		OrderBy("start_date ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list child sponsorships SQL")
		return nil, fmt.Errorf("failed to build list child sponsorships query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list child sponsorships query")
		return nil, fmt.Errorf("error querying child sponsorships: %w", err)
	}
	defer rows.Close()

	sponsorships := []*models.ChildSponsorship{}
	for rows.Next() {
		s, err := scanChildSponsorship(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning child sponsorship row during list")
			return nil, fmt.Errorf("error scanning child sponsorship row: %w", err)
		}
		sponsorships = append(sponsorships, s)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating child sponsorship rows")
		return nil, fmt.Errorf("error iterating child sponsorship rows: %w", err)
	}

	return sponsorships, nil
}

// ListActiveStaffSponsorshipsBySponsor returns a sponsor's active staff
// sponsorships ordered by start date ascending.
func (r *SponsorshipRepository) ListActiveStaffSponsorshipsBySponsor(ctx context.Context, sponsorID int64) ([]*models.StaffSponsorship, error) {
	return r.listStaffSponsorships(ctx, squirrel.Eq{"sponsor_id": sponsorID, "is_active": true})
}

// ListActiveStaffSponsorshipsByStaff returns a staff member's active
// sponsorships ordered by start date ascending.
func (r *SponsorshipRepository) ListActiveStaffSponsorshipsByStaff(ctx context.Context, staffID int64) ([]*models.StaffSponsorship, error) {
	return r.listStaffSponsorships(ctx, squirrel.Eq{"staff_id": staffID, "is_active": true})
}

func (r *SponsorshipRepository) listStaffSponsorships(ctx context.Context, pred squirrel.Eq) ([]*models.StaffSponsorship, error) {
	sql, args, err := r.sb.Select(staffSponsorshipColumns...).
		From("staff_sponsorships").
		Where(pred).
		OrderBy("start_date ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list staff sponsorships SQL")
		return nil, fmt.Errorf("failed to build list staff sponsorships query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list staff sponsorships query")
		return nil, fmt.Errorf("error querying staff sponsorships: %w", err)
	}
	defer rows.Close()

	sponsorships := []*models.StaffSponsorship{}
	for rows.Next() {
		s, err := scanStaffSponsorship(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning staff sponsorship row during list")
			return nil, fmt.Errorf("error scanning staff sponsorship row: %w", err)
		}
		sponsorships = append(sponsorships, s)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating staff sponsorship rows")
		return nil, fmt.Errorf("error iterating staff sponsorship rows: %w", err)
	}

	return sponsorships, nil
}

// CountActiveChildSponsorships counts all active child sponsorship rows.
func (r *SponsorshipRepository) CountActiveChildSponsorships(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM child_sponsorships WHERE is_active").Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting active child sponsorships")
		return 0, fmt.Errorf("error counting active child sponsorships: %w", err)
	}
	return count, nil
}

// CountActiveStaffSponsorships counts all active staff sponsorship rows.
func (r *SponsorshipRepository) CountActiveStaffSponsorships(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM staff_sponsorships WHERE is_active").Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting active staff sponsorships")
		return 0, fmt.Errorf("error counting active staff sponsorships: %w", err)
	}
	return count, nil
}

// DeleteChildSponsorship removes a child sponsorship row entirely.
func (r *SponsorshipRepository) DeleteChildSponsorship(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, "DELETE FROM child_sponsorships WHERE id = $1", id)
	if err != nil {
		logger.Error().Err(err).Int64("sponsorshipID", id).Msg("Error executing delete child sponsorship query")
		return fmt.Errorf("error deleting child sponsorship: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSponsorshipNotFound
	}
	return nil
}

// DeleteStaffSponsorship removes a staff sponsorship row entirely.
func (r *SponsorshipRepository) DeleteStaffSponsorship(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, "DELETE FROM staff_sponsorships WHERE id = $1", id)
	if err != nil {
		logger.Error().Err(err).Int64("sponsorshipID", id).Msg("Error executing delete staff sponsorship query")
		return fmt.Errorf("error deleting staff sponsorship: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSponsorshipNotFound
	}
	return nil
}
