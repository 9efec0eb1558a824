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

// childInsertColumns is the 37-column registration schema in sheet order.
var childInsertColumns = []string{
	"full_name", "preferred_name", "residence", "tribe", "gender",
	"date_of_birth", "weight", "height", "avatar", "interest",
	"in_school", "school_name", "education_level", "class", "best_subject",
	"is_sponsored", "sponsorship_type", "father_name", "father_alive", "father_description",
	"mother_name", "mother_alive", "mother_description", "guardian", "guardian_contact",
	"guardian_relationship", "siblings", "background_info", "health_status", "responsibility",
	"faith_relationship", "religion", "prayer_request", "year_enrolled", "is_departed",
	"staff_comment", "compiled_by",
}

// childSelectColumns adds the bookkeeping columns to the insert schema.
var childSelectColumns = append([]string{"id"}, append(append([]string{}, childInsertColumns...), "created_at", "updated_at")...)

// childInsertValues returns the insert values in childInsertColumns order.
func childInsertValues(c *models.Child) []interface{} {
	return []interface{}{
		c.FullName, c.PreferredName, c.Residence, c.Tribe, c.Gender,
		c.DateOfBirth, c.Weight, c.Height, c.Avatar, c.Interest,
		c.InSchool, c.SchoolName, c.EducationLevel, c.Class, c.BestSubject,
		c.IsSponsored, c.SponsorshipType, c.FatherName, c.FatherAlive, c.FatherDescription,
		c.MotherName, c.MotherAlive, c.MotherDescription, c.Guardian, c.GuardianContact,
		c.GuardianRelationship, c.Siblings, c.BackgroundInfo, c.HealthStatus, c.Responsibility,
		c.FaithRelationship, c.Religion, c.PrayerRequest, c.YearEnrolled, c.IsDeparted,
		c.StaffComment, c.CompiledBy,
	}
}

// scanChild scans one row in childSelectColumns order.
func scanChild(row pgx.Row) (*models.Child, error) {
	c := &models.Child{}
	err := row.Scan(
		&c.ID,
		&c.FullName, &c.PreferredName, &c.Residence, &c.Tribe, &c.Gender,
		&c.DateOfBirth, &c.Weight, &c.Height, &c.Avatar, &c.Interest,
		&c.InSchool, &c.SchoolName, &c.EducationLevel, &c.Class, &c.BestSubject,
		&c.IsSponsored, &c.SponsorshipType, &c.FatherName, &c.FatherAlive, &c.FatherDescription,
		&c.MotherName, &c.MotherAlive, &c.MotherDescription, &c.Guardian, &c.GuardianContact,
		&c.GuardianRelationship, &c.Siblings, &c.BackgroundInfo, &c.HealthStatus, &c.Responsibility,
		&c.FaithRelationship, &c.Religion, &c.PrayerRequest, &c.YearEnrolled, &c.IsDeparted,
		&c.StaffComment, &c.CompiledBy,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ChildRepository handles child database operations
type ChildRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewChildRepository creates a new ChildRepository
func NewChildRepository(db *pgxpool.Pool) *ChildRepository {
	return &ChildRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateChild persists a new child record and returns its id.
func (r *ChildRepository) CreateChild(ctx context.Context, child *models.Child) (int64, error) {
	sql, args, err := r.sb.Insert("children").
		Columns(childInsertColumns...).
		Values(childInsertValues(child)...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create child SQL")
		return 0, fmt.Errorf("failed to build create child query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create child query")
		return 0, fmt.Errorf("error creating child: %w", err)
	}
	return id, nil
}

// CreateChildTx persists a new child record inside an existing transaction.
// The bulk importer runs every row of a file through this method so a single
// failure rolls back the whole file.
func (r *ChildRepository) CreateChildTx(ctx context.Context, tx pgx.Tx, child *models.Child) (int64, error) {
	sql, args, err := r.sb.Insert("children").
		Columns(childInsertColumns...).
		Values(childInsertValues(child)...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create child SQL")
		return 0, fmt.Errorf("failed to build create child query: %w", err)
	}

	var id int64
	if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating child: %w", err)
	}
	return id, nil
}

// GetChildByID retrieves a child by ID
func (r *ChildRepository) GetChildByID(ctx context.Context, id int64) (*models.Child, error) {
	sql, args, err := r.sb.Select(childSelectColumns...).
		From("children").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get child by ID SQL")
		return nil, fmt.Errorf("failed to build get child query: %w", err)
	}

	child, err := scanChild(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrChildNotFound
		}
		logger.Error().Err(err).Int64("childID", id).Msg("Error scanning child row")
		return nil, fmt.Errorf("error getting child by ID: %w", err)
	}
	return child, nil
}

// ListChildren retrieves children with optional name-substring search and pagination.
func (r *ChildRepository) ListChildren(ctx context.Context, search string, offset uint64, limit int) ([]*models.Child, error) {
	builder := r.sb.Select(childSelectColumns...).
		From("children").
		OrderBy("full_name ASC").
		Offset(offset).
		Limit(uint64(limit))
	if search != "" {
		builder = builder.Where(squirrel.ILike{"full_name": "%" + search + "%"})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list children SQL")
		return nil, fmt.Errorf("failed to build list children query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list children query")
		return nil, fmt.Errorf("error querying children: %w", err)
	}
	defer rows.Close()

	children := []*models.Child{}
	for rows.Next() {
		child, err := scanChild(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning child row during list")
			return nil, fmt.Errorf("error scanning child row: %w", err)
		}
		children = append(children, child)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating child rows")
		return nil, fmt.Errorf("error iterating child rows: %w", err)
	}

	return children, nil
}

// CountChildren counts children matching the optional name search.
func (r *ChildRepository) CountChildren(ctx context.Context, search string) (int64, error) {
	builder := r.sb.Select("COUNT(*)").From("children")
	if search != "" {
		builder = builder.Where(squirrel.ILike{"full_name": "%" + search + "%"})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count children SQL")
		return 0, fmt.Errorf("failed to build count children query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error executing count children query")
		return 0, fmt.Errorf("error counting children: %w", err)
	}
	return count, nil
}

// UpdateChild updates an existing child record.
func (r *ChildRepository) UpdateChild(ctx context.Context, child *models.Child) error {
	setMap := map[string]interface{}{}
	values := childInsertValues(child)
	for i, col := range childInsertColumns {
		setMap[col] = values[i]
	}
	setMap["updated_at"] = squirrel.Expr("NOW()")

	sql, args, err := r.sb.Update("children").
		SetMap(setMap).
		Where(squirrel.Eq{"id": child.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update child SQL")
		return fmt.Errorf("failed to build update child query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("childID", child.ID).Msg("Error executing update child query")
		return fmt.Errorf("error updating child: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrChildNotFound
	}
	return nil
}

// UpdateChildAvatar stores the path of an uploaded profile photo.
func (r *ChildRepository) UpdateChildAvatar(ctx context.Context, id int64, avatar string) error {
	sql, args, err := r.sb.Update("children").
		Set("avatar", avatar).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update child avatar SQL")
		return fmt.Errorf("failed to build update child avatar query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("childID", id).Msg("Error executing update child avatar query")
		return fmt.Errorf("error updating child avatar: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrChildNotFound
	}
	return nil
}

// DeleteChild deletes a child by ID. Sponsorship rows cascade.
func (r *ChildRepository) DeleteChild(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("children").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete child SQL")
		return fmt.Errorf("failed to build delete child query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("childID", id).Msg("Error executing delete child query")
		return fmt.Errorf("error deleting child: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrChildNotFound
	}
	return nil
}

// DeleteAllChildren wipes the children table. Used by the master-list reset.
func (r *ChildRepository) DeleteAllChildren(ctx context.Context) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, "DELETE FROM children")
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete all children query")
		return 0, fmt.Errorf("error deleting all children: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
