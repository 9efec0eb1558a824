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

var sponsorColumns = []string{
	"id", "first_name", "last_name", "gender", "email",
	"sponsorship_type_at_signup", "job_title", "region", "town", "origin",
	"business_telephone", "mobile_telephone", "city", "start_date",
	"first_street_address", "second_street_address", "zip_code",
	"is_departed", "comment", "created_at", "updated_at",
}

func scanSponsor(row pgx.Row) (*models.Sponsor, error) {
	s := &models.Sponsor{}
	err := row.Scan(
		&s.ID, &s.FirstName, &s.LastName, &s.Gender, &s.Email,
		&s.SponsorshipTypeAtSignup, &s.JobTitle, &s.Region, &s.Town, &s.Origin,
		&s.BusinessTelephone, &s.MobileTelephone, &s.City, &s.StartDate,
		&s.FirstStreetAddress, &s.SecondStreetAddress, &s.ZipCode,
		&s.IsDeparted, &s.Comment, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// SponsorRepository handles sponsor and sponsor-departure database operations
type SponsorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSponsorRepository creates a new SponsorRepository
func NewSponsorRepository(db *pgxpool.Pool) *SponsorRepository {
	return &SponsorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateSponsor creates a new sponsor
func (r *SponsorRepository) CreateSponsor(ctx context.Context, sponsor *models.Sponsor) (int64, error) {
	sql, args, err := r.sb.Insert("sponsors").
		Columns("first_name", "last_name", "gender", "email",
			"sponsorship_type_at_signup", "job_title", "region", "town", "origin",
			"business_telephone", "mobile_telephone", "city", "start_date",
			"first_street_address", "second_street_address", "zip_code",
			"is_departed", "comment").
		Values(sponsor.FirstName, sponsor.LastName, sponsor.Gender, sponsor.Email,
			sponsor.SponsorshipTypeAtSignup, sponsor.JobTitle, sponsor.Region, sponsor.Town, sponsor.Origin,
			sponsor.BusinessTelephone, sponsor.MobileTelephone, sponsor.City, sponsor.StartDate,
			sponsor.FirstStreetAddress, sponsor.SecondStreetAddress, sponsor.ZipCode,
			sponsor.IsDeparted, sponsor.Comment).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create sponsor SQL")
		return 0, fmt.Errorf("failed to build create sponsor query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create sponsor query")
		return 0, fmt.Errorf("error creating sponsor: %w", err)
	}
	return id, nil
}

// GetSponsorByID retrieves a sponsor by ID
func (r *SponsorRepository) GetSponsorByID(ctx context.Context, id int64) (*models.Sponsor, error) {
	sql, args, err := r.sb.Select(sponsorColumns...).
		From("sponsors").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get sponsor by ID SQL")
		return nil, fmt.Errorf("failed to build get sponsor query: %w", err)
	}

	sponsor, err := scanSponsor(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSponsorNotFound
		}
		logger.Error().Err(err).Int64("sponsorID", id).Msg("Error scanning sponsor row")
		return nil, fmt.Errorf("error getting sponsor by ID: %w", err)
	}
	return sponsor, nil
}

// ListSponsors retrieves sponsors with optional name search and pagination.
func (r *SponsorRepository) ListSponsors(ctx context.Context, search string, offset uint64, limit int) ([]*models.Sponsor, error) {
	builder := r.sb.Select(sponsorColumns...).
		From("sponsors").
		OrderBy("last_name ASC", "first_name ASC").
		Offset(offset).
		Limit(uint64(limit))
	if search != "" {
		pattern := "%" + search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"first_name": pattern},
			squirrel.ILike{"last_name": pattern},
		})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list sponsors SQL")
		return nil, fmt.Errorf("failed to build list sponsors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list sponsors query")
		return nil, fmt.Errorf("error querying sponsors: %w", err)
	}
	defer rows.Close()

	sponsors := []*models.Sponsor{}
	for rows.Next() {
		sponsor, err := scanSponsor(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning sponsor row during list")
			return nil, fmt.Errorf("error scanning sponsor row: %w", err)
		}
		sponsors = append(sponsors, sponsor)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating sponsor rows")
		return nil, fmt.Errorf("error iterating sponsor rows: %w", err)
	}

	return sponsors, nil
}

// CountSponsors counts sponsors matching the optional name search.
func (r *SponsorRepository) CountSponsors(ctx context.Context, search string) (int64, error) {
	builder := r.sb.Select("COUNT(*)").From("sponsors")
	if search != "" {
		pattern := "%" + search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"first_name": pattern},
			squirrel.ILike{"last_name": pattern},
		})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count sponsors SQL")
		return 0, fmt.Errorf("failed to build count sponsors query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error executing count sponsors query")
		return 0, fmt.Errorf("error counting sponsors: %w", err)
	}
	return count, nil
}

// UpdateSponsor updates an existing sponsor
func (r *SponsorRepository) UpdateSponsor(ctx context.Context, sponsor *models.Sponsor) error {
	sql, args, err := r.sb.Update("sponsors").
		SetMap(map[string]interface{}{
			"first_name":                 sponsor.FirstName,
			"last_name":                  sponsor.LastName,
			"gender":                     sponsor.Gender,
			"email":                      sponsor.Email,
			"sponsorship_type_at_signup": sponsor.SponsorshipTypeAtSignup,
			"job_title":                  sponsor.JobTitle,
			"region":                     sponsor.Region,
			"town":                       sponsor.Town,
			"origin":                     sponsor.Origin,
			"business_telephone":         sponsor.BusinessTelephone,
			"mobile_telephone":           sponsor.MobileTelephone,
			"city":                       sponsor.City,
			"start_date":                 sponsor.StartDate,
			"first_street_address":       sponsor.FirstStreetAddress,
			"second_street_address":      sponsor.SecondStreetAddress,
			"zip_code":                   sponsor.ZipCode,
			"is_departed":                sponsor.IsDeparted,
			"comment":                    sponsor.Comment,
			"updated_at":                 squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": sponsor.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update sponsor SQL")
		return fmt.Errorf("failed to build update sponsor query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("sponsorID", sponsor.ID).Msg("Error executing update sponsor query")
		return fmt.Errorf("error updating sponsor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSponsorNotFound
	}
	return nil
}

// DeleteSponsor deletes a sponsor by ID. Sponsorship and departure rows cascade.
func (r *SponsorRepository) DeleteSponsor(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("sponsors").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete sponsor SQL")
		return fmt.Errorf("failed to build delete sponsor query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("sponsorID", id).Msg("Error executing delete sponsor query")
		return fmt.Errorf("error deleting sponsor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSponsorNotFound
	}
	return nil
}

// RecordDeparture marks the sponsor departed and inserts a departure row,
// atomically.
func (r *SponsorRepository) RecordDeparture(ctx context.Context, tx pgx.Tx, departure *models.SponsorDeparture) (int64, error) {
	updateSQL, updateArgs, err := r.sb.Update("sponsors").
		Set("is_departed", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": departure.SponsorID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building mark departed SQL")
		return 0, fmt.Errorf("failed to build mark departed query: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, updateSQL, updateArgs...)
	if err != nil {
		logger.Error().Err(err).Int64("sponsorID", departure.SponsorID).Msg("Error marking sponsor departed")
		return 0, fmt.Errorf("error marking sponsor departed: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return 0, apperrors.ErrSponsorNotFound
	}

	insertSQL, insertArgs, err := r.sb.Insert("sponsor_departures").
		Columns("sponsor_id", "departure_date", "departure_reason").
		Values(departure.SponsorID, departure.DepartureDate, departure.DepartureReason).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create departure SQL")
		return 0, fmt.Errorf("failed to build create departure query: %w", err)
	}

	var id int64
	if err := tx.QueryRow(ctx, insertSQL, insertArgs...).Scan(&id); err != nil {
		logger.Error().Err(err).Int64("sponsorID", departure.SponsorID).Msg("Error inserting sponsor departure")
		return 0, fmt.Errorf("error recording sponsor departure: %w", err)
	}
	return id, nil
}

// ListDepartures returns a sponsor's departure history, newest first.
func (r *SponsorRepository) ListDepartures(ctx context.Context, sponsorID int64) ([]*models.SponsorDeparture, error) {
	sql, args, err := r.sb.Select("id", "sponsor_id", "departure_date", "departure_reason", "created_at", "updated_at").
		From("sponsor_departures").
		Where(squirrel.Eq{"sponsor_id": sponsorID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list departures SQL")
		return nil, fmt.Errorf("failed to build list departures query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list departures query")
		return nil, fmt.Errorf("error querying sponsor departures: %w", err)
	}
	defer rows.Close()

	departures := []*models.SponsorDeparture{}
	for rows.Next() {
		d := &models.SponsorDeparture{}
		if err := rows.Scan(&d.ID, &d.SponsorID, &d.DepartureDate, &d.DepartureReason, &d.CreatedAt, &d.UpdatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning departure row")
			return nil, fmt.Errorf("error scanning departure row: %w", err)
		}
		departures = append(departures, d)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating departure rows")
		return nil, fmt.Errorf("error iterating departure rows: %w", err)
	}

	return departures, nil
}
