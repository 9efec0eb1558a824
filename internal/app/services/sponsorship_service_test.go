package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wkalungi/sponsorbase/internal/app/models"
	"github.com/wkalungi/sponsorbase/internal/pkg/apperrors"
)

// fakeSponsorshipStore keeps sponsorship rows in memory with the same
// contract as the SQL store: one row per pair, active listings ordered by
// start date ascending.
type fakeSponsorshipStore struct {
	childRows []*models.ChildSponsorship
	staffRows []*models.StaffSponsorship
	nextID    int64
}

func newFakeSponsorshipStore() *fakeSponsorshipStore {
	return &fakeSponsorshipStore{nextID: 1}
}

func (f *fakeSponsorshipStore) CreateChildSponsorship(ctx context.Context, s *models.ChildSponsorship) (int64, error) {
	for _, row := range f.childRows {
		if row.SponsorID == s.SponsorID && row.ChildID == s.ChildID {
			return 0, apperrors.ErrSponsorshipExists
		}
	}
	clone := *s
	clone.ID = f.nextID
	f.nextID++
	f.childRows = append(f.childRows, &clone)
	return clone.ID, nil
}

func (f *fakeSponsorshipStore) CreateStaffSponsorship(ctx context.Context, s *models.StaffSponsorship) (int64, error) {
	for _, row := range f.staffRows {
		if row.SponsorID == s.SponsorID && row.StaffID == s.StaffID {
			return 0, apperrors.ErrSponsorshipExists
		}
	}
	clone := *s
	clone.ID = f.nextID
	f.nextID++
	f.staffRows = append(f.staffRows, &clone)
	return clone.ID, nil
}

func (f *fakeSponsorshipStore) GetChildSponsorshipByPair(ctx context.Context, sponsorID, childID int64) (*models.ChildSponsorship, error) {
	for _, row := range f.childRows {
		if row.SponsorID == sponsorID && row.ChildID == childID {
			clone := *row
			return &clone, nil
		}
	}
	return nil, apperrors.ErrSponsorshipNotFound
}

func (f *fakeSponsorshipStore) GetStaffSponsorshipByPair(ctx context.Context, sponsorID, staffID int64) (*models.StaffSponsorship, error) {
	for _, row := range f.staffRows {
		if row.SponsorID == sponsorID && row.StaffID == staffID {
			clone := *row
			return &clone, nil
		}
	}
	return nil, apperrors.ErrSponsorshipNotFound
}

func (f *fakeSponsorshipStore) GetChildSponsorshipByID(ctx context.Context, id int64) (*models.ChildSponsorship, error) {
	for _, row := range f.childRows {
		if row.ID == id {
			clone := *row
			return &clone, nil
		}
	}
	return nil, apperrors.ErrSponsorshipNotFound
}

func (f *fakeSponsorshipStore) GetStaffSponsorshipByID(ctx context.Context, id int64) (*models.StaffSponsorship, error) {
	for _, row := range f.staffRows {
		if row.ID == id {
			clone := *row
			return &clone, nil
		}
	}
	return nil, apperrors.ErrSponsorshipNotFound
}

func (f *fakeSponsorshipStore) UpdateChildSponsorship(ctx context.Context, s *models.ChildSponsorship) error {
	for i, row := range f.childRows {
		if row.ID == s.ID {
			clone := *s
			f.childRows[i] = &clone
			return nil
		}
	}
	return apperrors.ErrSponsorshipNotFound
}

func (f *fakeSponsorshipStore) UpdateStaffSponsorship(ctx context.Context, s *models.StaffSponsorship) error {
	for i, row := range f.staffRows {
		if row.ID == s.ID {
			clone := *s
			f.staffRows[i] = &clone
			return nil
		}
	}
	return apperrors.ErrSponsorshipNotFound
}

func sortChildByStartDate(rows []*models.ChildSponsorship) []*models.ChildSponsorship {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].StartDate == nil || rows[j].StartDate == nil {
			return rows[j].StartDate != nil
		}
		return rows[i].StartDate.Before(*rows[j].StartDate)
	})
	return rows
}

func sortStaffByStartDate(rows []*models.StaffSponsorship) []*models.StaffSponsorship {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].StartDate == nil || rows[j].StartDate == nil {
			return rows[j].StartDate != nil
		}
		return rows[i].StartDate.Before(*rows[j].StartDate)
	})
	return rows
}

func (f *fakeSponsorshipStore) ListActiveChildSponsorshipsBySponsor(ctx context.Context, sponsorID int64) ([]*models.ChildSponsorship, error) {
	var out []*models.ChildSponsorship
	for _, row := range f.childRows {
		if row.SponsorID == sponsorID && row.IsActive {
			out = append(out, row)
		}
	}
	return sortChildByStartDate(out), nil
}

func (f *fakeSponsorshipStore) ListActiveChildSponsorshipsByChild(ctx context.Context, childID int64) ([]*models.ChildSponsorship, error) {
	var out []*models.ChildSponsorship
	for _, row := range f.childRows {
		if row.ChildID == childID && row.IsActive {
			out = append(out, row)
		}
	}
	return sortChildByStartDate(out), nil
}

func (f *fakeSponsorshipStore) ListActiveStaffSponsorshipsBySponsor(ctx context.Context, sponsorID int64) ([]*models.StaffSponsorship, error) {
	var out []*models.StaffSponsorship
	for _, row := range f.staffRows {
		if row.SponsorID == sponsorID && row.IsActive {
			out = append(out, row)
		}
	}
	return sortStaffByStartDate(out), nil
}

func (f *fakeSponsorshipStore) ListActiveStaffSponsorshipsByStaff(ctx context.Context, staffID int64) ([]*models.StaffSponsorship, error) {
	var out []*models.StaffSponsorship
	for _, row := range f.staffRows {
		if row.StaffID == staffID && row.IsActive {
			out = append(out, row)
		}
	}
	return sortStaffByStartDate(out), nil
}

func (f *fakeSponsorshipStore) DeleteChildSponsorship(ctx context.Context, id int64) error {
	for i, row := range f.childRows {
		if row.ID == id {
			f.childRows = append(f.childRows[:i], f.childRows[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrSponsorshipNotFound
}

func (f *fakeSponsorshipStore) DeleteStaffSponsorship(ctx context.Context, id int64) error {
	for i, row := range f.staffRows {
		if row.ID == id {
			f.staffRows = append(f.staffRows[:i], f.staffRows[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrSponsorshipNotFound
}

func TestBeginChildSponsorship(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should create an active sponsorship", func(t *testing.T) {
		svc := NewSponsorshipService(newFakeSponsorshipStore())

		sponsorship, err := svc.BeginChildSponsorship(ctx, 1, 7, models.SponsorshipChildFullSupport, start)
		require.NoError(t, err)
		assert.NotZero(t, sponsorship.ID)
		assert.True(t, sponsorship.IsActive)
		assert.Equal(t, models.SponsorshipChildFullSupport, sponsorship.Type)
		require.NotNil(t, sponsorship.StartDate)
		assert.Equal(t, start, *sponsorship.StartDate)
		assert.Nil(t, sponsorship.EndDate)
	})

	t.Run("should reject an unknown sponsorship type", func(t *testing.T) {
		svc := NewSponsorshipService(newFakeSponsorshipStore())

		_, err := svc.BeginChildSponsorship(ctx, 1, 7, "Platinum support", start)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("should reject a second sponsorship for the same pair", func(t *testing.T) {
		svc := NewSponsorshipService(newFakeSponsorshipStore())

		_, err := svc.BeginChildSponsorship(ctx, 1, 7, models.SponsorshipChildFullSupport, start)
		require.NoError(t, err)

		_, err = svc.BeginChildSponsorship(ctx, 1, 7, models.SponsorshipChildCoSupport, start)
		assert.ErrorIs(t, err, apperrors.ErrSponsorshipExists)
	})

	t.Run("should reject the pair even after the sponsorship ended", func(t *testing.T) {
		svc := NewSponsorshipService(newFakeSponsorshipStore())

		_, err := svc.BeginChildSponsorship(ctx, 1, 7, models.SponsorshipChildFullSupport, start)
		require.NoError(t, err)
		_, err = svc.EndChildSponsorship(ctx, 1, 7, start.AddDate(1, 0, 0))
		require.NoError(t, err)

		_, err = svc.BeginChildSponsorship(ctx, 1, 7, models.SponsorshipChildFullSupport, start.AddDate(2, 0, 0))
		assert.ErrorIs(t, err, apperrors.ErrSponsorshipExists)
	})

	t.Run("should list active sponsorships by ascending start date", func(t *testing.T) {
		svc := NewSponsorshipService(newFakeSponsorshipStore())

		_, err := svc.BeginChildSponsorship(ctx, 1, 7, models.SponsorshipChildFullSupport, start.AddDate(2, 0, 0))
		require.NoError(t, err)
		_, err = svc.BeginChildSponsorship(ctx, 1, 8, models.SponsorshipChildCoSupport, start)
		require.NoError(t, err)
		_, err = svc.BeginChildSponsorship(ctx, 1, 9, models.SponsorshipGeneralSupport, start.AddDate(1, 0, 0))
		require.NoError(t, err)

		children, _, err := svc.ListActiveBySponsor(ctx, 1)
		require.NoError(t, err)
		require.Len(t, children, 3)
		assert.Equal(t, int64(8), children[0].ChildID)
		assert.Equal(t, int64(9), children[1].ChildID)
		assert.Equal(t, int64(7), children[2].ChildID)
	})

	t.Run("should allow the same sponsor to support several children", func(t *testing.T) {
		svc := NewSponsorshipService(newFakeSponsorshipStore())

		_, err := svc.BeginChildSponsorship(ctx, 1, 7, models.SponsorshipChildFullSupport, start)
		require.NoError(t, err)
		_, err = svc.BeginChildSponsorship(ctx, 1, 8, models.SponsorshipChildCoSupport, start)
		require.NoError(t, err)

		children, _, err := svc.ListActiveBySponsor(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, children, 2)
	})
}

func TestEndChildSponsorship(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should end an active sponsorship", func(t *testing.T) {
		store := newFakeSponsorshipStore()
		svc := NewSponsorshipService(store)

		_, err := svc.BeginChildSponsorship(ctx, 1, 7, models.SponsorshipChildFullSupport, start)
		require.NoError(t, err)

		ended, err := svc.EndChildSponsorship(ctx, 1, 7, end)
		require.NoError(t, err)
		assert.False(t, ended.IsActive)
		require.NotNil(t, ended.EndDate)
		assert.Equal(t, end, *ended.EndDate)

		children, err := svc.ListActiveByChild(ctx, 7)
		require.NoError(t, err)
		assert.Empty(t, children)
	})

	t.Run("should reject ending a pair with no sponsorship", func(t *testing.T) {
		svc := NewSponsorshipService(newFakeSponsorshipStore())

		_, err := svc.EndChildSponsorship(ctx, 1, 7, end)
		assert.ErrorIs(t, err, apperrors.ErrSponsorshipNotFound)
	})

	t.Run("should reject ending an already-ended sponsorship", func(t *testing.T) {
		svc := NewSponsorshipService(newFakeSponsorshipStore())

		_, err := svc.BeginChildSponsorship(ctx, 1, 7, models.SponsorshipChildFullSupport, start)
		require.NoError(t, err)
		_, err = svc.EndChildSponsorship(ctx, 1, 7, end)
		require.NoError(t, err)

		_, err = svc.EndChildSponsorship(ctx, 1, 7, end.AddDate(0, 1, 0))
		assert.ErrorIs(t, err, apperrors.ErrSponsorshipEnded)
	})
}

func TestUpdateChildSponsorship(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should re-activate an ended sponsorship", func(t *testing.T) {
		svc := NewSponsorshipService(newFakeSponsorshipStore())

		created, err := svc.BeginChildSponsorship(ctx, 1, 7, models.SponsorshipChildFullSupport, start)
		require.NoError(t, err)
		_, err = svc.EndChildSponsorship(ctx, 1, 7, end)
		require.NoError(t, err)

		newStart := end.AddDate(1, 0, 0)
		updated := &models.ChildSponsorship{
			ID:        created.ID,
			SponsorID: 1,
			ChildID:   7,
			Type:      models.SponsorshipChildCoSupport,
			StartDate: &newStart,
			IsActive:  true,
		}
		require.NoError(t, svc.UpdateChildSponsorship(ctx, updated))

		children, err := svc.ListActiveByChild(ctx, 7)
		require.NoError(t, err)
		require.Len(t, children, 1)
		assert.Equal(t, models.SponsorshipChildCoSupport, children[0].Type)
		assert.Nil(t, children[0].EndDate)
	})

	t.Run("should reject an unknown type", func(t *testing.T) {
		svc := NewSponsorshipService(newFakeSponsorshipStore())

		err := svc.UpdateChildSponsorship(ctx, &models.ChildSponsorship{ID: 1, Type: "Platinum support"})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestStaffSponsorships(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should track staff sponsorships independently of child ones", func(t *testing.T) {
		svc := NewSponsorshipService(newFakeSponsorshipStore())

		_, err := svc.BeginChildSponsorship(ctx, 1, 7, models.SponsorshipChildFullSupport, start)
		require.NoError(t, err)
		_, err = svc.BeginStaffSponsorship(ctx, 1, 7, models.SponsorshipGeneralSupport, start)
		require.NoError(t, err)

		children, staff, err := svc.ListActiveBySponsor(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, children, 1)
		assert.Len(t, staff, 1)
	})

	t.Run("should end a staff sponsorship once", func(t *testing.T) {
		svc := NewSponsorshipService(newFakeSponsorshipStore())

		_, err := svc.BeginStaffSponsorship(ctx, 1, 3, models.SponsorshipGeneralSupport, start)
		require.NoError(t, err)

		ended, err := svc.EndStaffSponsorship(ctx, 1, 3, end)
		require.NoError(t, err)
		assert.False(t, ended.IsActive)

		_, err = svc.EndStaffSponsorship(ctx, 1, 3, end)
		assert.ErrorIs(t, err, apperrors.ErrSponsorshipEnded)
	})

	t.Run("should delete a staff sponsorship row", func(t *testing.T) {
		svc := NewSponsorshipService(newFakeSponsorshipStore())

		created, err := svc.BeginStaffSponsorship(ctx, 1, 3, models.SponsorshipGeneralSupport, start)
		require.NoError(t, err)

		require.NoError(t, svc.DeleteStaffSponsorship(ctx, created.ID))
		_, err = svc.GetStaffSponsorshipByID(ctx, created.ID)
		assert.ErrorIs(t, err, apperrors.ErrSponsorshipNotFound)
	})
}
