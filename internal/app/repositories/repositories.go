package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	ChildRepository       *ChildRepository
	SponsorRepository     *SponsorRepository
	StaffRepository       *StaffRepository
	SponsorshipRepository *SponsorshipRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		ChildRepository:       NewChildRepository(db),
		SponsorRepository:     NewSponsorRepository(db),
		StaffRepository:       NewStaffRepository(db),
		SponsorshipRepository: NewSponsorshipRepository(db),
	}
}
