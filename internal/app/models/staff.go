package models

import "time"

// Staff represents a staff member who may receive sponsorship support.
type Staff struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	FirstName string    `json:"firstName" db:"first_name"`
	LastName  string    `json:"lastName" db:"last_name"`
	Gender    string    `json:"gender" db:"gender"`
	Telephone string    `json:"telephone" db:"telephone"`
	Position  string    `json:"position" db:"position"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
