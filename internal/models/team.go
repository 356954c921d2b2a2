package models

import (
	"time"

	"github.com/google/uuid"
)

// Team represents a club team.
type Team struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	City        string    `db:"city" json:"city"`
	FoundedYear int       `db:"founded_year" json:"foundedYear"`
	CoachName   string    `db:"coach_name" json:"coachName"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// Player represents a registered player, optionally assigned to a team.
type Player struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	TeamID       *uuid.UUID `db:"team_id" json:"teamId,omitempty"`
	FirstName    string     `db:"first_name" json:"firstName"`
	LastName     string     `db:"last_name" json:"lastName"`
	Position     string     `db:"position" json:"position"`
	JerseyNumber int        `db:"jersey_number" json:"jerseyNumber"`
	BirthDate    time.Time  `db:"birth_date" json:"birthDate"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
}
