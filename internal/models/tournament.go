package models

import (
	"time"

	"github.com/google/uuid"
)

// Tournament statuses.
const (
	TournamentStatusUpcoming = "UPCOMING"
	TournamentStatusActive   = "ACTIVE"
	TournamentStatusFinished = "FINISHED"
)

// Match statuses.
const (
	MatchStatusScheduled = "SCHEDULED"
	MatchStatusLive      = "LIVE"
	MatchStatusFinished  = "FINISHED"
	MatchStatusCancelled = "CANCELLED"
)

// Tournament represents a competition with a season and a date range.
type Tournament struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Season    string    `db:"season" json:"season"`
	StartDate time.Time `db:"start_date" json:"startDate"`
	EndDate   time.Time `db:"end_date" json:"endDate"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Match represents a fixture between two teams within a tournament.
type Match struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	TournamentID *uuid.UUID `db:"tournament_id" json:"tournamentId,omitempty"`
	HomeTeamID   uuid.UUID  `db:"home_team_id" json:"homeTeamId"`
	AwayTeamID   uuid.UUID  `db:"away_team_id" json:"awayTeamId"`
	ScheduledAt  time.Time  `db:"scheduled_at" json:"scheduledAt"`
	HomeScore    int        `db:"home_score" json:"homeScore"`
	AwayScore    int        `db:"away_score" json:"awayScore"`
	Status       string     `db:"status" json:"status"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
}

// PlayerStatistic holds a single player's totals for a single match.
type PlayerStatistic struct {
	ID            uuid.UUID `db:"id" json:"id"`
	PlayerID      uuid.UUID `db:"player_id" json:"playerId"`
	MatchID       uuid.UUID `db:"match_id" json:"matchId"`
	Goals         int       `db:"goals" json:"goals"`
	Assists       int       `db:"assists" json:"assists"`
	YellowCards   int       `db:"yellow_cards" json:"yellowCards"`
	RedCards      int       `db:"red_cards" json:"redCards"`
	MinutesPlayed int       `db:"minutes_played" json:"minutesPlayed"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}
