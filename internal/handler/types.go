package handler

import (
	"time"

	"prosports-server/internal/models"
)

type registerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenVerifyRequest struct {
	Token string `json:"token" binding:"required"`
}

type setUserActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

type teamRequest struct {
	Name        string `json:"name" binding:"required"`
	City        string `json:"city"`
	FoundedYear int    `json:"foundedYear"`
	CoachName   string `json:"coachName"`
}

type playerRequest struct {
	TeamID       *string   `json:"teamId"`
	FirstName    string    `json:"firstName" binding:"required"`
	LastName     string    `json:"lastName" binding:"required"`
	Position     string    `json:"position"`
	JerseyNumber int       `json:"jerseyNumber"`
	BirthDate    time.Time `json:"birthDate"`
}

type tournamentRequest struct {
	Name      string    `json:"name" binding:"required"`
	Season    string    `json:"season"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Status    string    `json:"status"`
}

type matchRequest struct {
	TournamentID *string   `json:"tournamentId"`
	HomeTeamID   string    `json:"homeTeamId" binding:"required,uuid"`
	AwayTeamID   string    `json:"awayTeamId" binding:"required,uuid"`
	ScheduledAt  time.Time `json:"scheduledAt"`
	HomeScore    int       `json:"homeScore"`
	AwayScore    int       `json:"awayScore"`
	Status       string    `json:"status"`
}

type statisticRequest struct {
	PlayerID      string `json:"playerId" binding:"required,uuid"`
	MatchID       string `json:"matchId" binding:"required,uuid"`
	Goals         int    `json:"goals"`
	Assists       int    `json:"assists"`
	YellowCards   int    `json:"yellowCards"`
	RedCards      int    `json:"redCards"`
	MinutesPlayed int    `json:"minutesPlayed"`
}

type transactionRequest struct {
	TeamID      string    `json:"teamId" binding:"required,uuid"`
	Kind        string    `json:"kind" binding:"required"`
	AmountCents int64     `json:"amountCents" binding:"required"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurredAt"`
}

type broadcastRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

type notificationListResponse struct {
	Items      []models.Notification `json:"items"`
	NextCursor string                `json:"nextCursor,omitempty"`
}
