package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"

	"prosports-server/internal/models"
)

// TeamRepository persists teams.
type TeamRepository interface {
	CreateTeam(ctx context.Context, team *models.Team) error
	GetTeamByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	UpdateTeam(ctx context.Context, team *models.Team) error
	DeleteTeam(ctx context.Context, id uuid.UUID) error
}

// PlayerRepository persists players.
type PlayerRepository interface {
	CreatePlayer(ctx context.Context, player *models.Player) error
	GetPlayerByID(ctx context.Context, id uuid.UUID) (*models.Player, error)
	ListPlayers(ctx context.Context, teamID *uuid.UUID) ([]models.Player, error)
	UpdatePlayer(ctx context.Context, player *models.Player) error
	DeletePlayer(ctx context.Context, id uuid.UUID) error
}

// TournamentRepository persists tournaments.
type TournamentRepository interface {
	CreateTournament(ctx context.Context, t *models.Tournament) error
	GetTournamentByID(ctx context.Context, id uuid.UUID) (*models.Tournament, error)
	ListTournaments(ctx context.Context) ([]models.Tournament, error)
	UpdateTournament(ctx context.Context, t *models.Tournament) error
	DeleteTournament(ctx context.Context, id uuid.UUID) error
}

// MatchRepository persists matches.
type MatchRepository interface {
	CreateMatch(ctx context.Context, m *models.Match) error
	GetMatchByID(ctx context.Context, id uuid.UUID) (*models.Match, error)
	ListMatches(ctx context.Context, tournamentID *uuid.UUID) ([]models.Match, error)
	UpdateMatch(ctx context.Context, m *models.Match) error
	DeleteMatch(ctx context.Context, id uuid.UUID) error
}

// StatisticRepository persists per-match player statistics.
type StatisticRepository interface {
	CreateStatistic(ctx context.Context, s *models.PlayerStatistic) error
	GetStatisticByID(ctx context.Context, id uuid.UUID) (*models.PlayerStatistic, error)
	ListStatisticsByPlayer(ctx context.Context, playerID uuid.UUID) ([]models.PlayerStatistic, error)
	ListStatisticsByMatch(ctx context.Context, matchID uuid.UUID) ([]models.PlayerStatistic, error)
	DeleteStatistic(ctx context.Context, id uuid.UUID) error
}

// TransactionRepository persists financial transactions.
type TransactionRepository interface {
	CreateTransaction(ctx context.Context, t *models.Transaction) error
	GetTransactionByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	ListTransactionsByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Transaction, error)
	SummarizeTeam(ctx context.Context, teamID uuid.UUID) (*models.FinanceSummary, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

// NotificationRepository persists notifications for offline retrieval.
// Listing is cursor-paginated over (created_at, id) descending.
type NotificationRepository interface {
	CreateNotification(ctx context.Context, n *models.Notification) error
	ListNotificationsForUser(ctx context.Context, userID uuid.UUID, before time.Time, beforeID uuid.UUID, limit int) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}
