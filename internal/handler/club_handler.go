package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"prosports-server/internal/models"
	"prosports-server/internal/service"
)

// ClubHandler serves the club resource endpoints: teams, players,
// tournaments, matches, statistics, finances and notifications.
type ClubHandler struct {
	teams         service.TeamService
	players       service.PlayerService
	tournaments   service.TournamentService
	matches       service.MatchService
	statistics    service.StatisticService
	finances      service.FinanceService
	notifications service.NotificationService
}

func NewClubHandler(
	teams service.TeamService,
	players service.PlayerService,
	tournaments service.TournamentService,
	matches service.MatchService,
	statistics service.StatisticService,
	finances service.FinanceService,
	notifications service.NotificationService,
) *ClubHandler {
	return &ClubHandler{
		teams:         teams,
		players:       players,
		tournaments:   tournaments,
		matches:       matches,
		statistics:    statistics,
		finances:      finances,
		notifications: notifications,
	}
}

// RegisterRoutes mounts the resource endpoints. Reads need any valid
// session; mutations are restricted to ADMIN and MANAGER, except finances
// which are ADMIN-only.
func (h *ClubHandler) RegisterRoutes(api *gin.RouterGroup, authMW gin.HandlerFunc) {
	manage := RequireRoles(models.RoleAdmin, models.RoleManager)
	adminOnly := RequireRoles(models.RoleAdmin)

	teams := api.Group("/teams", authMW)
	{
		teams.GET("", h.listTeams)
		teams.GET("/:id", h.getTeam)
		teams.POST("", manage, h.createTeam)
		teams.PUT("/:id", manage, h.updateTeam)
		teams.DELETE("/:id", manage, h.deleteTeam)
	}

	players := api.Group("/players", authMW)
	{
		players.GET("", h.listPlayers)
		players.GET("/:id", h.getPlayer)
		players.POST("", manage, h.createPlayer)
		players.PUT("/:id", manage, h.updatePlayer)
		players.DELETE("/:id", manage, h.deletePlayer)
	}

	tournaments := api.Group("/tournaments", authMW)
	{
		tournaments.GET("", h.listTournaments)
		tournaments.GET("/:id", h.getTournament)
		tournaments.POST("", manage, h.createTournament)
		tournaments.PUT("/:id", manage, h.updateTournament)
		tournaments.DELETE("/:id", manage, h.deleteTournament)
	}

	matches := api.Group("/matches", authMW)
	{
		matches.GET("", h.listMatches)
		matches.GET("/:id", h.getMatch)
		matches.GET("/:id/statistics", h.listMatchStatistics)
		matches.POST("", manage, h.createMatch)
		matches.PUT("/:id", manage, h.updateMatch)
		matches.DELETE("/:id", manage, h.deleteMatch)
	}

	statistics := api.Group("/statistics", authMW)
	{
		statistics.GET("/:id", h.getStatistic)
		statistics.GET("/player/:playerId", h.listPlayerStatistics)
		statistics.POST("", manage, h.createStatistic)
		statistics.DELETE("/:id", manage, h.deleteStatistic)
	}

	transactions := api.Group("/transactions", authMW, adminOnly)
	{
		transactions.GET("/team/:teamId", h.listTransactions)
		transactions.GET("/team/:teamId/summary", h.getFinanceSummary)
		transactions.GET("/:id", h.getTransaction)
		transactions.POST("", h.createTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}

	notifications := api.Group("/notifications", authMW)
	{
		notifications.GET("", h.listNotifications)
		notifications.PUT("/:id/read", h.markNotificationRead)
		notifications.POST("/broadcast", adminOnly, h.broadcastNotification)
	}
}

// pathID parses a uuid path parameter, writing the 400 response itself when
// parsing fails.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "Invalid "+name+" parameter")
		return uuid.Nil, false
	}
	return id, true
}
