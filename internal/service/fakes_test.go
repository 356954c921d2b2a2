package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"prosports-server/internal/models"
)

// In-memory fakes shared by the service tests in this package.

type fakeTeamRepo struct {
	teams map[uuid.UUID]*models.Team
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: make(map[uuid.UUID]*models.Team)}
}

func (f *fakeTeamRepo) add(name string) uuid.UUID {
	id := uuid.New()
	f.teams[id] = &models.Team{ID: id, Name: name}
	return id
}

func (f *fakeTeamRepo) CreateTeam(_ context.Context, team *models.Team) error {
	if team.ID == uuid.Nil {
		team.ID = uuid.New()
	}
	f.teams[team.ID] = team
	return nil
}

func (f *fakeTeamRepo) GetTeamByID(_ context.Context, id uuid.UUID) (*models.Team, error) {
	team, ok := f.teams[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return team, nil
}

func (f *fakeTeamRepo) ListTeams(_ context.Context) ([]models.Team, error) {
	teams := make([]models.Team, 0, len(f.teams))
	for _, t := range f.teams {
		teams = append(teams, *t)
	}
	return teams, nil
}

func (f *fakeTeamRepo) UpdateTeam(_ context.Context, team *models.Team) error {
	if _, ok := f.teams[team.ID]; !ok {
		return models.ErrNotFound
	}
	f.teams[team.ID] = team
	return nil
}

func (f *fakeTeamRepo) DeleteTeam(_ context.Context, id uuid.UUID) error {
	if _, ok := f.teams[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.teams, id)
	return nil
}

type fakeMatchRepo struct {
	matches map[uuid.UUID]*models.Match
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{matches: make(map[uuid.UUID]*models.Match)}
}

func (f *fakeMatchRepo) CreateMatch(_ context.Context, m *models.Match) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	stored := *m
	f.matches[m.ID] = &stored
	return nil
}

func (f *fakeMatchRepo) GetMatchByID(_ context.Context, id uuid.UUID) (*models.Match, error) {
	m, ok := f.matches[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *m
	return &copied, nil
}

func (f *fakeMatchRepo) ListMatches(_ context.Context, tournamentID *uuid.UUID) ([]models.Match, error) {
	matches := make([]models.Match, 0, len(f.matches))
	for _, m := range f.matches {
		if tournamentID != nil && (m.TournamentID == nil || *m.TournamentID != *tournamentID) {
			continue
		}
		matches = append(matches, *m)
	}
	return matches, nil
}

func (f *fakeMatchRepo) UpdateMatch(_ context.Context, m *models.Match) error {
	if _, ok := f.matches[m.ID]; !ok {
		return models.ErrNotFound
	}
	m.UpdatedAt = time.Now()
	stored := *m
	f.matches[m.ID] = &stored
	return nil
}

func (f *fakeMatchRepo) DeleteMatch(_ context.Context, id uuid.UUID) error {
	if _, ok := f.matches[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.matches, id)
	return nil
}

type fakeNotificationRepo struct {
	stored    []models.Notification
	lastLimit int
	failure   error
}

func (f *fakeNotificationRepo) CreateNotification(_ context.Context, n *models.Notification) error {
	if f.failure != nil {
		return f.failure
	}
	n.ID = uuid.New()
	n.CreatedAt = time.Now()
	f.stored = append(f.stored, *n)
	return nil
}

func (f *fakeNotificationRepo) ListNotificationsForUser(_ context.Context, userID uuid.UUID, before time.Time, beforeID uuid.UUID, limit int) ([]models.Notification, error) {
	f.lastLimit = limit
	var out []models.Notification
	for _, n := range f.stored {
		if n.UserID != nil && *n.UserID != userID {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, n)
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkNotificationRead(_ context.Context, id uuid.UUID, userID uuid.UUID) error {
	for i := range f.stored {
		n := &f.stored[i]
		if n.ID == id && n.UserID != nil && *n.UserID == userID {
			n.IsRead = true
			return nil
		}
	}
	return models.ErrNotFound
}

type fakePublisher struct {
	published []models.Notification
	failure   error
}

func (f *fakePublisher) Publish(_ context.Context, n *models.Notification) error {
	if f.failure != nil {
		return f.failure
	}
	f.published = append(f.published, *n)
	return nil
}

// fakeNotifier records broadcasts so tests can assert on the announcement
// side effects of domain services.
type fakeNotifier struct {
	broadcasts []models.Notification
	failure    error
}

func (f *fakeNotifier) NotifyUser(_ context.Context, userID uuid.UUID, notifType, title, body string) error {
	if f.failure != nil {
		return f.failure
	}
	f.broadcasts = append(f.broadcasts, models.Notification{UserID: &userID, Type: notifType, Title: title, Body: body})
	return nil
}

func (f *fakeNotifier) Broadcast(_ context.Context, notifType, title, body string) error {
	if f.failure != nil {
		return f.failure
	}
	f.broadcasts = append(f.broadcasts, models.Notification{Type: notifType, Title: title, Body: body})
	return nil
}

func (f *fakeNotifier) ListForUser(context.Context, uuid.UUID, string, int) ([]models.Notification, string, error) {
	return nil, "", nil
}

func (f *fakeNotifier) MarkRead(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}
