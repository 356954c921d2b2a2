package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"prosports-server/internal/models"
)

type matchFixture struct {
	svc      MatchService
	matches  *fakeMatchRepo
	teams    *fakeTeamRepo
	notifier *fakeNotifier
	homeID   uuid.UUID
	awayID   uuid.UUID
}

func newMatchFixture() *matchFixture {
	matches := newFakeMatchRepo()
	teams := newFakeTeamRepo()
	notifier := &fakeNotifier{}
	f := &matchFixture{
		svc:      NewMatchService(matches, teams, notifier, zap.NewNop()),
		matches:  matches,
		teams:    teams,
		notifier: notifier,
	}
	f.homeID = teams.add("FC North")
	f.awayID = teams.add("FC South")
	return f
}

func (f *matchFixture) newMatch() *models.Match {
	return &models.Match{
		HomeTeamID:  f.homeID,
		AwayTeamID:  f.awayID,
		ScheduledAt: time.Now().Add(24 * time.Hour),
	}
}

func TestMatchService_CreateDefaultsToScheduledAndAnnounces(t *testing.T) {
	f := newMatchFixture()
	m := f.newMatch()

	require.NoError(t, f.svc.CreateMatch(context.Background(), m))
	assert.Equal(t, models.MatchStatusScheduled, m.Status)
	assert.NotEqual(t, uuid.Nil, m.ID)

	require.Len(t, f.notifier.broadcasts, 1)
	announced := f.notifier.broadcasts[0]
	assert.Equal(t, models.NotificationMatchScheduled, announced.Type)
	assert.Nil(t, announced.UserID)
	assert.Equal(t, "FC North vs FC South", announced.Body)
}

func TestMatchService_CreateRejectsSelfPlay(t *testing.T) {
	f := newMatchFixture()
	m := f.newMatch()
	m.AwayTeamID = m.HomeTeamID

	err := f.svc.CreateMatch(context.Background(), m)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
	assert.Empty(t, f.notifier.broadcasts)
}

func TestMatchService_CreateRejectsUnknownTeam(t *testing.T) {
	f := newMatchFixture()
	m := f.newMatch()
	m.AwayTeamID = uuid.New()

	err := f.svc.CreateMatch(context.Background(), m)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestMatchService_CreateRejectsBadStatusAndScores(t *testing.T) {
	f := newMatchFixture()

	m := f.newMatch()
	m.Status = "POSTPONED_MAYBE"
	assert.ErrorIs(t, f.svc.CreateMatch(context.Background(), m), models.ErrInvalidInput)

	m = f.newMatch()
	m.HomeScore = -1
	assert.ErrorIs(t, f.svc.CreateMatch(context.Background(), m), models.ErrInvalidInput)
}

func TestMatchService_AnnouncementFailureDoesNotFailCreate(t *testing.T) {
	f := newMatchFixture()
	f.notifier.failure = errors.New("broker down")

	m := f.newMatch()
	assert.NoError(t, f.svc.CreateMatch(context.Background(), m))
	_, err := f.matches.GetMatchByID(context.Background(), m.ID)
	assert.NoError(t, err)
}

func TestMatchService_FinishingBroadcastsFinalScore(t *testing.T) {
	f := newMatchFixture()
	m := f.newMatch()
	require.NoError(t, f.svc.CreateMatch(context.Background(), m))
	f.notifier.broadcasts = nil

	m.Status = models.MatchStatusFinished
	m.HomeScore = 2
	m.AwayScore = 1
	require.NoError(t, f.svc.UpdateMatch(context.Background(), m))

	require.Len(t, f.notifier.broadcasts, 1)
	announced := f.notifier.broadcasts[0]
	assert.Equal(t, models.NotificationMatchResult, announced.Type)
	assert.Equal(t, "Full time", announced.Title)
	assert.Equal(t, "FC North vs FC South 2:1", announced.Body)
}

func TestMatchService_OnlyTheFinishingTransitionBroadcasts(t *testing.T) {
	f := newMatchFixture()
	m := f.newMatch()
	require.NoError(t, f.svc.CreateMatch(context.Background(), m))
	f.notifier.broadcasts = nil

	// SCHEDULED to LIVE is not a result.
	m.Status = models.MatchStatusLive
	require.NoError(t, f.svc.UpdateMatch(context.Background(), m))
	assert.Empty(t, f.notifier.broadcasts)

	m.Status = models.MatchStatusFinished
	require.NoError(t, f.svc.UpdateMatch(context.Background(), m))
	require.Len(t, f.notifier.broadcasts, 1)

	// Correcting an already finished match must not re-announce.
	f.notifier.broadcasts = nil
	m.HomeScore = 3
	require.NoError(t, f.svc.UpdateMatch(context.Background(), m))
	assert.Empty(t, f.notifier.broadcasts)
}

func TestMatchService_UpdateUnknownMatch(t *testing.T) {
	f := newMatchFixture()
	m := f.newMatch()
	m.ID = uuid.New()
	m.Status = models.MatchStatusScheduled

	err := f.svc.UpdateMatch(context.Background(), m)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMatchService_DeleteMatch(t *testing.T) {
	f := newMatchFixture()
	m := f.newMatch()
	require.NoError(t, f.svc.CreateMatch(context.Background(), m))

	require.NoError(t, f.svc.DeleteMatch(context.Background(), m.ID))
	_, err := f.svc.GetMatch(context.Background(), m.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.ErrorIs(t, f.svc.DeleteMatch(context.Background(), m.ID), models.ErrNotFound)
}
