package service

import (
	"testing"

	"demoday/app_error"
	"demoday/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJudgeRegistration(t *testing.T) {
	defer TearDown()
	event, judges := SetUp(t)
	service := NewJudgeService(db)

	again, err := service.Register(judgeA, event.Id)
	require.NoError(t, err)
	assert.Equal(t, judges[0].Id, again.Id, "registering twice keeps the membership")

	_, err = service.RequireJudgeMembership(visitor, event.Id)
	assert.ErrorIs(t, err, app_error.ErrNotAJudge)

	_, err = service.SeedJudges(visitor, event.Id, []int{20})
	assert.ErrorIs(t, err, app_error.ErrNotAuthorized)

	created, err := service.SeedJudges(admin, event.Id, []int{judgeA.UserId, 20, 20, 21})
	require.NoError(t, err)
	assert.Equal(t, 2, created)
}

func TestAssignIsIdempotent(t *testing.T) {
	defer TearDown()
	event, judges := SetUp(t)
	service := NewAssignmentService(db, NewNoopNotifier())
	rocket := teamByName(event, "Rocket")

	first, err := service.Assign(event.Id, judges[0].Id, rocket.Id)
	require.NoError(t, err)
	second, err := service.Assign(event.Id, judges[0].Id, rocket.Id)
	require.NoError(t, err)
	assert.Equal(t, first.Id, second.Id)

	assigned, err := service.ListAssigned(event.Id, judgeA.UserId)
	require.NoError(t, err)
	assert.Equal(t, []int{rocket.Id}, assigned)

	assigned, err = service.ListAssigned(event.Id, visitor.UserId)
	require.NoError(t, err)
	assert.Empty(t, assigned, "non judges see no assignments")
}

func TestAssignManySkipsForeignTeams(t *testing.T) {
	defer TearDown()
	event, judges := SetUp(t)
	service := NewAssignmentService(db, NewNoopNotifier())
	rocket := teamByName(event, "Rocket")
	falcon := teamByName(event, "Falcon")

	_, err := service.Assign(event.Id, judges[0].Id, rocket.Id)
	require.NoError(t, err)
	added, err := service.AssignMany(event.Id, judges[0].Id, []int{rocket.Id, falcon.Id, falcon.Id, 999999})
	require.NoError(t, err)
	assert.Equal(t, 1, added, "only falcon is new")

	_, err = service.Assign(event.Id, judges[0].Id, 999999)
	assert.ErrorIs(t, err, app_error.ErrInvalidReference)
	_, err = service.Assign(event.Id, 999999, rocket.Id)
	assert.ErrorIs(t, err, app_error.ErrInvalidReference)
}

func TestUnassignRemovesScore(t *testing.T) {
	defer TearDown()
	event, judges := SetUp(t)
	assignments := NewAssignmentService(db, NewNoopNotifier())
	scores := NewScoreService(db, NewNoopNotifier())
	rocket := teamByName(event, "Rocket")

	_, err := assignments.Assign(event.Id, judges[0].Id, rocket.Id)
	require.NoError(t, err)
	_, err = scores.SubmitScore(event.Id, judges[0].Id, rocket.Id, []repository.CategoryScore{
		{Category: "Innovation", RawScore: value(8)},
		{Category: "Design", RawScore: value(5)},
	})
	require.NoError(t, err)

	require.NoError(t, assignments.Unassign(event.Id, judges[0].Id, rocket.Id))
	teamScores, err := scores.GetForTeam(event.Id, rocket.Id)
	require.NoError(t, err)
	assert.Empty(t, teamScores)

	_, err = scores.GetForTeam(event.Id+1, rocket.Id)
	assert.ErrorIs(t, err, app_error.ErrInvalidReference, "a team is only read through its own event")
}

func TestLockGatesWritesButNotReads(t *testing.T) {
	defer TearDown()
	event, judges := SetUp(t)
	locks := NewLockService(db, NewNoopNotifier())
	assignments := NewAssignmentService(db, NewNoopNotifier())
	scores := NewScoreService(db, NewNoopNotifier())
	rocket := teamByName(event, "Rocket")
	falcon := teamByName(event, "Falcon")

	_, err := assignments.Assign(event.Id, judges[0].Id, rocket.Id)
	require.NoError(t, err)
	_, err = scores.SubmitScore(event.Id, judges[0].Id, rocket.Id, []repository.CategoryScore{{Category: "Innovation", RawScore: value(6)}})
	require.NoError(t, err)

	_, err = locks.Lock(visitor, event.Id, "final")
	assert.ErrorIs(t, err, app_error.ErrNotAuthorized)

	lock, err := locks.Lock(admin, event.Id, "  deliberation  ")
	require.NoError(t, err)
	assert.True(t, lock.Locked)
	require.NotNil(t, lock.Reason)
	assert.Equal(t, "deliberation", *lock.Reason)

	again, err := locks.Lock(admin, event.Id, "other")
	require.NoError(t, err)
	assert.Equal(t, "deliberation", *again.Reason, "relocking keeps the original lock")

	_, err = scores.SubmitScore(event.Id, judges[0].Id, falcon.Id, []repository.CategoryScore{{Category: "Innovation", RawScore: value(6)}})
	assert.ErrorIs(t, err, app_error.ErrLocked)
	_, err = assignments.Assign(event.Id, judges[0].Id, falcon.Id)
	assert.ErrorIs(t, err, app_error.ErrLocked)
	assert.ErrorIs(t, assignments.Unassign(event.Id, judges[0].Id, rocket.Id), app_error.ErrLocked)

	stored, err := scores.GetForJudge(event.Id, judges[0].Id)
	require.NoError(t, err)
	assert.Len(t, stored, 1, "reads still work while locked")
	assigned, err := assignments.ListAssigned(event.Id, judgeA.UserId)
	require.NoError(t, err)
	assert.Equal(t, []int{rocket.Id}, assigned)

	unlocked, err := locks.Unlock(admin, event.Id)
	require.NoError(t, err)
	assert.False(t, unlocked.Locked)
	assert.Nil(t, unlocked.LockedAt)
	_, err = scores.SubmitScore(event.Id, judges[0].Id, falcon.Id, []repository.CategoryScore{{Category: "Innovation", RawScore: value(6)}})
	assert.NoError(t, err)
}

func TestScoreResubmissionReplaces(t *testing.T) {
	defer TearDown()
	event, judges := SetUp(t)
	scores := NewScoreService(db, NewNoopNotifier())
	rocket := teamByName(event, "Rocket")

	first, err := scores.SubmitScore(event.Id, judges[0].Id, rocket.Id, []repository.CategoryScore{
		{Category: "Innovation", RawScore: value(8)},
		{Category: "Design", OptedOut: true},
	})
	require.NoError(t, err)
	assert.InDelta(t, 24.0, first.TotalScore, 1e-9)

	second, err := scores.SubmitScore(event.Id, judges[0].Id, rocket.Id, []repository.CategoryScore{
		{Category: "Innovation", RawScore: value(6)},
		{Category: "Design", RawScore: value(9)},
	})
	require.NoError(t, err)
	assert.InDelta(t, 21.0, second.TotalScore, 1e-9)
	assert.Equal(t, first.Id, second.Id, "a resubmission keeps the score identity")
	assert.True(t, second.SubmittedAt.After(first.SubmittedAt))

	stored, err := scores.GetForTeam(event.Id, rocket.Id)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.InDelta(t, 21.0, stored[0].TotalScore, 1e-9)
	assert.Equal(t, first.Id, stored[0].Id)
}

func TestMandatoryCategoryCannotBeSkipped(t *testing.T) {
	defer TearDown()
	event, judges := SetUp(t)
	scores := NewScoreService(db, NewNoopNotifier())
	rocket := teamByName(event, "Rocket")

	_, err := scores.SubmitScore(event.Id, judges[0].Id, rocket.Id, []repository.CategoryScore{
		{Category: "Innovation", OptedOut: true},
		{Category: "Design", RawScore: value(5)},
	})
	assert.ErrorIs(t, err, app_error.ErrInvalidInput)

	score, err := scores.SubmitScore(event.Id, judges[0].Id, rocket.Id, []repository.CategoryScore{
		{Category: "Innovation", RawScore: value(8), OptedOut: true},
		{Category: "Design", RawScore: value(5)},
	})
	require.NoError(t, err)
	assert.False(t, score.Categories[0].OptedOut, "opt-out on a mandatory category is cleared")
	assert.InDelta(t, 21.0, score.TotalScore, 1e-9)
}

func TestBatchScoresAreAllOrNothing(t *testing.T) {
	defer TearDown()
	event, judges := SetUp(t)
	scores := NewScoreService(db, NewNoopNotifier())
	rocket := teamByName(event, "Rocket")
	falcon := teamByName(event, "Falcon")
	entry := []repository.CategoryScore{{Category: "Innovation", RawScore: value(7)}}

	_, err := scores.SubmitBatch(event.Id, judges[1].Id, []BatchScoreEntry{
		{TeamId: rocket.Id, Categories: entry},
		{TeamId: 999999, Categories: entry},
	})
	assert.ErrorIs(t, err, app_error.ErrInvalidReference)
	stored, err := scores.GetForJudge(event.Id, judges[1].Id)
	require.NoError(t, err)
	assert.Empty(t, stored)

	saved, err := scores.SubmitBatch(event.Id, judges[1].Id, []BatchScoreEntry{
		{TeamId: rocket.Id, Categories: entry},
		{TeamId: falcon.Id, Categories: entry},
	})
	require.NoError(t, err)
	assert.Len(t, saved, 2)
}

func TestAppreciationOnlyRejectsJudging(t *testing.T) {
	defer TearDown()
	event := &repository.Event{
		Name:  "Showcase",
		Mode:  repository.EventModeAppreciationOnly,
		Teams: []*repository.Team{{Name: "Rocket", OwnerId: owner.UserId}},
	}
	require.NoError(t, db.Create(event).Error)

	_, err := NewJudgeService(db).Register(judgeA, event.Id)
	assert.ErrorIs(t, err, app_error.ErrUnsupportedForMode)
	_, err = NewLockService(db, NewNoopNotifier()).Lock(admin, event.Id, "")
	assert.ErrorIs(t, err, app_error.ErrUnsupportedForMode)

	_, err = NewPrizeService(db, NewNoopNotifier()).SavePrizes(admin, event.Id, []PrizeInput{{Name: "Crowd Favourite", Active: true}})
	assert.ErrorIs(t, err, app_error.ErrUnsupportedForMode)
	_, err = NewPrizeSubmissionService(db, NewNoopNotifier()).SetForTeam(owner, event.Id, event.Teams[0].Id, nil)
	assert.ErrorIs(t, err, app_error.ErrUnsupportedForMode)
	_, err = NewWinnerService(db, NewNoopNotifier()).SetWinners(admin, event.Id, nil)
	assert.ErrorIs(t, err, app_error.ErrUnsupportedForMode)

	view, err := NewDeliberationService(db).BuildView(admin, event.Id)
	require.NoError(t, err)
	assert.Nil(t, view)
}
