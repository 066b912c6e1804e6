package service

import (
	"testing"
	"time"

	"demoday/app_error"
	"demoday/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetWinners(t *testing.T) {
	defer TearDown()
	event, _ := SetUp(t)
	prizes := NewPrizeService(db, NewNoopNotifier())
	submissions := NewPrizeSubmissionService(db, NewNoopNotifier())
	winners := NewWinnerService(db, NewNoopNotifier())
	locks := NewLockService(db, NewNoopNotifier())
	rocket := teamByName(event, "Rocket")
	falcon := teamByName(event, "Falcon")

	saved, err := prizes.SavePrizes(admin, event.Id, []PrizeInput{{Name: "Best Overall", Active: true}})
	require.NoError(t, err)
	prize := saved[0]
	_, err = submissions.SetForTeam(owner, event.Id, rocket.Id, []int{prize.Id})
	require.NoError(t, err)

	first := 1
	_, err = winners.SetWinners(admin, event.Id, []WinnerInput{{PrizeId: prize.Id, TeamId: rocket.Id, Placement: &first}})
	assert.ErrorIs(t, err, app_error.ErrScoringNotLocked)

	_, err = locks.Lock(admin, event.Id, "")
	require.NoError(t, err)

	_, err = winners.SetWinners(visitor, event.Id, nil)
	assert.ErrorIs(t, err, app_error.ErrNotAuthorized)
	_, err = winners.SetWinners(admin, event.Id, []WinnerInput{{PrizeId: prize.Id, TeamId: falcon.Id}})
	assert.ErrorIs(t, err, app_error.ErrNotASubmittedCandidate)
	_, err = winners.SetWinners(admin, event.Id, []WinnerInput{{PrizeId: 999999, TeamId: rocket.Id}})
	assert.ErrorIs(t, err, app_error.ErrInvalidReference)
	zero := 0
	_, err = winners.SetWinners(admin, event.Id, []WinnerInput{{PrizeId: prize.Id, TeamId: rocket.Id, Placement: &zero}})
	assert.ErrorIs(t, err, app_error.ErrInvalidInput)

	notes := "  unanimous "
	set, err := winners.SetWinners(admin, event.Id, []WinnerInput{{PrizeId: prize.Id, TeamId: rocket.Id, Placement: &first, Notes: &notes}})
	require.NoError(t, err)
	require.Len(t, set, 1)
	assert.Equal(t, admin.UserId, set[0].SetBy)
	require.NotNil(t, set[0].Notes)
	assert.Equal(t, "unanimous", *set[0].Notes)

	set, err = winners.SetWinners(admin, event.Id, []WinnerInput{{PrizeId: prize.Id, TeamId: rocket.Id}})
	require.NoError(t, err)
	require.Len(t, set, 1)
	assert.Nil(t, set[0].Placement, "retained winner takes the new values")

	set, err = winners.SetWinners(admin, event.Id, []WinnerInput{})
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestDeliberationView(t *testing.T) {
	defer TearDown()
	event, judges := SetUp(t)
	prizes := NewPrizeService(db, NewNoopNotifier())
	submissions := NewPrizeSubmissionService(db, NewNoopNotifier())
	scores := NewScoreService(db, NewNoopNotifier())
	deliberation := NewDeliberationService(db)
	rocket := teamByName(event, "Rocket")
	falcon := teamByName(event, "Falcon")

	saved, err := prizes.SavePrizes(admin, event.Id, []PrizeInput{
		{Name: "Zeta", Active: true, SortOrder: 1},
		{Name: "Alpha", ScoreBasis: repository.ScoreBasisCategories, Categories: []string{"Design"}, Active: true, SortOrder: 1},
		{Name: "Hidden", Active: false, SortOrder: 0},
	})
	require.NoError(t, err)
	ids := map[string]int{}
	for _, prize := range saved {
		ids[prize.Name] = prize.Id
	}
	_, err = submissions.AdminSetForTeam(admin, event.Id, rocket.Id, []int{ids["Zeta"], ids["Alpha"]})
	require.NoError(t, err)
	_, err = submissions.AdminSetForTeam(admin, event.Id, falcon.Id, []int{ids["Zeta"]})
	require.NoError(t, err)

	submit := func(judge *repository.Judge, team *repository.Team, innovation float64, design float64) {
		_, err := scores.SubmitScore(event.Id, judge.Id, team.Id, []repository.CategoryScore{
			{Category: "Innovation", RawScore: value(innovation)},
			{Category: "Design", RawScore: value(design)},
		})
		require.NoError(t, err)
	}
	submit(judges[0], rocket, 5, 5)
	submit(judges[1], rocket, 7, 7)
	submit(judges[0], falcon, 9, 9)

	view, err := deliberation.BuildView(visitor, event.Id)
	require.NoError(t, err)
	assert.Nil(t, view)

	view, err = deliberation.BuildView(admin, event.Id)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.False(t, view.Locked)
	require.Len(t, view.Prizes, 2, "inactive prizes are left out")
	assert.Equal(t, "Alpha", view.Prizes[0].Prize.Name)
	assert.Equal(t, "Zeta", view.Prizes[1].Prize.Name)

	alpha := view.Prizes[0].Candidates
	require.Len(t, alpha, 1)
	require.NotNil(t, alpha[0].BasisScore)
	assert.InDelta(t, 6.0, *alpha[0].BasisScore, 1e-9)

	zeta := view.Prizes[1].Candidates
	require.Len(t, zeta, 2)
	assert.Equal(t, falcon.Id, zeta[0].TeamId)
	assert.InDelta(t, 27.0, zeta[0].AverageScore, 1e-9)
	assert.Equal(t, 1, zeta[0].JudgeCount)
	assert.Equal(t, rocket.Id, zeta[1].TeamId)
	assert.InDelta(t, 18.0, zeta[1].AverageScore, 1e-9)
	assert.Equal(t, 2, zeta[1].JudgeCount)
}

func TestBuildDeliberationViewDropsIneligibleCandidates(t *testing.T) {
	event := &repository.Event{Id: 1}
	prize := &repository.Prize{Id: 1, Name: "Best AI", Type: repository.PrizeTypeTrack, Track: "ai", Active: true}
	teams := []*repository.Team{
		{Id: 1, Name: "Rocket", Track: "ai"},
		{Id: 2, Name: "Falcon", Track: "web"},
		{Id: 3, Name: "Comet", Track: "ai"},
	}
	now := time.Now()
	submissions := []*repository.PrizeSubmission{
		{PrizeId: 1, TeamId: 1, SubmittedAt: now},
		{PrizeId: 1, TeamId: 2, SubmittedAt: now},
		{PrizeId: 1, TeamId: 3, SubmittedAt: now},
	}
	winners := []*repository.PrizeWinner{{PrizeId: 1, TeamId: 3}}

	view := buildDeliberationView(event, []*repository.Prize{prize}, teams, submissions, nil, winners)
	require.Len(t, view.Prizes, 1)
	candidates := view.Prizes[0].Candidates
	require.Len(t, candidates, 2, "falcon moved to another track")
	assert.Equal(t, "Comet", candidates[0].TeamName, "equal averages order by name")
	assert.True(t, candidates[0].IsWinner)
	assert.Equal(t, "Rocket", candidates[1].TeamName)
	assert.Equal(t, 0, candidates[1].JudgeCount)
}

func TestDeleteTeamAndEvent(t *testing.T) {
	defer TearDown()
	event, judges := SetUp(t)
	scores := NewScoreService(db, NewNoopNotifier())
	rocket := teamByName(event, "Rocket")
	_, err := scores.SubmitScore(event.Id, judges[0].Id, rocket.Id, []repository.CategoryScore{{Category: "Innovation", RawScore: value(5)}})
	require.NoError(t, err)

	teams := NewTeamService(db)
	assert.ErrorIs(t, teams.DeleteTeam(visitor, event.Id, rocket.Id), app_error.ErrNotAuthorized)
	require.NoError(t, teams.DeleteTeam(owner, event.Id, rocket.Id))
	remaining, err := scores.GetForJudge(event.Id, judges[0].Id)
	require.NoError(t, err)
	assert.Empty(t, remaining)
	_, err = scores.GetForTeam(event.Id, rocket.Id)
	assert.ErrorIs(t, err, app_error.ErrInvalidReference)

	events := NewEventService(db)
	assert.ErrorIs(t, events.DeleteEvent(owner, event.Id), app_error.ErrNotAuthorized)
	require.NoError(t, events.DeleteEvent(admin, event.Id))
	_, err = events.GetEventById(event.Id)
	assert.ErrorIs(t, err, app_error.ErrNotFound)
}
