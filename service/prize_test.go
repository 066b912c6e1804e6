package service

import (
	"testing"
	"time"

	"demoday/app_error"
	"demoday/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trackEvent() *repository.Event {
	return &repository.Event{
		Id:     7,
		Tracks: []string{"ai", "web"},
		Categories: []*repository.JudgingCategory{
			{Name: "Innovation"},
			{Name: "Design"},
		},
	}
}

func TestValidatePrize(t *testing.T) {
	event := trackEvent()

	prize, err := ValidatePrize(PrizeInput{Name: "  Best Overall ", Track: "ai", SponsorName: "Acme", Categories: []string{"Design"}}, event)
	require.NoError(t, err)
	assert.Equal(t, "Best Overall", prize.Name)
	assert.Equal(t, repository.PrizeTypeGeneral, prize.Type)
	assert.Equal(t, repository.ScoreBasisOverall, prize.ScoreBasis)
	assert.Empty(t, prize.Track, "track does not apply to general prizes")
	assert.Empty(t, prize.SponsorName)
	assert.Empty(t, prize.Categories)

	prize, err = ValidatePrize(PrizeInput{Name: "Best AI", Type: repository.PrizeTypeTrackSponsor, Track: "ai", SponsorName: "Acme"}, event)
	require.NoError(t, err)
	assert.Equal(t, "ai", prize.Track)
	assert.Equal(t, "Acme", prize.SponsorName)

	prize, err = ValidatePrize(PrizeInput{Name: "Prettiest", ScoreBasis: repository.ScoreBasisCategories, Categories: []string{"Design", " Design "}}, event)
	require.NoError(t, err)
	assert.Equal(t, []string{"Design"}, []string(prize.Categories))

	invalid := []PrizeInput{
		{Name: " "},
		{Name: "x", Type: "raffle"},
		{Name: "x", ScoreBasis: "vibes"},
		{Name: "x", Type: repository.PrizeTypeTrack},
		{Name: "x", Type: repository.PrizeTypeTrack, Track: "hardware"},
		{Name: "x", Type: repository.PrizeTypeSponsor},
		{Name: "x", ScoreBasis: repository.ScoreBasisCategories},
		{Name: "x", ScoreBasis: repository.ScoreBasisCategories, Categories: []string{"Speed"}},
	}
	for _, input := range invalid {
		_, err := ValidatePrize(input, event)
		assert.ErrorIs(t, err, app_error.ErrInvalidPrizeConfig, "input %+v", input)
	}
}

func TestTrackPrizeWithoutEventTracks(t *testing.T) {
	prize, err := ValidatePrize(PrizeInput{Name: "Hardware", Type: repository.PrizeTypeTrack, Track: "hardware"}, &repository.Event{})
	require.NoError(t, err)
	assert.Equal(t, "hardware", prize.Track)
}

func TestIsEligible(t *testing.T) {
	general := &repository.Prize{Type: repository.PrizeTypeGeneral, Active: true}
	sponsor := &repository.Prize{Type: repository.PrizeTypeSponsor, SponsorName: "Acme", Active: true}
	aiTrack := &repository.Prize{Type: repository.PrizeTypeTrack, Track: "ai", Active: true}
	inactive := &repository.Prize{Type: repository.PrizeTypeGeneral}

	ai := &repository.Team{Track: "ai"}
	none := &repository.Team{Track: ""}

	assert.True(t, IsEligible(ai, general))
	assert.True(t, IsEligible(none, sponsor))
	assert.True(t, IsEligible(ai, aiTrack))
	assert.False(t, IsEligible(none, aiTrack))
	assert.False(t, IsEligible(&repository.Team{Track: "web"}, aiTrack))
	assert.False(t, IsEligible(ai, inactive))
}

func TestSavePrizesReplacesList(t *testing.T) {
	defer TearDown()
	event, _ := SetUp(t)
	prizes := NewPrizeService(db, NewNoopNotifier())
	submissions := NewPrizeSubmissionService(db, NewNoopNotifier())
	winners := NewWinnerService(db, NewNoopNotifier())
	rocket := teamByName(event, "Rocket")

	_, err := prizes.SavePrizes(visitor, event.Id, []PrizeInput{{Name: "Best Overall", Active: true}})
	assert.ErrorIs(t, err, app_error.ErrNotAuthorized)

	saved, err := prizes.SavePrizes(admin, event.Id, []PrizeInput{
		{Name: "Best Overall", Active: true, SortOrder: 1},
		{Name: "Best AI", Type: repository.PrizeTypeTrack, Track: "ai", Active: true, SortOrder: 2},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	overall, bestAI := saved[0], saved[1]

	_, err = submissions.SetForTeam(owner, event.Id, rocket.Id, []int{overall.Id, bestAI.Id})
	require.NoError(t, err)
	_, err = NewLockService(db, NewNoopNotifier()).Lock(admin, event.Id, "")
	require.NoError(t, err)
	_, err = winners.SetWinners(admin, event.Id, []WinnerInput{
		{PrizeId: overall.Id, TeamId: rocket.Id},
		{PrizeId: bestAI.Id, TeamId: rocket.Id},
	})
	require.NoError(t, err)

	renamed := "Grand Prize"
	saved, err = prizes.SavePrizes(admin, event.Id, []PrizeInput{
		{Id: &overall.Id, Name: renamed, Active: true, SortOrder: 1},
		{Name: "Sponsor Pick", Type: repository.PrizeTypeSponsor, SponsorName: "Acme", Active: true, SortOrder: 3},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, overall.Id, saved[0].Id)
	assert.Equal(t, renamed, saved[0].Name)
	assert.Equal(t, "Sponsor Pick", saved[1].Name)

	remaining, err := submissions.GetForTeam(event.Id, rocket.Id)
	require.NoError(t, err)
	require.Len(t, remaining, 1, "submissions of removed prizes are gone")
	assert.Equal(t, overall.Id, remaining[0].PrizeId)
	remainingWinners, err := winners.GetWinners(event.Id)
	require.NoError(t, err)
	require.Len(t, remainingWinners, 1, "winners of removed prizes are gone")
	assert.Equal(t, overall.Id, remainingWinners[0].PrizeId)

	foreign := 999999
	_, err = prizes.SavePrizes(admin, event.Id, []PrizeInput{{Id: &foreign, Name: "x"}})
	assert.ErrorIs(t, err, app_error.ErrInvalidReference)
}

func TestPrizeSubmissions(t *testing.T) {
	defer TearDown()
	event, _ := SetUp(t)
	prizes := NewPrizeService(db, NewNoopNotifier())
	submissions := NewPrizeSubmissionService(db, NewNoopNotifier())
	rocket := teamByName(event, "Rocket")
	comet := teamByName(event, "Comet")

	saved, err := prizes.SavePrizes(admin, event.Id, []PrizeInput{
		{Name: "Best Overall", Active: true},
		{Name: "Best AI", Type: repository.PrizeTypeTrack, Track: "ai", Active: true},
		{Name: "Retired", Active: false},
	})
	require.NoError(t, err)
	byName := map[string]*repository.Prize{}
	for _, prize := range saved {
		byName[prize.Name] = prize
	}

	_, err = submissions.SetForTeam(visitor, event.Id, rocket.Id, []int{byName["Best Overall"].Id})
	assert.ErrorIs(t, err, app_error.ErrNotAuthorized)

	_, err = submissions.AdminSetForTeam(admin, event.Id, comet.Id, []int{byName["Best AI"].Id})
	assert.ErrorIs(t, err, app_error.ErrIneligibleSelection, "comet has no track")
	_, err = submissions.SetForTeam(owner, event.Id, rocket.Id, []int{byName["Retired"].Id})
	assert.ErrorIs(t, err, app_error.ErrIneligibleSelection)

	first, err := submissions.SetForTeam(owner, event.Id, rocket.Id, []int{byName["Best Overall"].Id, byName["Best Overall"].Id})
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := submissions.SetForTeam(owner, event.Id, rocket.Id, []int{byName["Best Overall"].Id, byName["Best AI"].Id})
	require.NoError(t, err)
	require.Len(t, second, 2)
	for _, submission := range second {
		if submission.PrizeId == byName["Best Overall"].Id {
			assert.Equal(t, first[0].Id, submission.Id, "retained submission keeps its row")
		}
	}

	submissions.now = func() time.Time { return event.EndTime.Add(time.Minute) }
	_, err = submissions.SetForTeam(owner, event.Id, rocket.Id, []int{})
	assert.ErrorIs(t, err, app_error.ErrSubmissionClosed)
	_, err = submissions.SetForTeam(admin, event.Id, rocket.Id, []int{})
	assert.ErrorIs(t, err, app_error.ErrSubmissionClosed, "the owner path applies the window to admins too")

	cleared, err := submissions.AdminSetForTeam(admin, event.Id, rocket.Id, []int{})
	require.NoError(t, err)
	assert.Empty(t, cleared)
}
