package service

import (
	"database/sql"
	"sort"
	"time"

	"demoday/auth"
	"demoday/metrics"
	"demoday/repository"
	"demoday/utils"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type Candidate struct {
	TeamId       int
	TeamName     string
	Track        string
	AverageScore float64
	JudgeCount   int
	// mean of the prize's selected categories, only for category based prizes
	BasisScore  *float64
	SubmittedAt time.Time
	IsWinner    bool
}

type PrizeDeliberation struct {
	Prize      *repository.Prize
	Candidates []*Candidate
}

type DeliberationView struct {
	EventId int
	Locked  bool
	Prizes  []*PrizeDeliberation
}

type teamAggregate struct {
	total      float64
	judgeCount int
	scores     []*repository.Score
}

type DeliberationService struct {
	db *gorm.DB
}

func NewDeliberationService(db *gorm.DB) *DeliberationService {
	return &DeliberationService{db: db}
}

// BuildView assembles the admin decision view. Non-admin callers and
// appreciation-only events get nil.
func (s *DeliberationService) BuildView(caller *auth.Caller, eventId int) (*DeliberationView, error) {
	if !caller.IsAdmin() {
		return nil, nil
	}
	timer := prometheus.NewTimer(metrics.DeliberationBuildDuration)
	defer timer.ObserveDuration()

	var view *DeliberationView
	err := s.db.Transaction(func(tx *gorm.DB) error {
		event, err := getEvent(tx, eventId)
		if err != nil {
			return err
		}
		if event.IsAppreciationOnly() {
			return nil
		}
		prizes, err := repository.NewPrizeRepository(tx).GetPrizesForEvent(eventId)
		if err != nil {
			return err
		}
		teams, err := repository.NewTeamRepository(tx).GetTeamsForEvent(eventId)
		if err != nil {
			return err
		}
		submissions, err := repository.NewPrizeSubmissionRepository(tx).GetSubmissionsForEvent(eventId)
		if err != nil {
			return err
		}
		scores, err := repository.NewScoreRepository(tx).GetScoresForEvent(eventId)
		if err != nil {
			return err
		}
		winners, err := repository.NewWinnerRepository(tx).GetWinnersForEvent(eventId)
		if err != nil {
			return err
		}
		view = buildDeliberationView(event, prizes, teams, submissions, scores, winners)
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func buildDeliberationView(
	event *repository.Event,
	prizes []*repository.Prize,
	teams []*repository.Team,
	submissions []*repository.PrizeSubmission,
	scores []*repository.Score,
	winners []*repository.PrizeWinner,
) *DeliberationView {
	teamById := utils.KeyBy(teams, func(t *repository.Team) int { return t.Id })
	submissionsByPrize := utils.GroupBy(submissions, func(s *repository.PrizeSubmission) int { return s.PrizeId })
	winnerKeys := make(map[prizeTeam]bool, len(winners))
	for _, winner := range winners {
		winnerKeys[winnerKey(winner)] = true
	}
	aggregates := make(map[int]*teamAggregate)
	for _, score := range scores {
		aggregate, ok := aggregates[score.TeamId]
		if !ok {
			aggregate = &teamAggregate{}
			aggregates[score.TeamId] = aggregate
		}
		aggregate.total += score.TotalScore
		aggregate.judgeCount++
		aggregate.scores = append(aggregate.scores, score)
	}

	active := utils.Filter(prizes, func(p *repository.Prize) bool { return p.Active })
	sort.SliceStable(active, func(i, j int) bool {
		if active[i].SortOrder != active[j].SortOrder {
			return active[i].SortOrder < active[j].SortOrder
		}
		return active[i].Name < active[j].Name
	})

	view := &DeliberationView{EventId: event.Id, Locked: event.IsLocked(), Prizes: make([]*PrizeDeliberation, 0, len(active))}
	for _, prize := range active {
		candidates := make([]*Candidate, 0)
		for _, submission := range submissionsByPrize[prize.Id] {
			team, ok := teamById[submission.TeamId]
			// eligibility is re-checked, a team may have changed track since submitting
			if !ok || !IsEligible(team, prize) {
				continue
			}
			candidate := &Candidate{
				TeamId:      team.Id,
				TeamName:    team.Name,
				Track:       team.Track,
				SubmittedAt: submission.SubmittedAt,
				IsWinner:    winnerKeys[prizeTeam{prizeId: prize.Id, teamId: team.Id}],
			}
			if aggregate, ok := aggregates[team.Id]; ok {
				candidate.AverageScore = aggregate.total / float64(aggregate.judgeCount)
				candidate.JudgeCount = aggregate.judgeCount
				if prize.ScoreBasis == repository.ScoreBasisCategories {
					candidate.BasisScore = categoryBasisScore(aggregate.scores, prize.Categories)
				}
			}
			candidates = append(candidates, candidate)
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			if candidates[i].AverageScore != candidates[j].AverageScore {
				return candidates[i].AverageScore > candidates[j].AverageScore
			}
			return candidates[i].TeamName < candidates[j].TeamName
		})
		view.Prizes = append(view.Prizes, &PrizeDeliberation{Prize: prize, Candidates: candidates})
	}
	return view
}

// categoryBasisScore averages, over judges, the mean raw score a judge gave
// the selected categories. Judges who scored none of them are left out.
func categoryBasisScore(scores []*repository.Score, categories []string) *float64 {
	sum := 0.0
	judges := 0
	for _, score := range scores {
		categorySum := 0.0
		count := 0
		for _, entry := range score.Categories {
			if entry.OptedOut || entry.RawScore == nil || !utils.Contains(categories, entry.Category) {
				continue
			}
			categorySum += *entry.RawScore
			count++
		}
		if count == 0 {
			continue
		}
		sum += categorySum / float64(count)
		judges++
	}
	if judges == 0 {
		return nil
	}
	result := sum / float64(judges)
	return &result
}
