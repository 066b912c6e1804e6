package controller

import (
	"time"

	"demoday/app_error"
	"demoday/service"
	"demoday/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DeliberationController struct {
	deliberationService *service.DeliberationService
}

func NewDeliberationController(db *gorm.DB) *DeliberationController {
	return &DeliberationController{deliberationService: service.NewDeliberationService(db)}
}

func setupDeliberationController(db *gorm.DB) []RouteInfo {
	e := NewDeliberationController(db)
	return []RouteInfo{
		{Method: "GET", Path: "/events/:event_id/deliberation", HandlerFunc: e.getDeliberationHandler(), Authenticated: true},
	}
}

// @id GetDeliberation
// @Description Shows each active prize with its eligible candidates ranked by average score. Returns null for non-admins and appreciation-only events.
// @Security BearerAuth
// @Tags deliberation
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 200 {object} DeliberationResponse
// @Router /events/{event_id}/deliberation [get]
func (e *DeliberationController) getDeliberationHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := getEventId(c)
		if !ok {
			return
		}
		view, err := e.deliberationService.BuildView(getCaller(c), eventId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		if view == nil {
			c.JSON(200, nil)
			return
		}
		c.JSON(200, toDeliberationResponse(view))
	}
}

type CandidateResponse struct {
	TeamId       int       `json:"team_id" binding:"required"`
	TeamName     string    `json:"team_name" binding:"required"`
	Track        string    `json:"track"`
	AverageScore float64   `json:"average_score" binding:"required"`
	JudgeCount   int       `json:"judge_count" binding:"required"`
	BasisScore   *float64  `json:"basis_score"`
	SubmittedAt  time.Time `json:"submitted_at" binding:"required"`
	IsWinner     bool      `json:"is_winner"`
}

type PrizeDeliberationResponse struct {
	Prize      *PrizeResponse       `json:"prize" binding:"required"`
	Candidates []*CandidateResponse `json:"candidates" binding:"required"`
}

type DeliberationResponse struct {
	EventId int                          `json:"event_id" binding:"required"`
	Locked  bool                         `json:"locked"`
	Prizes  []*PrizeDeliberationResponse `json:"prizes" binding:"required"`
}

func toCandidateResponse(candidate *service.Candidate) *CandidateResponse {
	return &CandidateResponse{
		TeamId:       candidate.TeamId,
		TeamName:     candidate.TeamName,
		Track:        candidate.Track,
		AverageScore: candidate.AverageScore,
		JudgeCount:   candidate.JudgeCount,
		BasisScore:   candidate.BasisScore,
		SubmittedAt:  candidate.SubmittedAt,
		IsWinner:     candidate.IsWinner,
	}
}

func toDeliberationResponse(view *service.DeliberationView) *DeliberationResponse {
	return &DeliberationResponse{
		EventId: view.EventId,
		Locked:  view.Locked,
		Prizes: utils.Map(view.Prizes, func(p *service.PrizeDeliberation) *PrizeDeliberationResponse {
			return &PrizeDeliberationResponse{
				Prize:      toPrizeResponse(p.Prize),
				Candidates: utils.Map(p.Candidates, toCandidateResponse),
			}
		}),
	}
}
