package controller

import (
	"time"

	"demoday/app_error"
	"demoday/repository"
	"demoday/service"
	"demoday/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ScoreController struct {
	scoreService *service.ScoreService
	judgeService *service.JudgeService
}

func NewScoreController(db *gorm.DB, notifier *service.Notifier) *ScoreController {
	return &ScoreController{
		scoreService: service.NewScoreService(db, notifier),
		judgeService: service.NewJudgeService(db),
	}
}

func setupScoreController(db *gorm.DB, notifier *service.Notifier) []RouteInfo {
	e := NewScoreController(db, notifier)
	routes := []RouteInfo{
		{Method: "GET", Path: "/events/:event_id/scores/self", HandlerFunc: e.getOwnScoresHandler(), Authenticated: true},
		{Method: "PUT", Path: "/events/:event_id/scores", HandlerFunc: e.submitBatchHandler(), Authenticated: true},
		{Method: "PUT", Path: "/events/:event_id/scores/:team_id", HandlerFunc: e.submitScoreHandler(), Authenticated: true},
		{Method: "GET", Path: "/events/:event_id/teams/:team_id/scores", HandlerFunc: e.getTeamScoresHandler(), Authenticated: true},
	}
	return routes
}

// @id GetOwnScores
// @Description Lists all scores the calling judge submitted in the event
// @Security BearerAuth
// @Tags score
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 200 {array} ScoreResponse
// @Router /events/{event_id}/scores/self [get]
func (e *ScoreController) getOwnScoresHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := getEventId(c)
		if !ok {
			return
		}
		judge, ok := requireJudge(c, e.judgeService, eventId)
		if !ok {
			return
		}
		scores, err := e.scoreService.GetForJudge(eventId, judge.Id)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(scores, toScoreResponse))
	}
}

// @id SubmitScore
// @Description Creates or replaces the calling judge's score for a team
// @Security BearerAuth
// @Tags score
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param team_id path int true "Team Id"
// @Param body body ScoreRequest true "Category scores"
// @Success 200 {object} ScoreResponse
// @Router /events/{event_id}/scores/{team_id} [put]
func (e *ScoreController) submitScoreHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, teamId, ok := getEventAndTeamId(c)
		if !ok {
			return
		}
		var request ScoreRequest
		if !bindJSON(c, &request) {
			return
		}
		judge, ok := requireJudge(c, e.judgeService, eventId)
		if !ok {
			return
		}
		score, err := e.scoreService.SubmitScore(eventId, judge.Id, teamId, utils.Map(request.Categories, toCategoryScore))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toScoreResponse(score))
	}
}

// @id SubmitScores
// @Description Submits several scores of the calling judge at once. Nothing is written if any team is invalid.
// @Security BearerAuth
// @Tags score
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param body body BatchScoreRequest true "Scores per team"
// @Success 200 {array} ScoreResponse
// @Router /events/{event_id}/scores [put]
func (e *ScoreController) submitBatchHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := getEventId(c)
		if !ok {
			return
		}
		var request BatchScoreRequest
		if !bindJSON(c, &request) {
			return
		}
		judge, ok := requireJudge(c, e.judgeService, eventId)
		if !ok {
			return
		}
		entries := utils.Map(request.Entries, func(entry TeamScoreRequest) service.BatchScoreEntry {
			return service.BatchScoreEntry{TeamId: entry.TeamId, Categories: utils.Map(entry.Categories, toCategoryScore)}
		})
		scores, err := e.scoreService.SubmitBatch(eventId, judge.Id, entries)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(scores, toScoreResponse))
	}
}

// @id GetTeamScores
// @Description Lists every judge's score for a team
// @Security BearerAuth
// @Tags score
// @Produce json
// @Param event_id path int true "Event Id"
// @Param team_id path int true "Team Id"
// @Success 200 {array} ScoreResponse
// @Router /events/{event_id}/teams/{team_id}/scores [get]
func (e *ScoreController) getTeamScoresHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, teamId, ok := getEventAndTeamId(c)
		if !ok {
			return
		}
		scores, err := e.scoreService.GetForTeam(eventId, teamId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(scores, toScoreResponse))
	}
}

type CategoryScoreRequest struct {
	Category string   `json:"category" binding:"required"`
	Score    *float64 `json:"score"`
	OptedOut bool     `json:"opted_out"`
}

type ScoreRequest struct {
	Categories []CategoryScoreRequest `json:"categories" binding:"required,dive"`
}

type TeamScoreRequest struct {
	TeamId     int                    `json:"team_id" binding:"required"`
	Categories []CategoryScoreRequest `json:"categories" binding:"required,dive"`
}

type BatchScoreRequest struct {
	Entries []TeamScoreRequest `json:"entries" binding:"required,dive"`
}

type CategoryScoreResponse struct {
	Category string   `json:"category" binding:"required"`
	Score    *float64 `json:"score"`
	OptedOut bool     `json:"opted_out"`
}

type ScoreResponse struct {
	JudgeId     int                      `json:"judge_id" binding:"required"`
	TeamId      int                      `json:"team_id" binding:"required"`
	Categories  []*CategoryScoreResponse `json:"categories" binding:"required"`
	TotalScore  float64                  `json:"total_score" binding:"required"`
	SubmittedAt time.Time                `json:"submitted_at" binding:"required"`
}

func toCategoryScore(request CategoryScoreRequest) repository.CategoryScore {
	return repository.CategoryScore{Category: request.Category, RawScore: request.Score, OptedOut: request.OptedOut}
}

func toScoreResponse(score *repository.Score) *ScoreResponse {
	return &ScoreResponse{
		JudgeId: score.JudgeId,
		TeamId:  score.TeamId,
		Categories: utils.Map(score.Categories, func(c repository.CategoryScore) *CategoryScoreResponse {
			return &CategoryScoreResponse{Category: c.Category, Score: c.RawScore, OptedOut: c.OptedOut}
		}),
		TotalScore:  score.TotalScore,
		SubmittedAt: score.SubmittedAt,
	}
}
