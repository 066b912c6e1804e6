package controller

import (
	"time"

	"demoday/app_error"
	"demoday/auth"
	"demoday/repository"
	"demoday/service"
	"demoday/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PrizeSubmissionController struct {
	submissionService *service.PrizeSubmissionService
}

func NewPrizeSubmissionController(db *gorm.DB, notifier *service.Notifier) *PrizeSubmissionController {
	return &PrizeSubmissionController{submissionService: service.NewPrizeSubmissionService(db, notifier)}
}

func setupPrizeSubmissionController(db *gorm.DB, notifier *service.Notifier) []RouteInfo {
	e := NewPrizeSubmissionController(db, notifier)
	basePath := "/events/:event_id/teams/:team_id/prize-submissions"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getSubmissionsHandler(), Authenticated: true},
		{Method: "PUT", Path: "", HandlerFunc: e.setSubmissionsHandler(false), Authenticated: true},
		{Method: "PUT", Path: "/admin", HandlerFunc: e.setSubmissionsHandler(true), Authenticated: true, RequiredRoles: []string{auth.PermissionAdmin}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetPrizeSubmissions
// @Description Lists the prizes a team has entered
// @Security BearerAuth
// @Tags prize-submission
// @Produce json
// @Param event_id path int true "Event Id"
// @Param team_id path int true "Team Id"
// @Success 200 {array} PrizeSubmissionResponse
// @Router /events/{event_id}/teams/{team_id}/prize-submissions [get]
func (e *PrizeSubmissionController) getSubmissionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, teamId, ok := getEventAndTeamId(c)
		if !ok {
			return
		}
		submissions, err := e.submissionService.GetForTeam(eventId, teamId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(submissions, toPrizeSubmissionResponse))
	}
}

// @id SetPrizeSubmissions
// @Description Replaces the prizes a team has entered. The team owner may do so until the event ends, the admin variant ignores the deadline.
// @Security BearerAuth
// @Tags prize-submission
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param team_id path int true "Team Id"
// @Param body body PrizeSubmissionRequest true "Selected prizes"
// @Success 200 {array} PrizeSubmissionResponse
// @Router /events/{event_id}/teams/{team_id}/prize-submissions [put]
// @Router /events/{event_id}/teams/{team_id}/prize-submissions/admin [put]
func (e *PrizeSubmissionController) setSubmissionsHandler(adminDirect bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, teamId, ok := getEventAndTeamId(c)
		if !ok {
			return
		}
		var request PrizeSubmissionRequest
		if !bindJSON(c, &request) {
			return
		}
		set := e.submissionService.SetForTeam
		if adminDirect {
			set = e.submissionService.AdminSetForTeam
		}
		submissions, err := set(getCaller(c), eventId, teamId, request.PrizeIds)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(submissions, toPrizeSubmissionResponse))
	}
}

type PrizeSubmissionRequest struct {
	PrizeIds []int `json:"prize_ids" binding:"required"`
}

type PrizeSubmissionResponse struct {
	PrizeId     int       `json:"prize_id" binding:"required"`
	TeamId      int       `json:"team_id" binding:"required"`
	SubmittedBy int       `json:"submitted_by" binding:"required"`
	SubmittedAt time.Time `json:"submitted_at" binding:"required"`
}

func toPrizeSubmissionResponse(submission *repository.PrizeSubmission) *PrizeSubmissionResponse {
	return &PrizeSubmissionResponse{
		PrizeId:     submission.PrizeId,
		TeamId:      submission.TeamId,
		SubmittedBy: submission.SubmittedBy,
		SubmittedAt: submission.SubmittedAt,
	}
}
