package controller

import (
	"demoday/app_error"
	"demoday/repository"
	"demoday/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AssignmentController struct {
	assignmentService *service.AssignmentService
	judgeService      *service.JudgeService
}

func NewAssignmentController(db *gorm.DB, notifier *service.Notifier) *AssignmentController {
	return &AssignmentController{
		assignmentService: service.NewAssignmentService(db, notifier),
		judgeService:      service.NewJudgeService(db),
	}
}

func setupAssignmentController(db *gorm.DB, notifier *service.Notifier) []RouteInfo {
	e := NewAssignmentController(db, notifier)
	basePath := "/events/:event_id/assignments"
	routes := []RouteInfo{
		{Method: "GET", Path: "/self", HandlerFunc: e.getOwnAssignmentsHandler(), Authenticated: true},
		{Method: "PUT", Path: "", HandlerFunc: e.assignManyHandler(), Authenticated: true},
		{Method: "PUT", Path: "/:team_id", HandlerFunc: e.assignHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/:team_id", HandlerFunc: e.unassignHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// requireJudge resolves the caller's judge membership and writes the error
// response when there is none.
func requireJudge(c *gin.Context, judgeService *service.JudgeService, eventId int) (*repository.Judge, bool) {
	judge, err := judgeService.RequireJudgeMembership(getCaller(c), eventId)
	if err != nil {
		app_error.Respond(c, err)
		return nil, false
	}
	return judge, true
}

// @id GetOwnAssignments
// @Description Lists the ids of the teams assigned to the calling judge
// @Security BearerAuth
// @Tags assignment
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 200 {array} int
// @Router /events/{event_id}/assignments/self [get]
func (e *AssignmentController) getOwnAssignmentsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := getEventId(c)
		if !ok {
			return
		}
		teamIds, err := e.assignmentService.ListAssigned(eventId, getCaller(c).UserId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, teamIds)
	}
}

// @id AssignTeams
// @Description Assigns several teams to the calling judge. Teams outside the event are skipped.
// @Security BearerAuth
// @Tags assignment
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param body body AssignTeamsRequest true "Teams to assign"
// @Success 200 {object} AssignTeamsResponse
// @Router /events/{event_id}/assignments [put]
func (e *AssignmentController) assignManyHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := getEventId(c)
		if !ok {
			return
		}
		var request AssignTeamsRequest
		if !bindJSON(c, &request) {
			return
		}
		judge, ok := requireJudge(c, e.judgeService, eventId)
		if !ok {
			return
		}
		added, err := e.assignmentService.AssignMany(eventId, judge.Id, request.TeamIds)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, AssignTeamsResponse{Added: added})
	}
}

// @id AssignTeam
// @Description Assigns one team to the calling judge
// @Security BearerAuth
// @Tags assignment
// @Produce json
// @Param event_id path int true "Event Id"
// @Param team_id path int true "Team Id"
// @Success 200 {object} AssignmentResponse
// @Router /events/{event_id}/assignments/{team_id} [put]
func (e *AssignmentController) assignHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, teamId, ok := getEventAndTeamId(c)
		if !ok {
			return
		}
		judge, ok := requireJudge(c, e.judgeService, eventId)
		if !ok {
			return
		}
		assignment, err := e.assignmentService.Assign(eventId, judge.Id, teamId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toAssignmentResponse(assignment))
	}
}

// @id UnassignTeam
// @Description Removes a team from the calling judge together with the judge's score for it
// @Security BearerAuth
// @Tags assignment
// @Param event_id path int true "Event Id"
// @Param team_id path int true "Team Id"
// @Success 204
// @Router /events/{event_id}/assignments/{team_id} [delete]
func (e *AssignmentController) unassignHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, teamId, ok := getEventAndTeamId(c)
		if !ok {
			return
		}
		judge, ok := requireJudge(c, e.judgeService, eventId)
		if !ok {
			return
		}
		if err := e.assignmentService.Unassign(eventId, judge.Id, teamId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}

type AssignTeamsRequest struct {
	TeamIds []int `json:"team_ids" binding:"required"`
}

type AssignTeamsResponse struct {
	Added int `json:"added" binding:"required"`
}

type AssignmentResponse struct {
	Id      int `json:"id" binding:"required"`
	JudgeId int `json:"judge_id" binding:"required"`
	TeamId  int `json:"team_id" binding:"required"`
}

func toAssignmentResponse(assignment *repository.Assignment) *AssignmentResponse {
	return &AssignmentResponse{
		Id:      assignment.Id,
		JudgeId: assignment.JudgeId,
		TeamId:  assignment.TeamId,
	}
}
