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

type EventController struct {
	eventService *service.EventService
	teamService  *service.TeamService
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{
		eventService: service.NewEventService(db),
		teamService:  service.NewTeamService(db),
	}
}

func setupEventController(db *gorm.DB) []RouteInfo {
	e := NewEventController(db)
	basePath := "/events/:event_id"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getEventHandler()},
		{Method: "DELETE", Path: "", HandlerFunc: e.deleteEventHandler(), Authenticated: true, RequiredRoles: []string{auth.PermissionAdmin}},
		{Method: "DELETE", Path: "/teams/:team_id", HandlerFunc: e.deleteTeamHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetEvent
// @Description Fetches an event with its judging categories and teams
// @Tags event
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 200 {object} EventResponse
// @Router /events/{event_id} [get]
func (e *EventController) getEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := getEventId(c)
		if !ok {
			return
		}
		event, err := e.eventService.GetEventById(eventId, "Categories", "Teams")
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toEventResponse(event))
	}
}

// @id DeleteEvent
// @Description Deletes an event together with everything judged in it
// @Security BearerAuth
// @Tags event
// @Param event_id path int true "Event Id"
// @Success 204
// @Router /events/{event_id} [delete]
func (e *EventController) deleteEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := getEventId(c)
		if !ok {
			return
		}
		if err := e.eventService.DeleteEvent(getCaller(c), eventId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}

// @id DeleteTeam
// @Description Deletes a team with its scores, assignments and prize entries. Owner or admin only.
// @Security BearerAuth
// @Tags team
// @Param event_id path int true "Event Id"
// @Param team_id path int true "Team Id"
// @Success 204
// @Router /events/{event_id}/teams/{team_id} [delete]
func (e *EventController) deleteTeamHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, teamId, ok := getEventAndTeamId(c)
		if !ok {
			return
		}
		if err := e.teamService.DeleteTeam(getCaller(c), eventId, teamId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}

type CategoryResponse struct {
	Name          string   `json:"name" binding:"required"`
	Weight        *float64 `json:"weight"`
	OptOutAllowed bool     `json:"opt_out_allowed" binding:"required"`
}

type TeamResponse struct {
	Id          int      `json:"id" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Members     []string `json:"members" binding:"required"`
	Track       string   `json:"track"`
	LogoRef     *string  `json:"logo_ref"`
	OwnerId     int      `json:"owner_id" binding:"required"`
}

type EventResponse struct {
	Id         int                 `json:"id" binding:"required"`
	Name       string              `json:"name" binding:"required"`
	StartTime  time.Time           `json:"start_time" binding:"required"`
	EndTime    time.Time           `json:"end_time" binding:"required"`
	Mode       string              `json:"mode" binding:"required"`
	CohortMode bool                `json:"cohort_mode"`
	Tracks     []string            `json:"tracks" binding:"required"`
	Locked     bool                `json:"locked"`
	Categories []*CategoryResponse `json:"categories" binding:"required"`
	Teams      []*TeamResponse     `json:"teams" binding:"required"`
}

func toCategoryResponse(category *repository.JudgingCategory) *CategoryResponse {
	return &CategoryResponse{
		Name:          category.Name,
		Weight:        category.Weight,
		OptOutAllowed: category.OptOutAllowed,
	}
}

func toTeamResponse(team *repository.Team) *TeamResponse {
	members := []string(team.Members)
	if members == nil {
		members = []string{}
	}
	return &TeamResponse{
		Id:          team.Id,
		Name:        team.Name,
		Description: team.Description,
		Members:     members,
		Track:       team.Track,
		LogoRef:     team.LogoRef,
		OwnerId:     team.OwnerId,
	}
}

func toEventResponse(event *repository.Event) *EventResponse {
	tracks := []string(event.Tracks)
	if tracks == nil {
		tracks = []string{}
	}
	return &EventResponse{
		Id:         event.Id,
		Name:       event.Name,
		StartTime:  event.StartTime,
		EndTime:    event.EndTime,
		Mode:       string(event.Mode),
		CohortMode: event.CohortMode,
		Tracks:     tracks,
		Locked:     event.IsLocked(),
		Categories: utils.Map(event.Categories, toCategoryResponse),
		Teams:      utils.Map(event.Teams, toTeamResponse),
	}
}
