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

type WinnerController struct {
	winnerService *service.WinnerService
}

func NewWinnerController(db *gorm.DB, notifier *service.Notifier) *WinnerController {
	return &WinnerController{winnerService: service.NewWinnerService(db, notifier)}
}

func setupWinnerController(db *gorm.DB, notifier *service.Notifier) []RouteInfo {
	e := NewWinnerController(db, notifier)
	basePath := "/events/:event_id/winners"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getWinnersHandler()},
		{Method: "PUT", Path: "", HandlerFunc: e.setWinnersHandler(), Authenticated: true, RequiredRoles: []string{auth.PermissionAdmin}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetWinners
// @Description Lists the prize winners of the event
// @Tags winner
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 200 {array} WinnerResponse
// @Router /events/{event_id}/winners [get]
func (e *WinnerController) getWinnersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := getEventId(c)
		if !ok {
			return
		}
		winners, err := e.winnerService.GetWinners(eventId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(winners, toWinnerResponse))
	}
}

// @id SetWinners
// @Description Replaces the winner list of the event. Scoring must be locked and every winner must have entered the prize.
// @Security BearerAuth
// @Tags winner
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param body body []WinnerRequest true "Complete winner list"
// @Success 200 {array} WinnerResponse
// @Router /events/{event_id}/winners [put]
func (e *WinnerController) setWinnersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := getEventId(c)
		if !ok {
			return
		}
		var request []WinnerRequest
		if !bindJSON(c, &request) {
			return
		}
		winners, err := e.winnerService.SetWinners(getCaller(c), eventId, utils.Map(request, toWinnerInput))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(winners, toWinnerResponse))
	}
}

type WinnerRequest struct {
	PrizeId   int     `json:"prize_id" binding:"required"`
	TeamId    int     `json:"team_id" binding:"required"`
	Placement *int    `json:"placement"`
	Notes     *string `json:"notes"`
}

type WinnerResponse struct {
	PrizeId   int       `json:"prize_id" binding:"required"`
	TeamId    int       `json:"team_id" binding:"required"`
	Placement *int      `json:"placement"`
	Notes     *string   `json:"notes"`
	SetBy     int       `json:"set_by" binding:"required"`
	SetAt     time.Time `json:"set_at" binding:"required"`
}

func toWinnerInput(request WinnerRequest) service.WinnerInput {
	return service.WinnerInput{
		PrizeId:   request.PrizeId,
		TeamId:    request.TeamId,
		Placement: request.Placement,
		Notes:     request.Notes,
	}
}

func toWinnerResponse(winner *repository.PrizeWinner) *WinnerResponse {
	return &WinnerResponse{
		PrizeId:   winner.PrizeId,
		TeamId:    winner.TeamId,
		Placement: winner.Placement,
		Notes:     winner.Notes,
		SetBy:     winner.SetBy,
		SetAt:     winner.SetAt,
	}
}
