package controller

import (
	"time"

	"demoday/app_error"
	"demoday/auth"
	"demoday/repository"
	"demoday/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type JudgeController struct {
	judgeService *service.JudgeService
}

func NewJudgeController(db *gorm.DB) *JudgeController {
	return &JudgeController{judgeService: service.NewJudgeService(db)}
}

func setupJudgeController(db *gorm.DB) []RouteInfo {
	e := NewJudgeController(db)
	basePath := "/events/:event_id/judges"
	routes := []RouteInfo{
		{Method: "POST", Path: "/self", HandlerFunc: e.registerHandler(), Authenticated: true},
		{Method: "PUT", Path: "", HandlerFunc: e.seedJudgesHandler(), Authenticated: true, RequiredRoles: []string{auth.PermissionAdmin}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id RegisterAsJudge
// @Description Registers the caller as a judge of the event
// @Security BearerAuth
// @Tags judge
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 201 {object} JudgeResponse
// @Router /events/{event_id}/judges/self [post]
func (e *JudgeController) registerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := getEventId(c)
		if !ok {
			return
		}
		judge, err := e.judgeService.Register(getCaller(c), eventId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toJudgeResponse(judge))
	}
}

// @id SeedJudges
// @Description Registers the given users as judges of the event
// @Security BearerAuth
// @Tags judge
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param body body SeedJudgesRequest true "Users to register"
// @Success 200 {object} SeedJudgesResponse
// @Router /events/{event_id}/judges [put]
func (e *JudgeController) seedJudgesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := getEventId(c)
		if !ok {
			return
		}
		var request SeedJudgesRequest
		if !bindJSON(c, &request) {
			return
		}
		created, err := e.judgeService.SeedJudges(getCaller(c), eventId, request.UserIds)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, SeedJudgesResponse{Created: created})
	}
}

type SeedJudgesRequest struct {
	UserIds []int `json:"user_ids" binding:"required"`
}

type SeedJudgesResponse struct {
	Created int `json:"created" binding:"required"`
}

type JudgeResponse struct {
	Id        int       `json:"id" binding:"required"`
	EventId   int       `json:"event_id" binding:"required"`
	UserId    int       `json:"user_id" binding:"required"`
	CreatedAt time.Time `json:"created_at" binding:"required"`
}

func toJudgeResponse(judge *repository.Judge) *JudgeResponse {
	return &JudgeResponse{
		Id:        judge.Id,
		EventId:   judge.EventId,
		UserId:    judge.UserId,
		CreatedAt: judge.CreatedAt,
	}
}
