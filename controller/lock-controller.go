package controller

import (
	"time"

	"demoday/app_error"
	"demoday/auth"
	"demoday/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LockController struct {
	lockService *service.LockService
}

func NewLockController(db *gorm.DB, notifier *service.Notifier) *LockController {
	return &LockController{lockService: service.NewLockService(db, notifier)}
}

func setupLockController(db *gorm.DB, notifier *service.Notifier) []RouteInfo {
	e := NewLockController(db, notifier)
	basePath := "/events/:event_id/lock"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getLockHandler(), Authenticated: true},
		{Method: "PUT", Path: "", HandlerFunc: e.lockHandler(), Authenticated: true, RequiredRoles: []string{auth.PermissionAdmin}},
		{Method: "DELETE", Path: "", HandlerFunc: e.unlockHandler(), Authenticated: true, RequiredRoles: []string{auth.PermissionAdmin}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetScoringLock
// @Description Returns whether scoring is currently locked for the event
// @Tags lock
// @Produce json
// @Param event_id path int true "Event Id"
// @Security BearerAuth
// @Success 200 {object} LockResponse
// @Router /events/{event_id}/lock [get]
func (e *LockController) getLockHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := getEventId(c)
		if !ok {
			return
		}
		lock, err := e.lockService.GetLock(eventId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toLockResponse(lock))
	}
}

// @id LockScoring
// @Description Freezes score and assignment changes for the event
// @Security BearerAuth
// @Tags lock
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param body body LockRequest false "Lock reason"
// @Success 200 {object} LockResponse
// @Router /events/{event_id}/lock [put]
func (e *LockController) lockHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := getEventId(c)
		if !ok {
			return
		}
		var request LockRequest
		if c.Request.ContentLength > 0 && !bindJSON(c, &request) {
			return
		}
		lock, err := e.lockService.Lock(getCaller(c), eventId, request.Reason)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toLockResponse(lock))
	}
}

// @id UnlockScoring
// @Description Lifts the scoring lock of the event
// @Security BearerAuth
// @Tags lock
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 200 {object} LockResponse
// @Router /events/{event_id}/lock [delete]
func (e *LockController) unlockHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := getEventId(c)
		if !ok {
			return
		}
		lock, err := e.lockService.Unlock(getCaller(c), eventId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toLockResponse(lock))
	}
}

type LockRequest struct {
	Reason string `json:"reason"`
}

type LockResponse struct {
	Locked   bool       `json:"locked" binding:"required"`
	LockedAt *time.Time `json:"locked_at"`
	LockedBy *int       `json:"locked_by"`
	Reason   *string    `json:"reason"`
}

func toLockResponse(lock *service.ScoringLock) *LockResponse {
	return &LockResponse{
		Locked:   lock.Locked,
		LockedAt: lock.LockedAt,
		LockedBy: lock.LockedBy,
		Reason:   lock.Reason,
	}
}
