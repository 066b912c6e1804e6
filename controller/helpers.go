package controller

import (
	"fmt"
	"strconv"

	"demoday/app_error"
	"demoday/auth"

	"github.com/gin-gonic/gin"
)

// getCaller returns the caller set by AuthMiddleware, nil on public routes.
func getCaller(c *gin.Context) *auth.Caller {
	value, ok := c.Get(callerKey)
	if !ok {
		return nil
	}
	caller, _ := value.(*auth.Caller)
	return caller
}

func getIntParam(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		app_error.WithHTTPStatus(c, fmt.Errorf("invalid %s %q", name, c.Param(name)), 400)
		return 0, false
	}
	return value, true
}

func getEventId(c *gin.Context) (int, bool) {
	return getIntParam(c, "event_id")
}

func getEventAndTeamId(c *gin.Context) (int, int, bool) {
	eventId, ok := getEventId(c)
	if !ok {
		return 0, 0, false
	}
	teamId, ok := getIntParam(c, "team_id")
	if !ok {
		return 0, 0, false
	}
	return eventId, teamId, true
}

func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		app_error.WithHTTPStatus(c, err, 400)
		return false
	}
	return true
}
