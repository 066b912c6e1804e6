package controller

import (
	"strings"

	"demoday/auth"
	"demoday/service"
	"demoday/utils"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const callerKey = "caller"

type RouteInfo struct {
	Method        string
	Path          string
	HandlerFunc   gin.HandlerFunc
	Authenticated bool
	RequiredRoles []string
}

func SetRoutes(r *gin.Engine, db *gorm.DB, cacheStore persistence.CacheStore, notifier *service.Notifier) {
	group := r.Group("/api")
	routes := make([]RouteInfo, 0)
	routes = append(routes, setupEventController(db)...)
	routes = append(routes, setupLockController(db, notifier)...)
	routes = append(routes, setupJudgeController(db)...)
	routes = append(routes, setupAssignmentController(db, notifier)...)
	routes = append(routes, setupScoreController(db, notifier)...)
	routes = append(routes, setupPrizeController(db, cacheStore, notifier)...)
	routes = append(routes, setupPrizeSubmissionController(db, notifier)...)
	routes = append(routes, setupWinnerController(db, notifier)...)
	routes = append(routes, setupDeliberationController(db)...)
	for _, route := range routes {
		handlerfuncs := make([]gin.HandlerFunc, 0)
		if route.Authenticated {
			handlerfuncs = append(handlerfuncs, AuthMiddleware(route.RequiredRoles))
		}
		handlerfuncs = append(handlerfuncs, route.HandlerFunc)
		group.Handle(route.Method, route.Path, handlerfuncs...)
	}
}

// tokenFromRequest reads the token from the auth cookie and falls back to a
// bearer Authorization header.
func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie("auth"); err == nil && cookie != "" {
		return cookie
	}
	header := c.Request.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	return ""
}

func AuthMiddleware(roles []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Unauthenticated"})
			return
		}
		caller, err := auth.ParseCaller(token)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Unauthenticated"})
			return
		}
		c.Set(callerKey, caller)
		if len(roles) == 0 {
			c.Next()
			return
		}
		for _, requiredRole := range roles {
			if utils.Contains(caller.Permissions, requiredRole) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(403, gin.H{"error": "Unauthorized"})
	}
}
