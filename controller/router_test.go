package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"demoday/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(roles []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(roles), func(c *gin.Context) {
		c.JSON(200, gin.H{"user_id": getCaller(c).UserId})
	})
	return r
}

func serve(r *gin.Engine, request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, request)
	return recorder
}

func TestAuthMiddleware(t *testing.T) {
	userToken, err := auth.CreateToken(42, []string{})
	require.NoError(t, err)
	adminToken, err := auth.CreateToken(1, []string{auth.PermissionAdmin})
	require.NoError(t, err)

	open := newAuthRouter(nil)
	adminOnly := newAuthRouter([]string{auth.PermissionAdmin})

	request := httptest.NewRequest("GET", "/protected", nil)
	assert.Equal(t, 401, serve(open, request).Code)

	request = httptest.NewRequest("GET", "/protected", nil)
	request.Header.Set("Authorization", "Bearer not-a-token")
	assert.Equal(t, 401, serve(open, request).Code)

	request = httptest.NewRequest("GET", "/protected", nil)
	request.Header.Set("Authorization", "Bearer "+userToken)
	response := serve(open, request)
	assert.Equal(t, 200, response.Code)
	assert.JSONEq(t, `{"user_id": 42}`, response.Body.String())

	request = httptest.NewRequest("GET", "/protected", nil)
	request.AddCookie(&http.Cookie{Name: "auth", Value: userToken})
	assert.Equal(t, 403, serve(adminOnly, request).Code)

	request = httptest.NewRequest("GET", "/protected", nil)
	request.AddCookie(&http.Cookie{Name: "auth", Value: adminToken})
	assert.Equal(t, 200, serve(adminOnly, request).Code)
}

func TestGetIntParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/events/:event_id", func(c *gin.Context) {
		eventId, ok := getEventId(c)
		if !ok {
			return
		}
		c.JSON(200, gin.H{"event_id": eventId})
	})

	assert.Equal(t, 400, serve(r, httptest.NewRequest("GET", "/events/abc", nil)).Code)
	response := serve(r, httptest.NewRequest("GET", "/events/12", nil))
	assert.Equal(t, 200, response.Code)
	assert.JSONEq(t, `{"event_id": 12}`, response.Body.String())
}

func TestLockRoutesRequireAuthentication(t *testing.T) {
	for _, route := range setupLockController(nil, nil) {
		assert.True(t, route.Authenticated, "%s %s", route.Method, route.Path)
	}
}
