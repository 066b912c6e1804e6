package controller

import (
	"fmt"
	"time"

	"demoday/app_error"
	"demoday/auth"
	"demoday/config"
	"demoday/repository"
	"demoday/service"
	"demoday/utils"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PrizeController struct {
	prizeService *service.PrizeService
	cacheStore   persistence.CacheStore
}

func NewPrizeController(db *gorm.DB, cacheStore persistence.CacheStore, notifier *service.Notifier) *PrizeController {
	return &PrizeController{
		prizeService: service.NewPrizeService(db, notifier),
		cacheStore:   cacheStore,
	}
}

func setupPrizeController(db *gorm.DB, cacheStore persistence.CacheStore, notifier *service.Notifier) []RouteInfo {
	e := NewPrizeController(db, cacheStore, notifier)
	ttl := time.Duration(config.Env().CacheTTLSeconds) * time.Second
	basePath := "/events/:event_id/prizes"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: cache.CachePage(cacheStore, ttl, e.getPrizesHandler())},
		{Method: "PUT", Path: "", HandlerFunc: e.savePrizesHandler(), Authenticated: true, RequiredRoles: []string{auth.PermissionAdmin}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// invalidate drops the cached prize list of the event.
func (e *PrizeController) invalidate(eventId int) {
	key := cache.CreateKey(fmt.Sprintf("/api/events/%d/prizes", eventId))
	if err := e.cacheStore.Delete(key); err != nil && err != persistence.ErrCacheMiss {
		log.WithError(err).WithField("event_id", eventId).Warn("failed to invalidate prize cache")
	}
}

// @id GetPrizes
// @Description Lists the prizes of the event
// @Tags prize
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 200 {array} PrizeResponse
// @Router /events/{event_id}/prizes [get]
func (e *PrizeController) getPrizesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := getEventId(c)
		if !ok {
			return
		}
		prizes, err := e.prizeService.GetPrizes(eventId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(prizes, toPrizeResponse))
	}
}

// @id SavePrizes
// @Description Replaces the prize list of the event. Prizes missing from the list are deleted with their submissions and winners.
// @Security BearerAuth
// @Tags prize
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param body body []PrizeRequest true "Complete prize list"
// @Success 200 {array} PrizeResponse
// @Router /events/{event_id}/prizes [put]
func (e *PrizeController) savePrizesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := getEventId(c)
		if !ok {
			return
		}
		var request []PrizeRequest
		if !bindJSON(c, &request) {
			return
		}
		prizes, err := e.prizeService.SavePrizes(getCaller(c), eventId, utils.Map(request, toPrizeInput))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		e.invalidate(eventId)
		c.JSON(200, utils.Map(prizes, toPrizeResponse))
	}
}

type PrizeRequest struct {
	Id          *int     `json:"id"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Track       string   `json:"track"`
	SponsorName string   `json:"sponsor_name"`
	ScoreBasis  string   `json:"score_basis"`
	Categories  []string `json:"categories"`
	Active      *bool    `json:"active"`
	SortOrder   int      `json:"sort_order"`
}

type PrizeResponse struct {
	Id          int      `json:"id" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Type        string   `json:"type" binding:"required"`
	Track       string   `json:"track,omitempty"`
	SponsorName string   `json:"sponsor_name,omitempty"`
	ScoreBasis  string   `json:"score_basis" binding:"required"`
	Categories  []string `json:"categories" binding:"required"`
	Active      bool     `json:"active" binding:"required"`
	SortOrder   int      `json:"sort_order" binding:"required"`
}

// toPrizeInput treats a missing active flag as active.
func toPrizeInput(request PrizeRequest) service.PrizeInput {
	active := true
	if request.Active != nil {
		active = *request.Active
	}
	return service.PrizeInput{
		Id:          request.Id,
		Name:        request.Name,
		Description: request.Description,
		Type:        repository.PrizeType(request.Type),
		Track:       request.Track,
		SponsorName: request.SponsorName,
		ScoreBasis:  repository.ScoreBasis(request.ScoreBasis),
		Categories:  request.Categories,
		Active:      active,
		SortOrder:   request.SortOrder,
	}
}

func toPrizeResponse(prize *repository.Prize) *PrizeResponse {
	categories := []string(prize.Categories)
	if categories == nil {
		categories = []string{}
	}
	return &PrizeResponse{
		Id:          prize.Id,
		Name:        prize.Name,
		Description: prize.Description,
		Type:        string(prize.Type),
		Track:       prize.Track,
		SponsorName: prize.SponsorName,
		ScoreBasis:  string(prize.ScoreBasis),
		Categories:  categories,
		Active:      prize.Active,
		SortOrder:   prize.SortOrder,
	}
}
