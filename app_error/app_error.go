package app_error

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type statusError struct {
	error
	status int
}

func (e statusError) Unwrap() error {
	return e.error
}

func (e statusError) HTTPStatus() int {
	return e.status
}

func New(status int, message string) error {
	return statusError{error: errors.New(message), status: status}
}

var (
	ErrNotFound               = New(http.StatusNotFound, "not found")
	ErrNotAuthorized          = New(http.StatusForbidden, "not authorized")
	ErrNotAJudge              = New(http.StatusForbidden, "not a judge for this event")
	ErrInvalidReference       = New(http.StatusBadRequest, "invalid reference")
	ErrLocked                 = New(http.StatusConflict, "scoring is locked for this event")
	ErrUnsupportedForMode     = New(http.StatusBadRequest, "not supported for appreciation-only events")
	ErrInvalidPrizeConfig     = New(http.StatusBadRequest, "invalid prize configuration")
	ErrIneligibleSelection    = New(http.StatusBadRequest, "team is not eligible for prize")
	ErrSubmissionClosed       = New(http.StatusConflict, "prize submissions are closed")
	ErrScoringNotLocked       = New(http.StatusConflict, "scoring must be locked before winners can be set")
	ErrNotASubmittedCandidate = New(http.StatusBadRequest, "team did not submit for this prize")
	ErrInvalidInput           = New(http.StatusBadRequest, "invalid input")
)

// Status returns the HTTP status carried by err, falling back to 500.
func Status(err error) int {
	var se interface{ HTTPStatus() int }
	if errors.As(err, &se) {
		return se.HTTPStatus()
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func WithHTTPStatus(c *gin.Context, err error, status int) {
	c.JSON(status, gin.H{"error": err.Error()})
}

func Respond(c *gin.Context, err error) {
	WithHTTPStatus(c, err, Status(err))
}
