package app_error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStatusSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("%w: prize %q: sponsor name is required", ErrInvalidPrizeConfig, "Best Hack")

	assert.True(t, errors.Is(err, ErrInvalidPrizeConfig))
	assert.False(t, errors.Is(err, ErrIneligibleSelection))
	assert.Equal(t, http.StatusBadRequest, Status(err))
	assert.Contains(t, err.Error(), "Best Hack")
}

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusConflict, Status(ErrLocked))
	assert.Equal(t, http.StatusForbidden, Status(ErrNotAJudge))
	assert.Equal(t, http.StatusNotFound, Status(fmt.Errorf("team 3: %w", gorm.ErrRecordNotFound)))
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("boom")))
}
