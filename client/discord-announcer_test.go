package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatWinnerAnnouncement(t *testing.T) {
	first := 1
	message := FormatWinnerAnnouncement(WinnerAnnouncement{
		EventName: "Spring Demo Day",
		Winners: []AnnouncedWinner{
			{PrizeName: "Best Overall", TeamName: "Rocket", Placement: &first},
			{PrizeName: "Sponsor Pick", TeamName: "Falcon"},
		},
	})
	assert.Equal(t, "**Winners for Spring Demo Day**\n- Best Overall (#1): Rocket\n- Sponsor Pick: Falcon", message)
}

func TestNoopSinks(t *testing.T) {
	assert.NoError(t, NoopPublisher{}.Publish(context.Background(), JudgingEvent{Type: WinnersSet, EventId: 1}))
	assert.NoError(t, NoopAnnouncer{}.AnnounceWinners(context.Background(), WinnerAnnouncement{}))
}
