package client

import (
	"context"
	"fmt"
	"strings"

	"demoday/config"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

type AnnouncedWinner struct {
	PrizeName string
	TeamName  string
	Placement *int
}

type WinnerAnnouncement struct {
	EventName string
	Winners   []AnnouncedWinner
}

type Announcer interface {
	AnnounceWinners(ctx context.Context, announcement WinnerAnnouncement) error
}

type NoopAnnouncer struct{}

func (NoopAnnouncer) AnnounceWinners(ctx context.Context, announcement WinnerAnnouncement) error {
	return nil
}

type DiscordAnnouncer struct {
	session   *discordgo.Session
	channelId string
}

// NewAnnouncer returns a discord announcer when a bot token and channel are
// configured.
func NewAnnouncer() Announcer {
	cfg := config.Env()
	if cfg.DiscordBotToken == "" || cfg.DiscordAnnounceChannelID == "" {
		log.Info("discord announcements disabled")
		return NoopAnnouncer{}
	}
	session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		log.WithError(err).Warn("failed to create discord session, announcements disabled")
		return NoopAnnouncer{}
	}
	return &DiscordAnnouncer{session: session, channelId: cfg.DiscordAnnounceChannelID}
}

func (a *DiscordAnnouncer) AnnounceWinners(ctx context.Context, announcement WinnerAnnouncement) error {
	if len(announcement.Winners) == 0 {
		return nil
	}
	_, err := a.session.ChannelMessageSend(a.channelId, FormatWinnerAnnouncement(announcement), discordgo.WithContext(ctx))
	return err
}

func FormatWinnerAnnouncement(announcement WinnerAnnouncement) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Winners for %s**\n", announcement.EventName)
	for _, winner := range announcement.Winners {
		if winner.Placement != nil {
			fmt.Fprintf(&b, "- %s (#%d): %s\n", winner.PrizeName, *winner.Placement, winner.TeamName)
		} else {
			fmt.Fprintf(&b, "- %s: %s\n", winner.PrizeName, winner.TeamName)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
