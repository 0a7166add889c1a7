package publish

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

// DiscordPublisher mirrors the digest to a Discord channel. It is a
// best-effort secondary destination; the pipeline never fails on it.
type DiscordPublisher struct {
	session   *discordgo.Session
	channelID string
}

// NewDiscordPublisherFromEnv creates a DiscordPublisher from environment
// configuration. Returns an error when the mirror is not configured.
func NewDiscordPublisherFromEnv() (*DiscordPublisher, error) {
	token := os.Getenv("DISCORD_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("DISCORD_BOT_TOKEN environment variable is required")
	}

	channelID := os.Getenv("DISCORD_CHANNEL_ID")
	if channelID == "" {
		return nil, fmt.Errorf("DISCORD_CHANNEL_ID environment variable is required")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	return &DiscordPublisher{session: session, channelID: channelID}, nil
}

func (d *DiscordPublisher) Publish(ctx context.Context, msg Message) (Result, error) {
	id := uuid.New().String()

	// Open connection if not already open
	if d.session.State == nil {
		if err := d.session.Open(); err != nil {
			return Result{}, fmt.Errorf("failed to open Discord connection: %w", err)
		}
	}

	content := FormatDiscordMessage(msg)
	log.Printf("Sending Discord message to channel %s", d.channelID)

	if _, err := d.session.ChannelMessageSend(d.channelID, content); err != nil {
		return Result{}, fmt.Errorf("failed to send Discord message: %w", err)
	}

	log.Printf("Discord notification sent successfully: %s", id)
	return Result{ID: id, Timestamp: time.Now()}, nil
}

// FormatDiscordMessage renders the notification for Discord, with the
// subject as a bold header and a send timestamp footer.
func FormatDiscordMessage(msg Message) string {
	content := "🏀 **" + msg.Subject + "**\n\n" + msg.Body
	content += "\n\n*Notification sent at " + time.Now().Format("15:04:05 MST") + "*"
	return content
}

func (d *DiscordPublisher) Close() error {
	if d.session != nil {
		return d.session.Close()
	}
	return nil
}

// DiscoverMirrors returns the best-effort mirror publishers configured via
// environment variables. A mirror that fails to configure is logged and
// skipped, never fatal.
func DiscoverMirrors() []Publisher {
	var mirrors []Publisher

	if discord, err := NewDiscordPublisherFromEnv(); err != nil {
		log.Printf("Discord mirror not configured: %v", err)
	} else {
		log.Printf("Discord mirror created successfully")
		mirrors = append(mirrors, discord)
	}

	return mirrors
}
