package discord

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/renval/gangboard/internal/board"
	"github.com/renval/gangboard/internal/repository"
)

// Messenger is the slice of the gateway session the publisher needs.
type Messenger interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Publisher keeps the single tracked board message up to date, editing it in
// place and recreating it when it has gone missing.
type Publisher struct {
	msg        Messenger
	activities ActivityService
	config     repository.ConfigRepository
	pager      *board.Pager
	logger     *slog.Logger

	mu sync.Mutex
}

// NewPublisher creates a board publisher.
func NewPublisher(msg Messenger, activities ActivityService, config repository.ConfigRepository, pager *board.Pager, logger *slog.Logger) *Publisher {
	return &Publisher{
		msg:        msg,
		activities: activities,
		config:     config,
		pager:      pager,
		logger:     logger,
	}
}

// Refresh re-renders the board and pushes it to the configured channel. With
// no activity channel configured it is a logged no-op. If editing the
// tracked message fails (deleted externally), one replacement message is
// created and its ID persisted.
func (p *Publisher) Refresh(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	cfg, err := p.config.Get(ctx)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	ac := cfg.Channels.Activity
	if ac == nil || ac.ChannelID == "" {
		p.logger.Debug("no activity channel set, skipping board update")
		return nil
	}

	activities, err := p.activities.All(ctx)
	if err != nil {
		return fmt.Errorf("loading activities: %w", err)
	}

	views := board.Render(activities, p.pager)
	embeds := boardEmbeds(views)
	components := boardComponents(views)
	if components == nil {
		components = []discordgo.MessageComponent{}
	}

	if ac.MessageID != "" {
		_, editErr := p.msg.ChannelMessageEditComplex(&discordgo.MessageEdit{
			Channel:    ac.ChannelID,
			ID:         ac.MessageID,
			Embeds:     &embeds,
			Components: &components,
		})
		if editErr == nil {
			return nil
		}
		p.logger.Warn("board message edit failed, creating a replacement", "error", editErr)
	}

	m, err := p.msg.ChannelMessageSendComplex(ac.ChannelID, &discordgo.MessageSend{
		Embeds:     embeds,
		Components: components,
	})
	if err != nil {
		return fmt.Errorf("posting board message: %w", err)
	}

	cfg.Channels.Activity.MessageID = m.ID
	if err := p.config.Save(ctx, cfg); err != nil {
		return fmt.Errorf("saving board message id: %w", err)
	}
	p.logger.Info("board message created", "channel", ac.ChannelID, "message", m.ID)
	return nil
}
