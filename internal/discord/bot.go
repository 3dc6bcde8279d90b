// Package discord is the bot's interaction surface: slash commands,
// autocomplete, buttons, select menus and modals, plus the board publisher.
package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/renval/gangboard/internal/board"
	"github.com/renval/gangboard/internal/domain/activity"
	"github.com/renval/gangboard/internal/repository"
)

// ActivityService defines activity operations needed by the bot.
type ActivityService interface {
	Upsert(ctx context.Context, req activity.UpsertRequest) (*activity.Activity, bool, error)
	All(ctx context.Context) ([]activity.Activity, error)
}

// GangService defines roster operations needed by the bot.
type GangService interface {
	Add(ctx context.Context, name string) error
	Remove(ctx context.Context, name string) error
	List(ctx context.Context) ([]string, error)
	Search(ctx context.Context, query string, limit int) ([]string, error)
	Exists(ctx context.Context, name string) (bool, error)
}

// StreamService defines livestream operations needed by the bot.
type StreamService interface {
	Validate(link string) error
	Announcement(link, userID string) string
}

// Refresher re-renders the tracked board message.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Services groups the domain services the bot dispatches to.
type Services struct {
	Activities ActivityService
	Gangs      GangService
	Streams    StreamService
	Config     repository.ConfigRepository
}

// Bot dispatches Discord interactions to domain services.
type Bot struct {
	svcs      Services
	pager     *board.Pager
	refresher Refresher
	logger    *slog.Logger
}

// NewBot creates a new bot dispatcher.
func NewBot(svcs Services, pager *board.Pager, refresher Refresher, logger *slog.Logger) *Bot {
	return &Bot{svcs: svcs, pager: pager, refresher: refresher, logger: logger}
}

// Register attaches the bot's handlers to a gateway session.
func (b *Bot) Register(s *discordgo.Session) {
	s.AddHandler(b.onInteraction)
}

// onInteraction is the single entry point for every interaction. Errors and
// panics from individual handlers end here: the user gets a generic private
// failure message and the process keeps serving.
func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("interaction handler panicked", "panic", r)
			b.replyGenericFailure(s, i)
		}
	}()

	ctx := context.Background()

	var err error
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		err = b.handleCommand(ctx, s, i)
	case discordgo.InteractionApplicationCommandAutocomplete:
		err = b.handleAutocomplete(ctx, s, i)
	case discordgo.InteractionMessageComponent:
		err = b.handleComponent(ctx, s, i)
	case discordgo.InteractionModalSubmit:
		err = b.handleModal(ctx, s, i)
	default:
		return
	}

	if err != nil {
		b.logger.Error("interaction failed", "type", i.Type.String(), "error", err)
		b.replyGenericFailure(s, i)
	}
}

// refreshBoard updates the board without blocking the caller's reply. A
// failed board update never rolls back the committed mutation.
func (b *Bot) refreshBoard() {
	go func() {
		if err := b.refresher.Refresh(context.Background()); err != nil {
			b.logger.Error("board refresh failed", "error", err)
		}
	}()
}

func (b *Bot) replyGenericFailure(s *discordgo.Session, i *discordgo.InteractionCreate) {
	const msg = "There was an error while handling this interaction."
	if err := replyEphemeral(s, i, msg); err != nil {
		// Probably already acknowledged; try a followup instead.
		_, _ = s.FollowupMessageCreate(i.Interaction, false, &discordgo.WebhookParams{
			Content: msg,
			Flags:   discordgo.MessageFlagsEphemeral,
		})
	}
}

func replyEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func replyEphemeralEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

// interactionUser returns whoever triggered the interaction. Guild
// interactions carry a member, direct ones a bare user.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}
