package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/renval/gangboard/internal/domain/activity"
	"github.com/renval/gangboard/internal/domain/gang"
	"github.com/renval/gangboard/internal/domain/guildcfg"
	"github.com/renval/gangboard/internal/domain/stream"
)

func (b *Bot) handleCommand(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	switch data.Name {
	case "activity":
		return b.handleActivity(ctx, s, i, data)
	case "quickadd":
		return b.handleQuickAdd(ctx, s, i)
	case "channel":
		return b.handleChannel(ctx, s, i, data)
	case "gangadd":
		return b.handleGangAdd(ctx, s, i, data)
	case "gangremove":
		return b.handleGangRemove(ctx, s, i, data)
	case "gangs":
		return b.handleGangs(ctx, s, i)
	case "stream":
		return b.handleStream(ctx, s, i, data)
	}
	return fmt.Errorf("unknown command %q", data.Name)
}

func (b *Bot) handleActivity(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) error {
	opts := optionMap(data.Options)
	gangName := strings.TrimSpace(stringOption(opts, "gangname"))
	typeLabel := stringOption(opts, "type")
	description := stringOption(opts, "description")

	t, ok := activity.TypeByLabel(typeLabel)
	if !ok {
		return replyEphemeral(s, i, fmt.Sprintf("Unknown activity type: %s", typeLabel))
	}

	exists, err := b.svcs.Gangs.Exists(ctx, gangName)
	if err != nil {
		return fmt.Errorf("checking gang: %w", err)
	}
	if !exists {
		if gangName == "" || len(gangName) > gang.MaxNameBytes {
			return replyEphemeral(s, i, fmt.Sprintf("Gang names must be 1-%d characters.", gang.MaxNameBytes))
		}
		// Offer to create the gang; the pending description rides in the
		// offer message so confirming carries it through unchanged.
		return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content:    fmt.Sprintf("Gang %q isn't on the list yet.", gangName),
				Embeds:     []*discordgo.MessageEmbed{pendingActivityEmbed(t, gangName, description)},
				Components: []discordgo.MessageComponent{offerCreateRow(t, gangName)},
				Flags:      discordgo.MessageFlagsEphemeral,
			},
		})
	}

	return b.commitActivity(ctx, s, i, t, gangName, description)
}

// commitActivity is the terminal step of every add path: upsert, kick off a
// board refresh, confirm privately. The confirmation never waits on the
// board update.
func (b *Bot) commitActivity(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, t activity.Type, gangName, description string) error {
	entry, updated, err := b.svcs.Activities.Upsert(ctx, activity.UpsertRequest{
		GangName:    gangName,
		Type:        t,
		Description: description,
		ActorID:     interactionUser(i).ID,
	})
	if err != nil {
		if errors.Is(err, activity.ErrInvalidInput) {
			return replyEphemeral(s, i, "Gang name and activity type are required.")
		}
		return fmt.Errorf("upserting activity: %w", err)
	}

	b.refreshBoard()
	return replyEphemeralEmbed(s, i, confirmationEmbed(entry, updated))
}

func (b *Bot) handleQuickAdd(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    "What kind of activity do you want to log?",
			Components: []discordgo.MessageComponent{quickAddRow()},
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
}

func (b *Bot) handleChannel(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) error {
	opts := optionMap(data.Options)
	channelType := stringOption(opts, "type")
	channelOpt, ok := opts["channel"]
	if !ok {
		return replyEphemeral(s, i, "A channel is required.")
	}
	channel := channelOpt.ChannelValue(nil)

	cfg, err := b.svcs.Config.Get(ctx)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	switch channelType {
	case "activity":
		// Reset the message ID so a fresh board message gets created.
		cfg.Channels.Activity = &guildcfg.ActivityChannel{ChannelID: channel.ID}
		if err := b.svcs.Config.Save(ctx, cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		b.refreshBoard()
		return replyEphemeral(s, i, fmt.Sprintf("Activities will now be posted and updated in <#%s>.", channel.ID))
	case "stream":
		cfg.Channels.Stream = &guildcfg.StreamChannel{ChannelID: channel.ID}
		if err := b.svcs.Config.Save(ctx, cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		return replyEphemeral(s, i, fmt.Sprintf("Stream announcements will now be posted in <#%s>.", channel.ID))
	}
	return replyEphemeral(s, i, fmt.Sprintf("Unknown channel type: %s", channelType))
}

func (b *Bot) handleGangAdd(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) error {
	name := strings.TrimSpace(stringOption(optionMap(data.Options), "name"))
	switch err := b.svcs.Gangs.Add(ctx, name); {
	case errors.Is(err, gang.ErrDuplicate):
		return replyEphemeral(s, i, fmt.Sprintf("Gang %q already exists.", name))
	case errors.Is(err, gang.ErrInvalidName):
		return replyEphemeral(s, i, fmt.Sprintf("Gang names must be 1-%d characters.", gang.MaxNameBytes))
	case err != nil:
		return fmt.Errorf("adding gang: %w", err)
	}
	return replyEphemeral(s, i, fmt.Sprintf("Gang %q has been added to the list.", name))
}

func (b *Bot) handleGangRemove(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) error {
	name := stringOption(optionMap(data.Options), "name")
	switch err := b.svcs.Gangs.Remove(ctx, name); {
	case errors.Is(err, gang.ErrNotFound):
		return replyEphemeral(s, i, fmt.Sprintf("Gang %q not found.", name))
	case err != nil:
		return fmt.Errorf("removing gang: %w", err)
	}
	return replyEphemeral(s, i, fmt.Sprintf("Gang %q has been removed from the list.", name))
}

func (b *Bot) handleGangs(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	gangs, err := b.svcs.Gangs.List(ctx)
	if err != nil {
		return fmt.Errorf("listing gangs: %w", err)
	}
	if len(gangs) == 0 {
		return replyEphemeral(s, i, "No gangs have been added yet. Use /gangadd to add gangs.")
	}
	return replyEphemeralEmbed(s, i, gangListEmbed(gangs))
}

func (b *Bot) handleStream(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) error {
	link := stringOption(optionMap(data.Options), "link")

	// Validation happens before any channel lookup.
	if err := b.svcs.Streams.Validate(link); err != nil {
		if errors.Is(err, stream.ErrNotYouTube) {
			return replyEphemeral(s, i, "Only YouTube links (youtube.com / youtu.be) can be announced.")
		}
		return fmt.Errorf("validating stream link: %w", err)
	}

	cfg, err := b.svcs.Config.Get(ctx)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Channels.Stream == nil || cfg.Channels.Stream.ChannelID == "" {
		return replyEphemeral(s, i, "No stream channel set. Use /channel type:stream first.")
	}

	announcement := b.svcs.Streams.Announcement(link, interactionUser(i).ID)
	if _, err := s.ChannelMessageSend(cfg.Channels.Stream.ChannelID, announcement); err != nil {
		return fmt.Errorf("sending stream announcement: %w", err)
	}
	return replyEphemeral(s, i, "Stream announced.")
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := opts[name]; ok {
		return opt.StringValue()
	}
	return ""
}
