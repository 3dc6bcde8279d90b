package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/renval/gangboard/internal/domain/activity"
)

// DescriptionMaxLength bounds activity descriptions so they stay renderable
// inside board rows and confirmation embeds.
const DescriptionMaxLength = 500

// Commands returns the bot's slash command definitions.
func Commands() []*discordgo.ApplicationCommand {
	typeChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(activity.Types()))
	for _, t := range activity.Types() {
		typeChoices = append(typeChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  t.Label,
			Value: t.Label,
		})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "activity",
			Description: "Add a gang activity to the list",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "gangname",
					Description:  "The name of the gang",
					Required:     true,
					Autocomplete: true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "type",
					Description: "Type of activity",
					Required:    true,
					Choices:     typeChoices,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "description",
					Description: "Description of the activity (optional)",
					MaxLength:   DescriptionMaxLength,
				},
			},
		},
		{
			Name:        "quickadd",
			Description: "Log an activity without typing a command",
		},
		{
			Name:        "channel",
			Description: "Set a channel for a specific purpose",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "type",
					Description: "The type of content to post in this channel",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Activity list", Value: "activity"},
						{Name: "Stream announcements", Value: "stream"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "The channel to use",
					Required:    true,
				},
			},
		},
		{
			Name:        "gangadd",
			Description: "Add a new gang to the list",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "The name of the gang to add",
					Required:    true,
				},
			},
		},
		{
			Name:        "gangremove",
			Description: "Remove a gang from the list",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "name",
					Description:  "The name of the gang to remove",
					Required:     true,
					Autocomplete: true,
				},
			},
		},
		{
			Name:        "gangs",
			Description: "View all gangs in the list",
		},
		{
			Name:        "stream",
			Description: "Announce a livestream",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "link",
					Description: "The YouTube link to announce",
					Required:    true,
				},
			},
		},
	}
}

// RegisterCommands overwrites the application's command set. An empty
// guildID registers globally.
func RegisterCommands(s *discordgo.Session, appID, guildID string) error {
	if _, err := s.ApplicationCommandBulkOverwrite(appID, guildID, Commands()); err != nil {
		return fmt.Errorf("registering commands: %w", err)
	}
	return nil
}
