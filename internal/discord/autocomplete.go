package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// maxChoices is Discord's cap on autocomplete suggestions.
const maxChoices = 25

func (b *Bot) handleAutocomplete(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()

	var focused *discordgo.ApplicationCommandInteractionDataOption
	for _, opt := range data.Options {
		if opt.Focused {
			focused = opt
			break
		}
	}
	if focused == nil {
		return nil
	}
	if focused.Name != "gangname" && focused.Name != "name" {
		return nil
	}

	matches, err := b.svcs.Gangs.Search(ctx, focused.StringValue(), maxChoices)
	if err != nil {
		return fmt.Errorf("searching gangs: %w", err)
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(matches))
	for _, name := range matches {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  name,
			Value: name,
		})
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	})
}
