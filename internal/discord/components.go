package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/renval/gangboard/internal/domain/activity"
	"github.com/renval/gangboard/internal/domain/gang"
)

// Text input IDs inside modals (scoped per modal, not flow-encoded).
const (
	inputFilter      = "filter"
	inputGangName    = "gang_name"
	inputDescription = "description"
)

func (b *Bot) handleComponent(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.MessageComponentData()
	if !IsFlowID(data.CustomID) {
		return nil
	}
	tok, err := DecodeToken(data.CustomID)
	if err != nil {
		return fmt.Errorf("decoding component token: %w", err)
	}

	switch tok.Step {
	case StepPage:
		return b.handlePaging(ctx, s, i, tok)

	case StepQuickType:
		gangs, err := b.svcs.Gangs.List(ctx)
		if err != nil {
			return fmt.Errorf("listing gangs: %w", err)
		}
		if len(gangs) == 0 {
			// Nothing to pick from yet; go straight to gang creation.
			return b.openNewGangModal(s, i, tok.Type, "")
		}
		return b.openSearchModal(s, i, tok.Type)

	case StepPickGang:
		if len(data.Values) == 0 {
			return replyEphemeral(s, i, "Pick a gang from the list.")
		}
		return b.openDescriptionModal(s, i, tok.Type, data.Values[0])

	case StepOfferGang:
		return b.openNewGangModal(s, i, tok.Type, tok.Name)

	case StepCreateLog:
		// Direct-path confirm: create the gang, then commit the activity
		// with the description carried on the offer message.
		if err := b.svcs.Gangs.Add(ctx, tok.Name); err != nil && !errors.Is(err, gang.ErrDuplicate) {
			if errors.Is(err, gang.ErrInvalidName) {
				return replyEphemeral(s, i, fmt.Sprintf("Gang names must be 1-%d characters.", gang.MaxNameBytes))
			}
			return fmt.Errorf("adding gang: %w", err)
		}
		return b.commitActivity(ctx, s, i, tok.Type, tok.Name, pendingDescription(i.Message))
	}

	return fmt.Errorf("unexpected component step %q", tok.Step)
}

func (b *Bot) handleModal(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ModalSubmitData()
	if !IsFlowID(data.CustomID) {
		return nil
	}
	tok, err := DecodeToken(data.CustomID)
	if err != nil {
		return fmt.Errorf("decoding modal token: %w", err)
	}

	switch tok.Step {
	case StepSearch:
		return b.handleSearchSubmit(ctx, s, i, tok, textInput(data, inputFilter))

	case StepNewGang:
		name := strings.TrimSpace(textInput(data, inputGangName))
		description := textInput(data, inputDescription)
		switch err := b.svcs.Gangs.Add(ctx, name); {
		case errors.Is(err, gang.ErrInvalidName):
			return replyEphemeral(s, i, fmt.Sprintf("Gang names must be 1-%d characters.", gang.MaxNameBytes))
		case errors.Is(err, gang.ErrDuplicate):
			return replyEphemeral(s, i, fmt.Sprintf("Gang %q already exists. Use /activity to log for it.", name))
		case err != nil:
			return fmt.Errorf("adding gang: %w", err)
		}
		return b.commitActivity(ctx, s, i, tok.Type, name, description)

	case StepDescribe:
		return b.commitActivity(ctx, s, i, tok.Type, tok.Name, textInput(data, inputDescription))
	}

	return fmt.Errorf("unexpected modal step %q", tok.Step)
}

func (b *Bot) handlePaging(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, tok Token) error {
	activities, err := b.svcs.Activities.All(ctx)
	if err != nil {
		return fmt.Errorf("loading activities: %w", err)
	}
	total := len(activity.ByType(activities, tok.Type))
	b.pager.Advance(tok.Type, total, tok.Move)

	// The paging buttons live on the board message itself; acknowledge the
	// press and let the refresh edit it.
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}); err != nil {
		return fmt.Errorf("acknowledging paging: %w", err)
	}
	if err := b.refresher.Refresh(ctx); err != nil {
		return fmt.Errorf("refreshing board: %w", err)
	}
	return nil
}

func (b *Bot) handleSearchSubmit(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, tok Token, query string) error {
	matches, err := b.svcs.Gangs.Search(ctx, query, maxChoices)
	if err != nil {
		return fmt.Errorf("searching gangs: %w", err)
	}

	if len(matches) == 0 {
		return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("No gangs match %q.", query),
				Components: []discordgo.MessageComponent{discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{discordgo.Button{
						Label:    "Add a new gang",
						Style:    discordgo.PrimaryButton,
						CustomID: EncodeToken(Token{Step: StepOfferGang, Type: tok.Type, Name: clampBytes(query, gang.MaxNameBytes)}),
					}},
				}},
				Flags: discordgo.MessageFlagsEphemeral,
			},
		})
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    fmt.Sprintf("Logging a %s activity — pick the gang:", tok.Type.Label),
			Components: []discordgo.MessageComponent{gangPickerRow(tok.Type, matches)},
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
}

func (b *Bot) openSearchModal(s *discordgo.Session, i *discordgo.InteractionCreate, t activity.Type) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: EncodeToken(Token{Step: StepSearch, Type: t}),
			Title:    fmt.Sprintf("%s — find the gang", t.Label),
			Components: []discordgo.MessageComponent{discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{discordgo.TextInput{
					CustomID:    inputFilter,
					Label:       "Gang name filter (leave empty for all)",
					Style:       discordgo.TextInputShort,
					Placeholder: "e.g. dragons",
					MaxLength:   gang.MaxNameBytes,
				}},
			}},
		},
	})
}

func (b *Bot) openNewGangModal(s *discordgo.Session, i *discordgo.InteractionCreate, t activity.Type, prefill string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: EncodeToken(Token{Step: StepNewGang, Type: t}),
			Title:    fmt.Sprintf("%s — new gang", t.Label),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{discordgo.TextInput{
						CustomID:  inputGangName,
						Label:     "Gang name",
						Style:     discordgo.TextInputShort,
						Value:     prefill,
						Required:  true,
						MaxLength: gang.MaxNameBytes,
					}},
				},
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{discordgo.TextInput{
						CustomID:  inputDescription,
						Label:     "Description (optional)",
						Style:     discordgo.TextInputParagraph,
						MaxLength: DescriptionMaxLength,
					}},
				},
			},
		},
	})
}

func (b *Bot) openDescriptionModal(s *discordgo.Session, i *discordgo.InteractionCreate, t activity.Type, gangName string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: EncodeToken(Token{Step: StepDescribe, Type: t, Name: gangName}),
			Title:    fmt.Sprintf("%s — %s", t.Label, clampBytes(gangName, 30)),
			Components: []discordgo.MessageComponent{discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{discordgo.TextInput{
					CustomID:  inputDescription,
					Label:     "Description (optional)",
					Style:     discordgo.TextInputParagraph,
					MaxLength: DescriptionMaxLength,
				}},
			}},
		},
	})
}

func textInput(data discordgo.ModalSubmitInteractionData, id string) string {
	for _, row := range data.Components {
		ar, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, c := range ar.Components {
			if ti, ok := c.(*discordgo.TextInput); ok && ti.CustomID == id {
				return ti.Value
			}
		}
	}
	return ""
}

// pendingDescription recovers the description a direct /activity submission
// carried, shown on (and round-tripped through) the offer message's embed.
func pendingDescription(m *discordgo.Message) string {
	if m == nil || len(m.Embeds) == 0 {
		return ""
	}
	return m.Embeds[0].Description
}

// clampBytes truncates s to at most n bytes without splitting a rune.
func clampBytes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && s[n]&0xC0 == 0x80 {
		n--
	}
	return s[:n]
}
