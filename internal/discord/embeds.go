package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/renval/gangboard/internal/board"
	"github.com/renval/gangboard/internal/domain/activity"
)

// gangListColor is the fixed color of the /gangs listing embed.
const gangListColor = 0x0099FF

// categoryEmbed turns one rendered category into a board embed.
func categoryEmbed(v board.CategoryView) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       v.Title,
		Description: v.Body,
		Color:       v.Type.Color,
	}
	if v.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: v.Footer}
	}
	return embed
}

// boardEmbeds renders every category embed in board order.
func boardEmbeds(views []board.CategoryView) []*discordgo.MessageEmbed {
	embeds := make([]*discordgo.MessageEmbed, 0, len(views))
	for _, v := range views {
		embeds = append(embeds, categoryEmbed(v))
	}
	return embeds
}

// pagingRow builds the 4-control paging row for a multi-page category.
// First/Prev are disabled on the first page, Next/Last on the final one.
func pagingRow(v board.CategoryView) discordgo.ActionsRow {
	atFirst := v.Page == 0
	atLast := v.Page >= v.TotalPages-1

	btn := func(label string, m board.Move, disabled bool) discordgo.Button {
		return discordgo.Button{
			Label:    label,
			Style:    discordgo.SecondaryButton,
			CustomID: EncodeToken(Token{Step: StepPage, Type: v.Type, Move: m}),
			Disabled: disabled,
		}
	}

	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			btn("⏮ First", board.MoveFirst, atFirst),
			btn("◀ Prev", board.MovePrev, atFirst),
			btn("Next ▶", board.MoveNext, atLast),
			btn("Last ⏭", board.MoveLast, atLast),
		},
	}
}

// boardComponents returns one paging row per category that spans more than a
// page. Categories that fit on one page expose no controls at all.
func boardComponents(views []board.CategoryView) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent
	for _, v := range views {
		if v.HasPaging() {
			rows = append(rows, pagingRow(v))
		}
	}
	return rows
}

// quickAddRow offers one button per category, in board order.
func quickAddRow() discordgo.ActionsRow {
	buttons := make([]discordgo.MessageComponent, 0, len(activity.Types()))
	for _, t := range activity.Types() {
		buttons = append(buttons, discordgo.Button{
			Label:    t.Label,
			Style:    discordgo.PrimaryButton,
			CustomID: EncodeToken(Token{Step: StepQuickType, Type: t}),
		})
	}
	return discordgo.ActionsRow{Components: buttons}
}

// gangPickerRow builds the single-choice gang menu, capped upstream at 25.
func gangPickerRow(t activity.Type, gangs []string) discordgo.ActionsRow {
	options := make([]discordgo.SelectMenuOption, 0, len(gangs))
	for _, name := range gangs {
		options = append(options, discordgo.SelectMenuOption{Label: name, Value: name})
	}
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{discordgo.SelectMenu{
			MenuType:    discordgo.StringSelectMenu,
			CustomID:    EncodeToken(Token{Step: StepPickGang, Type: t}),
			Placeholder: "Select a gang",
			Options:     options,
		}},
	}
}

// offerCreateRow is the confirm control for the direct-command unknown-gang
// branch.
func offerCreateRow(t activity.Type, gangName string) discordgo.ActionsRow {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{discordgo.Button{
			Label:    "Create gang and log activity",
			Style:    discordgo.PrimaryButton,
			CustomID: EncodeToken(Token{Step: StepCreateLog, Type: t, Name: gangName}),
		}},
	}
}

// pendingActivityEmbed shows what will be logged once the gang is created.
// Its description doubles as the carrier for the pending activity
// description, so confirming preserves the text exactly as entered.
func pendingActivityEmbed(t activity.Type, gangName, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Create %q and log a %s activity?", gangName, t.Label),
		Description: description,
		Color:       t.Color,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Type: %s", t.Label)},
	}
}

// confirmationEmbed is the private reply after a successful upsert.
func confirmationEmbed(entry *activity.Activity, updated bool) *discordgo.MessageEmbed {
	title := "Activity Added"
	if updated {
		title = "Activity Updated"
	}
	desc := ""
	if entry.Description != "" {
		desc = fmt.Sprintf(" [%s]", entry.Description)
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("**%s**%s (%s)", entry.GangName, desc, board.FormatDate(time.Now())),
		Color:       entry.Type.Color,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Type: %s", entry.Type.Label)},
	}
}

// gangListEmbed is the /gangs listing.
func gangListEmbed(gangs []string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Gang List",
		Description: strings.Join(gangs, "\n"),
		Color:       gangListColor,
	}
}
