package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/renval/gangboard/internal/board"
	"github.com/renval/gangboard/internal/domain/activity"
	"github.com/stretchr/testify/require"
)

func TestCategoryEmbedMapsViewFields(t *testing.T) {
	v := board.CategoryView{
		Type:       activity.TypeEBK,
		Title:      "EBK Activities",
		Body:       "1. **Crips** (01/03/2024)",
		Footer:     "Page 1/2 • 30 activities",
		TotalPages: 2,
		Total:      30,
	}

	embed := categoryEmbed(v)
	require.Equal(t, "EBK Activities", embed.Title)
	require.Equal(t, v.Body, embed.Description)
	require.Equal(t, activity.TypeEBK.Color, embed.Color)
	require.NotNil(t, embed.Footer)
	require.Equal(t, v.Footer, embed.Footer.Text)
}

func TestCategoryEmbedOmitsEmptyFooter(t *testing.T) {
	embed := categoryEmbed(board.CategoryView{Type: activity.TypeNoBeef, Title: "No Beef Activities", Body: board.EmptyCategory, TotalPages: 1})
	require.Nil(t, embed.Footer)
}

func pagingButtons(t *testing.T, row discordgo.ActionsRow) []discordgo.Button {
	t.Helper()
	buttons := make([]discordgo.Button, 0, len(row.Components))
	for _, c := range row.Components {
		btn, ok := c.(discordgo.Button)
		require.True(t, ok)
		buttons = append(buttons, btn)
	}
	return buttons
}

func TestPagingRowDisablesEdges(t *testing.T) {
	// First page: backward controls disabled.
	row := pagingRow(board.CategoryView{Type: activity.TypeEBK, Page: 0, TotalPages: 3})
	buttons := pagingButtons(t, row)
	require.Len(t, buttons, 4)
	require.True(t, buttons[0].Disabled)  // First
	require.True(t, buttons[1].Disabled)  // Prev
	require.False(t, buttons[2].Disabled) // Next
	require.False(t, buttons[3].Disabled) // Last

	// Last page: forward controls disabled.
	row = pagingRow(board.CategoryView{Type: activity.TypeEBK, Page: 2, TotalPages: 3})
	buttons = pagingButtons(t, row)
	require.False(t, buttons[0].Disabled)
	require.False(t, buttons[1].Disabled)
	require.True(t, buttons[2].Disabled)
	require.True(t, buttons[3].Disabled)

	// Middle page: everything enabled.
	row = pagingRow(board.CategoryView{Type: activity.TypeEBK, Page: 1, TotalPages: 3})
	for _, btn := range pagingButtons(t, row) {
		require.False(t, btn.Disabled)
	}
}

func TestPagingRowTokensTargetTheCategory(t *testing.T) {
	row := pagingRow(board.CategoryView{Type: activity.TypeOppsTurn, Page: 1, TotalPages: 3})
	moves := []board.Move{board.MoveFirst, board.MovePrev, board.MoveNext, board.MoveLast}
	for idx, btn := range pagingButtons(t, row) {
		tok, err := DecodeToken(btn.CustomID)
		require.NoError(t, err)
		require.Equal(t, StepPage, tok.Step)
		require.Equal(t, activity.TypeOppsTurn, tok.Type)
		require.Equal(t, moves[idx], tok.Move)
	}
}

func TestBoardComponentsOnlyForMultiPageCategories(t *testing.T) {
	views := []board.CategoryView{
		{Type: activity.TypeOurTurn, TotalPages: 1},
		{Type: activity.TypeOppsTurn, TotalPages: 2},
		{Type: activity.TypeEBK, TotalPages: 1},
		{Type: activity.TypeNoBeef, TotalPages: 3},
	}
	rows := boardComponents(views)
	require.Len(t, rows, 2)
}

func TestQuickAddRowHasOneButtonPerType(t *testing.T) {
	row := quickAddRow()
	require.Len(t, row.Components, len(activity.Types()))
	for idx, c := range row.Components {
		btn := c.(discordgo.Button)
		require.Equal(t, activity.Types()[idx].Label, btn.Label)
		tok, err := DecodeToken(btn.CustomID)
		require.NoError(t, err)
		require.Equal(t, StepQuickType, tok.Step)
		require.Equal(t, activity.Types()[idx], tok.Type)
	}
}

func TestGangPickerRowListsOptionsInOrder(t *testing.T) {
	row := gangPickerRow(activity.TypeEBK, []string{"A", "B", "C"})
	menu := row.Components[0].(discordgo.SelectMenu)
	require.Len(t, menu.Options, 3)
	require.Equal(t, "A", menu.Options[0].Value)
	require.Equal(t, "C", menu.Options[2].Value)

	tok, err := DecodeToken(menu.CustomID)
	require.NoError(t, err)
	require.Equal(t, StepPickGang, tok.Step)
	require.Equal(t, activity.TypeEBK, tok.Type)
}

func TestConfirmationEmbed(t *testing.T) {
	entry := &activity.Activity{
		GangName:    "Red Dragons",
		Type:        activity.TypeNoBeef,
		Description: "truce",
	}

	added := confirmationEmbed(entry, false)
	require.Equal(t, "Activity Added", added.Title)
	require.Contains(t, added.Description, "**Red Dragons** [truce]")
	require.Equal(t, activity.TypeNoBeef.Color, added.Color)
	require.Equal(t, "Type: No Beef", added.Footer.Text)

	updated := confirmationEmbed(entry, true)
	require.Equal(t, "Activity Updated", updated.Title)
}

func TestPendingActivityEmbedCarriesDescriptionVerbatim(t *testing.T) {
	desc := "seen at the corner [with :colons: and \"quotes\"]"
	embed := pendingActivityEmbed(activity.TypeEBK, "Red Dragons", desc)
	require.Equal(t, desc, embed.Description)

	msg := &discordgo.Message{Embeds: []*discordgo.MessageEmbed{embed}}
	require.Equal(t, desc, pendingDescription(msg))
	require.Empty(t, pendingDescription(&discordgo.Message{}))
}

func TestGangListEmbed(t *testing.T) {
	embed := gangListEmbed([]string{"A", "B"})
	require.Equal(t, "Gang List", embed.Title)
	require.Equal(t, "A\nB", embed.Description)
	require.Equal(t, gangListColor, embed.Color)
}

func TestClampBytesKeepsRunesWhole(t *testing.T) {
	require.Equal(t, "abc", clampBytes("abc", 10))
	require.Equal(t, "ab", clampBytes("abcd", 2))
	// 2-byte runes: no partial rune survives the cut.
	require.Equal(t, "é", clampBytes("éé", 3))
}
