package discord

import (
	"strings"
	"testing"

	"github.com/renval/gangboard/internal/board"
	"github.com/renval/gangboard/internal/domain/activity"
	"github.com/renval/gangboard/internal/domain/gang"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	cases := []Token{
		{Step: StepQuickType, Type: activity.TypeEBK},
		{Step: StepSearch, Type: activity.TypeOurTurn},
		{Step: StepPickGang, Type: activity.TypeNoBeef},
		{Step: StepOfferGang, Type: activity.TypeOppsTurn, Name: "dragons"},
		{Step: StepNewGang, Type: activity.TypeEBK},
		{Step: StepDescribe, Type: activity.TypeEBK, Name: "Red Dragons"},
		{Step: StepCreateLog, Type: activity.TypeNoBeef, Name: "Crips"},
		{Step: StepPage, Type: activity.TypeOurTurn, Move: board.MoveLast},
	}

	for _, tok := range cases {
		decoded, err := DecodeToken(EncodeToken(tok))
		require.NoError(t, err, "token %+v", tok)
		require.Equal(t, tok, decoded)
	}
}

func TestTokenSurvivesHostileGangNames(t *testing.T) {
	// Names containing the separator, or anything else, must not corrupt
	// decoding.
	names := []string{
		"a:b:c",
		"gb:pg:ebk:first:",
		"name with spaces",
		"émigré gäng 🔥",
		"::::",
	}
	for _, name := range names {
		tok := Token{Step: StepDescribe, Type: activity.TypeEBK, Name: name}
		decoded, err := DecodeToken(EncodeToken(tok))
		require.NoError(t, err)
		require.Equal(t, name, decoded.Name)
	}
}

func TestTokenFitsCustomIDLimit(t *testing.T) {
	longest := strings.Repeat("x", gang.MaxNameBytes)
	for _, step := range []Step{StepOfferGang, StepDescribe, StepCreateLog} {
		id := EncodeToken(Token{Step: step, Type: activity.TypeOppsTurn, Name: longest})
		require.LessOrEqual(t, len(id), 100, "custom ID for %s too long", step)
	}
}

func TestDecodeTokenRejectsGarbage(t *testing.T) {
	for _, id := range []string{
		"",
		"gb",
		"gb:de:ebk:",            // wrong arity
		"other:de:ebk::",        // wrong prefix
		"gb:zz:ebk::",           // unknown step
		"gb:de:zzz::",           // unknown type code
		"gb:pg:ebk:sideways:",   // unknown move
		"gb:de:ebk::!!!notb64",  // bad payload
		"gb:de:ebk::a:b:c:d:e",  // too many segments
	} {
		_, err := DecodeToken(id)
		require.Error(t, err, "expected %q to be rejected", id)
	}
}

func TestIsFlowID(t *testing.T) {
	require.True(t, IsFlowID(EncodeToken(Token{Step: StepQuickType, Type: activity.TypeEBK})))
	require.False(t, IsFlowID("some-other-bot:button"))
}
