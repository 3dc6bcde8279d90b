package discord

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/renval/gangboard/internal/board"
	"github.com/renval/gangboard/internal/domain/activity"
)

// Step identifies which point of an interactive flow a control belongs to.
type Step string

const (
	StepQuickType Step = "qa" // quickadd category button
	StepSearch    Step = "sp" // gang filter modal
	StepPickGang  Step = "gp" // gang select menu
	StepOfferGang Step = "oc" // offer-create button (flow branch)
	StepNewGang   Step = "ng" // new gang modal
	StepDescribe  Step = "de" // description modal
	StepCreateLog Step = "cg" // create gang then commit pending activity
	StepPage      Step = "pg" // board paging button
)

const tokenPrefix = "gb"

// Token is the state a control round-trips between flow steps. There is no
// server-held session; everything a step needs rides in its custom ID.
type Token struct {
	Step Step
	Type activity.Type // zero when the step carries no category
	Move board.Move    // paging steps only
	Name string        // gang name or search-query carry
}

// EncodeToken serializes a token into a component custom ID. The one
// free-text field is base64url-encoded, so gang names may contain the
// separator (or anything else) without corrupting decoding.
func EncodeToken(t Token) string {
	move := ""
	if t.Step == StepPage {
		move = t.Move.Name()
	}
	name := base64.RawURLEncoding.EncodeToString([]byte(t.Name))
	return strings.Join([]string{tokenPrefix, string(t.Step), t.Type.Code, move, name}, ":")
}

// DecodeToken parses a custom ID produced by EncodeToken. This is the single
// decode boundary for all flow controls.
func DecodeToken(id string) (Token, error) {
	parts := strings.Split(id, ":")
	if len(parts) != 5 || parts[0] != tokenPrefix {
		return Token{}, fmt.Errorf("malformed flow token %q", id)
	}

	tok := Token{Step: Step(parts[1])}
	switch tok.Step {
	case StepQuickType, StepSearch, StepPickGang, StepOfferGang,
		StepNewGang, StepDescribe, StepCreateLog, StepPage:
	default:
		return Token{}, fmt.Errorf("unknown flow step %q", parts[1])
	}

	if parts[2] != "" {
		t, ok := activity.TypeByCode(parts[2])
		if !ok {
			return Token{}, fmt.Errorf("unknown activity type code %q", parts[2])
		}
		tok.Type = t
	}

	if tok.Step == StepPage {
		m, ok := board.MoveByName(parts[3])
		if !ok {
			return Token{}, fmt.Errorf("unknown paging move %q", parts[3])
		}
		tok.Move = m
	}

	name, err := base64.RawURLEncoding.DecodeString(parts[4])
	if err != nil {
		return Token{}, fmt.Errorf("decoding token payload: %w", err)
	}
	tok.Name = string(name)

	return tok, nil
}

// IsFlowID reports whether a custom ID belongs to this bot's flows.
func IsFlowID(id string) bool {
	return strings.HasPrefix(id, tokenPrefix+":")
}
