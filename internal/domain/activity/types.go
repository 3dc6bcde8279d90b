package activity

import (
	"encoding/json"
	"fmt"
)

// Type is one category a gang's current status can hold. The label is what
// gets stored and displayed, the code is the compact form used in component
// custom IDs, and the color keys the board embed for the category.
type Type struct {
	Label string
	Code  string
	Color int
}

var (
	TypeOurTurn  = Type{Label: "Our Turn", Code: "ot", Color: 0x00FF00}
	TypeOppsTurn = Type{Label: "Opps Turn", Code: "op", Color: 0xFF0000}
	TypeEBK      = Type{Label: "EBK", Code: "ebk", Color: 0xFFA500}
	TypeNoBeef   = Type{Label: "No Beef", Code: "nb", Color: 0x0000FF}
)

// Types returns every category in board display order. The order is fixed by
// hand, never derived from data.
func Types() []Type {
	return []Type{TypeOurTurn, TypeOppsTurn, TypeEBK, TypeNoBeef}
}

// TypeByLabel resolves a display label to its Type.
func TypeByLabel(label string) (Type, bool) {
	for _, t := range Types() {
		if t.Label == label {
			return t, true
		}
	}
	return Type{}, false
}

// TypeByCode resolves a short code to its Type.
func TypeByCode(code string) (Type, bool) {
	for _, t := range Types() {
		if t.Code == code {
			return t, true
		}
	}
	return Type{}, false
}

// Valid reports whether t is one of the declared categories.
func (t Type) Valid() bool {
	_, ok := TypeByLabel(t.Label)
	return ok && t.Code != ""
}

func (t Type) String() string {
	return t.Label
}

// MarshalJSON stores the display label, matching the document format the
// original data files use.
func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Label)
}

// UnmarshalJSON accepts any label. Unknown labels yield a Type that is not
// Valid and never matches a board category; the entry is kept rather than
// failing the whole document.
func (t *Type) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return fmt.Errorf("activity type: %w", err)
	}
	if known, ok := TypeByLabel(label); ok {
		*t = known
		return nil
	}
	*t = Type{Label: label}
	return nil
}
