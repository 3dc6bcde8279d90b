package activity_test

import (
	"encoding/json"
	"testing"

	"github.com/renval/gangboard/internal/domain/activity"
	"github.com/stretchr/testify/require"
)

func TestTypeOrderIsFixed(t *testing.T) {
	labels := []string{}
	for _, typ := range activity.Types() {
		labels = append(labels, typ.Label)
	}
	require.Equal(t, []string{"Our Turn", "Opps Turn", "EBK", "No Beef"}, labels)
}

func TestTypeLookups(t *testing.T) {
	typ, ok := activity.TypeByCode("ebk")
	require.True(t, ok)
	require.Equal(t, activity.TypeEBK, typ)

	typ, ok = activity.TypeByLabel("No Beef")
	require.True(t, ok)
	require.Equal(t, activity.TypeNoBeef, typ)

	_, ok = activity.TypeByLabel("no beef")
	require.False(t, ok)
	_, ok = activity.TypeByCode("zz")
	require.False(t, ok)
}

func TestTypeJSONUsesLabel(t *testing.T) {
	data, err := json.Marshal(activity.TypeOppsTurn)
	require.NoError(t, err)
	require.JSONEq(t, `"Opps Turn"`, string(data))

	var typ activity.Type
	require.NoError(t, json.Unmarshal([]byte(`"EBK"`), &typ))
	require.Equal(t, activity.TypeEBK, typ)
}

func TestTypeJSONToleratesUnknownLabel(t *testing.T) {
	var typ activity.Type
	require.NoError(t, json.Unmarshal([]byte(`"Retired"`), &typ))
	require.False(t, typ.Valid())
	require.Equal(t, "Retired", typ.Label)
}
