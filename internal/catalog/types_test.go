package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestType_String(t *testing.T) {
	require.Equal(t, "GRASS", Grass.String())
	require.Equal(t, "ICE", Ice.String())
	require.Equal(t, "UNKNOWN", Type(99).String())
	require.Equal(t, "UNKNOWN", Type(-1).String())
}

func TestParseType(t *testing.T) {
	for _, typ := range Types() {
		got, err := ParseType(" " + typ.String() + " ")
		require.NoError(t, err)
		require.Equal(t, typ, got)
	}

	got, err := ParseType("psychic")
	require.NoError(t, err)
	require.Equal(t, Psychic, got)

	_, err = ParseType("steel")
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestType_YAMLRoundTrip(t *testing.T) {
	out, err := yaml.Marshal(map[string]Type{"type": Ghost})
	require.NoError(t, err)
	require.Equal(t, "type: GHOST\n", string(out))

	var decoded map[string]Type
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	require.Equal(t, Ghost, decoded["type"])
}
