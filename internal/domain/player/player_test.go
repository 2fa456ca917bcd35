package player_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/player"
)

func TestParseSpec(t *testing.T) {
	spec, err := player.ParseSpec(" Kokorin ,Forward,  Spartak ")

	require.NoError(t, err)
	assert.Equal(t, player.Spec{Name: "Kokorin", Position: "Forward", Club: "Spartak"}, spec)
}

func TestParseSpec_Invalid(t *testing.T) {
	for _, text := range []string{"", "Kokorin", "Kokorin, Forward", "Kokorin, , Spartak", "a, b, c, d"} {
		_, err := player.ParseSpec(text)
		assert.Error(t, err, text)
	}
}

func TestNewPlayer(t *testing.T) {
	p, err := player.NewPlayer("Vlasic ", "Midfielder", " CSKA")

	require.NoError(t, err)
	assert.Equal(t, "Vlasic, Midfielder, CSKA", p.Label())
	assert.True(t, p.ID.IsZero())
}
