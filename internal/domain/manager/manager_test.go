package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

func TestNewManager(t *testing.T) {
	m, err := NewManager("tg-1", "Arsene")

	require.NoError(t, err)
	assert.Equal(t, "tg-1", m.ExternalID)
	assert.Equal(t, "Arsene", m.Name)
	assert.True(t, m.ID.IsZero())
}

func TestNewManager_RequiresExternalID(t *testing.T) {
	_, err := NewManager("", "Arsene")

	var validation *shared.ValidationError
	assert.ErrorAs(t, err, &validation)
}
