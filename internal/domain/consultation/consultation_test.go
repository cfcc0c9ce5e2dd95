package consultation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete(t *testing.T) {
	c := &Consultation{Status: StatusDraft}

	require.NoError(t, c.Complete())
	assert.Equal(t, StatusCompleted, c.Status)
	require.NotNil(t, c.CompletedAt)

	err := c.Complete()
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
	assert.Equal(t, StatusCompleted, c.Status)
}

func TestIsDraft(t *testing.T) {
	assert.True(t, (&Consultation{Status: StatusDraft}).IsDraft())
	assert.False(t, (&Consultation{Status: StatusCompleted}).IsDraft())
}
