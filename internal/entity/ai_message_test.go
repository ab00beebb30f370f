package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewAIMessageStartsUnsent(t *testing.T) {
	message := NewAIMessage("lead-1", "camp-1", "Olá Ana!")

	assert.NotEmpty(t, message.ID)
	assert.False(t, message.IsSent)
	assert.Nil(t, message.SentAt)
}

func TestMarkSentSetsFlagAndTimestampTogether(t *testing.T) {
	message := NewAIMessage("lead-1", "camp-1", "Olá Ana!")
	at := time.Now()

	err := message.MarkSent(at)

	assert.NoError(t, err)
	assert.True(t, message.IsSent)
	assert.NotNil(t, message.SentAt)
	assert.Equal(t, at, *message.SentAt)
}

func TestMarkSentIsOneWay(t *testing.T) {
	message := NewAIMessage("lead-1", "camp-1", "Olá Ana!")
	first := time.Now()
	assert.NoError(t, message.MarkSent(first))

	err := message.MarkSent(first.Add(time.Hour))

	assert.ErrorIs(t, err, ErrMessageAlreadySent)
	// O timestamp original permanece.
	assert.Equal(t, first, *message.SentAt)
}
