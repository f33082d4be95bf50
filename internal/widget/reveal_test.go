package widget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevealInterval(t *testing.T) {
	tests := []struct {
		length int
		want   time.Duration
	}{
		{0, 60 * time.Millisecond},
		{5, 60 * time.Millisecond},
		{20, 60 * time.Millisecond},
		{24, 50 * time.Millisecond},
		{100, 12 * time.Millisecond},
		{150, 8 * time.Millisecond},
		{300, 8 * time.Millisecond},
		{1200, 8 * time.Millisecond},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RevealInterval(tt.length), "length %d", tt.length)
	}
}

func TestSpeakDelayFloorsAtReadingPause(t *testing.T) {
	// a short reply reveals in 300ms but is not spoken before 600ms
	assert.Equal(t, 600*time.Millisecond, speakDelay(5, 60*time.Millisecond))
}

func TestSpeakDelayCoversFullReveal(t *testing.T) {
	assert.Equal(t, 1200*time.Millisecond, speakDelay(100, 12*time.Millisecond))
}

func TestRevealTargetsFixedTurn(t *testing.T) {
	r := &reveal{turn: 3, full: []rune("héllo"), interval: 60 * time.Millisecond}
	assert.False(t, r.done())
	r.pos = len(r.full)
	assert.True(t, r.done())
	assert.Equal(t, 3, r.turn)
}
