package artemis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransport_MovesLauncherAndDeckLights(t *testing.T) {
	h := newHarness(t, 0)
	h.frame()

	h.input.Pressed[KeyUp] = true
	h.frame()

	assert.InDelta(t, -4.3, h.scene.Transport.Position.Z(), 1e-5)
	deck := h.write(t, "Light[6].position").Vec3
	assert.InDelta(t, -1.23, deck.X(), 1e-5)
	assert.InDelta(t, 0.45, deck.Y(), 1e-5)
	assert.InDelta(t, -4.3, deck.Z(), 1e-5)
}

func TestTransportControls(t *testing.T) {
	input := &Input{}
	input.Pressed[KeyDown] = true
	input.Pressed[KeyLeft] = true

	c := transportControls(input)
	assert.False(t, c.Forward)
	assert.True(t, c.Backward)
	assert.True(t, c.Left)
	assert.False(t, c.Right)
}
