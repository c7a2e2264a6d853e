package artemis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInput_SetButtonEdges(t *testing.T) {
	input := &Input{}

	input.SetButton(KeySpace, true)
	assert.True(t, input.Pressed[KeySpace])
	assert.True(t, input.JustPressed[KeySpace])

	input.SetButton(KeySpace, true)
	assert.True(t, input.Pressed[KeySpace])
	assert.False(t, input.JustPressed[KeySpace], "held keys press once")

	input.SetButton(KeySpace, false)
	assert.False(t, input.Pressed[KeySpace])
	assert.True(t, input.JustReleased[KeySpace])

	input.SetButton(KeySpace, false)
	assert.False(t, input.JustReleased[KeySpace])
}

func TestInput_SetCursor(t *testing.T) {
	input := &Input{}

	input.SetCursor(100, 50)
	assert.Zero(t, input.MouseDeltaX, "first sample has no delta")
	assert.Zero(t, input.MouseDeltaY)

	input.SetCursor(110, 45)
	assert.Equal(t, 10.0, input.MouseDeltaX)
	assert.Equal(t, -5.0, input.MouseDeltaY)
	assert.Equal(t, 110.0, input.MouseX)
}

func TestInput_KeyTablesCoverControls(t *testing.T) {
	for _, key := range []int{KeyW, KeyA, KeyS, KeyD, KeyUp, KeyDown, KeyLeft, KeyRight, KeySpace, KeyR, KeyEscape} {
		assert.Contains(t, keyToGlfw, key)
	}
	assert.Len(t, keyToGlfw, 11, "only the keys the controls read are polled")
	assert.Contains(t, mouseToGlfw, MouseButtonLeft)
}
