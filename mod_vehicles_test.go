package artemis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVehicles_HeadlightsTrailTrucks(t *testing.T) {
	h := newHarness(t, 2)
	h.frame()
	h.frame()

	v := h.scene.Vehicles[0]
	before := v.HeadlightPosition()
	h.frame()

	assert.Equal(t, before, h.write(t, "Light[9].position").Vec3)
	assert.NotEqual(t, before, v.HeadlightPosition(), "trucks drive after their light is placed")
}
