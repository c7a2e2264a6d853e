package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncLights_EmptyRegistry(t *testing.T) {
	rec := &UniformRecorder{}
	SyncLights(rec, NewLightRegistry())

	require.Len(t, rec.Writes, 1)
	assert.Equal(t, UniformLightCount, rec.Writes[0].Name)
	assert.Equal(t, int32(0), rec.Writes[0].Int)
}

func TestSyncLights_DisabledLightsStillWritten(t *testing.T) {
	reg := NewLightRegistry()
	reg.Add(bulb(1))
	h1 := reg.Add(bulb(1))
	h2 := reg.Add(bulb(1))
	reg.Get(h1).SetEnabled(false)
	reg.Get(h2).SetEnabled(false)

	rec := &UniformRecorder{}
	SyncLights(rec, reg)

	require.Len(t, rec.Writes, 1+3*LightFieldsPerLightGroup)
	assert.Equal(t, int32(3), rec.Writes[0].Int)

	for i := 0; i < 3; i++ {
		for f, field := range LightFieldNames {
			w := rec.Writes[1+i*LightFieldsPerLightGroup+f]
			assert.Equal(t, LightUniform(i, field), w.Name)
		}
	}

	enabled := []int32{}
	for i := 0; i < 3; i++ {
		w, ok := rec.Last(LightUniform(i, "enabled"))
		require.True(t, ok)
		enabled = append(enabled, w.Int)
	}
	assert.Equal(t, []int32{1, 0, 0}, enabled)
}

func TestSyncLights_EveryFrameNoDiffing(t *testing.T) {
	reg := NewLightRegistry()
	reg.Add(bulb(1))
	reg.Add(bulb(2))

	rec := &UniformRecorder{}
	SyncLights(rec, reg)
	first := len(rec.Writes)
	SyncLights(rec, reg)

	assert.Equal(t, 2*first, len(rec.Writes))
	assert.Equal(t, rec.Writes[:first], rec.Writes[first:])
}

func TestSyncLights_DirectionalMoonScenario(t *testing.T) {
	reg := NewLightRegistry()
	colour := mgl32.Vec3{0.05, 0.11, 0.28}
	dir := mgl32.Vec3{-0.6, -0.5, -0.7}
	reg.Add(NewLight(LightDirectional, mgl32.Vec3{}, colour, 0.5, dir))

	rec := &UniformRecorder{}
	SyncLights(rec, reg)

	w, _ := rec.Last("Light[0].type")
	assert.Equal(t, int32(LightDirectional), w.Int)
	w, _ = rec.Last("Light[0].direction")
	assert.Equal(t, dir, w.Vec3)
	w, _ = rec.Last("Light[0].colour")
	assert.Equal(t, colour, w.Vec3)
	w, _ = rec.Last("Light[0].intensity")
	assert.Equal(t, float32(0.5), w.Float)

	// Attenuation and cone are inert for a directional light but still sent.
	w, ok := rec.Last("Light[0].attenuation")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{1, 0.09, 0.032}, w.Vec3)
	w, ok = rec.Last("Light[0].cutOff")
	require.True(t, ok)
	assert.InDelta(t, math.Cos(12.5*math.Pi/180), w.Float, 1e-6)
	_, ok = rec.Last("Light[0].outerCutOff")
	assert.True(t, ok)
}

func TestSyncFrame(t *testing.T) {
	rec := &UniformRecorder{}
	view := mgl32.Translate3D(1, 2, 3)
	proj := mgl32.Perspective(1, 1, 0.1, 100)
	SyncFrame(rec, FrameUniforms{View: view, Projection: proj, EyePos: mgl32.Vec3{0, 5, 12}, SpecularExponent: 32})

	names := []string{}
	for _, w := range rec.Writes {
		names = append(names, w.Name)
	}
	assert.Equal(t, []string{UniformView, UniformProjection, UniformEyePos, UniformSpecularExponent}, names)
	assert.Equal(t, view, rec.Writes[0].Mat4)
	assert.Equal(t, float32(32), rec.Writes[3].Float)
}

func TestLightUniform(t *testing.T) {
	assert.Equal(t, "Light[12].outerCutOff", LightUniform(12, "outerCutOff"))
}
