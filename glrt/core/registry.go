package core

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// MaxLights is the size of the Light[] array declared by the shader.
const MaxLights = 64

var (
	ErrRegistryFull = errors.New("light registry full")
	ErrStaleHandle  = errors.New("stale light handle")
)

// LightHandle refers to one light of one registry. Handles stay valid for the
// lifetime of the registry; slots are never reordered or reused.
type LightHandle struct {
	owner uuid.UUID
	index int
}

// Index is the shader array slot of the light.
func (h LightHandle) Index() int {
	return h.index
}

func (h LightHandle) IsZero() bool {
	return h.owner == uuid.Nil
}

// LightRegistry is the ordered set of lights uploaded to the shader.
// Insertion order is the Light[] index order.
type LightRegistry struct {
	id       uuid.UUID
	capacity int
	lights   []Light
}

func NewLightRegistry() *LightRegistry {
	return NewLightRegistryWithCapacity(MaxLights)
}

// NewLightRegistryWithCapacity bounds the registry below MaxLights. A capacity
// outside 1..MaxLights is clamped to MaxLights.
func NewLightRegistryWithCapacity(capacity int) *LightRegistry {
	if capacity <= 0 || capacity > MaxLights {
		capacity = MaxLights
	}
	return &LightRegistry{
		id:       uuid.New(),
		capacity: capacity,
		lights:   make([]Light, 0, capacity),
	}
}

// Add appends a light and returns its handle. Overflowing the shader array
// panics: dropping a light would leave cached handles pointing at nothing.
func (r *LightRegistry) Add(l Light) LightHandle {
	if len(r.lights) >= r.capacity {
		panic(fmt.Errorf("%w: capacity %d", ErrRegistryFull, r.capacity))
	}
	r.lights = append(r.lights, l)
	return LightHandle{owner: r.id, index: len(r.lights) - 1}
}

// Get returns the light for h. The pointer is valid until the next Add.
func (r *LightRegistry) Get(h LightHandle) *Light {
	if h.owner != r.id || h.index < 0 || h.index >= len(r.lights) {
		panic(fmt.Errorf("%w: index %d", ErrStaleHandle, h.index))
	}
	return &r.lights[h.index]
}

// At returns the light in slot i.
func (r *LightRegistry) At(i int) *Light {
	return &r.lights[i]
}

func (r *LightRegistry) Len() int {
	return len(r.lights)
}

func (r *LightRegistry) Cap() int {
	return r.capacity
}

// Each visits the lights in slot order.
func (r *LightRegistry) Each(fn func(i int, l *Light)) {
	for i := range r.lights {
		fn(i, &r.lights[i])
	}
}

// EnabledCount returns how many lights currently contribute to shading.
func (r *LightRegistry) EnabledCount() int {
	n := 0
	for i := range r.lights {
		if r.lights[i].enabled {
			n++
		}
	}
	return n
}
