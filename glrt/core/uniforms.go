package core

import (
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
)

// UniformWriter sets named uniforms on the active shader program.
type UniformWriter interface {
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetMat4(name string, v mgl32.Mat4)
}

// Uniform names shared with the shaders.
const (
	UniformLightCount        = "lightCount"
	UniformView              = "view"
	UniformProjection        = "projection"
	UniformModel             = "model"
	UniformEyePos            = "eyePos"
	UniformSpecularExponent  = "matSpecularExponent"
	UniformTextureScale      = "textureScale"
	UniformObjectColour      = "objectColour"
	UniformUseTexture        = "useTexture"
	UniformDiffuseTexture    = "texture_diffuse"
	lightArrayName           = "Light"
	LightFieldsPerLightGroup = 11
)

// LightFieldNames lists the per-light fields in upload order.
var LightFieldNames = [LightFieldsPerLightGroup]string{
	"enabled",
	"type",
	"position",
	"direction",
	"colour",
	"ambient",
	"intensity",
	"diffuse",
	"attenuation",
	"cutOff",
	"outerCutOff",
}

// LightUniform returns the uniform name of field for array slot i,
// e.g. Light[3].position.
func LightUniform(i int, field string) string {
	return lightArrayName + "[" + strconv.Itoa(i) + "]." + field
}

// SyncLights writes the light count followed by every field of every light,
// in registry order. Disabled lights are written too; only their enabled flag
// differs.
func SyncLights(w UniformWriter, reg *LightRegistry) {
	w.SetInt(UniformLightCount, int32(reg.Len()))
	reg.Each(func(i int, l *Light) {
		writeLight(w, i, l)
	})
}

func writeLight(w UniformWriter, i int, l *Light) {
	enabled := int32(0)
	if l.enabled {
		enabled = 1
	}
	w.SetInt(LightUniform(i, "enabled"), enabled)
	w.SetInt(LightUniform(i, "type"), int32(l.kind))
	w.SetVec3(LightUniform(i, "position"), l.position)
	w.SetVec3(LightUniform(i, "direction"), l.direction)
	w.SetVec3(LightUniform(i, "colour"), l.colour)
	w.SetVec4(LightUniform(i, "ambient"), l.ambient)
	w.SetFloat(LightUniform(i, "intensity"), l.intensity)
	w.SetVec3(LightUniform(i, "diffuse"), l.diffuse)
	w.SetVec3(LightUniform(i, "attenuation"), l.attenuation)
	w.SetFloat(LightUniform(i, "cutOff"), l.cutOff)
	w.SetFloat(LightUniform(i, "outerCutOff"), l.outerCutOff)
}

// FrameUniforms are the per-frame camera and material values.
type FrameUniforms struct {
	View             mgl32.Mat4
	Projection       mgl32.Mat4
	EyePos           mgl32.Vec3
	SpecularExponent float32
}

func SyncFrame(w UniformWriter, f FrameUniforms) {
	w.SetMat4(UniformView, f.View)
	w.SetMat4(UniformProjection, f.Projection)
	w.SetVec3(UniformEyePos, f.EyePos)
	w.SetFloat(UniformSpecularExponent, f.SpecularExponent)
}

// UniformKind tags the value held by a UniformWrite.
type UniformKind int

const (
	UniformInt UniformKind = iota
	UniformFloat
	UniformVec3
	UniformVec4
	UniformMat4
)

// UniformWrite is one recorded uniform assignment.
type UniformWrite struct {
	Name  string
	Kind  UniformKind
	Int   int32
	Float float32
	Vec3  mgl32.Vec3
	Vec4  mgl32.Vec4
	Mat4  mgl32.Mat4
}

func (u UniformWrite) String() string {
	switch u.Kind {
	case UniformInt:
		return fmt.Sprintf("%s = %d", u.Name, u.Int)
	case UniformFloat:
		return fmt.Sprintf("%s = %g", u.Name, u.Float)
	case UniformVec3:
		return fmt.Sprintf("%s = %v", u.Name, u.Vec3)
	case UniformVec4:
		return fmt.Sprintf("%s = %v", u.Name, u.Vec4)
	}
	return fmt.Sprintf("%s = %v", u.Name, u.Mat4)
}

// UniformRecorder is a UniformWriter that keeps every write in order.
type UniformRecorder struct {
	Writes []UniformWrite
}

func (r *UniformRecorder) SetInt(name string, v int32) {
	r.Writes = append(r.Writes, UniformWrite{Name: name, Kind: UniformInt, Int: v})
}

func (r *UniformRecorder) SetFloat(name string, v float32) {
	r.Writes = append(r.Writes, UniformWrite{Name: name, Kind: UniformFloat, Float: v})
}

func (r *UniformRecorder) SetVec3(name string, v mgl32.Vec3) {
	r.Writes = append(r.Writes, UniformWrite{Name: name, Kind: UniformVec3, Vec3: v})
}

func (r *UniformRecorder) SetVec4(name string, v mgl32.Vec4) {
	r.Writes = append(r.Writes, UniformWrite{Name: name, Kind: UniformVec4, Vec4: v})
}

func (r *UniformRecorder) SetMat4(name string, v mgl32.Mat4) {
	r.Writes = append(r.Writes, UniformWrite{Name: name, Kind: UniformMat4, Mat4: v})
}

// Last returns the most recent write to name.
func (r *UniformRecorder) Last(name string) (UniformWrite, bool) {
	for i := len(r.Writes) - 1; i >= 0; i-- {
		if r.Writes[i].Name == name {
			return r.Writes[i], true
		}
	}
	return UniformWrite{}, false
}

func (r *UniformRecorder) Reset() {
	r.Writes = r.Writes[:0]
}
