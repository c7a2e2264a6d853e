package artemis

import (
	"fmt"
	"image"

	"github.com/artemisgen/artemis/glrt/core"
	"github.com/artemisgen/artemis/glrt/gpu"
)

// GLRenderer draws with the embedded basic program on the current OpenGL
// context.
type GLRenderer struct {
	*gpu.Program
	meshes   map[AssetId]*gpu.Mesh
	textures map[AssetId]*gpu.Texture
}

func NewGLRenderer() *GLRenderer {
	return &GLRenderer{
		meshes:   make(map[AssetId]*gpu.Mesh),
		textures: make(map[AssetId]*gpu.Texture),
	}
}

func (r *GLRenderer) Upload(assets *AssetServer) error {
	if r.Program == nil {
		p, err := gpu.NewBasicProgram()
		if err != nil {
			return err
		}
		r.Program = p
	}

	assets.EachMesh(func(id AssetId, m core.MeshData) {
		if _, ok := r.meshes[id]; !ok {
			r.meshes[id] = gpu.UploadMesh(m)
		}
	})
	assets.EachTexture(func(id AssetId, img *image.RGBA) {
		if _, ok := r.textures[id]; !ok {
			r.textures[id] = gpu.UploadTexture(img)
		}
	})
	if len(r.meshes) == 0 {
		return fmt.Errorf("no meshes to draw")
	}

	r.Use()
	r.SetInt(core.UniformDiffuseTexture, 0)
	return nil
}

func (r *GLRenderer) BeginFrame(width, height int) {
	gpu.Viewport(width, height)
	gpu.Clear(0.1, 0.1, 0.1)
	r.Use()
}

func (r *GLRenderer) DrawMesh(mesh, texture AssetId) {
	if t, ok := r.textures[texture]; ok {
		t.Bind(0)
	}
	if m, ok := r.meshes[mesh]; ok {
		m.Draw()
	}
}

func (r *GLRenderer) Release() {
	for id, m := range r.meshes {
		m.Delete()
		delete(r.meshes, id)
	}
	for id, t := range r.textures {
		t.Delete()
		delete(r.textures, id)
	}
	if r.Program != nil {
		r.Program.Delete()
		r.Program = nil
	}
}
