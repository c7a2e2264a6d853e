package artemis

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/artemisgen/artemis/glrt/core"
)

type AssetId string

// MaxTextureSize is the largest edge kept on load; larger images are scaled
// down.
const MaxTextureSize = 2048

// AssetServer holds CPU-side meshes and textures until the renderer uploads
// them.
type AssetServer struct {
	meshes   map[AssetId]core.MeshData
	textures map[AssetId]*image.RGBA
}

type AssetServerModule struct{}

func NewAssetServer() *AssetServer {
	return &AssetServer{
		meshes:   make(map[AssetId]core.MeshData),
		textures: make(map[AssetId]*image.RGBA),
	}
}

func (AssetServerModule) Install(app *App, cmd *Commands) {
	app.addResources(NewAssetServer())
}

func (server *AssetServer) AddMesh(m core.MeshData) AssetId {
	id := makeAssetId()
	server.meshes[id] = m
	return id
}

func (server *AssetServer) Mesh(id AssetId) (core.MeshData, bool) {
	m, ok := server.meshes[id]
	return m, ok
}

func (server *AssetServer) Texture(id AssetId) (*image.RGBA, bool) {
	t, ok := server.textures[id]
	return t, ok
}

func (server *AssetServer) EachMesh(fn func(id AssetId, m core.MeshData)) {
	for id, m := range server.meshes {
		fn(id, m)
	}
}

func (server *AssetServer) EachTexture(fn func(id AssetId, img *image.RGBA)) {
	for id, img := range server.textures {
		fn(id, img)
	}
}

// AddTexture stores img as an RGBA texture, flipped so row 0 is the bottom
// as GL expects.
func (server *AssetServer) AddTexture(img image.Image) AssetId {
	id := makeAssetId()
	server.textures[id] = toTextureRGBA(img)
	return id
}

// LoadTexture decodes a PNG or JPEG file.
func (server *AssetServer) LoadTexture(filename string) (AssetId, error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", fmt.Errorf("open texture: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("decode texture %s: %w", filename, err)
	}
	return server.AddTexture(img), nil
}

// CheckerTexture generates a size×size two-tone checkerboard of 8 cells per
// edge.
func (server *AssetServer) CheckerTexture(size int, a, b color.RGBA) AssetId {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := size / 8
	if cell == 0 {
		cell = 1
	}
	draw.Draw(img, img.Bounds(), &image.Uniform{C: a}, image.Point{}, draw.Src)
	for y := 0; y < size; y += cell {
		for x := 0; x < size; x += cell {
			if (x/cell+y/cell)%2 == 1 {
				draw.Draw(img, image.Rect(x, y, x+cell, y+cell), &image.Uniform{C: b}, image.Point{}, draw.Src)
			}
		}
	}
	return server.AddTexture(img)
}

func toTextureRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > MaxTextureSize || h > MaxTextureSize {
		scale := float64(MaxTextureSize) / float64(max(w, h))
		w = max(1, int(float64(w)*scale))
		h = max(1, int(float64(h)*scale))
	}

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == bounds.Dx() && h == bounds.Dy() {
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	} else {
		draw.BiLinear.Scale(rgba, rgba.Bounds(), img, bounds, draw.Src, nil)
	}
	flipVertical(rgba)
	return rgba
}

func flipVertical(img *image.RGBA) {
	h := img.Rect.Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}
