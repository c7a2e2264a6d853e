package artemis

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artemisgen/artemis/glrt/core"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

// twoRowImage is red on top, blue on the bottom row.
func twoRowImage(w int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, 2))
	for x := 0; x < w; x++ {
		img.Set(x, 0, red)
		img.Set(x, 1, blue)
	}
	return img
}

func TestAssetServer_AddMesh(t *testing.T) {
	server := NewAssetServer()
	a := server.AddMesh(core.Plane())
	b := server.AddMesh(core.Box(1, 1, 1))
	assert.NotEqual(t, a, b)

	m, ok := server.Mesh(b)
	require.True(t, ok)
	assert.Equal(t, 24, m.VertexCount())

	_, ok = server.Mesh("missing")
	assert.False(t, ok)

	seen := 0
	server.EachMesh(func(AssetId, core.MeshData) { seen++ })
	assert.Equal(t, 2, seen)
}

func TestAssetServer_AddTextureFlipsRows(t *testing.T) {
	server := NewAssetServer()
	id := server.AddTexture(twoRowImage(3))

	tex, ok := server.Texture(id)
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 3, 2), tex.Bounds())
	assert.Equal(t, blue, tex.RGBAAt(0, 0), "bottom row first")
	assert.Equal(t, red, tex.RGBAAt(2, 1))
}

func TestAssetServer_LoadTexture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ground.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, twoRowImage(4)))
	require.NoError(t, f.Close())

	server := NewAssetServer()
	id, err := server.LoadTexture(path)
	require.NoError(t, err)

	tex, ok := server.Texture(id)
	require.True(t, ok)
	assert.Equal(t, 4, tex.Bounds().Dx())
	assert.Equal(t, blue, tex.RGBAAt(3, 0))
}

func TestAssetServer_LoadTextureErrors(t *testing.T) {
	server := NewAssetServer()

	_, err := server.LoadTexture(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorContains(t, err, "open texture")

	path := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))
	_, err = server.LoadTexture(path)
	assert.ErrorContains(t, err, "decode texture")

	count := 0
	server.EachTexture(func(AssetId, *image.RGBA) { count++ })
	assert.Zero(t, count)
}

func TestAssetServer_LargeTexturesAreScaled(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, MaxTextureSize*2, 8))
	server := NewAssetServer()
	tex, _ := server.Texture(server.AddTexture(img))

	assert.Equal(t, MaxTextureSize, tex.Bounds().Dx())
	assert.Equal(t, 4, tex.Bounds().Dy())
}

func TestAssetServer_CheckerTexture(t *testing.T) {
	server := NewAssetServer()
	tex, ok := server.Texture(server.CheckerTexture(64, red, blue))
	require.True(t, ok)

	// 8px cells, eight rows of them; the flip inverts the row parity.
	assert.Equal(t, blue, tex.RGBAAt(0, 0))
	assert.Equal(t, red, tex.RGBAAt(8, 0))
	assert.Equal(t, red, tex.RGBAAt(0, 8))
	assert.Equal(t, blue, tex.RGBAAt(8, 8))
	assert.Equal(t, blue, tex.RGBAAt(63, 63))
}
