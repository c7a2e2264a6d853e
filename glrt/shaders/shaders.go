package shaders

import (
	_ "embed"
	"strings"

	"github.com/artemisgen/artemis/glrt/core"
)

//go:embed basic.vert
var BasicVert string

//go:embed basic.frag
var BasicFrag string

// MaxLights is the size of the Light uniform array in basic.frag; it is the
// registry bound.
const MaxLights = core.MaxLights

// Source returns src NUL-terminated for the GL loader.
func Source(src string) string {
	if strings.HasSuffix(src, "\x00") {
		return src
	}
	return src + "\x00"
}
