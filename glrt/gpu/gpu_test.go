package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGLOffset(t *testing.T) {
	assert.Nil(t, glOffset(0))
	assert.Equal(t, uintptr(24), uintptr(glOffset(24)))
}
