package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplaySize_NoDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "")

	w, h, err := DisplaySize()
	assert.Error(t, err)
	assert.Zero(t, w)
	assert.Zero(t, h)
}
