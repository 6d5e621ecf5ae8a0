package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseImageRef(t *testing.T) {
	ref := ParseImageRef("https://images.example.com/latte.jpg")
	assert.Equal(t, ImageKindExternal, ref.Kind)
	assert.Equal(t, "https://images.example.com/latte.jpg", ref.Value)
	assert.True(t, ref.IsExternal())

	ref = ParseImageRef("http://images.example.com/latte.jpg")
	assert.Equal(t, ImageKindExternal, ref.Kind)

	ref = ParseImageRef("posts/abc123.jpg")
	assert.Equal(t, ImageKindInternal, ref.Kind)
	assert.Equal(t, "posts/abc123.jpg", ref.Value)
	assert.True(t, ref.IsInternal())

	ref = ParseImageRef("")
	assert.Equal(t, ImageKindNone, ref.Kind)
	assert.True(t, ref.IsEmpty())
}
