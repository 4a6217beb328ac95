package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicIDFromURL(t *testing.T) {
	t.Run("dengan segmen versi", func(t *testing.T) {
		id, err := PublicIDFromURL("https://res.cloudinary.com/demo/image/upload/v1712345678/promos/flash-sale.png")
		assert.NoError(t, err)
		assert.Equal(t, "promos/flash-sale", id)
	})

	t.Run("tanpa segmen versi", func(t *testing.T) {
		id, err := PublicIDFromURL("https://res.cloudinary.com/demo/image/upload/promos/flash-sale.png")
		assert.NoError(t, err)
		assert.Equal(t, "promos/flash-sale", id)
	})

	t.Run("tanpa folder", func(t *testing.T) {
		id, err := PublicIDFromURL("https://res.cloudinary.com/demo/image/upload/v123/abc.jpg")
		assert.NoError(t, err)
		assert.Equal(t, "abc", id)
	})

	t.Run("folder bersarang", func(t *testing.T) {
		id, err := PublicIDFromURL("https://res.cloudinary.com/demo/image/upload/v1/a/b/c.webp")
		assert.NoError(t, err)
		assert.Equal(t, "a/b/c", id)
	})

	t.Run("bukan URL cloudinary", func(t *testing.T) {
		_, err := PublicIDFromURL("https://example.com/foto.png")
		assert.Error(t, err)
	})

	t.Run("kosong setelah upload", func(t *testing.T) {
		_, err := PublicIDFromURL("https://res.cloudinary.com/demo/image/upload/")
		assert.Error(t, err)
	})
}
