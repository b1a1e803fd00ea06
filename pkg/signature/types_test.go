package signature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Jacobisaldana/signature-mail/pkg/signature"
)

func TestTemplateIDValid(t *testing.T) {
	t.Parallel()

	for _, id := range signature.TemplateIDs() {
		assert.True(t, id.Valid(), "id %s", id)
	}
	assert.False(t, signature.TemplateID("").Valid())
	assert.False(t, signature.TemplateID("fancy").Valid())
}

func TestHasContent(t *testing.T) {
	t.Parallel()

	assert.False(t, signature.ContactData{}.HasContent())
	assert.False(t, signature.ContactData{Phone: "555-0100", Company: "ACME"}.HasContent())
	assert.True(t, signature.ContactData{FullName: "Ada Lovelace"}.HasContent())
	assert.True(t, signature.ContactData{Email: "ada@example.com"}.HasContent())
}

func TestFonts(t *testing.T) {
	t.Parallel()

	fonts := signature.Fonts()
	assert.Len(t, fonts, 7)
	assert.Contains(t, fonts, signature.DefaultFont)

	for _, f := range fonts {
		assert.True(t, signature.AllowedFont(f))
	}
	assert.False(t, signature.AllowedFont("Comic Sans MS"))

	// Returned slice is a copy.
	fonts[0] = "mutated"
	assert.True(t, signature.AllowedFont(signature.DefaultFont))
}

func TestRenderParamsFont(t *testing.T) {
	t.Parallel()

	assert.Equal(t, signature.DefaultFont, signature.RenderParams{}.Font())
	assert.Equal(t, "Georgia, serif", signature.RenderParams{FontFamily: "Georgia, serif"}.Font())
}

func TestImageState(t *testing.T) {
	t.Parallel()

	notSet := signature.ImageNotSet()
	assert.False(t, notSet.IsSet())
	assert.False(t, notSet.IsUploading())
	assert.Empty(t, notSet.URL())

	uploading := signature.ImageUploading()
	assert.False(t, uploading.IsSet())
	assert.True(t, uploading.IsUploading())
	assert.Empty(t, uploading.URL())

	ready := signature.ImageReady("https://cdn.example/avatar.jpg")
	assert.True(t, ready.IsSet())
	assert.False(t, ready.IsUploading())
	assert.Equal(t, "https://cdn.example/avatar.jpg", ready.URL())

	// Empty URL degrades to not-set.
	assert.False(t, signature.ImageReady("").IsSet())
}
