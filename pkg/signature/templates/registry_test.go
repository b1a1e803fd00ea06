package templates_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jacobisaldana/signature-mail/pkg/icons"
	"github.com/Jacobisaldana/signature-mail/pkg/signature"
	"github.com/Jacobisaldana/signature-mail/pkg/signature/templates"
)

func fullContact() signature.ContactData {
	return signature.ContactData{
		FullName:     "Ada Lovelace",
		JobTitle:     "Chief Analyst",
		Company:      "Analytical Engines Ltd",
		Email:        "ada@example.com",
		Phone:        "+44 20 7946 0958",
		Website:      "example.com",
		Address:      "12 St James's Square, London",
		LinkedIn:     "linkedin.com/in/ada",
		Twitter:      "twitter.com/ada",
		Instagram:    "instagram.com/ada",
		Facebook:     "facebook.com/ada",
		Tagline:      "Numbers tell stories",
		CalendarURL:  "cal.example.com/ada",
		CalendarText: "Book a slot",
	}
}

func fullParams() signature.RenderParams {
	return signature.RenderParams{
		Contact: fullContact(),
		Colors:  signature.DefaultColors(),
		Image:   signature.ImageReady("https://cdn.example/avatar.jpg"),
	}
}

func TestRenderDeterminism(t *testing.T) {
	t.Parallel()

	reg := templates.NewRegistry(icons.NewRegistry())
	for _, id := range signature.TemplateIDs() {
		first := reg.Render(id, fullParams())
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, reg.Render(id, fullParams()), "template %s", id)
		}
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	t.Parallel()

	reg := templates.NewRegistry(icons.NewRegistry())
	assert.Equal(t, templates.NotFoundHTML, reg.Render("holographic", fullParams()))
	assert.Equal(t, templates.NotFoundHTML, reg.Render("", fullParams()))
}

func TestRenderNeverEmptyForKnownTemplates(t *testing.T) {
	t.Parallel()

	reg := templates.NewRegistry(icons.NewRegistry())
	for _, id := range signature.TemplateIDs() {
		// Even a fully empty contact renders a fragment, not an error.
		html := reg.Render(id, signature.RenderParams{Colors: signature.DefaultColors()})
		assert.True(t, strings.HasPrefix(html, "<table"), "template %s", id)
	}
}

func TestRenderTableOnlyAndInlineStyles(t *testing.T) {
	t.Parallel()

	reg := templates.NewRegistry(icons.NewRegistry())
	for _, id := range signature.TemplateIDs() {
		html := reg.Render(id, fullParams())
		assert.NotContains(t, html, "<div", "template %s must be table-based", id)
		assert.NotContains(t, html, "class=", "template %s must not use CSS classes", id)
		assert.NotContains(t, html, "display:flex", "template %s", id)
		assert.NotContains(t, html, "display:grid", "template %s", id)
	}
}

var imgTagRe = regexp.MustCompile(`<img [^>]*>`)

func TestRenderImagesCarryExplicitDimensions(t *testing.T) {
	t.Parallel()

	reg := templates.NewRegistry(icons.NewRegistry())
	for _, id := range signature.TemplateIDs() {
		html := reg.Render(id, fullParams())
		tags := imgTagRe.FindAllString(html, -1)
		require.NotEmpty(t, tags, "template %s", id)
		for _, tag := range tags {
			assert.Contains(t, tag, `width="`, "template %s: %s", id, tag)
			assert.Contains(t, tag, `height="`, "template %s: %s", id, tag)
		}
	}
}

func TestRenderOptionalFieldOmission(t *testing.T) {
	t.Parallel()

	reg := templates.NewRegistry(icons.NewRegistry())
	defaults := icons.DefaultSet()

	params := signature.RenderParams{
		Contact: signature.ContactData{
			FullName: "Ada Lovelace",
			JobTitle: "Chief Analyst",
			Company:  "Analytical Engines Ltd",
			Email:    "ada@example.com",
		},
		Colors: signature.DefaultColors(),
	}

	for _, id := range signature.TemplateIDs() {
		html := reg.Render(id, params)
		assert.NotContains(t, html, defaults.Phone, "template %s must omit phone icon", id)
		assert.NotContains(t, html, defaults.Website, "template %s must omit website icon", id)
		assert.NotContains(t, html, defaults.Calendar, "template %s must omit calendar icon", id)
		assert.NotContains(t, html, defaults.LinkedIn, "template %s must omit social icons", id)
		assert.NotContains(t, html, "tel:", "template %s", id)
	}
}

func TestRenderMinimalSignatureScenario(t *testing.T) {
	t.Parallel()

	reg := templates.NewRegistry(icons.NewRegistry())
	html := reg.Render(signature.TemplateMinimalist, signature.RenderParams{
		Contact: signature.ContactData{
			FullName: "Ada Lovelace",
			Email:    "ada@example.com",
		},
		Colors: signature.DefaultColors(),
	})

	assert.Contains(t, html, "Ada Lovelace")
	assert.Contains(t, html, `href="mailto:ada@example.com"`)

	// No icon images other than the email one.
	defaults := icons.DefaultSet()
	for _, name := range []icons.Name{icons.Phone, icons.Website, icons.Calendar, icons.LinkedIn, icons.Twitter, icons.Instagram, icons.Facebook} {
		assert.NotContains(t, html, defaults.URL(name), "icon %s", name)
	}
	// No avatar img either.
	assert.NotContains(t, html, "avatar")
}

func TestRenderEscapesTextFields(t *testing.T) {
	t.Parallel()

	reg := templates.NewRegistry(icons.NewRegistry())
	params := fullParams()
	params.Contact.FullName = `Ada <script>alert("x")</script> & Co`
	params.Contact.Company = `"Engines" <B>`
	params.Contact.Tagline = `a < b & c > d`

	for _, id := range signature.TemplateIDs() {
		html := reg.Render(id, params)
		assert.NotContains(t, html, "<script>", "template %s", id)
		assert.Contains(t, html, "&lt;script&gt;", "template %s", id)
		assert.NotContains(t, html, `<B>`, "template %s", id)
	}
}

func TestRenderEscapesAttributeBreakingURLs(t *testing.T) {
	t.Parallel()

	reg := templates.NewRegistry(icons.NewRegistry())
	params := fullParams()
	params.Contact.Website = `https://example.com/?q="><img src=x onerror=alert(1)>`

	for _, id := range signature.TemplateIDs() {
		html := reg.Render(id, params)
		assert.NotContains(t, html, `onerror=alert`, "template %s", id)
	}
}

func TestRenderIconOverridePropagation(t *testing.T) {
	t.Parallel()

	iconReg := icons.NewRegistry()
	reg := templates.NewRegistry(iconReg)
	params := fullParams()

	before := reg.Render(signature.TemplateModern, params)
	assert.Contains(t, before, icons.DefaultSet().LinkedIn)

	iconReg.Merge(icons.Set{LinkedIn: "https://cdn.example/li.png"})

	for _, id := range signature.TemplateIDs() {
		html := reg.Render(id, params)
		if strings.Contains(html, "linkedin") || strings.Contains(html, "li.png") {
			assert.Contains(t, html, "https://cdn.example/li.png", "template %s", id)
			assert.NotContains(t, html, icons.DefaultSet().LinkedIn, "template %s", id)
		}
	}
}

func TestRenderUploadingImageOmitsAvatar(t *testing.T) {
	t.Parallel()

	reg := templates.NewRegistry(icons.NewRegistry())
	params := fullParams()
	params.Image = signature.ImageUploading()

	html := reg.Render(signature.TemplateModern, params)
	assert.NotContains(t, html, "avatar.jpg")
}

func TestList(t *testing.T) {
	t.Parallel()

	reg := templates.NewRegistry(icons.NewRegistry())
	list := reg.List()
	require.Len(t, list, 6)

	seen := map[signature.TemplateID]bool{}
	for _, info := range list {
		assert.True(t, info.ID.Valid())
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Thumbnail)
		seen[info.ID] = true
	}
	assert.Len(t, seen, 6, "every template listed exactly once")
}

func TestTemplatesProduceDistinctMarkup(t *testing.T) {
	t.Parallel()

	reg := templates.NewRegistry(icons.NewRegistry())
	outputs := map[string]signature.TemplateID{}
	for _, id := range signature.TemplateIDs() {
		html := reg.Render(id, fullParams())
		prev, dup := outputs[html]
		assert.False(t, dup, "template %s aliases %s", id, prev)
		outputs[html] = id
	}
}
