package templates

import (
	"github.com/Jacobisaldana/signature-mail/pkg/icons"
	"github.com/Jacobisaldana/signature-mail/pkg/signature"
)

// NotFoundHTML is the constant fragment returned for an unregistered
// template id.
const NotFoundHTML = `<p>Error: Template not found.</p>`

const thumbnailBase = "https://contractorcommander.com/wp-content/uploads/2025/09"

type renderFunc func(signature.RenderParams, icons.Set) string

// Info describes a template for pickers: id, display name and a preview
// thumbnail URL.
type Info struct {
	ID        signature.TemplateID `json:"id"`
	Name      string               `json:"name"`
	Thumbnail string               `json:"thumbnail"`
}

type entry struct {
	info   Info
	render renderFunc
}

// Registry maps template ids to their renderers and is the single dispatch
// point for rendering; no other component branches on a TemplateID. It
// holds a reference to the icon registry and takes a fresh snapshot on
// every render so runtime icon overrides reach the very next render.
type Registry struct {
	icons   *icons.Registry
	entries map[signature.TemplateID]entry
	order   []signature.TemplateID
}

// NewRegistry builds the registry of all six templates over the given icon
// registry.
func NewRegistry(ic *icons.Registry) *Registry {
	r := &Registry{
		icons:   ic,
		entries: make(map[signature.TemplateID]entry),
	}
	r.register(signature.TemplateModern, "Modern", renderModern)
	r.register(signature.TemplateMinimalist, "Minimalist", renderMinimalist)
	r.register(signature.TemplateVertical, "Vertical", renderVertical)
	r.register(signature.TemplateSocialFocus, "Social Focus", renderSocialFocus)
	r.register(signature.TemplateClassic, "Classic", renderClassic)
	r.register(signature.TemplateCompact, "Compact", renderCompact)
	return r
}

func (r *Registry) register(id signature.TemplateID, name string, fn renderFunc) {
	r.entries[id] = entry{
		info: Info{
			ID:        id,
			Name:      name,
			Thumbnail: thumbnailBase + "/template-" + string(id) + ".png",
		},
		render: fn,
	}
	r.order = append(r.order, id)
}

// Render dispatches to the renderer for id with a fresh icon snapshot.
// Unknown ids return NotFoundHTML instead of an error.
func (r *Registry) Render(id signature.TemplateID, p signature.RenderParams) string {
	e, ok := r.entries[id]
	if !ok {
		return NotFoundHTML
	}
	return e.render(p, r.icons.Snapshot())
}

// List returns template metadata in presentation order.
func (r *Registry) List() []Info {
	out := make([]Info, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id].info)
	}
	return out
}
