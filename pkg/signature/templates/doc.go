// Package templates renders contact data into email-client-safe HTML
// signature fragments, one renderer per template id.
//
// Every renderer is a pure function of its RenderParams plus the icon
// registry snapshot taken at call time: same inputs produce byte-identical
// output. The generated markup follows the constraints legacy email clients
// impose (Outlook's Word engine in particular):
//
//   - table-based layout only, no div, flex or grid
//   - inline styles only, no classes or stylesheets
//   - explicit width/height attributes on every image
//   - optional fields omitted entirely when blank
//
// The Registry is the single dispatch point; nothing else in the module
// branches on a TemplateID. An unknown id degrades to a constant visible
// error fragment instead of an error so a live preview never crashes
// mid-edit.
//
// # Usage
//
//	reg := templates.NewRegistry(icons.NewRegistry())
//	html := reg.Render(signature.TemplateModern, signature.RenderParams{
//		Contact: contact,
//		Colors:  signature.DefaultColors(),
//	})
package templates
