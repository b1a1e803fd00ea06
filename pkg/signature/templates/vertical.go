package templates

import (
	"fmt"
	"strings"

	"github.com/Jacobisaldana/signature-mail/pkg/icons"
	"github.com/Jacobisaldana/signature-mail/pkg/sanitize"
	"github.com/Jacobisaldana/signature-mail/pkg/signature"
)

// renderVertical lays out two columns: a colored 140px sidebar with photo,
// name and title, and a detail column with company, contact lines, address,
// calendar link and social icons.
func renderVertical(p signature.RenderParams, ic icons.Set) string {
	c := p.Contact
	colors := p.Colors

	var b strings.Builder

	b.WriteString(fmt.Sprintf(
		`<table cellpadding="0" cellspacing="0" border="0" role="presentation" style="font-family: %s; font-size: 14px; color: %s; table-layout: fixed;"><tr>`,
		p.Font(), colors.Text,
	))

	// Sidebar column.
	b.WriteString(fmt.Sprintf(
		`<td valign="top" width="140" style="background-color: %s; padding: 20px; border-radius: 8px 0 0 8px; text-align: center;">`,
		colors.Primary,
	))
	if url := p.Image.URL(); url != "" {
		b.WriteString(fmt.Sprintf(
			`<span style="display:inline-block; border: 2px solid %s; border-radius: 50%%; padding: 2px; background-color: #ffffff; margin-bottom: 10px;"><img src="%s" alt="%s" width="72" height="72" style="display:block; border:0; border-radius: 50%%;"></span>`,
			colors.Primary, href(url), sanitize.EscapeAttr(c.FullName),
		))
	}
	b.WriteString(fmt.Sprintf(
		`<h3 style="margin: 0; font-size: 16px; font-weight: bold; color: white;">%s</h3>`,
		sanitize.EscapeHTML(c.FullName),
	))
	b.WriteString(fmt.Sprintf(
		`<p style="margin: 2px 0; color: white; font-size: 12px;">%s</p>`,
		sanitize.EscapeHTML(c.JobTitle),
	))
	b.WriteString(`</td>`)

	// Detail column.
	b.WriteString(fmt.Sprintf(
		`<td valign="top" style="background-color: %s; padding: 20px; border-radius: 0 8px 8px 0;">`,
		colors.Background,
	))
	b.WriteString(fmt.Sprintf(
		`<p style="margin: 0 0 5px 0; font-weight: bold; color: %s;">%s</p>`,
		colors.Primary, sanitize.EscapeHTML(c.Company),
	))
	b.WriteString(emailRow(c.Email, ic, colors.Text, 14))
	b.WriteString(phoneRow(c.Phone, ic, colors.Text, 14))
	if c.Address != "" {
		b.WriteString(fmt.Sprintf(
			`<p style="margin: 4px 0;"><strong>A:</strong> %s</p>`,
			sanitize.EscapeHTML(c.Address),
		))
	}
	if link := calendarLink(c, colors.Primary, ""); link != "" {
		b.WriteString(fmt.Sprintf(
			`<table cellpadding="0" cellspacing="0" border="0" role="presentation" style="margin-top:10px;"><tr><td>%s</td></tr></table>`,
			link,
		))
	}
	if social := socialIconRow(c, ic); social != "" {
		b.WriteString(fmt.Sprintf(
			`<table cellpadding="0" cellspacing="0" border="0" role="presentation" style="margin-top: 10px;"><tr><td>%s</td></tr></table>`,
			social,
		))
	}
	b.WriteString(`</td></tr></table>`)
	return b.String()
}
