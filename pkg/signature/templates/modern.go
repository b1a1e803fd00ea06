package templates

import (
	"fmt"
	"strings"

	"github.com/Jacobisaldana/signature-mail/pkg/icons"
	"github.com/Jacobisaldana/signature-mail/pkg/sanitize"
	"github.com/Jacobisaldana/signature-mail/pkg/signature"
)

// renderModern lays out a single row with a left brand accent bar: optional
// round photo on the left, then name, title/company, optional tagline,
// contact rows, calendar button and social icons.
func renderModern(p signature.RenderParams, ic icons.Set) string {
	c := p.Contact
	colors := p.Colors

	var b strings.Builder

	b.WriteString(fmt.Sprintf(
		`<table cellpadding="0" cellspacing="0" border="0" role="presentation" style="font-family: %s; font-size: 14px; color: %s; background-color: %s; border-left: 5px solid %s; table-layout: fixed;"><tr>`,
		p.Font(), colors.Text, colors.Background, colors.Primary,
	))

	b.WriteString(avatarCell(p, 110, 90, "padding:16px 20px 16px 20px;"))

	b.WriteString(`<td valign="top" style="padding:16px 20px 16px 20px;">`)
	b.WriteString(fmt.Sprintf(
		`<h3 style="margin: 0; font-size: 18px; font-weight: bold; color: %s;">%s</h3>`,
		colors.Primary, sanitize.EscapeHTML(c.FullName),
	))
	b.WriteString(fmt.Sprintf(
		`<p style="margin: 2px 0; color: %s;">%s | %s</p>`,
		colors.Secondary, sanitize.EscapeHTML(c.JobTitle), sanitize.EscapeHTML(c.Company),
	))

	if c.Tagline != "" {
		b.WriteString(fmt.Sprintf(
			`<p style="margin: 8px 0 10px 0; font-style: italic; color: %s; font-size: 12px;">&#8220;%s&#8221;</p>`,
			colors.Secondary, sanitize.EscapeHTML(c.Tagline),
		))
	} else {
		b.WriteString(`<span style="display:block; height: 10px;"></span>`)
	}

	b.WriteString(`<table cellpadding="0" cellspacing="0" border="0" role="presentation" style="border-top: 1px solid #eeeeee; padding-top: 8px;"><tr><td>`)
	b.WriteString(phoneRow(c.Phone, ic, colors.Text, 14))
	b.WriteString(emailRow(c.Email, ic, colors.Text, 14))
	b.WriteString(websiteRow(c.Website, ic, colors.Text, 14))
	b.WriteString(`</td></tr></table>`)

	b.WriteString(calendarButton(c, colors, ic))

	if social := socialIconRow(c, ic); social != "" {
		b.WriteString(`<table cellpadding="0" cellspacing="0" border="0" role="presentation" style="margin-top: 12px;"><tr><td>`)
		b.WriteString(social)
		b.WriteString(`</td></tr></table>`)
	}

	b.WriteString(`</td></tr></table>`)
	return b.String()
}
