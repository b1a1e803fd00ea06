package templates

import (
	"fmt"
	"strings"

	"github.com/Jacobisaldana/signature-mail/pkg/icons"
	"github.com/Jacobisaldana/signature-mail/pkg/sanitize"
	"github.com/Jacobisaldana/signature-mail/pkg/signature"
)

// renderMinimalist lays out a thin left border column with the selectable
// font: name, title, company, then contact lines and an arrow-style calendar
// link instead of the button.
func renderMinimalist(p signature.RenderParams, ic icons.Set) string {
	c := p.Contact
	colors := p.Colors

	var b strings.Builder

	b.WriteString(fmt.Sprintf(
		`<table cellpadding="0" cellspacing="0" border="0" role="presentation" style="font-family: %s; font-size: 13px; color: %s; line-height: 1.5; table-layout: fixed;"><tr>`,
		p.Font(), colors.Text,
	))

	b.WriteString(avatarCell(p, 80, 60, "padding-right: 12px;"))

	b.WriteString(fmt.Sprintf(
		`<td valign="top" style="border-left: 2px solid %s; padding-left: 15px;">`,
		colors.Primary,
	))
	b.WriteString(fmt.Sprintf(
		`<p style="margin: 0; font-weight: bold; color: %s; font-size: 16px;">%s</p>`,
		colors.Primary, sanitize.EscapeHTML(c.FullName),
	))
	b.WriteString(fmt.Sprintf(
		`<p style="margin: 2px 0; color: %s;">%s</p>`,
		colors.Secondary, sanitize.EscapeHTML(c.JobTitle),
	))
	b.WriteString(fmt.Sprintf(
		`<p style="margin: 2px 0 8px 0; color: %s; font-weight: bold;">%s</p>`,
		colors.Secondary, sanitize.EscapeHTML(c.Company),
	))

	b.WriteString(emailRow(c.Email, ic, colors.Text, 14))
	b.WriteString(phoneRow(c.Phone, ic, colors.Text, 14))
	b.WriteString(websiteRow(c.Website, ic, colors.Primary, 14))

	if link := calendarLink(c, colors.Primary, "&#8594; "); link != "" {
		b.WriteString(fmt.Sprintf(`<p style="margin: 6px 0 0 0;">%s</p>`, link))
	}

	b.WriteString(`</td></tr></table>`)
	return b.String()
}
