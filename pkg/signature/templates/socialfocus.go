package templates

import (
	"fmt"
	"strings"

	"github.com/Jacobisaldana/signature-mail/pkg/icons"
	"github.com/Jacobisaldana/signature-mail/pkg/sanitize"
	"github.com/Jacobisaldana/signature-mail/pkg/signature"
)

// renderSocialFocus lays out a 450px Verdana card: header row with optional
// photo, name and "title at company", then a bottom block split between
// contact lines on the left and right-aligned social icons.
func renderSocialFocus(p signature.RenderParams, ic icons.Set) string {
	c := p.Contact
	colors := p.Colors

	var b strings.Builder

	b.WriteString(fmt.Sprintf(
		`<table cellpadding="0" cellspacing="0" border="0" role="presentation" style="font-family: 'Verdana', sans-serif; color: %s; font-size: 14px; width: 450px; table-layout: fixed;"><tr>`,
		colors.Text,
	))

	b.WriteString(avatarCell(p, 80, 60, "padding-right: 15px;"))

	b.WriteString(`<td valign="top">`)
	b.WriteString(fmt.Sprintf(
		`<p style="margin: 0; font-weight: bold; color: %s; font-size: 18px;">%s</p>`,
		colors.Primary, sanitize.EscapeHTML(c.FullName),
	))
	b.WriteString(fmt.Sprintf(
		`<p style="margin: 2px 0 8px 0; color: %s;">%s at %s</p>`,
		colors.Secondary, sanitize.EscapeHTML(c.JobTitle), sanitize.EscapeHTML(c.Company),
	))
	b.WriteString(`</td></tr>`)

	b.WriteString(fmt.Sprintf(
		`<tr><td colspan="2" style="padding-top: 15px; border-top: 2px solid %s;"><table cellpadding="0" cellspacing="0" style="width: 100%%;"><tr><td style="vertical-align: top; width: 50%%;">`,
		colors.Primary,
	))
	b.WriteString(emailRow(c.Email, ic, colors.Text, 14))
	b.WriteString(phoneRow(c.Phone, ic, colors.Text, 14))
	b.WriteString(calendarButton(c, colors, ic))
	b.WriteString(`</td><td style="vertical-align: top; text-align: right;">`)
	b.WriteString(socialIconRow(c, ic))
	b.WriteString(`</td></tr></table></td></tr></table>`)

	return b.String()
}
