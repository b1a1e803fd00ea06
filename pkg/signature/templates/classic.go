package templates

import (
	"fmt"
	"strings"

	"github.com/Jacobisaldana/signature-mail/pkg/icons"
	"github.com/Jacobisaldana/signature-mail/pkg/sanitize"
	"github.com/Jacobisaldana/signature-mail/pkg/signature"
)

// renderClassic lays out a serif card with a hairline divider: name in
// black, italic title, then labeled Tel/Email rows. The phone row always
// renders, showing "N/A" when empty, matching the formal letterhead feel.
func renderClassic(p signature.RenderParams, ic icons.Set) string {
	c := p.Contact
	colors := p.Colors

	var b strings.Builder

	b.WriteString(fmt.Sprintf(
		`<table cellpadding="0" cellspacing="0" style="font-family: 'Times New Roman', Times, serif; font-size: 14px; color: %s;"><tr>`,
		colors.Text,
	))

	b.WriteString(avatarCell(p, 85, 70, "padding-right: 15px;"))

	b.WriteString(`<td style="border-left: 1px solid #cccccc; padding-left: 15px; vertical-align: top;">`)
	b.WriteString(fmt.Sprintf(
		`<p style="margin: 0; font-weight: bold; font-size: 16px; color: #000000;">%s</p>`,
		sanitize.EscapeHTML(c.FullName),
	))
	b.WriteString(fmt.Sprintf(
		`<p style="margin: 2px 0; font-style: italic; color: %s;">%s</p>`,
		colors.Secondary, sanitize.EscapeHTML(c.JobTitle),
	))
	b.WriteString(fmt.Sprintf(
		`<p style="margin: 2px 0 8px 0; color: %s;">%s</p>`,
		colors.Secondary, sanitize.EscapeHTML(c.Company),
	))

	phone := c.Phone
	if phone == "" {
		phone = "N/A"
	}
	b.WriteString(fmt.Sprintf(
		`<p style="margin: 4px 0;"><strong>Tel:</strong> %s</p>`,
		sanitize.EscapeHTML(phone),
	))
	b.WriteString(fmt.Sprintf(
		`<p style="margin: 4px 0;"><strong>Email:</strong> <a href="mailto:%s" style="color: %s; text-decoration: none;">%s</a></p>`,
		href(c.Email), colors.Primary, sanitize.EscapeHTML(c.Email),
	))

	b.WriteString(calendarButton(c, colors, ic))

	b.WriteString(`</td></tr></table>`)
	return b.String()
}
