package templates

import (
	"fmt"
	"strings"

	"github.com/Jacobisaldana/signature-mail/pkg/icons"
	"github.com/Jacobisaldana/signature-mail/pkg/sanitize"
	"github.com/Jacobisaldana/signature-mail/pkg/signature"
)

// renderCompact lays out a two-line signature at 12px: name | title on the
// first row, inline contact spans on the second, and an optional calendar
// link row. Icons shrink to 12px to match the line height.
func renderCompact(p signature.RenderParams, ic icons.Set) string {
	c := p.Contact
	colors := p.Colors

	var b strings.Builder

	b.WriteString(fmt.Sprintf(
		`<table cellpadding="0" cellspacing="0" border="0" role="presentation" style="font-family: %s; font-size: 12px; color: %s; table-layout: fixed;">`,
		p.Font(), colors.Text,
	))

	b.WriteString(fmt.Sprintf(
		`<tr><td style="font-weight: bold; color: %s;">%s</td><td style="padding: 0 5px; color: #cccccc;">|</td><td>%s</td></tr>`,
		colors.Primary, sanitize.EscapeHTML(c.FullName), sanitize.EscapeHTML(c.JobTitle),
	))

	b.WriteString(fmt.Sprintf(
		`<tr><td colspan="3" style="font-size: 11px; color: %s;">`,
		colors.Secondary,
	))
	if c.Email != "" {
		b.WriteString(fmt.Sprintf(
			`<span>%s<a href="mailto:%s" style="color: %s; text-decoration: none;">%s</a></span>`,
			compactIcon(ic.Email, "Email"), href(c.Email), colors.Secondary, sanitize.EscapeHTML(c.Email),
		))
	}
	if c.Phone != "" {
		b.WriteString(fmt.Sprintf(
			` <span style="margin-left:8px;">%s%s</span>`,
			compactIcon(ic.Phone, "Phone"), sanitize.EscapeHTML(c.Phone),
		))
	}
	if url := sanitize.NormalizeURL(c.Website); url != "" {
		b.WriteString(fmt.Sprintf(
			` <span style="margin-left:8px;">%s<a href="%s" target="_blank" style="color: %s; text-decoration: none;">Website</a></span>`,
			compactIcon(ic.Website, "Website"), href(url), colors.Primary,
		))
	}
	b.WriteString(`</td></tr>`)

	if link := calendarLink(c, colors.Primary, ""); link != "" {
		b.WriteString(fmt.Sprintf(
			`<tr><td colspan="3" style="padding-top: 5px;">%s</td></tr>`,
			link,
		))
	}

	b.WriteString(`</table>`)
	return b.String()
}

func compactIcon(src, alt string) string {
	return fmt.Sprintf(
		`<img src="%s" alt="%s" width="12" height="12" style="vertical-align: middle; margin-right: 4px; border:0;" />`,
		href(src), sanitize.EscapeAttr(alt),
	)
}
