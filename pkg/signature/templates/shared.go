package templates

import (
	"fmt"
	"strings"

	"github.com/Jacobisaldana/signature-mail/pkg/icons"
	"github.com/Jacobisaldana/signature-mail/pkg/sanitize"
	"github.com/Jacobisaldana/signature-mail/pkg/signature"
)

// defaultCalendarText is the calendar button label when none is provided.
const defaultCalendarText = "Schedule a meeting"

// href escapes a normalized URL for a double-quoted attribute. URLs are
// escaped as well as text nodes so an attribute-breaking character in a URL
// cannot corrupt the markup.
func href(url string) string {
	return sanitize.EscapeAttr(url)
}

// iconImg builds an inline contact icon sized for the given pixel box.
func iconImg(src, alt string, size int) string {
	return fmt.Sprintf(
		`<img src="%s" alt="%s" width="%d" height="%d" style="vertical-align: middle; margin-right: 6px; border:0;" />`,
		href(src), sanitize.EscapeAttr(alt), size, size,
	)
}

// socialIconRow emits the social-icon table shared by every template that
// shows social links. A cell is emitted per social URL that normalizes to a
// non-empty value; when none do, the row is omitted entirely. All templates
// go through this single helper so a markup fix lands everywhere at once.
func socialIconRow(c signature.ContactData, ic icons.Set) string {
	type social struct {
		url  string
		icon string
		alt  string
	}
	candidates := []social{
		{c.LinkedIn, ic.LinkedIn, "LinkedIn"},
		{c.Twitter, ic.Twitter, "X (Twitter)"},
		{c.Instagram, ic.Instagram, "Instagram"},
		{c.Facebook, ic.Facebook, "Facebook"},
	}

	var cells strings.Builder
	for _, s := range candidates {
		url := sanitize.NormalizeURL(s.url)
		if url == "" {
			continue
		}
		cells.WriteString(fmt.Sprintf(
			`<td valign="middle" width="28" style="padding-right: 8px;"><a href="%s" target="_blank" style="text-decoration:none; display:inline-block;"><img src="%s" alt="%s" width="24" height="24" style="display:block; width: 24px; height: 24px; border: 0;" border="0" /></a></td>`,
			href(url), href(s.icon), sanitize.EscapeAttr(s.alt),
		))
	}
	if cells.Len() == 0 {
		return ""
	}

	return fmt.Sprintf(
		`<table cellpadding="0" cellspacing="0" border="0" role="presentation" style="table-layout: fixed;"><tr>%s</tr></table>`,
		cells.String(),
	)
}

// calendarButton emits the calendar call-to-action shared by templates that
// show it as a button. Omitted entirely when no calendar URL is set.
func calendarButton(c signature.ContactData, colors signature.BrandColors, ic icons.Set) string {
	url := sanitize.NormalizeURL(c.CalendarURL)
	if url == "" {
		return ""
	}
	text := c.CalendarText
	if text == "" {
		text = defaultCalendarText
	}

	return fmt.Sprintf(
		`<table cellpadding="0" cellspacing="0" border="0" role="presentation" style="padding-top: 12px;"><tr><td><a href="%s" target="_blank" style="display: inline-block; background-color: %s; color: #ffffff; font-family: Arial, sans-serif; font-size: 13px; font-weight: bold; text-decoration: none; padding: 8px 12px; border-radius: 5px;"><table cellpadding="0" cellspacing="0" border="0" role="presentation"><tr><td style="vertical-align: middle;"><img src="%s" alt="calendar" width="16" height="16" style="display: block;" border="0"></td><td style="padding-left: 8px; color: #ffffff; vertical-align: middle;">%s</td></tr></table></a></td></tr></table>`,
		href(url), colors.Primary, href(ic.Calendar), sanitize.EscapeHTML(text),
	)
}

// calendarLink emits the calendar call-to-action as a plain bold link, used
// by the templates that skip the button chrome.
func calendarLink(c signature.ContactData, color, prefix string) string {
	url := sanitize.NormalizeURL(c.CalendarURL)
	if url == "" {
		return ""
	}
	text := c.CalendarText
	if text == "" {
		text = defaultCalendarText
	}
	return fmt.Sprintf(
		`<a href="%s" target="_blank" style="color: %s; text-decoration: none; font-weight: bold;">%s%s</a>`,
		href(url), color, prefix, sanitize.EscapeHTML(text),
	)
}

// emailRow emits the mailto contact line shared across templates.
func emailRow(email string, ic icons.Set, linkColor string, size int) string {
	if email == "" {
		return ""
	}
	return fmt.Sprintf(
		`<p style="margin: 4px 0;">%s <a href="mailto:%s" style="color: %s; text-decoration: none;">%s</a></p>`,
		iconImg(ic.Email, "Email", size), href(email), linkColor, sanitize.EscapeHTML(email),
	)
}

// phoneRow emits the tel contact line shared across templates.
func phoneRow(phone string, ic icons.Set, linkColor string, size int) string {
	if phone == "" {
		return ""
	}
	return fmt.Sprintf(
		`<p style="margin: 4px 0;">%s <a href="tel:%s" style="color: %s; text-decoration: none;">%s</a></p>`,
		iconImg(ic.Phone, "Phone", size), href(phone), linkColor, sanitize.EscapeHTML(phone),
	)
}

// websiteRow emits the website contact line. The href keeps the scheme while
// the visible text drops it.
func websiteRow(website string, ic icons.Set, linkColor string, size int) string {
	url := sanitize.NormalizeURL(website)
	if url == "" {
		return ""
	}
	return fmt.Sprintf(
		`<p style="margin: 4px 0;">%s <a href="%s" target="_blank" style="color: %s; text-decoration: none;">%s</a></p>`,
		iconImg(ic.Website, "Website", size), href(url), linkColor, sanitize.EscapeHTML(sanitize.StripScheme(url)),
	)
}

// avatarCell emits the photo cell when an image URL is present. The URL is
// attribute-escaped but otherwise passed through untouched; keeping data
// URIs out of saved signatures is enforced upstream by the image pipeline.
func avatarCell(p signature.RenderParams, width, imgSize int, padding string) string {
	url := p.Image.URL()
	if url == "" {
		return ""
	}
	return fmt.Sprintf(
		`<td valign="top" width="%d" style="%s"><img src="%s" alt="%s" width="%d" height="%d" style="display:block; border:0; border-radius: 50%%; border: 2px solid %s;"></td>`,
		width, padding, href(url), sanitize.EscapeAttr(p.Contact.FullName), imgSize, imgSize, p.Colors.Primary,
	)
}
