package signature

import (
	"strings"
	"time"
)

// ContactData carries the form fields a user fills in. FullName and Email
// are the only fields downstream consumers treat as "content present"; every
// other field is optional and renderers omit its markup entirely when blank.
type ContactData struct {
	FullName     string `json:"fullName"`
	JobTitle     string `json:"jobTitle"`
	Company      string `json:"company"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Website      string `json:"website"`
	Address      string `json:"address"`
	LinkedIn     string `json:"linkedin"`
	Twitter      string `json:"twitter"`
	Instagram    string `json:"instagram"`
	Facebook     string `json:"facebook"`
	Tagline      string `json:"tagline"`
	CalendarURL  string `json:"calendarUrl"`
	CalendarText string `json:"calendarText"`
}

// HasContent reports whether the contact data is worth copying or checking:
// a full name or an email address is present.
func (c ContactData) HasContent() bool {
	return strings.TrimSpace(c.FullName) != "" || strings.TrimSpace(c.Email) != ""
}

// BrandColors holds the four brand color values as hex strings. Values pass
// through to HTML verbatim; hex format validation is a documented non-goal.
type BrandColors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Text       string `json:"text"`
	Background string `json:"background"`
}

// DefaultColors returns the initial brand palette.
func DefaultColors() BrandColors {
	return BrandColors{
		Primary:    "#facc15",
		Secondary:  "#333333",
		Text:       "#111111",
		Background: "#ffffff",
	}
}

// TemplateID identifies one of the six fixed signature layouts. Only the
// template registry may branch on it.
type TemplateID string

const (
	TemplateModern      TemplateID = "modern"
	TemplateMinimalist  TemplateID = "minimalist"
	TemplateClassic     TemplateID = "classic"
	TemplateVertical    TemplateID = "vertical"
	TemplateCompact     TemplateID = "compact"
	TemplateSocialFocus TemplateID = "social-focus"
)

// TemplateIDs lists all template identifiers in presentation order.
func TemplateIDs() []TemplateID {
	return []TemplateID{
		TemplateModern,
		TemplateMinimalist,
		TemplateVertical,
		TemplateSocialFocus,
		TemplateClassic,
		TemplateCompact,
	}
}

// Valid reports whether id is one of the six known templates.
func (id TemplateID) Valid() bool {
	switch id {
	case TemplateModern, TemplateMinimalist, TemplateClassic,
		TemplateVertical, TemplateCompact, TemplateSocialFocus:
		return true
	default:
		return false
	}
}

// DefaultFont is the font stack used when none is selected.
const DefaultFont = "Arial, sans-serif"

// fontAllowList is the closed set of selectable font stacks. The renderer
// interpolates the font verbatim into a style attribute, so free text is
// never accepted here.
var fontAllowList = []string{
	"Arial, sans-serif",
	"Verdana, Geneva, sans-serif",
	"Tahoma, Geneva, sans-serif",
	"Trebuchet MS, sans-serif",
	"Georgia, serif",
	"Times New Roman, Times, serif",
	"Courier New, monospace",
}

// Fonts returns the selectable font stacks.
func Fonts() []string {
	out := make([]string, len(fontAllowList))
	copy(out, fontAllowList)
	return out
}

// AllowedFont reports whether v is one of the selectable font stacks.
func AllowedFont(v string) bool {
	for _, f := range fontAllowList {
		if f == v {
			return true
		}
	}
	return false
}

// RenderParams bundles the inputs to a template renderer. The template id
// itself is passed separately to the registry dispatch call.
type RenderParams struct {
	Contact    ContactData
	Colors     BrandColors
	Image      ImageState
	FontFamily string
}

// Font returns the configured font family, falling back to DefaultFont.
func (p RenderParams) Font() string {
	if p.FontFamily == "" {
		return DefaultFont
	}
	return p.FontFamily
}

// Signature is the persisted record shape owned by the storage collaborator.
// The rendering engine only produces the HTML field's contents.
type Signature struct {
	ID         string      `json:"id"`
	UserID     string      `json:"userId"`
	Name       string      `json:"name"`
	Label      string      `json:"label"`
	TemplateID TemplateID  `json:"templateId"`
	Contact    ContactData `json:"formData"`
	Colors     BrandColors `json:"colors"`
	FontFamily string      `json:"fontFamily"`
	ImageURL   string      `json:"imageUrl,omitempty"`
	HTML       string      `json:"html"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}
