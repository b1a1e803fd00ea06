package icons

import "sync"

// Name identifies one of the eight fixed signature icons.
type Name string

const (
	LinkedIn  Name = "linkedin"
	Twitter   Name = "twitter"
	Instagram Name = "instagram"
	Facebook  Name = "facebook"
	Calendar  Name = "calendar"
	Phone     Name = "phone"
	Email     Name = "email"
	Website   Name = "website"
)

// Names lists all icon names in a stable order.
func Names() []Name {
	return []Name{LinkedIn, Twitter, Instagram, Facebook, Calendar, Phone, Email, Website}
}

// Set maps each icon name to an absolute image URL. It is a plain value;
// copying a Set copies all URLs.
type Set struct {
	LinkedIn  string
	Twitter   string
	Instagram string
	Facebook  string
	Calendar  string
	Phone     string
	Email     string
	Website   string
}

// URL returns the URL for the given icon name, or "" for unknown names.
func (s Set) URL(n Name) string {
	switch n {
	case LinkedIn:
		return s.LinkedIn
	case Twitter:
		return s.Twitter
	case Instagram:
		return s.Instagram
	case Facebook:
		return s.Facebook
	case Calendar:
		return s.Calendar
	case Phone:
		return s.Phone
	case Email:
		return s.Email
	case Website:
		return s.Website
	default:
		return ""
	}
}

const defaultIconBase = "https://contractorcommander.com/wp-content/uploads/2025/09"

// DefaultSet returns the hardcoded public fallback icon URLs used until an
// asset host resolves.
func DefaultSet() Set {
	return Set{
		LinkedIn:  defaultIconBase + "/linkedin.png",
		Twitter:   defaultIconBase + "/twitter.png",
		Instagram: defaultIconBase + "/instagram.png",
		Facebook:  defaultIconBase + "/facebook.png",
		Calendar:  defaultIconBase + "/calendar.png",
		Phone:     defaultIconBase + "/phone.png",
		Email:     defaultIconBase + "/email.png",
		Website:   defaultIconBase + "/website.png",
	}
}

// Registry is the process-wide icon configuration. It supports concurrent
// reads during writes; merges are copy-on-write and last-write-wins per key.
// Create one at the composition root and pass it to the template registry.
type Registry struct {
	mu  sync.RWMutex
	set Set
}

// NewRegistry creates a Registry seeded with DefaultSet.
func NewRegistry() *Registry {
	return &Registry{set: DefaultSet()}
}

// Snapshot returns a value copy of the current icon set. Mutating the copy
// has no effect on future renders.
func (r *Registry) Snapshot() Set {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.set
}

// Merge overrides the registry with the non-empty URLs of partial. Empty
// fields keep their previous value, so callers can update a single icon.
func (r *Registry) Merge(partial Set) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.set
	if partial.LinkedIn != "" {
		next.LinkedIn = partial.LinkedIn
	}
	if partial.Twitter != "" {
		next.Twitter = partial.Twitter
	}
	if partial.Instagram != "" {
		next.Instagram = partial.Instagram
	}
	if partial.Facebook != "" {
		next.Facebook = partial.Facebook
	}
	if partial.Calendar != "" {
		next.Calendar = partial.Calendar
	}
	if partial.Phone != "" {
		next.Phone = partial.Phone
	}
	if partial.Email != "" {
		next.Email = partial.Email
	}
	if partial.Website != "" {
		next.Website = partial.Website
	}
	r.set = next
}

// MergeOne overrides a single icon URL. Unknown names and empty URLs are
// ignored.
func (r *Registry) MergeOne(n Name, url string) {
	if url == "" {
		return
	}
	var partial Set
	switch n {
	case LinkedIn:
		partial.LinkedIn = url
	case Twitter:
		partial.Twitter = url
	case Instagram:
		partial.Instagram = url
	case Facebook:
		partial.Facebook = url
	case Calendar:
		partial.Calendar = url
	case Phone:
		partial.Phone = url
	case Email:
		partial.Email = url
	case Website:
		partial.Website = url
	default:
		return
	}
	r.Merge(partial)
}
