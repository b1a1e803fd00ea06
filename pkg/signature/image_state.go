package signature

// ImageState is a tagged variant describing the avatar image attached to a
// signature: not set, upload in flight, or ready with a resolved URL. It
// replaces the magic "uploading" string the image URL field would otherwise
// be overloaded with, so callers pattern-match instead of comparing strings.
type ImageState struct {
	kind imageKind
	url  string
}

type imageKind int

const (
	imageNotSet imageKind = iota
	imageUploading
	imageReady
)

// ImageNotSet returns the zero image state: no avatar selected.
func ImageNotSet() ImageState {
	return ImageState{}
}

// ImageUploading marks an avatar whose optimize/upload is still in flight.
// Save and copy actions must be disabled in this state.
func ImageUploading() ImageState {
	return ImageState{kind: imageUploading}
}

// ImageReady wraps a resolved public image URL. An empty url degrades to
// ImageNotSet.
func ImageReady(url string) ImageState {
	if url == "" {
		return ImageState{}
	}
	return ImageState{kind: imageReady, url: url}
}

// IsSet reports whether an image is ready to be rendered.
func (s ImageState) IsSet() bool { return s.kind == imageReady }

// IsUploading reports whether an upload is still in flight.
func (s ImageState) IsUploading() bool { return s.kind == imageUploading }

// URL returns the resolved image URL, or "" unless the image is ready. The
// value is passed through untouched into the img src attribute; enforcing
// that it is not a data-URI is the image pipeline's job, not the renderer's.
func (s ImageState) URL() string {
	if s.kind != imageReady {
		return ""
	}
	return s.url
}
