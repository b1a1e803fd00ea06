package signatures

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Jacobisaldana/signature-mail/pkg/compat"
	"github.com/Jacobisaldana/signature-mail/pkg/imageprep"
	"github.com/Jacobisaldana/signature-mail/pkg/logger"
	"github.com/Jacobisaldana/signature-mail/pkg/sanitize"
	"github.com/Jacobisaldana/signature-mail/pkg/signature"
	"github.com/Jacobisaldana/signature-mail/pkg/signature/templates"
	"github.com/Jacobisaldana/signature-mail/pkg/storage"
)

// Uploads runs avatar bytes through optimization and storage.
// *imageprep.Pipeline satisfies it.
type Uploads interface {
	Submit(ctx context.Context, r io.Reader) (signature.ImageState, error)
}

// Presigner hands out direct-upload URLs. *storage.S3Storage satisfies it.
type Presigner interface {
	PresignPut(ctx context.Context, contentType string) (*storage.PresignedUpload, error)
}

// Service implements the signature operations behind the HTTP API.
type Service struct {
	store     Store
	templates *templates.Registry
	uploads   Uploads
	presigner Presigner
	log       *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithUploads enables avatar uploads through the given pipeline.
func WithUploads(u Uploads) ServiceOption {
	return func(s *Service) { s.uploads = u }
}

// WithPresigner enables presigned direct uploads.
func WithPresigner(p Presigner) ServiceOption {
	return func(s *Service) { s.presigner = p }
}

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates the signatures service.
func NewService(store Store, registry *templates.Registry, opts ...ServiceOption) *Service {
	s := &Service{
		store:     store,
		templates: registry,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RenderResult is a rendered preview with its compatibility report and a
// plain-text clipboard fallback.
type RenderResult struct {
	TemplateID signature.TemplateID `json:"templateId"`
	HTML       string               `json:"html"`
	Text       string               `json:"text"`
	Size       compat.SizeInfo      `json:"size"`
	Issues     []compat.Issue       `json:"issues"`
}

// Render produces the signature HTML for one template together with the
// size estimate and compatibility issues, so the editor shows all three
// from a single call.
func (s *Service) Render(ctx context.Context, id signature.TemplateID, params signature.RenderParams) RenderResult {
	html := s.templates.Render(id, params)
	return RenderResult{
		TemplateID: id,
		HTML:       html,
		Text:       sanitize.PlainText(html),
		Size:       compat.EstimateSize(html),
		Issues:     compat.Check(html, params.Image),
	}
}

// Templates lists the available templates in presentation order.
func (s *Service) Templates() []templates.Info {
	return s.templates.List()
}

// Fonts lists the selectable font stacks.
func (s *Service) Fonts() []string {
	return signature.Fonts()
}

// SaveInput is everything needed to create or update a signature. A blank
// ID creates a new record.
type SaveInput struct {
	ID         string
	Name       string
	Label      string
	TemplateID signature.TemplateID
	Contact    signature.ContactData
	Colors     signature.BrandColors
	FontFamily string
	Image      signature.ImageState
}

// Save persists a signature, re-rendering its HTML from the submitted
// form data first. It refuses to persist while an avatar upload is in
// flight and rejects inline data URLs outright.
func (s *Service) Save(ctx context.Context, userID string, in SaveInput) (*signature.Signature, error) {
	if !in.TemplateID.Valid() {
		return nil, ErrUnknownTemplate
	}
	if in.Image.IsUploading() {
		return nil, ErrUploadInFlight
	}
	if compat.IsDataURL(in.Image.URL()) {
		return nil, ErrEmbeddedImage
	}

	font := in.FontFamily
	if font != "" && !signature.AllowedFont(font) {
		font = signature.DefaultFont
	}

	html := s.templates.Render(in.TemplateID, signature.RenderParams{
		Contact:    in.Contact,
		Colors:     in.Colors,
		Image:      in.Image,
		FontFamily: font,
	})

	now := time.Now().UTC()
	sig := &signature.Signature{
		ID:         in.ID,
		UserID:     userID,
		Name:       saveName(in),
		Label:      in.Label,
		TemplateID: in.TemplateID,
		Contact:    in.Contact,
		Colors:     in.Colors,
		FontFamily: font,
		ImageURL:   in.Image.URL(),
		HTML:       html,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if in.ID == "" {
		sig.ID = uuid.NewString()
	} else {
		existing, err := s.store.Get(ctx, userID, in.ID)
		if err != nil {
			return nil, err
		}
		sig.CreatedAt = existing.CreatedAt
	}

	if err := s.store.Save(ctx, sig); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "signature saved",
		logger.SignatureID(sig.ID),
		logger.TemplateID(string(sig.TemplateID)),
		logger.UserID(userID))
	return sig, nil
}

func saveName(in SaveInput) string {
	if name := strings.TrimSpace(in.Name); name != "" {
		return name
	}
	if name := strings.TrimSpace(in.Contact.FullName); name != "" {
		return name
	}
	return "Untitled signature"
}

// List returns the user's signatures, most recently updated first.
func (s *Service) List(ctx context.Context, userID string) ([]signature.Signature, error) {
	return s.store.List(ctx, userID)
}

// Get returns one signature by id.
func (s *Service) Get(ctx context.Context, userID, id string) (*signature.Signature, error) {
	return s.store.Get(ctx, userID, id)
}

// Delete removes one signature by id.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if err := s.store.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "signature deleted", logger.SignatureID(id), logger.UserID(userID))
	return nil
}

// AvatarUpload is the outcome of an avatar upload attempt. When the file
// fails validation, URL stays empty and Validation carries the findings.
type AvatarUpload struct {
	Validation imageprep.ValidationResult `json:"validation"`
	URL        string                     `json:"url,omitempty"`
}

// UploadAvatar validates the uploaded file and, when acceptable, runs it
// through the optimization pipeline into storage.
func (s *Service) UploadAvatar(ctx context.Context, r io.Reader, size int64, contentType string) (*AvatarUpload, error) {
	if s.uploads == nil {
		return nil, ErrUploadsNotConfigured
	}

	data, err := io.ReadAll(io.LimitReader(r, imageprep.MaxUploadBytes+1))
	if err != nil {
		return nil, err
	}

	// Browsers that do not know the file type send a generic content type;
	// let detection from the bytes take over in that case.
	if contentType == "application/octet-stream" {
		contentType = ""
	}

	validation, err := imageprep.Validate(bytes.NewReader(data), size, contentType)
	if err != nil {
		return nil, err
	}
	result := &AvatarUpload{Validation: validation}
	if !validation.Valid {
		return result, nil
	}

	state, err := s.uploads.Submit(ctx, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	result.URL = state.URL()
	return result, nil
}

// PresignAvatar returns a time-limited direct upload slot for the given
// content type.
func (s *Service) PresignAvatar(ctx context.Context, contentType string) (*storage.PresignedUpload, error) {
	if s.presigner == nil {
		return nil, ErrPresignNotConfigured
	}
	return s.presigner.PresignPut(ctx, contentType)
}
