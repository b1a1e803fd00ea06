package signatures

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Jacobisaldana/signature-mail/pkg/imageprep"
	"github.com/Jacobisaldana/signature-mail/pkg/logger"
	"github.com/Jacobisaldana/signature-mail/pkg/signature"
	"github.com/Jacobisaldana/signature-mail/pkg/storage"
)

// userIDHeader carries the caller identity. Authentication itself lives in
// front of this service; an absent header maps to a single default user.
const userIDHeader = "X-User-ID"

const defaultUserID = "default"

// maxUploadMemory bounds multipart parsing; the image limit itself is
// enforced by imageprep.
const maxUploadMemory = imageprep.MaxUploadBytes + (1 << 20)

// Router composes the module behind standard middleware for standalone
// serving. Embedders that bring their own middleware mount Handle instead.
func Router(svc *Service) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Mount("/", svc.Handle())
	return r
}

// Handle returns the module's HTTP handler, mountable on any chi router.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/templates", s.handleTemplates)
	r.Get("/fonts", s.handleFonts)
	r.Post("/render", s.handleRender)

	r.Route("/signatures", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Post("/", s.handleCreate)
		r.Get("/{id}", s.handleGet)
		r.Put("/{id}", s.handleUpdate)
		r.Delete("/{id}", s.handleDelete)
	})

	r.Post("/avatar", s.handleUploadAvatar)
	r.Post("/avatar/presign", s.handlePresignAvatar)

	return r
}

// renderRequest is the JSON body for preview and save operations.
type renderRequest struct {
	TemplateID     signature.TemplateID  `json:"templateId"`
	Name           string                `json:"name"`
	Label          string                `json:"label"`
	Contact        signature.ContactData `json:"formData"`
	Colors         signature.BrandColors `json:"colors"`
	FontFamily     string                `json:"fontFamily"`
	ImageURL       string                `json:"imageUrl"`
	ImageUploading bool                  `json:"imageUploading"`
}

func (req renderRequest) imageState() signature.ImageState {
	if req.ImageUploading {
		return signature.ImageUploading()
	}
	return signature.ImageReady(req.ImageURL)
}

func (req renderRequest) renderParams() signature.RenderParams {
	return signature.RenderParams{
		Contact:    req.Contact,
		Colors:     req.Colors,
		Image:      req.imageState(),
		FontFamily: req.FontFamily,
	}
}

func (s *Service) handleTemplates(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, http.StatusOK, s.Templates())
}

func (s *Service) handleFonts(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, http.StatusOK, s.Fonts())
}

func (s *Service) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	s.respond(w, r, http.StatusOK, s.Render(r.Context(), req.TemplateID, req.renderParams()))
}

func (s *Service) handleList(w http.ResponseWriter, r *http.Request) {
	sigs, err := s.List(r.Context(), userID(r))
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	if sigs == nil {
		sigs = []signature.Signature{}
	}
	s.respond(w, r, http.StatusOK, sigs)
}

func (s *Service) handleCreate(w http.ResponseWriter, r *http.Request) {
	s.save(w, r, "")
}

func (s *Service) handleUpdate(w http.ResponseWriter, r *http.Request) {
	s.save(w, r, chi.URLParam(r, "id"))
}

func (s *Service) save(w http.ResponseWriter, r *http.Request, id string) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}

	sig, err := s.Save(r.Context(), userID(r), SaveInput{
		ID:         id,
		Name:       req.Name,
		Label:      req.Label,
		TemplateID: req.TemplateID,
		Contact:    req.Contact,
		Colors:     req.Colors,
		FontFamily: req.FontFamily,
		Image:      req.imageState(),
	})
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}

	status := http.StatusOK
	if id == "" {
		status = http.StatusCreated
	}
	s.respond(w, r, status, sig)
}

func (s *Service) handleGet(w http.ResponseWriter, r *http.Request) {
	sig, err := s.Get(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	s.respond(w, r, http.StatusOK, sig)
}

func (s *Service) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.Delete(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleUploadAvatar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "missing image file")
		return
	}
	defer func() { _ = file.Close() }()

	result, err := s.UploadAvatar(r.Context(), file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	if !result.Validation.Valid {
		s.respond(w, r, http.StatusUnprocessableEntity, result)
		return
	}
	s.respond(w, r, http.StatusOK, result)
}

func (s *Service) handlePresignAvatar(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ContentType string `json:"contentType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}

	upload, err := s.PresignAvatar(r.Context(), req.ContentType)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	s.respond(w, r, http.StatusOK, upload)
}

func userID(r *http.Request) string {
	if id := r.Header.Get(userIDHeader); id != "" {
		return id
	}
	return defaultUserID
}

func (s *Service) respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.ErrorContext(r.Context(), "failed to encode response", logger.Error(err))
	}
}

func (s *Service) respondError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.respond(w, r, status, map[string]string{"error": msg})
}

// respondServiceError maps service errors to HTTP status codes.
func (s *Service) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrSignatureNotFound):
		s.respondError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrUnknownTemplate):
		s.respondError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUploadInFlight), errors.Is(err, imageprep.ErrSuperseded):
		s.respondError(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, ErrEmbeddedImage):
		s.respondError(w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, imageprep.ErrDecodeFailed):
		s.respondError(w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, storage.ErrUnsupportedContentType):
		s.respondError(w, r, http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, ErrUploadsNotConfigured), errors.Is(err, ErrPresignNotConfigured):
		s.respondError(w, r, http.StatusNotImplemented, err.Error())
	default:
		s.log.ErrorContext(r.Context(), "request failed", logger.Error(err))
		s.respondError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
