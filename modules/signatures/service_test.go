package signatures_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jacobisaldana/signature-mail/modules/signatures"
	"github.com/Jacobisaldana/signature-mail/pkg/compat"
	"github.com/Jacobisaldana/signature-mail/pkg/icons"
	"github.com/Jacobisaldana/signature-mail/pkg/signature"
	"github.com/Jacobisaldana/signature-mail/pkg/signature/templates"
)

type memStore struct {
	mu   sync.Mutex
	sigs map[string]signature.Signature
}

func newMemStore() *memStore {
	return &memStore{sigs: make(map[string]signature.Signature)}
}

func (m *memStore) List(_ context.Context, userID string) ([]signature.Signature, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []signature.Signature
	for _, sig := range m.sigs {
		if sig.UserID == userID {
			out = append(out, sig)
		}
	}
	return out, nil
}

func (m *memStore) Get(_ context.Context, userID, id string) (*signature.Signature, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sig, ok := m.sigs[id]
	if !ok || sig.UserID != userID {
		return nil, signatures.ErrSignatureNotFound
	}
	return &sig, nil
}

func (m *memStore) Save(_ context.Context, sig *signature.Signature) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sigs[sig.ID] = *sig
	return nil
}

func (m *memStore) Delete(_ context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	sig, ok := m.sigs[id]
	if !ok || sig.UserID != userID {
		return signatures.ErrSignatureNotFound
	}
	delete(m.sigs, id)
	return nil
}

type stubUploads struct {
	url   string
	err   error
	calls int
}

func (u *stubUploads) Submit(_ context.Context, r io.Reader) (signature.ImageState, error) {
	u.calls++
	if u.err != nil {
		return signature.ImageNotSet(), u.err
	}
	_, _ = io.Copy(io.Discard, r)
	return signature.ImageReady(u.url), nil
}

func newTestService(opts ...signatures.ServiceOption) (*signatures.Service, *memStore) {
	store := newMemStore()
	registry := templates.NewRegistry(icons.NewRegistry())
	return signatures.NewService(store, registry, opts...), store
}

func testContact() signature.ContactData {
	return signature.ContactData{
		FullName: "Ada Lovelace",
		JobTitle: "Engineer",
		Email:    "ada@example.com",
	}
}

func testInput() signatures.SaveInput {
	return signatures.SaveInput{
		Name:       "Work signature",
		TemplateID: signature.TemplateModern,
		Contact:    testContact(),
		Colors:     signature.DefaultColors(),
	}
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestSaveCreatesSignatureWithFreshHTML(t *testing.T) {
	t.Parallel()

	svc, store := newTestService()

	sig, err := svc.Save(context.Background(), "u1", testInput())
	require.NoError(t, err)

	assert.NotEmpty(t, sig.ID)
	assert.Equal(t, "u1", sig.UserID)
	assert.Contains(t, sig.HTML, "Ada Lovelace")
	assert.False(t, sig.CreatedAt.IsZero())
	assert.Equal(t, sig.CreatedAt, sig.UpdatedAt)

	stored, err := store.Get(context.Background(), "u1", sig.ID)
	require.NoError(t, err)
	assert.Equal(t, sig.HTML, stored.HTML)
}

func TestSaveRejectsUnknownTemplate(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	in := testInput()
	in.TemplateID = "holographic"
	_, err := svc.Save(context.Background(), "u1", in)
	assert.ErrorIs(t, err, signatures.ErrUnknownTemplate)
}

func TestSaveRejectsUploadInFlight(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	in := testInput()
	in.Image = signature.ImageUploading()
	_, err := svc.Save(context.Background(), "u1", in)
	assert.ErrorIs(t, err, signatures.ErrUploadInFlight)
}

func TestSaveRejectsDataURLImage(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	in := testInput()
	in.Image = signature.ImageReady("data:image/png;base64,AAAA")
	_, err := svc.Save(context.Background(), "u1", in)
	assert.ErrorIs(t, err, signatures.ErrEmbeddedImage)
}

func TestSaveCoercesUnknownFont(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	in := testInput()
	in.FontFamily = "Comic Sans MS, cursive"
	sig, err := svc.Save(context.Background(), "u1", in)
	require.NoError(t, err)
	assert.Equal(t, signature.DefaultFont, sig.FontFamily)
}

func TestSaveDefaultsName(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	in := testInput()
	in.Name = ""
	sig, err := svc.Save(context.Background(), "u1", in)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", sig.Name)
}

func TestSaveUpdatePreservesCreatedAt(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	created, err := svc.Save(context.Background(), "u1", testInput())
	require.NoError(t, err)

	in := testInput()
	in.ID = created.ID
	in.Contact.FullName = "Grace Hopper"
	updated, err := svc.Save(context.Background(), "u1", in)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Contains(t, updated.HTML, "Grace Hopper")
}

func TestSaveUpdateOfMissingSignature(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	in := testInput()
	in.ID = "does-not-exist"
	_, err := svc.Save(context.Background(), "u1", in)
	assert.ErrorIs(t, err, signatures.ErrSignatureNotFound)
}

func TestSaveScopesUpdatesToOwner(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	created, err := svc.Save(context.Background(), "u1", testInput())
	require.NoError(t, err)

	in := testInput()
	in.ID = created.ID
	_, err = svc.Save(context.Background(), "u2", in)
	assert.ErrorIs(t, err, signatures.ErrSignatureNotFound)
}

func TestRenderReturnsIssuesAndSize(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	result := svc.Render(context.Background(), signature.TemplateModern, signature.RenderParams{
		Contact: testContact(),
		Colors:  signature.DefaultColors(),
	})

	assert.Contains(t, result.HTML, "Ada Lovelace")
	assert.Contains(t, result.Text, "Ada Lovelace")
	assert.NotContains(t, result.Text, "\n")
	assert.Greater(t, result.Size.ByteLength, 0)
	require.NotEmpty(t, result.Issues)
	assert.Equal(t, compat.SeverityInfo, result.Issues[0].Severity)
}

func TestRenderUnknownTemplate(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	result := svc.Render(context.Background(), "holographic", signature.RenderParams{Contact: testContact()})
	assert.Equal(t, templates.NotFoundHTML, result.HTML)
}

func TestTemplatesAndFonts(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	assert.Len(t, svc.Templates(), 6)
	assert.Len(t, svc.Fonts(), 7)
}

func TestUploadAvatar(t *testing.T) {
	t.Parallel()

	uploads := &stubUploads{url: "https://cdn.example.com/avatar.jpg"}
	svc, _ := newTestService(signatures.WithUploads(uploads))

	data := pngBytes(t, 64, 64)
	result, err := svc.UploadAvatar(context.Background(), bytes.NewReader(data), int64(len(data)), "image/png")
	require.NoError(t, err)

	assert.True(t, result.Validation.Valid)
	assert.Equal(t, "https://cdn.example.com/avatar.jpg", result.URL)
	assert.Equal(t, 1, uploads.calls)
}

func TestUploadAvatarInvalidFileSkipsUpload(t *testing.T) {
	t.Parallel()

	uploads := &stubUploads{url: "https://cdn.example.com/avatar.jpg"}
	svc, _ := newTestService(signatures.WithUploads(uploads))

	data := []byte("definitely not an image")
	result, err := svc.UploadAvatar(context.Background(), bytes.NewReader(data), int64(len(data)), "")
	require.NoError(t, err)

	assert.False(t, result.Validation.Valid)
	assert.Empty(t, result.URL)
	assert.Zero(t, uploads.calls)
}

func TestUploadAvatarWithoutPipeline(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	data := pngBytes(t, 32, 32)
	_, err := svc.UploadAvatar(context.Background(), bytes.NewReader(data), int64(len(data)), "image/png")
	assert.ErrorIs(t, err, signatures.ErrUploadsNotConfigured)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	created, err := svc.Save(context.Background(), "u1", testInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "u1", created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), "u1", created.ID), signatures.ErrSignatureNotFound)
}
