package imageprep

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/Jacobisaldana/signature-mail/pkg/signature"
)

// Uploader stores optimized image bytes and returns a public URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithOptimizeOptions overrides the resize/re-encode settings.
func WithOptimizeOptions(opts Options) PipelineOption {
	return func(p *Pipeline) { p.opts = opts }
}

// WithLogger sets the logger used for pipeline events.
func WithLogger(log *slog.Logger) PipelineOption {
	return func(p *Pipeline) { p.log = log }
}

// Pipeline runs avatar uploads through optimization and storage while
// tracking the current image state. Concurrent submissions resolve
// last-write-wins: only the most recent submission may publish its
// result, earlier ones finish with ErrSuperseded.
type Pipeline struct {
	uploader Uploader
	opts     Options
	log      *slog.Logger

	mu    sync.Mutex
	seq   uint64
	state signature.ImageState
}

// NewPipeline creates a pipeline around the given uploader.
func NewPipeline(uploader Uploader, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		uploader: uploader,
		log:      slog.Default(),
		state:    signature.ImageNotSet(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns the current image state.
func (p *Pipeline) State() signature.ImageState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Clear resets the pipeline to no image. In-flight submissions are
// superseded and will not publish.
func (p *Pipeline) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seq++
	p.state = signature.ImageNotSet()
}

// Submit optimizes the image and uploads it, returning the resulting
// ready state. While the upload is in flight the pipeline reports
// ImageUploading. On failure the state rolls back to its value before
// this submission.
func (p *Pipeline) Submit(ctx context.Context, r io.Reader) (signature.ImageState, error) {
	p.mu.Lock()
	p.seq++
	ticket := p.seq
	prev := p.state
	p.state = signature.ImageUploading()
	p.mu.Unlock()

	optimized, err := Optimize(ctx, r, p.opts)
	if err != nil {
		return p.resolve(ticket, prev, signature.ImageState{}, err)
	}

	url, err := p.uploader.Upload(ctx, optimized.Data, optimized.ContentType)
	if err != nil {
		return p.resolve(ticket, prev, signature.ImageState{}, err)
	}
	if strings.HasPrefix(url, "data:") {
		return p.resolve(ticket, prev, signature.ImageState{}, ErrInlineUploadURL)
	}

	p.log.DebugContext(ctx, "avatar uploaded",
		slog.String("url", url),
		slog.Int("bytes", len(optimized.Data)),
		slog.Int("width", optimized.Width),
		slog.Int("height", optimized.Height))

	return p.resolve(ticket, prev, signature.ImageReady(url), nil)
}

// resolve publishes the submission outcome unless a newer submission has
// taken over in the meantime.
func (p *Pipeline) resolve(ticket uint64, prev, next signature.ImageState, err error) (signature.ImageState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.seq != ticket {
		return p.state, ErrSuperseded
	}
	if err != nil {
		p.state = prev
		return prev, err
	}
	p.state = next
	return next, nil
}
