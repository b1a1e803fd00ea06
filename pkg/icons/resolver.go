package icons

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Source maps an asset-host bucket name to a candidate icon set. The storage
// collaborator implements this against its public base URL.
type Source interface {
	IconURLs(bucket string) Set
}

// Prober reports whether a candidate icon URL actually loads. The default
// implementation issues an HTTP GET and accepts any 2xx response.
type Prober interface {
	Probe(ctx context.Context, url string) bool
}

type httpProber struct {
	client *http.Client
}

func (p httpProber) Probe(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// ResolverConfig configures asset-host icon resolution.
type ResolverConfig struct {
	Bucket         string        `env:"ICONS_BUCKET" envDefault:"icons"`
	FallbackBucket string        `env:"ICONS_FALLBACK_BUCKET" envDefault:"icon"`
	ProbeTimeout   time.Duration `env:"ICONS_PROBE_TIMEOUT" envDefault:"5s"`
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithProber sets a custom prober. Useful for testing.
func WithProber(p Prober) ResolverOption {
	return func(r *Resolver) {
		if p != nil {
			r.prober = p
		}
	}
}

// WithHTTPClient sets the HTTP client used by the default prober.
func WithHTTPClient(c *http.Client) ResolverOption {
	return func(r *Resolver) {
		if c != nil {
			r.prober = httpProber{client: c}
		}
	}
}

// WithLogger sets the logger used for resolution progress.
func WithLogger(log *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// Resolver probes asset-host icon candidates and merges successful ones into
// a Registry. Icons that never resolve keep their hardcoded defaults.
type Resolver struct {
	registry *Registry
	source   Source
	prober   Prober
	log      *slog.Logger
	buckets  []string
	timeout  time.Duration
}

// NewResolver creates a Resolver over the given registry and source.
func NewResolver(registry *Registry, source Source, cfg ResolverConfig, opts ...ResolverOption) *Resolver {
	buckets := []string{cfg.Bucket}
	if cfg.FallbackBucket != "" && cfg.FallbackBucket != cfg.Bucket {
		buckets = append(buckets, cfg.FallbackBucket)
	}

	timeout := cfg.ProbeTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	r := &Resolver{
		registry: registry,
		source:   source,
		prober:   httpProber{client: &http.Client{Timeout: timeout}},
		log:      slog.Default(),
		buckets:  buckets,
		timeout:  timeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve probes every icon against the configured buckets in order and
// merges each icon into the registry independently as soon as a candidate
// loads. Failures are logged and leave the default URL in place; Resolve
// never returns an error because icon resolution is best-effort.
func (r *Resolver) Resolve(ctx context.Context) {
	for _, name := range Names() {
		r.resolveIcon(ctx, name)
	}
}

func (r *Resolver) resolveIcon(ctx context.Context, name Name) {
	for _, bucket := range r.buckets {
		url := r.source.IconURLs(bucket).URL(name)
		if url == "" {
			continue
		}

		probeCtx, cancel := context.WithTimeout(ctx, r.timeout)
		ok := r.prober.Probe(probeCtx, url)
		cancel()

		if ok {
			r.registry.MergeOne(name, url)
			r.log.DebugContext(ctx, "icon resolved", "icon", string(name), "bucket", bucket)
			return
		}
	}
	r.log.DebugContext(ctx, "icon kept default", "icon", string(name))
}
