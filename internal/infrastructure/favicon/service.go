package favicon

import (
	"context"
	"net/http"
	"time"

	"github.com/bnema/icofetch/internal/domain/entity"
	domainurl "github.com/bnema/icofetch/internal/domain/url"
	"github.com/bnema/icofetch/internal/logging"
)

const (
	// HTTP client timeout covering one request round-trip.
	defaultFetchTimeout = 10 * time.Second
	// Cap on simultaneous in-flight candidate fetches.
	defaultMaxConcurrent = 10
	// Read caps for the page body and for a single icon.
	defaultMaxPageBytes = 2 << 20
	defaultMaxIconBytes = 5 << 20

	defaultUserAgent = "Mozilla/5.0 (compatible; icofetch/1.0; +https://github.com/bnema/icofetch)"
)

// Options configures a Service. Zero values select the defaults.
type Options struct {
	// Client issues all HTTP requests. Defaults to an *http.Client with
	// a 10s timeout.
	Client Doer

	// MaxConcurrent caps simultaneous candidate fetches. Defaults to 10.
	MaxConcurrent int64

	// UserAgent is sent on every request.
	UserAgent string

	// MaxPageBytes / MaxIconBytes cap how much of a response body is read.
	MaxPageBytes int64
	MaxIconBytes int64
}

// Service resolves the favicon representing a website.
type Service struct {
	client        Doer
	maxConcurrent int64
	userAgent     string
	maxPageBytes  int64
	maxIconBytes  int64
}

// NewService creates a Service, filling unset options with defaults.
func NewService(opts Options) *Service {
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: defaultFetchTimeout}
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = defaultMaxConcurrent
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.MaxPageBytes <= 0 {
		opts.MaxPageBytes = defaultMaxPageBytes
	}
	if opts.MaxIconBytes <= 0 {
		opts.MaxIconBytes = defaultMaxIconBytes
	}
	return &Service{
		client:        opts.Client,
		maxConcurrent: opts.MaxConcurrent,
		userAgent:     opts.UserAgent,
		maxPageBytes:  opts.MaxPageBytes,
		maxIconBytes:  opts.MaxIconBytes,
	}
}

// Resolve runs the full pipeline for a raw site string: normalize the URL,
// fetch the page head, harvest icon candidates, and race them to the first
// valid image. The returned asset is owned by the caller.
func (s *Service) Resolve(ctx context.Context, site string) (*entity.Favicon, error) {
	log := logging.FromContext(ctx)

	base, err := domainurl.NormalizeSite(site)
	if err != nil {
		return nil, err
	}

	head, err := fetchHead(ctx, s.client, base, s.userAgent, s.maxPageBytes)
	if err != nil {
		return nil, err
	}

	candidates := harvest(head, base)
	log.Debug().Str("site", base.String()).Int("candidates", len(candidates)).Msg("harvested icon candidates")

	fav, err := s.race(ctx, candidates)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("site", base.String()).Str("favicon", fav.URL.String()).Msg("favicon resolved")
	return fav, nil
}
