// Package favicon implements favicon discovery and resolution: it fetches
// a site's page, harvests icon candidates from the head section, and races
// the candidates to the first one that decodes as a valid image.
package favicon

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/bnema/icofetch/internal/logging"
)

// Doer issues HTTP requests. It must be safe for concurrent use;
// *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// fetchHead GETs the page and returns its <head> subtree as an
// independently parsable fragment, so downstream selectors run against
// the fragment root instead of the whole document.
func fetchHead(ctx context.Context, client Doer, pageURL *url.URL, userAgent string, maxBytes int64) (*goquery.Document, error) {
	log := logging.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,*/*;q=0.8")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrFetch, err)
	}

	log.Debug().Str("url", pageURL.String()).Int("bytes", len(body)).Msg("fetched page")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("%w: parse document: %v", ErrFetch, err)
	}

	head := doc.Find("head").First()
	if head.Length() == 0 {
		return nil, ErrNoHeadSection
	}

	inner, err := head.Html()
	if err != nil {
		return nil, ErrNoHeadSection
	}

	fragment, err := goquery.NewDocumentFromReader(strings.NewReader(inner))
	if err != nil {
		return nil, fmt.Errorf("%w: parse head fragment: %v", ErrFetch, err)
	}
	return fragment, nil
}
