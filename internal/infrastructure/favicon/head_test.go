package favicon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchHeadReturnsParsableFragment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><head>
			<title>Example</title>
			<link rel="icon" href="/favicon.svg">
		</head><body><link rel="icon" href="/body-icon.png"><p>content</p></body></html>`))
	}))
	defer srv.Close()

	pageURL, err := url.Parse(srv.URL)
	require.NoError(t, err)

	head, err := fetchHead(context.Background(), srv.Client(), pageURL, defaultUserAgent, defaultMaxPageBytes)
	require.NoError(t, err)

	// Selectors run against the head fragment only: the body link is
	// not visible from the fragment root.
	links := head.Find("link")
	require.Equal(t, 1, links.Length())
	href, _ := links.Attr("href")
	assert.Equal(t, "/favicon.svg", href)
}

func TestFetchHeadSendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`<html><head></head><body></body></html>`))
	}))
	defer srv.Close()

	pageURL, err := url.Parse(srv.URL)
	require.NoError(t, err)

	_, err = fetchHead(context.Background(), srv.Client(), pageURL, "test-agent/1.0", defaultMaxPageBytes)
	require.NoError(t, err)
	assert.Equal(t, "test-agent/1.0", gotUA)
}

func TestFetchHeadTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	pageURL, err := url.Parse(srv.URL)
	require.NoError(t, err)
	srv.Close()

	_, err = fetchHead(context.Background(), http.DefaultClient, pageURL, defaultUserAgent, defaultMaxPageBytes)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestFetchHeadBodyReadCapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><head><link rel="icon" href="/a.png"></head></html>`))
	}))
	defer srv.Close()

	pageURL, err := url.Parse(srv.URL)
	require.NoError(t, err)

	// A tiny cap truncates the markup mid-head; the parser still yields
	// a head fragment from what was read.
	head, err := fetchHead(context.Background(), srv.Client(), pageURL, defaultUserAgent, 16)
	require.NoError(t, err)
	assert.Equal(t, 0, head.Find("link").Length())
}
