// Package url provides URL normalization for favicon resolution.
package url

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// ErrInvalidURL indicates the input could not be turned into an absolute
// http(s) URL with a host.
var ErrInvalidURL = errors.New("invalid url")

// Normalize adds an https:// prefix if the input has no http(s) scheme,
// then parses it as an absolute URL.
func Normalize(input string) (*url.URL, error) {
	switch {
	case strings.HasPrefix(input, "http://"):
	case strings.HasPrefix(input, "https://"):
	default:
		input = "https://" + input
	}

	u, err := url.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	return u, nil
}

// RewriteHost prepends "www." to the host unless it is already there.
// Many sites serve static assets only from the www subdomain. The rewrite
// is idempotent: a www host passes through unchanged.
func RewriteHost(u *url.URL) (*url.URL, error) {
	host := u.Hostname()
	if host == "" {
		return nil, fmt.Errorf("%w: no host in %q", ErrInvalidURL, u.String())
	}

	rewritten := *u
	if !strings.HasPrefix(host, "www.") {
		if port := u.Port(); port != "" {
			rewritten.Host = net.JoinHostPort("www."+host, port)
		} else {
			rewritten.Host = "www." + host
		}
	}
	return &rewritten, nil
}

// NormalizeSite runs Normalize followed by RewriteHost on a raw site string.
func NormalizeSite(input string) (*url.URL, error) {
	u, err := Normalize(input)
	if err != nil {
		return nil, err
	}
	return RewriteHost(u)
}

// ExtractDomain extracts the normalized domain (host) from a URL.
// Strips the "www." prefix so youtube.com and www.youtube.com resolve
// to the same value.
func ExtractDomain(u *url.URL) string {
	if u == nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// SanitizeDomainForFilename converts a domain to a safe filename with the
// given extension. Replaces unsafe filesystem characters with underscores.
func SanitizeDomainForFilename(domain, ext string) string {
	replacer := strings.NewReplacer(
		":", "_",
		"/", "_",
		"\\", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
	)
	return replacer.Replace(domain) + "." + ext
}
