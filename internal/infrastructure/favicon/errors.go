package favicon

import "errors"

var (
	// ErrFetch indicates the site page could not be fetched or its body
	// could not be read.
	ErrFetch = errors.New("fetch failed")

	// ErrNoHeadSection indicates the fetched page has no <head> element.
	ErrNoHeadSection = errors.New("no head section found")

	// ErrNoFaviconFound indicates every candidate failed to fetch or to
	// decode as an image.
	ErrNoFaviconFound = errors.New("no favicon found")
)
