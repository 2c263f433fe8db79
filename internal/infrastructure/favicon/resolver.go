package favicon

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/sync/semaphore"

	"github.com/bnema/icofetch/internal/domain/entity"
	"github.com/bnema/icofetch/internal/logging"
)

type raceResult struct {
	index int
	fav   *entity.Favicon
}

// race fetches every candidate concurrently, bounded by maxConcurrent
// in-flight requests, and returns the asset of the first candidate in
// harvest order whose fetch-then-decode succeeds. The winner is chosen
// by harvest order, not arrival order, so the result is deterministic
// with respect to network timing. Per-candidate failures are recovered
// locally; only the all-failed case surfaces, as ErrNoFaviconFound.
func (s *Service) race(ctx context.Context, candidates []*url.URL) (*entity.Favicon, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	n := len(candidates)
	sem := semaphore.NewWeighted(s.maxConcurrent)
	// Buffered so stragglers never block after the winner is picked.
	results := make(chan raceResult, n)

	for i, candidate := range candidates {
		go func(i int, candidate *url.URL) {
			if err := sem.Acquire(ctx, 1); err != nil {
				results <- raceResult{index: i}
				return
			}
			defer sem.Release(1)
			results <- raceResult{index: i, fav: s.fetchCandidate(ctx, candidate)}
		}(i, candidate)
	}

	done := make([]bool, n)
	favs := make([]*entity.Favicon, n)

	for received := 0; received < n; received++ {
		r := <-results
		done[r.index] = true
		favs[r.index] = r.fav

		// The winner is decided once some successful candidate has no
		// unfinished predecessor.
		for i := 0; i < n; i++ {
			if !done[i] {
				break
			}
			if favs[i] != nil {
				return favs[i], nil
			}
		}
	}

	return nil, ErrNoFaviconFound
}

// fetchCandidate GETs one candidate and validates the bytes by decoding.
// Any failure is non-fatal for the overall race and returns nil.
func (s *Service) fetchCandidate(ctx context.Context, candidate *url.URL) *entity.Favicon {
	log := logging.FromContext(ctx)

	data, err := s.get(ctx, candidate, s.maxIconBytes)
	if err != nil {
		log.Debug().Err(err).Str("candidate", candidate.String()).Msg("candidate fetch failed")
		return nil
	}

	fav, err := entity.NewFavicon(candidate, data)
	if err != nil {
		log.Debug().Err(err).Str("candidate", candidate.String()).Msg("candidate is not a decodable image")
		return nil
	}

	log.Debug().Str("candidate", candidate.String()).Int("bytes", len(data)).Msg("candidate validated")
	return fav
}

// get issues a GET and reads at most maxBytes of the response body.
func (s *Service) get(ctx context.Context, u *url.URL, maxBytes int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxBytes))
}
