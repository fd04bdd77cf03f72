// pkg/mem/search_bundles.go
package mem

import (
	"strings"
	"sync"
	"time"

	"huakai/internal/models/response_models"
)

// GatherKey identifies one supplemental research run. Two submissions with
// the same location, window and answers land on the same entry.
type GatherKey struct {
	Location string
	Start    string
	End      string
	Answers  string
}

// KeyFor normalizes the inputs into a comparable key: answers are trimmed
// and newline-joined so formatting noise does not split entries.
func KeyFor(location, start, end string, answers []string) GatherKey {
	trimmed := make([]string, 0, len(answers))
	for _, a := range answers {
		trimmed = append(trimmed, strings.TrimSpace(a))
	}
	return GatherKey{
		Location: strings.TrimSpace(location),
		Start:    start,
		End:      end,
		Answers:  strings.Join(trimmed, "\n"),
	}
}

type SearchBundleStore interface {
	// Set stores a bundle; ttl <= 0 keeps it for the process lifetime.
	Set(key GatherKey, bundle *response_models.SearchBundle, ttl time.Duration)

	// Get returns the bundle for key if present and not expired.
	Get(key GatherKey) (*response_models.SearchBundle, bool)

	Len() int
}

type bundleEntry struct {
	bundle    *response_models.SearchBundle
	expiresAt time.Time
}

type SearchBundles struct {
	mu   sync.RWMutex
	data map[GatherKey]bundleEntry
}

func NewSearchBundles() *SearchBundles {
	return &SearchBundles{
		data: make(map[GatherKey]bundleEntry),
	}
}

func (s *SearchBundles) Set(key GatherKey, bundle *response_models.SearchBundle, ttl time.Duration) {
	e := bundleEntry{bundle: bundle}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = e
}

func (s *SearchBundles) Get(key GatherKey) (*response_models.SearchBundle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.bundle, true
}

func (s *SearchBundles) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
