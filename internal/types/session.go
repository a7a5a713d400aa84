package types

import (
	"sync"

	"github.com/google/uuid"
)

// PageState tracks the fetch outcome for one candidate URL.
type PageState string

// Page states for a crawl session.
const (
	PagePending   PageState = "pending"
	PageSucceeded PageState = "succeeded"
	PageFailed    PageState = "failed"
)

// PageStatus records the per-URL outcome of one crawl pass.
type PageStatus struct {
	URL      string    `json:"url"`
	State    PageState `json:"state"`
	Error    string    `json:"error,omitempty"`
	Postings int       `json:"postings"`
}

// CrawlSession holds the transient state of one discovery+extraction pass
// over a company's site. It is created at the start of a crawl call and
// discarded when the call returns. Appends are safe from concurrent fetch
// workers.
type CrawlSession struct {
	ID      uuid.UUID
	RootURL string

	mu       sync.Mutex
	pages    map[string]*PageStatus
	order    []string
	postings map[string][]JobPosting
}

// NewCrawlSession creates a session for the given company root URL.
func NewCrawlSession(rootURL string) *CrawlSession {
	return &CrawlSession{
		ID:       uuid.New(),
		RootURL:  rootURL,
		pages:    make(map[string]*PageStatus),
		postings: make(map[string][]JobPosting),
	}
}

// AddPage registers a candidate URL in pending state. Registration order is
// preserved so that deduplication is deterministic.
func (s *CrawlSession) AddPage(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pages[url]; ok {
		return
	}
	s.pages[url] = &PageStatus{URL: url, State: PagePending}
	s.order = append(s.order, url)
}

// MarkSucceeded records a successful fetch+extract for a URL. Postings are
// stored per page so that the final aggregate follows registration order,
// not worker completion order.
func (s *CrawlSession) MarkSucceeded(url string, postings []JobPosting) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.pages[url]; ok {
		st.State = PageSucceeded
		st.Postings = len(postings)
	}
	s.postings[url] = postings
}

// MarkFailed records a per-URL failure without aborting the session.
func (s *CrawlSession) MarkFailed(url string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.pages[url]; ok {
		st.State = PageFailed
		if err != nil {
			st.Error = err.Error()
		}
	}
}

// Pages returns the per-URL statuses in registration order.
func (s *CrawlSession) Pages() []PageStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]PageStatus, 0, len(s.order))
	for _, u := range s.order {
		out = append(out, *s.pages[u])
	}
	return out
}

// Postings returns the aggregated postings deduplicated by normalized
// (title, company) pair, keeping the first occurrence in page registration
// order. The result is identical run to run regardless of which worker
// finished first.
func (s *CrawlSession) Postings() []JobPosting {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []JobPosting
	for _, u := range s.order {
		all = append(all, s.postings[u]...)
	}
	return DedupPostings(all)
}

// DedupPostings collapses postings that share a normalized (title, company)
// pair, keeping the first occurrence. The operation is idempotent.
func DedupPostings(postings []JobPosting) []JobPosting {
	seen := make(map[string]bool, len(postings))
	out := make([]JobPosting, 0, len(postings))
	for _, p := range postings {
		key := p.DedupKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}
