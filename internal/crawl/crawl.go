package crawl

import (
	"context"
	"log"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobmatch/internal/discover"
	"github.com/jonathan/jobmatch/internal/extract"
	"github.com/jonathan/jobmatch/internal/fetch"
	"github.com/jonathan/jobmatch/internal/types"
)

const (
	// MaxPagesLimit is the hard maximum number of candidate pages fetched
	// per company.
	MaxPagesLimit = 15
	// DefaultConcurrency is the fetch worker pool size. Kept small so one
	// crawl stays polite toward a single company host.
	DefaultConcurrency = 3
	// MaxConcurrency bounds the worker pool regardless of configuration.
	MaxConcurrency = 4
	// DefaultPageTimeout cancels a stuck fetch without aborting the session.
	DefaultPageTimeout = 30 * time.Second
	// DefaultPerHostDelay is the minimum spacing between requests to one
	// host. It holds regardless of worker pool size.
	DefaultPerHostDelay = 500 * time.Millisecond
)

// Options configures one Crawler.
type Options struct {
	MaxPages    int
	Concurrency int
	PageTimeout time.Duration
	// PerHostDelay is the minimum delay between requests to the same host.
	PerHostDelay time.Duration
	// UseBrowser enables headless-browser rendering for pages that return
	// too little text over plain HTTP.
	UseBrowser bool
	Verbose    bool
}

// DefaultOptions returns the default crawl configuration.
func DefaultOptions() *Options {
	return &Options{
		MaxPages:     MaxPagesLimit,
		Concurrency:  DefaultConcurrency,
		PageTimeout:  DefaultPageTimeout,
		PerHostDelay: DefaultPerHostDelay,
	}
}

// Crawler fetches a company's career pages and extracts job postings.
// The fetcher is constructor-injected so tests can substitute fakes and so
// rate limiting stays an explicit per-host object rather than global state.
type Crawler struct {
	fetcher fetch.Getter
	limiter *fetch.HostLimiter
	opts    *Options
}

// New creates a Crawler with the given fetcher. Nil options use defaults;
// out-of-range values are clamped on a private copy, never on the caller's
// struct.
func New(fetcher fetch.Getter, opts *Options) *Crawler {
	o := *DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.MaxPages < 1 || o.MaxPages > MaxPagesLimit {
		o.MaxPages = MaxPagesLimit
	}
	if o.Concurrency < 1 {
		o.Concurrency = DefaultConcurrency
	}
	if o.Concurrency > MaxConcurrency {
		o.Concurrency = MaxConcurrency
	}
	if o.PageTimeout <= 0 {
		o.PageTimeout = DefaultPageTimeout
	}
	if o.PerHostDelay <= 0 {
		o.PerHostDelay = DefaultPerHostDelay
	}
	return &Crawler{
		fetcher: fetcher,
		limiter: fetch.NewHostLimiterWithDelay(o.PerHostDelay),
		opts:    &o,
	}
}

// Company crawls the company at rootURL and returns the deduplicated
// posting list. Per-URL failures are recorded in the session and never
// abort the crawl; only caller misuse (empty or malformed root URL) is an
// error.
func (c *Crawler) Company(ctx context.Context, rootURL string) ([]types.JobPosting, error) {
	session, err := c.CompanySession(ctx, rootURL)
	if err != nil {
		return nil, err
	}
	return session.Postings(), nil
}

// CompanySession runs one crawl pass and returns the full session,
// including per-URL statuses, for callers that want to report progress.
func (c *Crawler) CompanySession(ctx context.Context, rootURL string) (*types.CrawlSession, error) {
	if rootURL == "" {
		return nil, &ValidationError{Field: "rootURL", Message: "must not be empty"}
	}
	parsed, err := url.Parse(rootURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &ValidationError{Field: "rootURL", Message: "must be an absolute URL with scheme and host"}
	}

	company := extract.CompanyNameFromURL(rootURL)
	session := types.NewCrawlSession(rootURL)

	candidates, err := discover.CareerPages(ctx, rootURL, c.fetcher, c.opts.Verbose)
	if err != nil {
		// Root URL already validated above, so discovery cannot reject it;
		// treat a failure here as an empty candidate set.
		if c.opts.Verbose {
			log.Printf("[CRAWL] discovery failed for %s: %v", rootURL, err)
		}
		return session, nil
	}

	if len(candidates) > c.opts.MaxPages {
		candidates = candidates[:c.opts.MaxPages]
	}
	for _, u := range candidates {
		session.AddPage(u)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Concurrency)

	for _, candidate := range candidates {
		// Stop issuing new fetches promptly on cancellation; in-flight
		// fetches finish or time out on their own.
		if gCtx.Err() != nil {
			session.MarkFailed(candidate, gCtx.Err())
			continue
		}

		g.Go(func() error {
			c.crawlPage(gCtx, session, candidate, company)
			return nil
		})
	}

	// Workers never return errors, so Wait only synchronizes.
	_ = g.Wait()

	return session, nil
}

// crawlPage fetches one candidate URL and extracts its postings. All
// failures are recorded on the session and swallowed.
func (c *Crawler) crawlPage(ctx context.Context, session *types.CrawlSession, pageURL, company string) {
	if err := c.limiter.WaitURL(ctx, pageURL); err != nil {
		session.MarkFailed(pageURL, err)
		return
	}

	pageCtx, cancel := context.WithTimeout(ctx, c.opts.PageTimeout)
	defer cancel()

	result, err := c.fetcher.Get(pageCtx, pageURL)
	if err != nil {
		if c.opts.Verbose {
			log.Printf("[CRAWL] fetch failed for %s: %v", pageURL, err)
		}
		session.MarkFailed(pageURL, err)
		return
	}

	html := result.HTML
	if c.opts.UseBrowser && fetch.ShouldUseBrowser(html) {
		if rendered, err := fetch.WithBrowser(ctx, pageURL, c.opts.PageTimeout, c.opts.Verbose); err == nil {
			html = rendered
		}
	}

	postings := extract.Postings(html, company, pageURL)
	if c.opts.Verbose {
		log.Printf("[CRAWL] extracted %d postings from %s", len(postings), pageURL)
	}
	session.MarkSucceeded(pageURL, postings)
}
