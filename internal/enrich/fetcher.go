// Best-effort metadata scraping from job posting pages. Nothing in this
// package ever aborts the pipeline: every failure degrades to "no
// enrichment".

package enrich

import (
	"context"
	"log"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cheggaaa/pb/v3"
	"github.com/tidwall/gjson"
)

// Metadata is the partial record a posting page yields. Empty fields mean
// the page did not state them.
type Metadata struct {
	Company     string
	Title       string
	Location    string
	PostedAt    string
	Description string
}

var whitespaceRegex = regexp.MustCompile(`\s+`)

// descriptionSelectors are tried in order on pages without usable JSON-LD.
var descriptionSelectors = []string{
	".show-more-less-html__markup",
	"#job-details",
	"section.description",
	"div.description",
}

// Fetcher fetches posting pages with a small bounded worker pool of its own,
// independent of the query scheduler's pool, since it targets arbitrary
// third-party hosts rather than one rate-limited API.
type Fetcher struct {
	Client      *http.Client
	Concurrency int
	BatchPause  time.Duration
	Retries     int
	UserAgent   string
	Progress    bool
}

// NewFetcher builds a fetcher with the given enrichment concurrency.
func NewFetcher(concurrency int, batchPause time.Duration) *Fetcher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Fetcher{
		Client:      &http.Client{Timeout: 20 * time.Second},
		Concurrency: concurrency,
		BatchPause:  batchPause,
		Retries:     2,
		UserAgent:   "Mozilla/5.0",
	}
}

// FetchMetadata scrapes one posting page. It never returns an error; a page
// that cannot be fetched or parsed yields an empty Metadata.
func (f *Fetcher) FetchMetadata(ctx context.Context, url string) Metadata {
	for attempt := 0; attempt <= f.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return Metadata{}
			case <-time.After(time.Duration(600+attempt*400) * time.Millisecond):
			}
		}
		md, ok := f.fetchOnce(ctx, url)
		if ok {
			return md
		}
	}
	return Metadata{}
}

func (f *Fetcher) fetchOnce(ctx context.Context, url string) (Metadata, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Metadata{}, true // malformed URL will not improve on retry
	}
	req.Header.Set("User-Agent", f.UserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.Client.Do(req)
	if err != nil {
		return Metadata{}, false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Metadata{}, false
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return Metadata{}, false
	}

	if md, ok := fromJSONLD(doc); ok {
		return md, true
	}

	// fallback: description selectors only
	for _, sel := range descriptionSelectors {
		if text := cleanText(doc.Find(sel).Text()); text != "" {
			return Metadata{Description: text}, true
		}
	}
	return Metadata{}, true
}

// fromJSONLD scans script[type="application/ld+json"] blocks for a
// JobPosting object. @type may be a string or an array.
func fromJSONLD(doc *goquery.Document) (Metadata, bool) {
	var md Metadata
	found := false

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		raw := s.Text()
		if !gjson.Valid(raw) {
			return true
		}
		block := gjson.Parse(raw)
		if block.IsArray() {
			arr := block.Array()
			if len(arr) == 0 {
				return true
			}
			block = arr[0]
		}
		if !isJobPosting(block.Get("@type")) {
			return true
		}

		md.Company = block.Get("hiringOrganization.name").String()
		md.Title = block.Get("title").String()
		md.PostedAt = block.Get("datePosted").String()
		md.Location = jsonLDLocation(block.Get("jobLocation"))
		if desc := block.Get("description").String(); desc != "" {
			md.Description = htmlToText(desc)
		}
		found = true
		return false
	})

	return md, found
}

func isJobPosting(typ gjson.Result) bool {
	if typ.String() == "JobPosting" {
		return true
	}
	for _, v := range typ.Array() {
		if v.String() == "JobPosting" {
			return true
		}
	}
	return false
}

// jsonLDLocation joins addressLocality values from a single object or an
// array of jobLocation objects.
func jsonLDLocation(loc gjson.Result) string {
	if loc.IsArray() {
		var parts []string
		for _, l := range loc.Array() {
			if v := l.Get("address.addressLocality").String(); v != "" {
				parts = append(parts, v)
			}
		}
		return strings.Join(parts, ", ")
	}
	return loc.Get("address.addressLocality").String()
}

// htmlToText strips markup out of a JSON-LD description.
func htmlToText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return cleanText(html)
	}
	return cleanText(doc.Text())
}

func cleanText(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// FetchAll fetches metadata for every URL with the fetcher's own bounded
// concurrency, pausing between batches. Results align by index; failed URLs
// yield zero values.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string) []Metadata {
	out := make([]Metadata, len(urls))
	if len(urls) == 0 {
		return out
	}

	log.Printf("📄 Fetching descriptions for %d jobs...", len(urls))
	var bar *pb.ProgressBar
	if f.Progress {
		bar = pb.StartNew(len(urls))
		defer bar.Finish()
	}

	for start := 0; start < len(urls); start += f.Concurrency {
		end := start + f.Concurrency
		if end > len(urls) {
			end = len(urls)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				out[i] = f.FetchMetadata(ctx, urls[i])
				if bar != nil {
					bar.Increment()
				}
			}(i)
		}
		wg.Wait()

		if end < len(urls) && f.BatchPause > 0 {
			select {
			case <-ctx.Done():
				return out
			case <-time.After(f.BatchPause):
			}
		}
	}
	return out
}
