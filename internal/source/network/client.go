// Client for the professional network's guest job-search endpoint. The
// listing pages are public HTML; no login or browser automation involved.

package network

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"go-jobradar/internal/model"
	"go-jobradar/internal/quota"
)

const defaultBaseURL = "https://www.linkedin.com/jobs-guest/jobs/api/seeMoreJobPostings/search"

// experienceCodes maps the configured tier names onto the endpoint's f_E
// facet values. An unknown or empty tier means "any".
var experienceCodes = map[string]string{
	"internship":  "1",
	"entry level": "2",
	"associate":   "3",
}

// dateWindows maps the configured window onto the endpoint's f_TPR facet.
var dateWindows = map[string]string{
	"24hr":       "r86400",
	"past week":  "r604800",
	"past month": "r2592000",
}

// Client fetches one faceted listing page per call.
type Client struct {
	BaseURL    string
	Location   string
	DateWindow string
	UserAgent  string
	HTTP       *http.Client
}

// NewClient builds a client searching the given location within the given
// date window.
func NewClient(location, dateWindow string) *Client {
	return &Client{
		BaseURL:    defaultBaseURL,
		Location:   location,
		DateWindow: dateWindow,
		UserAgent:  "Mozilla/5.0",
		HTTP:       &http.Client{Timeout: 20 * time.Second},
	}
}

// Search fetches listings for one role/experience/remote facet combination.
// Errors carry the quota taxonomy; this source has no daily cap, so a 429
// here classifies as transient and is retried with backoff.
func (c *Client) Search(ctx context.Context, role, experience string, remoteOnly bool) ([]model.RawJob, error) {
	params := url.Values{}
	params.Set("keywords", role)
	if c.Location != "" {
		params.Set("location", c.Location)
	}
	if code, ok := experienceCodes[strings.ToLower(experience)]; ok {
		params.Set("f_E", code)
	}
	if remoteOnly {
		params.Set("f_WT", "2")
	}
	if tpr, ok := dateWindows[c.DateWindow]; ok {
		params.Set("f_TPR", tpr)
	}
	params.Set("sortBy", "DD")
	params.Set("start", "0")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &quota.TransientError{Status: 0, Msg: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("listing fetch: %w",
			quota.ClassifyHTTP(resp.StatusCode, http.StatusText(resp.StatusCode)))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &quota.TransientError{Status: resp.StatusCode, Msg: err.Error()}
	}
	return parseCards(doc), nil
}

// parseCards pulls raw records out of the listing's job cards.
func parseCards(doc *goquery.Document) []model.RawJob {
	var jobs []model.RawJob
	doc.Find("div.base-card").Each(func(_ int, s *goquery.Selection) {
		jobURL, _ := s.Find("a.base-card__full-link").Attr("href")
		job := model.RawJob{
			Position: strings.TrimSpace(s.Find("h3.base-search-card__title").Text()),
			Company:  firstLine(s.Find("h4.base-search-card__subtitle").Text()),
			Location: strings.TrimSpace(s.Find("span.job-search-card__location").Text()),
			JobURL:   strings.TrimSpace(jobURL),
			Salary:   strings.TrimSpace(s.Find("span.job-search-card__salary-info").Text()),
			AgoTime:  strings.TrimSpace(s.Find("time").Text()),
			Source:   "linkedin",
		}
		if dt, ok := s.Find("time").Attr("datetime"); ok {
			job.Date = dt
		}
		if job.Position == "" && job.JobURL == "" {
			return
		}
		jobs = append(jobs, job)
	})
	return jobs
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}
