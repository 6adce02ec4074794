// Client for the Google-CSE-shaped search API the quota budget protects.

package cse

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"go-jobradar/internal/model"
	"go-jobradar/internal/quota"
)

const (
	defaultBaseURL = "https://www.googleapis.com/customsearch/v1"

	// ResultsPerPage is the API's page-size ceiling.
	ResultsPerPage = 10
)

// fresherTokens go into the query itself so the engine pre-narrows results.
var fresherTokens = []string{
	"fresher", "freshers", "graduate", "trainee", "entry level", "entry-level",
	"0-1 year", "0-2 year", "junior", "intern",
}

// indiaRemoteTokens cover the target geography and remote-with-India signals.
var indiaRemoteTokens = []string{
	"India", "Remote India", "Remote - India", "Remote in India",
	"Anywhere in India", "Work from India", "IST", "India Standard Time",
	"UTC+5:30", "Asia/Kolkata",
	"Bengaluru", "Bangalore", "Hyderabad", "Pune", "Chennai", "Mumbai",
	"Navi Mumbai", "Gurgaon", "Gurugram", "Noida", "Delhi", "NCR",
	"Kolkata", "Ahmedabad", "Jaipur", "Indore", "Kochi",
}

// atsSites is the OR cluster of ATS hosts and generic careers paths we want
// results from.
var atsSites = []string{
	"site:boards.greenhouse.io", "site:jobs.lever.co",
	"site:*.myworkdayjobs.com", "site:jobs.ashbyhq.com",
	"site:smartrecruiters.com", "site:jobs.icims.com",
	"site:*.taleo.net", "site:*.successfactors.com",
	"site:*.oraclecloud.com", "site:apply.workable.com",
	"site:*.bamboohr.com", "site:*.recruitee.com",
	"site:jobs.jobvite.com", "site:*.pinpoint.xyz",
	"site:*.teamtailor.com", "site:*.breezy.hr", "site:*.eightfold.ai",
	"inurl:/careers/", "inurl:/career/", "inurl:/jobs/", "inurl:/job/",
}

// Client issues single paged queries. Retry, budget accounting and the
// daily hard stop all live in the quota controller — this type only speaks
// HTTP and classifies what came back.
type Client struct {
	Key          string
	CX           string
	BaseURL      string
	DateRestrict string // "d1", "d7", "w2", ...
	HTTP         *http.Client
}

// NewClient builds a client for the given credentials.
func NewClient(key, cx, dateRestrict string) *Client {
	return &Client{
		Key:          key,
		CX:           cx,
		BaseURL:      defaultBaseURL,
		DateRestrict: dateRestrict,
		HTTP:         &http.Client{Timeout: 10 * time.Second},
	}
}

// orGroup renders (a OR "b c" OR d), quoting multi-word tokens.
func orGroup(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		if strings.ContainsAny(t, " \t") {
			quoted[i] = `"` + t + `"`
		} else {
			quoted[i] = t
		}
	}
	return "(" + strings.Join(quoted, " OR ") + ")"
}

// BuildQuery assembles the full query for one role.
func BuildQuery(role string) string {
	return strings.Join([]string{
		role,
		orGroup(fresherTokens),
		orGroup(indiaRemoteTokens),
		"(" + strings.Join(atsSites, " OR ") + ")",
	}, " ")
}

// Search fetches one result page for a role, starting at the given 1-based
// offset. Errors carry the quota taxonomy so the controller can decide
// between retry, skip and hard stop.
func (c *Client) Search(ctx context.Context, role string, start int) ([]model.RawJob, error) {
	params := url.Values{}
	params.Set("key", c.Key)
	params.Set("cx", c.CX)
	params.Set("q", BuildQuery(role))
	params.Set("num", strconv.Itoa(ResultsPerPage))
	params.Set("start", strconv.Itoa(start))
	params.Set("gl", "IN")
	params.Set("lr", "lang_en")
	params.Set("safe", "off")
	if c.DateRestrict != "" {
		params.Set("dateRestrict", c.DateRestrict)
	}
	params.Set("fields", "items(link,title,snippet,displayLink),searchInformation/totalResults")

	body, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	var jobs []model.RawJob
	for _, it := range gjson.GetBytes(body, "items").Array() {
		link := it.Get("link").String()
		if link == "" {
			continue
		}
		jobs = append(jobs, model.RawJob{
			Position: it.Get("title").String(),
			JobURL:   link,
			Snippet:  it.Get("snippet").String(),
			Via:      it.Get("displayLink").String(),
			Source:   "google_jobs",
		})
	}
	return jobs, nil
}

// Preflight runs one minimal query so bad credentials surface before any
// scheduling starts.
func (c *Client) Preflight(ctx context.Context) error {
	params := url.Values{}
	params.Set("key", c.Key)
	params.Set("cx", c.CX)
	params.Set("q", "test")
	params.Set("num", "1")
	params.Set("fields", "searchInformation/totalResults")
	_, err := c.get(ctx, params)
	return err
}

func (c *Client) get(ctx context.Context, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &quota.TransientError{Status: 0, Msg: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &quota.TransientError{Status: resp.StatusCode, Msg: err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		msg := gjson.GetBytes(body, "error.message").String()
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, fmt.Errorf("search api: %w", quota.ClassifyHTTP(resp.StatusCode, msg))
	}
	return body, nil
}
