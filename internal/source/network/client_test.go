package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobradar/internal/quota"
)

const listingPage = `<html><body>
<div class="base-card">
  <a class="base-card__full-link" href="https://www.linkedin.com/jobs/view/junior-dev-at-acme-3919482716?refId=x"></a>
  <h3 class="base-search-card__title"> Junior Software Developer </h3>
  <h4 class="base-search-card__subtitle">Acme Pvt Ltd
some extra line</h4>
  <span class="job-search-card__location">Bengaluru, Karnataka, India</span>
  <time datetime="2026-08-27">1 day ago</time>
</div>
<div class="base-card">
  <a class="base-card__full-link" href="https://www.linkedin.com/jobs/view/qa-at-beta-4012345678"></a>
  <h3 class="base-search-card__title">QA Engineer</h3>
  <h4 class="base-search-card__subtitle">Beta</h4>
  <span class="job-search-card__location">Remote</span>
  <span class="job-search-card__salary-info">₹4,00,000 - ₹6,00,000</span>
</div>
</body></html>`

func TestSearch_ParsesCards(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(listingPage))
	}))
	defer srv.Close()

	c := NewClient("India", "24hr")
	c.BaseURL = srv.URL

	jobs, err := c.Search(context.Background(), "Junior Software Developer", "entry level", true)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "Junior Software Developer", jobs[0].Position)
	assert.Equal(t, "Acme Pvt Ltd", jobs[0].Company, "company is trimmed to its first line")
	assert.Equal(t, "2026-08-27", jobs[0].Date)
	assert.Equal(t, "1 day ago", jobs[0].AgoTime)
	assert.Equal(t, "linkedin", jobs[0].Source)
	assert.Equal(t, "₹4,00,000 - ₹6,00,000", jobs[1].Salary)

	assert.Equal(t, []string{"2"}, gotQuery["f_E"])
	assert.Equal(t, []string{"2"}, gotQuery["f_WT"])
	assert.Equal(t, []string{"r86400"}, gotQuery["f_TPR"])
	assert.Equal(t, []string{"India"}, gotQuery["location"])
}

func TestSearch_AnyExperienceOmitsFacet(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`<html></html>`))
	}))
	defer srv.Close()

	c := NewClient("India", "24hr")
	c.BaseURL = srv.URL

	jobs, err := c.Search(context.Background(), "QA Engineer", "", false)
	require.NoError(t, err)
	assert.Empty(t, jobs)
	assert.NotContains(t, gotQuery, "f_E")
	assert.NotContains(t, gotQuery, "f_WT")
}

func TestSearch_RateLimitIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("India", "24hr")
	c.BaseURL = srv.URL

	_, err := c.Search(context.Background(), "QA Engineer", "", false)
	assert.True(t, quota.IsTransient(err), "a listing 429 never carries the daily-cap message")
}
