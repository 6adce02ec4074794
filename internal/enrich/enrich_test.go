package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testFetcher() *Fetcher {
	f := NewFetcher(2, 0)
	f.Retries = 0
	f.Client.Timeout = 2 * time.Second
	return f
}

func TestFetchMetadata_JSONLD(t *testing.T) {
	page := `<html><head>
	<script type="application/ld+json">
	{
	  "@context": "https://schema.org",
	  "@type": "JobPosting",
	  "title": "Junior Software Developer",
	  "datePosted": "2026-08-20",
	  "hiringOrganization": {"@type": "Organization", "name": "Acme Pvt Ltd"},
	  "jobLocation": {"@type": "Place", "address": {"addressLocality": "Bengaluru"}},
	  "description": "<p>Freshers welcome. <b>0-1 year</b> experience.</p>"
	}
	</script></head><body></body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer srv.Close()

	md := testFetcher().FetchMetadata(context.Background(), srv.URL)
	assert.Equal(t, "Acme Pvt Ltd", md.Company)
	assert.Equal(t, "Junior Software Developer", md.Title)
	assert.Equal(t, "Bengaluru", md.Location)
	assert.Equal(t, "2026-08-20", md.PostedAt)
	assert.Equal(t, "Freshers welcome. 0-1 year experience.", md.Description)
}

func TestFetchMetadata_JSONLDTypeArrayAndLocationList(t *testing.T) {
	page := `<html><head><script type="application/ld+json">
	{
	  "@type": ["JobPosting", "Thing"],
	  "title": "QA Engineer",
	  "jobLocation": [
	    {"address": {"addressLocality": "Pune"}},
	    {"address": {"addressLocality": "Mumbai"}}
	  ]
	}
	</script></head></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer srv.Close()

	md := testFetcher().FetchMetadata(context.Background(), srv.URL)
	assert.Equal(t, "QA Engineer", md.Title)
	assert.Equal(t, "Pune, Mumbai", md.Location)
}

func TestFetchMetadata_SelectorFallback(t *testing.T) {
	page := `<html><body><div class="description">  Junior   role,
	remote   friendly.  </div></body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer srv.Close()

	md := testFetcher().FetchMetadata(context.Background(), srv.URL)
	assert.Equal(t, "Junior role, remote friendly.", md.Description)
	assert.Empty(t, md.Company)
}

func TestFetchMetadata_NeverErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := testFetcher()
	assert.Equal(t, Metadata{}, f.FetchMetadata(context.Background(), srv.URL))
	assert.Equal(t, Metadata{}, f.FetchMetadata(context.Background(), "http://127.0.0.1:1/unreachable"))
	assert.Equal(t, Metadata{}, f.FetchMetadata(context.Background(), "::not a url::"))
}

func TestFetchAll_AlignsByIndex(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div class="description">desc for ` + r.URL.Path + `</div></body></html>`))
	}))
	defer srv.Close()

	urls := []string{srv.URL + "/a", srv.URL + "/b", srv.URL + "/c"}
	out := testFetcher().FetchAll(context.Background(), urls)

	assert.Len(t, out, 3)
	assert.Equal(t, "desc for /a", out[0].Description)
	assert.Equal(t, "desc for /c", out[2].Description)
}

func TestEmails(t *testing.T) {
	got := Emails("reach us at hr@acme.in or HR@acme.in, also careers@acme.in")
	assert.Equal(t, []string{"hr@acme.in", "HR@acme.in", "careers@acme.in"}, got)
	assert.Empty(t, Emails("no contacts here"))
}

func TestPhones(t *testing.T) {
	got := Phones("call +91 98765 43210 or 9876543210 today")
	assert.Equal(t, []string{"+919876543210"}, got, "both spellings normalize to one number")
	assert.Empty(t, Phones("call 12345"))
}

func TestSkills(t *testing.T) {
	got := Skills("We use Java, Spring Boot and Docker. Git required.", DefaultSkills)
	assert.Contains(t, got, "java")
	assert.Contains(t, got, "spring boot")
	assert.Contains(t, got, "docker")
	assert.Contains(t, got, "git")
	assert.NotContains(t, got, "python")
}
