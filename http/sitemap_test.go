package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/jobcoach/jobcoach"
	jobhttp "github.com/jobcoach/jobcoach/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sitemapXML(urls ...string) string {
	out := `<?xml version="1.0" encoding="UTF-8"?><urlset>`
	for _, u := range urls {
		out += "<url><loc>" + u + "</loc></url>"
	}
	return out + "</urlset>"
}

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("uses robots.txt sitemap directive", func(t *testing.T) {
		t.Parallel()

		var server *httptest.Server
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/robots.txt":
				_, _ = w.Write([]byte("User-agent: *\nSitemap: " + server.URL + "/jobs-sitemap.xml\n"))
			case "/jobs-sitemap.xml":
				_, _ = w.Write([]byte(sitemapXML(server.URL+"/jobs/1", server.URL+"/jobs/2")))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		svc := jobhttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), server.URL+"/careers", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{server.URL + "/jobs/1", server.URL + "/jobs/2"}, urls)
	})

	t.Run("falls back to sitemap.xml", func(t *testing.T) {
		t.Parallel()

		var server *httptest.Server
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/sitemap.xml":
				_, _ = w.Write([]byte(sitemapXML(server.URL + "/jobs/1")))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		svc := jobhttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), server.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{server.URL + "/jobs/1"}, urls)
	})

	t.Run("resolves sitemap index recursively and deduplicates", func(t *testing.T) {
		t.Parallel()

		var server *httptest.Server
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/sitemap.xml":
				_, _ = w.Write([]byte(`<?xml version="1.0"?><sitemapindex>` +
					"<sitemap><loc>" + server.URL + "/a.xml</loc></sitemap>" +
					"<sitemap><loc>" + server.URL + "/b.xml</loc></sitemap>" +
					"</sitemapindex>"))
			case "/a.xml":
				_, _ = w.Write([]byte(sitemapXML(server.URL+"/jobs/1", server.URL+"/jobs/2")))
			case "/b.xml":
				_, _ = w.Write([]byte(sitemapXML(server.URL+"/jobs/2", server.URL+"/jobs/3")))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		svc := jobhttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), server.URL, nil)
		require.NoError(t, err)
		assert.Len(t, urls, 3)
	})

	t.Run("applies URL filter", func(t *testing.T) {
		t.Parallel()

		var server *httptest.Server
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/sitemap.xml" {
				_, _ = w.Write([]byte(sitemapXML(server.URL+"/jobs/1", server.URL+"/blog/post")))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		filter := &jobcoach.URLFilter{Include: []*regexp.Regexp{regexp.MustCompile(`/jobs/`)}}
		svc := jobhttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), server.URL, filter)
		require.NoError(t, err)
		assert.Equal(t, []string{server.URL + "/jobs/1"}, urls)
	})

	t.Run("no sitemap yields empty slice", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		svc := jobhttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), server.URL, nil)
		require.NoError(t, err)
		assert.NotNil(t, urls)
		assert.Empty(t, urls)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		svc := jobhttp.NewSitemapService(nil)
		_, err := svc.DiscoverURLs(ctx, "https://example.test", nil)
		require.Error(t, err)
	})
}
