package goquery_test

import (
	"testing"

	jobquery "github.com/jobcoach/jobcoach/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostingLinks(t *testing.T) {
	t.Parallel()

	t.Run("extracts and resolves posting links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/jobs/1234-senior-go-engineer">Senior Go Engineer</a>
			<a href="https://boards.greenhouse.io/acme/jobs/5678">Staff Engineer</a>
			<a href="/about">About us</a>
			<a href="/blog/how-we-hire">Blog</a>
			<a href="mailto:jobs@acme.test">Email us</a>
		</body></html>`

		links, err := jobquery.PostingLinks(html, "https://acme.test/careers")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://acme.test/jobs/1234-senior-go-engineer",
			"https://boards.greenhouse.io/acme/jobs/5678",
		}, links)
	})

	t.Run("deduplicates preserving order", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/jobs/1">one</a><a href="/jobs/2">two</a><a href="/jobs/1#apply">one again</a>`
		links, err := jobquery.PostingLinks(html, "https://acme.test/careers")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://acme.test/jobs/1",
			"https://acme.test/jobs/2",
		}, links)
	})

	t.Run("matches board query parameters", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/embed/listing?gh_jid=99">Open role</a>`
		links, err := jobquery.PostingLinks(html, "https://acme.test/careers")
		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Contains(t, links[0], "gh_jid=99")
	})

	t.Run("skips the listing page itself", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/careers">Careers home</a>`
		links, err := jobquery.PostingLinks(html, "https://acme.test/careers")
		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("invalid base URL", func(t *testing.T) {
		t.Parallel()

		_, err := jobquery.PostingLinks("<a href='/jobs/1'>x</a>", "://bad")
		require.Error(t, err)
	})
}
