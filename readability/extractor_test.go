package readability_test

import (
	"testing"

	"github.com/jobcoach/jobcoach/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ExtractMetadata(t *testing.T) {
	t.Parallel()

	t.Run("reads title and site name", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
			<title>Senior Go Engineer - Acme Careers</title>
			<meta property="og:site_name" content="Acme">
			<meta property="og:title" content="Senior Go Engineer">
		</head><body><article><p>Long enough content for readability to work with. We build things.</p></article></body></html>`

		meta, err := readability.NewExtractor().ExtractMetadata(html)
		require.NoError(t, err)
		assert.Equal(t, "Acme", meta.SiteName)
		assert.NotEmpty(t, meta.Title)
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := readability.NewExtractor().ExtractMetadata("")
		require.Error(t, err)
	})
}
