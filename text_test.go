package jobcoach_test

import (
	"strings"
	"testing"

	"github.com/jobcoach/jobcoach"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhitespace(t *testing.T) {
	t.Parallel()

	t.Run("collapses space runs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "a b c", jobcoach.NormalizeWhitespace("a   b \t c"))
	})

	t.Run("collapses newline runs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "a\nb", jobcoach.NormalizeWhitespace("a\n\n\n\nb"))
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "middle", jobcoach.NormalizeWhitespace("  \n middle \n\n "))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		once := jobcoach.NormalizeWhitespace("Senior   Engineer\n\n\nRemote \t ok\n")
		twice := jobcoach.NormalizeWhitespace(once)
		assert.Equal(t, once, twice)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, jobcoach.NormalizeWhitespace("   \n\n  "))
	})
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	t.Run("below cap is unchanged", func(t *testing.T) {
		t.Parallel()

		out, truncated := jobcoach.Truncate("short", 100)
		assert.Equal(t, "short", out)
		assert.False(t, truncated)
	})

	t.Run("above cap appends marker", func(t *testing.T) {
		t.Parallel()

		out, truncated := jobcoach.Truncate(strings.Repeat("x", 50), 10)
		assert.True(t, truncated)
		assert.Equal(t, strings.Repeat("x", 10)+jobcoach.TruncationMarker, out)
	})

	t.Run("cap counts runes not bytes", func(t *testing.T) {
		t.Parallel()

		out, truncated := jobcoach.Truncate("日本語テキスト", 3)
		assert.True(t, truncated)
		assert.Equal(t, "日本語"+jobcoach.TruncationMarker, out)
	})

	t.Run("non-positive cap disables truncation", func(t *testing.T) {
		t.Parallel()

		out, truncated := jobcoach.Truncate("anything", 0)
		assert.Equal(t, "anything", out)
		assert.False(t, truncated)
	})
}
