package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jobcoach/jobcoach"
)

// postingPathRe matches URL paths that look like individual job postings.
// Careers listings frequently link out to hosted boards (Greenhouse, Lever),
// so matching is on the path and query rather than the host.
var postingPathRe = regexp.MustCompile(`(?i)/(jobs?|careers?|positions?|openings?|vacancies|requisitions?)(/|$)|gh_jid=|[?&]jid=`)

// PostingLinks extracts candidate job posting URLs from a careers listing
// page. Relative hrefs are resolved against baseURL, fragments are stripped,
// and results are deduplicated preserving document order. The listing page
// itself is never returned.
func PostingLinks(html string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, jobcoach.Errorf(jobcoach.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, jobcoach.Errorf(jobcoach.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" || isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" || seen[resolved] {
			return
		}

		if !looksLikePosting(resolved) {
			return
		}

		seen[resolved] = true
		links = append(links, resolved)
	})

	return links, nil
}

// looksLikePosting reports whether a URL plausibly points at an individual
// job posting rather than an unrelated page.
func looksLikePosting(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	target := u.Path
	if u.RawQuery != "" {
		target += "?" + u.RawQuery
	}
	return postingPathRe.MatchString(target)
}

// resolveURL resolves a relative href against a base URL, stripping the
// fragment. Returns empty string for unparseable or self-referential links.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
