package content

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// CipherFetcher retrieves the daily cipher page and extracts the Morse block
// published under a given "Month Day" header.
type CipherFetcher struct {
	client *http.Client
	url    string
}

// NewCipherFetcher builds a fetcher for the daily cipher page.
func NewCipherFetcher(client *http.Client, url string) *CipherFetcher {
	return &CipherFetcher{client: client, url: url}
}

// Fetch downloads the page and returns the cipher block for the date key
// ("March 14" style), prefixed with the key itself. A date with no block, or
// with an empty one, is ErrContentNotFound.
func (f *CipherFetcher) Fetch(ctx context.Context, dateKey string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return "", fmt.Errorf("building cipher request: %w", err)
	}

	doc, err := fetchDocument(f.client, req)
	if err != nil {
		return "", err
	}

	blocks := ParseCipherText(visibleText(doc))
	text := strings.TrimSpace(strings.Join(blocks[dateKey], "\n"))
	if text == "" {
		return "", fmt.Errorf("cipher for %q: %w", dateKey, ErrContentNotFound)
	}
	return dateKey + "\n" + text, nil
}

// ParseCipherText scans line-structured page text and groups lines under
// "Month Day" date headers. A header line opens a new bucket; every following
// non-empty line joins the current bucket until the next header. Lines seen
// before any header are discarded. Pure function of its input.
func ParseCipherText(raw string) map[string][]string {
	blocks := make(map[string][]string)
	current := ""

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if parsed, err := time.Parse("January 2", line); err == nil {
			current = fmt.Sprintf("%s %d", parsed.Month(), parsed.Day())
			blocks[current] = []string{}
			continue
		}
		if current != "" {
			blocks[current] = append(blocks[current], line)
		}
	}
	return blocks
}

// visibleText flattens the document's text nodes in document order, one line
// per node, skipping script and style bodies.
func visibleText(doc *html.Node) string {
	var lines []string
	visit(doc, func(n *html.Node) bool {
		if n.Type != html.TextNode {
			return true
		}
		if p := n.Parent; p != nil && p.Type == html.ElementNode && (p.Data == "script" || p.Data == "style") {
			return true
		}
		lines = append(lines, n.Data)
		return true
	})
	return strings.Join(lines, "\n")
}
